package launcher

import (
	"io"

	"github.com/ethereum/go-ethereum/log"
)

// setupLogging points the root logger at w with the configured format and
// level. Config.validate has already checked both.
func setupLogging(cfg LoggingConfig, w io.Writer) {
	var format log.Format
	if cfg.Format == "json" {
		format = log.JSONFormat()
	} else {
		format = log.TerminalFormat(cfg.Color)
	}
	log.Root().SetHandler(log.LvlFilterHandler(log.Lvl(cfg.Verbosity), log.StreamHandler(w, format)))
}
