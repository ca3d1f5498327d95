package chain

import (
	"errors"
	"fmt"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"
)

// ErrEmptyChain is returned when a chain has no genesis block to build on.
var ErrEmptyChain = errors.New("chain has no blocks")

// ValidationError pinpoints the first block that breaks chain integrity.
type ValidationError struct {
	Index  idx.Block // position in the checked slice
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid block at position %d: %s", e.Index, e.Reason)
}
