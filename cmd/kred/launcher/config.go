// This file maps the CLI context and the optional TOML file onto Config.

package launcher

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/naoina/toml"
	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-kred/kred"
)

// Config aggregates every subsystem's configuration the launcher needs.
type Config struct {
	Node   NodeConfig
	Chain  ChainConfig
	Mining MiningConfig
}

type NodeConfig struct {
	Name      string
	SentryDSN string
	Logging   LoggingConfig
}

type LoggingConfig struct {
	Verbosity int
	Format    string
	Color     bool
}

// ChainConfig holds the rules of the chain in flat form. It is seeded from
// the preset named by Network; every other field overrides that preset.
type ChainConfig struct {
	Network     string
	Difficulty  uint
	BlockReward uint64
	Faucet      string
	Founders    []string
	GenesisData string
}

type MiningConfig struct {
	Blocks int
	Miner  string
	Data   []string
}

// Rules builds validated chain rules from c.
func (c ChainConfig) Rules() (kred.Rules, error) {
	rules, err := kred.RulesByName(c.Network)
	if err != nil {
		return kred.Rules{}, err
	}
	rules.Blocks.Difficulty = c.Difficulty
	rules.Economy.BlockReward = c.BlockReward
	rules.Economy.Distribution = kred.Distribution{
		Faucet:   c.Faucet,
		Founders: append([]string(nil), c.Founders...),
	}
	if c.GenesisData != "" {
		rules.Genesis.Data = c.GenesisData
	}
	if err := rules.Validate(); err != nil {
		return kred.Rules{}, err
	}
	return rules, nil
}

// -----------------------------------------------------------------------------
// Default config + builders
// -----------------------------------------------------------------------------

func chainDefaults(network string) (ChainConfig, error) {
	rules, err := kred.RulesByName(network)
	if err != nil {
		return ChainConfig{}, err
	}
	return ChainConfig{
		Network:     rules.Name,
		Difficulty:  rules.Blocks.Difficulty,
		BlockReward: rules.Economy.BlockReward,
		Faucet:      rules.Economy.Distribution.Faucet,
		Founders:    append([]string(nil), rules.Economy.Distribution.Founders...),
		GenesisData: rules.Genesis.Data,
	}, nil
}

func defaultConfig() Config {
	d := DefaultConfig()
	chainCfg, err := chainDefaults(d.Network.Name)
	if err != nil {
		panic(err) // presets are compiled in
	}
	return Config{
		Node: NodeConfig{
			Name: d.Node.Name,
			Logging: LoggingConfig{
				Verbosity: d.Logging.Verbosity,
				Format:    d.Logging.Format,
				Color:     d.Logging.Color,
			},
		},
		Chain: chainCfg,
		Mining: MiningConfig{
			Blocks: d.Mining.Blocks,
			Miner:  d.Mining.Miner,
			Data:   d.Mining.Data,
		},
	}
}

// MakeAllConfigs merges defaults, config-file values and CLI overrides into
// a single config struct, in that order.
func MakeAllConfigs(ctx *cli.Context) (Config, error) {
	cfg := defaultConfig()

	if file := ctx.GlobalString("config"); file != "" {
		if err := loadConfigFile(file, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to load config file %s: %w", file, err)
		}
	}

	if err := applyCLIOverrides(ctx, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Mining.Blocks < 0 {
		return fmt.Errorf("mining blocks must not be negative, got %d", c.Mining.Blocks)
	}
	switch c.Node.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q (valid: text, json)", c.Node.Logging.Format)
	}
	if c.Node.Logging.Verbosity < 0 || c.Node.Logging.Verbosity > 5 {
		return fmt.Errorf("log verbosity %d out of range 0..5", c.Node.Logging.Verbosity)
	}
	_, err := c.Chain.Rules()
	return err
}

// -----------------------------------------------------------------------------
// Config-file / CLI wiring
// -----------------------------------------------------------------------------

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

// loadConfigFile decodes path over cfg. When the file switches the network,
// the chain section is re-seeded from the new preset first, so that a file
// holding only Network = "test" gets the test rules rather than a mix.
func loadConfigFile(path string, cfg *Config) error {
	network := cfg.Chain.Network
	if err := decodeConfigFile(path, cfg); err != nil {
		return err
	}
	if cfg.Chain.Network == network {
		return nil
	}

	chainCfg, err := chainDefaults(cfg.Chain.Network)
	if err != nil {
		return err
	}
	cfg.Chain = chainCfg
	return decodeConfigFile(path, cfg)
}

func decodeConfigFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(path + ", " + err.Error())
	}
	return err
}

// dumpConfig renders cfg as TOML that loadConfigFile accepts.
func dumpConfig(cfg *Config) ([]byte, error) {
	return tomlSettings.Marshal(cfg)
}

func applyCLIOverrides(ctx *cli.Context, cfg *Config) error {
	if ctx.GlobalIsSet("identity") {
		cfg.Node.Name = ctx.GlobalString("identity")
	}
	if ctx.GlobalIsSet("sentry.dsn") || ctx.GlobalString("sentry.dsn") != "" {
		cfg.Node.SentryDSN = ctx.GlobalString("sentry.dsn")
	}

	if ctx.GlobalIsSet("log.format") {
		cfg.Node.Logging.Format = ctx.GlobalString("log.format")
	}
	if ctx.GlobalIsSet("log.verbosity") {
		cfg.Node.Logging.Verbosity = ctx.GlobalInt("log.verbosity")
	}
	if ctx.GlobalIsSet("log.color") {
		cfg.Node.Logging.Color = ctx.GlobalBool("log.color")
	}

	// A preset switch comes first: the remaining chain flags refine it.
	if ctx.GlobalIsSet("network") {
		chainCfg, err := chainDefaults(ctx.GlobalString("network"))
		if err != nil {
			return err
		}
		cfg.Chain = chainCfg
	}
	if ctx.GlobalIsSet("difficulty") {
		cfg.Chain.Difficulty = ctx.GlobalUint("difficulty")
	}
	if ctx.GlobalIsSet("reward") {
		cfg.Chain.BlockReward = ctx.GlobalUint64("reward")
	}
	if ctx.GlobalIsSet("faucet") {
		cfg.Chain.Faucet = ctx.GlobalString("faucet")
	}
	if ctx.GlobalIsSet("founders") {
		cfg.Chain.Founders = splitCSV(ctx.GlobalString("founders"))
	}
	if ctx.GlobalIsSet("genesis.data") {
		cfg.Chain.GenesisData = ctx.GlobalString("genesis.data")
	}

	if ctx.GlobalIsSet("mine.blocks") {
		cfg.Mining.Blocks = ctx.GlobalInt("mine.blocks")
	}
	if ctx.GlobalIsSet("mine.miner") {
		cfg.Mining.Miner = ctx.GlobalString("mine.miner")
	}
	if ctx.GlobalIsSet("mine.data") {
		cfg.Mining.Data = ctx.GlobalStringSlice("mine.data")
	}
	return nil
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
