package launcher

import "github.com/rony4d/go-kred/kred"

// Defaults bundles the baseline configuration values the launcher uses
// before the config file and flags override them.

type Defaults struct {
	Node    NodeDefaults
	Network NetworkDefaults
	Mining  MiningDefaults
	Logging LoggingDefaults
}

// NodeDefaults captures top-level node settings.
type NodeDefaults struct {
	Name string //	Identity shown in every log line of this process.
}

// NetworkDefaults picks the rules preset.
type NetworkDefaults struct {
	Name string //	Preset passed to kred.RulesByName. Difficulty, reward and recipients default to the preset's values.
}

// MiningDefaults describes the blocks the run command produces.
type MiningDefaults struct {
	Blocks int      //	How many blocks to mine on top of genesis.
	Miner  string   //	Producer recorded in the block hash. Empty means a fresh wallet address per run.
	Data   []string //	Payload of every block. Empty means one signed demo transfer per block.
}

// LoggingDefaults controls log verbosity/format.
type LoggingDefaults struct {
	Verbosity int    //	Log level numeric (0=crit, 1=error, 2=warn, 3=info, 4=debug, 5=trace).
	Format    string //	Log output format (text vs json).
	Color     bool   //	Whether to use ANSI color codes in logs.
}

// DefaultConfig returns a fully populated Defaults instance.

func DefaultConfig() Defaults {
	return Defaults{
		Node: NodeDefaults{
			Name: "go-kred",
		},
		Network: NetworkDefaults{
			Name: kred.FakeNetRules().Name,
		},
		Mining: MiningDefaults{
			Blocks: 3,
		},
		Logging: LoggingDefaults{
			Verbosity: 3,
			Format:    "text",
			Color:     false,
		},
	}
}
