// Package kred defines the rules a Kred chain is built and validated under.
//
// Every value that used to be a process-wide constant in earlier prototypes
// (genesis payload, block reward, mining difficulty, reward recipients) is a
// field of Rules. A Blockchain receives its Rules once, at construction, and
// nothing mutates them afterwards.
//
// Usage:
//
//	rules := kred.FakeNetRules()
//	rules.Blocks.Difficulty = 3
//	if err := rules.Validate(); err != nil { ... }
package kred

import (
	"encoding/json"
	"fmt"
	"time"
)

// Network identification constants.
const (
	MainNetworkID uint64 = 0x4b52
	TestNetworkID uint64 = 0x4b53
	FakeNetworkID uint64 = 0x4b54
)

// Genesis defaults.
const (
	// GenesisData is the single payload item of the genesis block.
	GenesisData = "KredChain Genesis Block - 2025: Participation Begins"

	// GenesisPrevHash stands in for the parent digest of block 0.
	GenesisPrevHash = "GENESIS_PREV_HASH"

	// GenesisMiner is the reserved producer identity of block 0.
	GenesisMiner = "GENESIS"
)

// MaxDifficulty is the length of a hex-encoded SHA-256 digest. A difficulty
// above it can never be satisfied.
const MaxDifficulty = 64

// FaucetSharePercent is the part of every block reward paid to the faucet.
// The rest is split evenly between the founders.
const FaucetSharePercent = 80

// DefaultGenesisTime is shared by every preset so that chains built
// independently from the same rules start from the same genesis hash.
var DefaultGenesisTime = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

// Rules is the complete configuration of a chain.
type Rules struct {
	Name      string
	NetworkID uint64

	Genesis GenesisRules
	Blocks  BlocksRules
	Economy EconomyRules
}

// GenesisRules describes block 0.
type GenesisRules struct {
	Data     string
	PrevHash string
	Miner    string
	Time     time.Time
}

// BlocksRules controls sealing.
type BlocksRules struct {
	// Difficulty is the number of leading zero hex characters a sealed
	// block hash must carry. The nonce search has no upper bound, so every
	// extra character multiplies the expected mining time by 16.
	Difficulty uint
}

// EconomyRules controls reward issuance.
type EconomyRules struct {
	// BlockReward is paid out per sealed block, in Koin.
	BlockReward uint64

	Distribution Distribution
}

// Distribution lists who receives the block reward. The miner of a block is
// not among the recipients.
type Distribution struct {
	Faucet   string
	Founders []string
}

// Addresses used by the fake network. They follow the KRDx display format
// but have no known private key.
const (
	FakeFaucetAddress   = "KRDx00000000000000000000000000000000000000fa"
	FakeFounderAddress1 = "KRDx00000000000000000000000000000000000000f1"
	FakeFounderAddress2 = "KRDx00000000000000000000000000000000000000f2"
)

// MainNetRules returns the production rules. The reward distribution is
// empty and has to be configured by the operator.
func MainNetRules() Rules {
	return Rules{
		Name:      "main",
		NetworkID: MainNetworkID,
		Genesis:   DefaultGenesisRules(),
		Blocks:    BlocksRules{Difficulty: 5},
		Economy:   EconomyRules{BlockReward: BlockRewardKoin},
	}
}

// TestNetRules mirrors mainnet with an easier puzzle.
func TestNetRules() Rules {
	r := MainNetRules()
	r.Name = "test"
	r.NetworkID = TestNetworkID
	r.Blocks.Difficulty = 4
	return r
}

// FakeNetRules is meant for local runs and tests: low difficulty and a
// ready-made distribution.
func FakeNetRules() Rules {
	r := MainNetRules()
	r.Name = "fake"
	r.NetworkID = FakeNetworkID
	r.Blocks.Difficulty = 2
	r.Economy.Distribution = Distribution{
		Faucet:   FakeFaucetAddress,
		Founders: []string{FakeFounderAddress1, FakeFounderAddress2},
	}
	return r
}

// DefaultGenesisRules returns the genesis block parameters shared by all
// presets.
func DefaultGenesisRules() GenesisRules {
	return GenesisRules{
		Data:     GenesisData,
		PrevHash: GenesisPrevHash,
		Miner:    GenesisMiner,
		Time:     DefaultGenesisTime,
	}
}

// RulesByName resolves a preset name as accepted by the --network flag.
func RulesByName(name string) (Rules, error) {
	switch name {
	case "main":
		return MainNetRules(), nil
	case "test":
		return TestNetRules(), nil
	case "fake":
		return FakeNetRules(), nil
	default:
		return Rules{}, fmt.Errorf("unknown network: %q (valid: main, test, fake)", name)
	}
}

// Validate rejects rules a Blockchain cannot run under. The checks happen
// here so that a bad distribution fails at construction instead of at the
// first reward split.
func (r Rules) Validate() error {
	if r.Blocks.Difficulty > MaxDifficulty {
		return &ConfigurationError{
			Field:  "Blocks.Difficulty",
			Reason: fmt.Sprintf("%d exceeds the %d hex characters of a digest", r.Blocks.Difficulty, MaxDifficulty),
		}
	}
	if r.Economy.Distribution.Faucet == "" {
		return &ConfigurationError{Field: "Economy.Distribution.Faucet", Reason: "faucet address is empty"}
	}
	if len(r.Economy.Distribution.Founders) == 0 {
		return &ConfigurationError{Field: "Economy.Distribution.Founders", Reason: "at least one founder is required"}
	}
	for i, f := range r.Economy.Distribution.Founders {
		if f == "" {
			return &ConfigurationError{
				Field:  "Economy.Distribution.Founders",
				Reason: fmt.Sprintf("founder %d has an empty address", i),
			}
		}
	}
	return nil
}

// Copy returns a deep copy; the founder slice is not shared.
func (r Rules) Copy() Rules {
	cp := r
	cp.Economy.Distribution.Founders = append([]string(nil), r.Economy.Distribution.Founders...)
	return cp
}

// String returns the rules as JSON, for logs and config dumps.
func (r Rules) String() string {
	b, _ := json.Marshal(&r)
	return string(b)
}
