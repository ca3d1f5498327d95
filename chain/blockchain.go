// Package chain owns the sequence of sealed blocks and the ledger their
// rewards are paid into.
//
// A Blockchain starts from the genesis block of its rules and grows one block
// per AddBlock. Each new block pays the configured reward into the ledger:
// the faucet first, then every founder in list order. ReplaceChain swaps in a
// strictly longer valid chain (longest chain wins) and leaves the ledger
// alone.
package chain

import (
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"

	"github.com/rony4d/go-kred/inter"
	"github.com/rony4d/go-kred/kred"
	"github.com/rony4d/go-kred/ledger"
)

// Blockchain is a single node's view of the chain.
type Blockchain struct {
	mu     sync.Mutex
	blocks []*inter.Block
	ledger *ledger.Ledger
	rules  kred.Rules

	now func() time.Time
	log log.Logger
}

// New validates rules and returns a chain holding only the genesis block.
// Invalid rules yield a *kred.ConfigurationError.
func New(rules kred.Rules) (*Blockchain, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	rules = rules.Copy()

	genesis := inter.NewGenesis(rules.Genesis)
	bc := &Blockchain{
		blocks: []*inter.Block{genesis},
		ledger: ledger.New(),
		rules:  rules,
		now:    time.Now,
		log:    log.New("module", "chain", "network", rules.Name),
	}
	bc.log.Debug("Created chain", "genesis", genesis.Hash, "difficulty", rules.Blocks.Difficulty)
	return bc, nil
}

// SetLogger replaces the chain logger.
func (bc *Blockchain) SetLogger(l log.Logger) {
	bc.mu.Lock()
	defer bc.mu.Unlock()
	bc.log = l
}

// Tip returns a copy of the last block.
func (bc *Blockchain) Tip() (*inter.Block, error) {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	b, err := bc.tip()
	if err != nil {
		return nil, err
	}
	return b.Copy(), nil
}

func (bc *Blockchain) tip() (*inter.Block, error) {
	if len(bc.blocks) == 0 {
		return nil, ErrEmptyChain
	}
	return bc.blocks[len(bc.blocks)-1], nil
}

// AddBlock seals data on top of the tip, pays the block reward and appends
// the block. Sealing blocks the caller until a nonce is found.
//
// The ledger is credited before the block is appended.
func (bc *Blockchain) AddBlock(data []string, miner string) (*inter.Block, error) {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	tip, err := bc.tip()
	if err != nil {
		return nil, err
	}
	split, err := SplitReward(bc.rules.Economy.BlockReward, len(bc.rules.Economy.Distribution.Founders))
	if err != nil {
		return nil, err
	}

	start := time.Now()
	b := inter.MineAt(inter.FromTime(bc.now()), tip.Index+1, tip.Hash, data, miner, bc.rules.Blocks.Difficulty)
	bc.log.Info("Sealed block", "index", b.Index, "hash", b.Hash, "nonce", b.Nonce,
		"items", len(b.Data), "elapsed", common.PrettyDuration(time.Since(start)))

	bc.payReward(b, split)
	bc.blocks = append(bc.blocks, b)
	return b.Copy(), nil
}

func (bc *Blockchain) payReward(b *inter.Block, split Split) {
	dist := bc.rules.Economy.Distribution

	bc.ledger.Credit(dist.Faucet, split.Faucet)
	for _, founder := range dist.Founders {
		bc.ledger.Credit(founder, split.Founder)
	}
	bc.log.Debug("Paid block reward", "index", b.Index, "faucet", split.Faucet,
		"founders", len(dist.Founders), "each", split.Founder, "dropped", split.Dropped)
}

// ReplaceChain adopts candidate if it is strictly longer than the current
// chain and passes VerifyChain. It reports whether the chain was replaced.
// A rejection is logged, not returned.
//
// Balances are not recomputed: the ledger keeps the rewards paid for the
// blocks this node mined itself.
func (bc *Blockchain) ReplaceChain(candidate []*inter.Block) bool {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	if len(candidate) <= len(bc.blocks) {
		bc.log.Warn("Rejected chain replacement", "reason", "not longer",
			"candidate", len(candidate), "current", len(bc.blocks))
		return false
	}
	if err := VerifyChain(candidate); err != nil {
		bc.log.Warn("Rejected chain replacement", "reason", err, "candidate", len(candidate))
		return false
	}

	blocks := make([]*inter.Block, len(candidate))
	for i, b := range candidate {
		blocks[i] = b.Copy()
	}
	bc.log.Info("Replaced chain", "old", len(bc.blocks), "new", len(blocks), "tip", blocks[len(blocks)-1].Hash)
	bc.blocks = blocks
	return true
}

// IsValid checks the chain's own blocks with VerifyChain.
func (bc *Blockchain) IsValid() bool {
	bc.mu.Lock()
	defer bc.mu.Unlock()
	return IsValidChain(bc.blocks)
}

// Blocks returns a deep copy of the chain.
func (bc *Blockchain) Blocks() []*inter.Block {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	out := make([]*inter.Block, len(bc.blocks))
	for i, b := range bc.blocks {
		out[i] = b.Copy()
	}
	return out
}

// Len returns the number of blocks, genesis included.
func (bc *Blockchain) Len() int {
	bc.mu.Lock()
	defer bc.mu.Unlock()
	return len(bc.blocks)
}

// Ledger returns the live balance ledger.
func (bc *Blockchain) Ledger() *ledger.Ledger {
	return bc.ledger
}

// Rules returns a copy of the rules the chain runs under.
func (bc *Blockchain) Rules() kred.Rules {
	return bc.rules.Copy()
}
