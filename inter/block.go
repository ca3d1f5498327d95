// Package inter defines the block, the unit of record of a Kred chain.
//
// A Block is produced in one step by Mine (or NewGenesis) and is not changed
// afterwards. Its Hash is computed once, at seal time, over the header
// fields; anyone holding the block can recompute it with CalculateHash and
// must get the same value. That equality, together with each block naming
// its parent's hash in PrevHash, is what makes the chain tamper evident.
//
// Usage:
//
//	genesis := inter.NewGenesis(rules.Genesis)
//	next := inter.Mine(genesis.Index+1, genesis.Hash, data, miner, rules.Blocks.Difficulty)
//	ok := next.CalculateHash() == next.Hash
package inter

import (
	"fmt"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"

	"github.com/rony4d/go-kred/kred"
)

// Block is a sealed block.
type Block struct {
	// Index is the height: 0 for genesis, parent index + 1 otherwise.
	Index idx.Block

	// Time is captured once when sealing starts and shared by every nonce
	// attempt of that seal.
	Time Timestamp

	// PrevHash is the parent's Hash, or the genesis sentinel for block 0.
	PrevHash string

	// MerkleRoot commits to Data, see MerkleRoot.
	MerkleRoot string

	// Nonce is the first value, counting from zero, that satisfied the
	// difficulty when the block was sealed.
	Nonce uint64

	// Miner identifies the producer. It is part of the hash but is not
	// credited with the block reward.
	Miner string

	// Data is the ordered payload. Items are opaque to the chain.
	Data []string

	// Hash is the digest of Header(), lowercase hex.
	Hash string
}

// Header returns the fields covered by Hash.
func (b *Block) Header() Header {
	return Header{
		Index:      b.Index,
		Time:       b.Time,
		PrevHash:   b.PrevHash,
		MerkleRoot: b.MerkleRoot,
		Nonce:      b.Nonce,
		Miner:      b.Miner,
	}
}

// CalculateHash recomputes the block hash from the stored fields. It does
// not look at Data; a tampered payload shows up as a MerkleRoot mismatch
// (see VerifyMerkleRoot).
func (b *Block) CalculateHash() string {
	h := b.Header()
	return h.Hash()
}

// VerifyMerkleRoot reports whether MerkleRoot still matches Data.
func (b *Block) VerifyMerkleRoot() bool {
	return MerkleRoot(b.Data) == b.MerkleRoot
}

// Copy returns a deep copy.
func (b *Block) Copy() *Block {
	cp := *b
	cp.Data = append([]string(nil), b.Data...)
	return &cp
}

func (b *Block) String() string {
	return fmt.Sprintf("Block(Index=%d,Hash=%s,Nonce=%d,Items=%d)", b.Index, b.Hash, b.Nonce, len(b.Data))
}

// NewGenesis builds block 0 without a nonce search. Its hash is computed
// like any other block's but is not required to meet the difficulty.
func NewGenesis(g kred.GenesisRules) *Block {
	data := []string{g.Data}
	b := &Block{
		Index:      0,
		Time:       FromTime(g.Time),
		PrevHash:   g.PrevHash,
		MerkleRoot: MerkleRoot(data),
		Nonce:      0,
		Miner:      g.Miner,
		Data:       data,
	}
	b.Hash = b.CalculateHash()
	return b
}
