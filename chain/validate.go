package chain

import (
	"fmt"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"

	"github.com/rony4d/go-kred/inter"
)

// VerifyChain checks the integrity of blocks and describes the first
// violation found:
//   - every block's stored hash equals its recomputed hash, genesis included;
//   - every block after the first names its predecessor's hash in PrevHash.
//
// The difficulty of a hash is not checked. A block whose hash is correct but
// lacks the leading zeros is accepted.
//
// An empty slice has nothing to contradict and is considered valid.
func VerifyChain(blocks []*inter.Block) error {
	for i, b := range blocks {
		if b == nil {
			return &ValidationError{Index: idx.Block(i), Reason: "missing block"}
		}
		if i > 0 && b.PrevHash != blocks[i-1].Hash {
			return &ValidationError{
				Index:  idx.Block(i),
				Reason: fmt.Sprintf("previous hash %s does not link to %s", b.PrevHash, blocks[i-1].Hash),
			}
		}
		if got := b.CalculateHash(); got != b.Hash {
			return &ValidationError{
				Index:  idx.Block(i),
				Reason: fmt.Sprintf("stored hash %s, recomputed %s", b.Hash, got),
			}
		}
	}
	return nil
}

// IsValidChain reports whether VerifyChain accepts blocks.
func IsValidChain(blocks []*inter.Block) bool {
	return VerifyChain(blocks) == nil
}
