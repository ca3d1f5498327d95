package inter

import (
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/ethereum/go-ethereum/common"

	"github.com/rony4d/go-kred/kred"
)

// MeetsDifficulty reports whether hash starts with at least difficulty '0'
// characters. Hex case does not matter. A difficulty longer than the hash is
// never met, and difficulty 0 accepts any hash.
//
// It checks a hex string as stored in a Block; Seal uses the raw digest
// instead and does not call it.
func MeetsDifficulty(hash string, difficulty uint) bool {
	if difficulty > uint(len(hash)) {
		return false
	}
	for i := uint(0); i < difficulty; i++ {
		if hash[i] != '0' {
			return false
		}
	}
	return true
}

// leadingZeroNibbles counts leading zero hex characters of a raw digest
// without encoding it.
func leadingZeroNibbles(sum *[sha256.Size]byte) uint {
	var n uint
	for _, b := range sum {
		if b != 0 {
			if b < 0x10 {
				n++
			}
			return n
		}
		n += 2
	}
	return n
}

// Seal searches nonces 0, 1, 2, ... for the first one whose header hash
// meets difficulty, and returns it with the hash. h.Nonce is ignored.
//
// Seal is a pure function of its arguments: the same header and difficulty
// always produce the same result, so a caller may split the nonce space
// between workers or run it under its own cancellation without changing
// the outcome. The search itself has no bound and cannot be interrupted.
//
// Seal panics if difficulty exceeds kred.MaxDifficulty, which no hash can
// meet; kred.Rules.Validate rejects such rules up front.
func Seal(h Header, difficulty uint) (nonce uint64, hash string) {
	if difficulty > kred.MaxDifficulty {
		panic(fmt.Sprintf("inter: difficulty %d exceeds %d", difficulty, kred.MaxDifficulty))
	}

	prefix := h.prefix()
	buf := make([]byte, 0, len(prefix)+20+len(h.Miner))
	for nonce = 0; ; nonce++ {
		buf = appendTail(append(buf[:0], prefix...), nonce, h.Miner)
		sum := sha256.Sum256(buf)
		if leadingZeroNibbles(&sum) >= difficulty {
			return nonce, common.Bytes2Hex(sum[:])
		}
	}
}

// Mine seals a new block stamped with the current time. It is the entry
// point for mining on the live clock; see MineAt for the parameters.
func Mine(index idx.Block, prevHash string, data []string, miner string, difficulty uint) *Block {
	return MineAt(FromTime(time.Now()), index, prevHash, data, miner, difficulty)
}

// MineAt seals a new block with a caller-supplied timestamp. The Merkle root
// is computed over data, which is copied into the block, and the nonce and
// hash come from Seal. The timestamp is taken once, so every nonce tried
// hashes the same time. A fixed ts makes the result deterministic.
func MineAt(ts Timestamp, index idx.Block, prevHash string, data []string, miner string, difficulty uint) *Block {
	b := &Block{
		Index:      index,
		Time:       ts,
		PrevHash:   prevHash,
		MerkleRoot: MerkleRoot(data),
		Miner:      miner,
		Data:       append([]string(nil), data...),
	}
	b.Nonce, b.Hash = Seal(b.Header(), difficulty)
	return b
}
