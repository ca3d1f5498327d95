package inter

import (
	"crypto/sha256"
	"strconv"
	"strings"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/ethereum/go-ethereum/common"
)

// DigestHexLen is the length of a hex-encoded digest.
const DigestHexLen = 2 * sha256.Size

// HashHex returns the lowercase hex SHA-256 digest of data.
func HashHex(data []byte) string {
	sum := sha256.Sum256(data)
	return common.Bytes2Hex(sum[:])
}

// IsDigest reports whether s has the canonical digest form: 64 lowercase hex
// characters.
func IsDigest(s string) bool {
	if len(s) != DigestHexLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f') {
			return false
		}
	}
	return true
}

// Header holds the fields a block hash commits to. Data is covered through
// MerkleRoot only.
type Header struct {
	Index      idx.Block
	Time       Timestamp
	PrevHash   string
	MerkleRoot string
	Nonce      uint64
	Miner      string
}

// prefix is the part of the preimage that does not change during sealing.
func (h *Header) prefix() []byte {
	var b strings.Builder
	b.WriteString(strconv.FormatUint(uint64(h.Index), 10))
	b.WriteString(h.Time.Canonical())
	b.WriteString(h.PrevHash)
	b.WriteString(h.MerkleRoot)
	return []byte(b.String())
}

// Preimage is the canonical byte string hashed into a block hash, with no
// separators between fields:
//
//	decimal(index) | RFC3339Nano(time) | prev_hash | merkle_root | decimal(nonce) | miner
//
// Changing anything here changes every block hash.
func (h *Header) Preimage() []byte {
	return appendTail(h.prefix(), h.Nonce, h.Miner)
}

func appendTail(prefix []byte, nonce uint64, miner string) []byte {
	buf := strconv.AppendUint(prefix, nonce, 10)
	return append(buf, miner...)
}

// Hash recomputes the header digest.
func (h *Header) Hash() string {
	return HashHex(h.Preimage())
}
