package inter

import "strings"

// EmptyMerkleRoot commits to an empty payload.
var EmptyMerkleRoot = strings.Repeat("0", DigestHexLen)

// MerkleRoot binds an ordered list of items to a single digest.
//
// Leaves are HashHex(item). Each level pairs neighbours left to right,
// duplicating the last digest when the count is odd, and hashes the
// concatenation of the two hex strings (not the raw 32-byte digests). The
// hex concatenation is part of the hash format and must not be replaced by a
// byte concatenation.
//
// The root depends on order. The odd-count duplication means [a, b, c] and
// [a, b, c, c] share a root.
func MerkleRoot(items []string) string {
	if len(items) == 0 {
		return EmptyMerkleRoot
	}

	level := make([]string, len(items))
	for i, item := range items {
		level[i] = HashHex([]byte(item))
	}

	for len(level) > 1 {
		if len(level)%2 == 1 {
			level = append(level, level[len(level)-1])
		}
		next := make([]string, 0, len(level)/2)
		for i := 0; i < len(level); i += 2 {
			next = append(next, HashHex([]byte(level[i]+level[i+1])))
		}
		level = next
	}
	return level[0]
}
