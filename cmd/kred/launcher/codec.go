package launcher

import (
	"github.com/rony4d/go-kred/inter"
)

// shipChain runs blocks through the binary block codec, the way a chain
// received from a peer would arrive, and returns the decoded copy with its
// encoded size.
func shipChain(blocks []*inter.Block) ([]*inter.Block, int, error) {
	raw, err := inter.EncodeChain(blocks)
	if err != nil {
		return nil, 0, err
	}
	decoded, err := inter.DecodeChain(raw)
	if err != nil {
		return nil, 0, err
	}
	return decoded, len(raw), nil
}
