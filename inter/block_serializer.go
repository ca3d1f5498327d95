package inter

import (
	"errors"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/ethereum/go-ethereum/common"

	"github.com/rony4d/go-kred/utils/cser"
)

var (
	ErrUnknownVersion = errors.New("unknown block serialization version")
	ErrTooManyItems   = errors.New("too many items")
)

// SerializationVersion is written in front of every encoded block.
const SerializationVersion = 1

// Decoding limits for untrusted input.
const (
	MaxBlockItems  = 1 << 16
	MaxChainBlocks = 1 << 20
	maxStringLen   = cser.MaxAlloc
)

// writeDigest stores a canonical digest as 32 raw bytes and anything else
// (the genesis sentinel, hand-edited values) as a plain string, behind a
// one-bit tag.
func writeDigest(w *cser.Writer, s string) {
	if IsDigest(s) {
		w.Bool(true)
		w.FixedBytes(common.Hex2Bytes(s))
		return
	}
	w.Bool(false)
	w.String(s)
}

func readDigest(r *cser.Reader) string {
	if r.Bool() {
		raw := make([]byte, DigestHexLen/2)
		r.FixedBytes(raw)
		return common.Bytes2Hex(raw)
	}
	s := r.String(maxStringLen)
	if IsDigest(s) {
		// Would have been written in the compact form.
		panic(cser.ErrNonCanonicalEncoding)
	}
	return s
}

// MarshalCSER writes every stored field, including Hash. The hash is not
// recomputed on either side: whether it is correct is for chain
// validation to decide.
func (b *Block) MarshalCSER(w *cser.Writer) error {
	w.U56(SerializationVersion)
	w.U64(uint64(b.Index))
	w.U64(uint64(b.Time))
	writeDigest(w, b.PrevHash)
	writeDigest(w, b.MerkleRoot)
	w.U64(b.Nonce)
	w.String(b.Miner)
	w.U56(uint64(len(b.Data)))
	for _, item := range b.Data {
		w.String(item)
	}
	writeDigest(w, b.Hash)
	return nil
}

// UnmarshalCSER is the inverse of MarshalCSER.
func (b *Block) UnmarshalCSER(r *cser.Reader) error {
	if v := r.U56(); v != SerializationVersion {
		return ErrUnknownVersion
	}
	b.Index = idx.Block(r.U64())
	b.Time = Timestamp(r.U64())
	b.PrevHash = readDigest(r)
	b.MerkleRoot = readDigest(r)
	b.Nonce = r.U64()
	b.Miner = r.String(maxStringLen)

	n := r.U56()
	if n > MaxBlockItems {
		return ErrTooManyItems
	}
	b.Data = nil
	if n > 0 {
		b.Data = make([]string, n)
		for i := range b.Data {
			b.Data[i] = r.String(maxStringLen)
		}
	}
	b.Hash = readDigest(r)
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b *Block) MarshalBinary() ([]byte, error) {
	return cser.MarshalBinaryAdapter(b.MarshalCSER)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(raw []byte) error {
	return cser.UnmarshalBinaryAdapter(raw, b.UnmarshalCSER)
}

// EncodeChain serializes a whole sequence of blocks, e.g. a candidate chain
// handed to another node for fork choice.
func EncodeChain(blocks []*Block) ([]byte, error) {
	return cser.MarshalBinaryAdapter(func(w *cser.Writer) error {
		w.U56(uint64(len(blocks)))
		for _, b := range blocks {
			if err := b.MarshalCSER(w); err != nil {
				return err
			}
		}
		return nil
	})
}

// DecodeChain is the inverse of EncodeChain. The result is not validated.
func DecodeChain(raw []byte) ([]*Block, error) {
	var blocks []*Block
	err := cser.UnmarshalBinaryAdapter(raw, func(r *cser.Reader) error {
		n := r.U56()
		if n > MaxChainBlocks {
			return ErrTooManyItems
		}
		blocks = make([]*Block, 0, n)
		for i := uint64(0); i < n; i++ {
			b := new(Block)
			if err := b.UnmarshalCSER(r); err != nil {
				return err
			}
			blocks = append(blocks, b)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return blocks, nil
}
