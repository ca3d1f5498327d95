// Package cser is a canonical serialization format with two streams: a byte
// stream for payload and a bit stream for flags and integer sizes.
//
// Wire layout:
//
//	[ byte stream ][ bit stream ][ reversed varint(len(bit stream)) ]
//
// Every value has exactly one valid encoding. Decoders reject padded
// integers, non-zero trailing bits and unconsumed input, so two encodings of
// the same value are always byte-identical.
package cser

import (
	"github.com/rony4d/go-kred/utils/bits"
	"github.com/rony4d/go-kred/utils/fast"
)

// MarshalBinaryAdapter runs marshalCser against a fresh Writer and packs
// both streams into one slice.
func MarshalBinaryAdapter(marshalCser func(*Writer) error) ([]byte, error) {
	w := NewWriter()
	if err := marshalCser(w); err != nil {
		return nil, err
	}
	return binaryFromCSER(w.BitsW.Array, w.BytesW.Bytes()), nil
}

func binaryFromCSER(bbits *bits.Array, bbytes []byte) []byte {
	body := fast.NewWriter(bbytes)
	body.Write(bbits.Bytes)

	size := fast.NewWriter(make([]byte, 0, 4))
	writeUint64Compact(size, uint64(len(bbits.Bytes)))
	body.Write(reversed(size.Bytes()))

	return body.Bytes()
}

func binaryToCSER(raw []byte) (*bits.Array, []byte, error) {
	sizeReader := fast.NewReader(reversed(tail(raw, 9)))
	bitsSize := readUint64Compact(sizeReader)

	raw = raw[:len(raw)-sizeReader.Position()]
	if uint64(len(raw)) < bitsSize {
		return nil, nil, ErrMalformedEncoding
	}
	split := uint64(len(raw)) - bitsSize
	return &bits.Array{Bytes: raw[split:]}, raw[:split], nil
}

// UnmarshalBinaryAdapter splits raw into its streams, runs unmarshalCser and
// then enforces that the input was consumed exactly. Panics raised by the
// readers on truncated or non-canonical input come back as errors.
func UnmarshalBinaryAdapter(raw []byte, unmarshalCser func(*Reader) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && (e == ErrNonCanonicalEncoding || e == ErrTooLargeAlloc) {
				err = e
				return
			}
			err = ErrMalformedEncoding
		}
	}()

	bbits, bbytes, err := binaryToCSER(raw)
	if err != nil {
		return err
	}

	r := &Reader{
		BitsR:  bits.NewReader(bbits),
		BytesR: fast.NewReader(bbytes),
	}
	if err := unmarshalCser(r); err != nil {
		return err
	}

	if r.BitsR.NonReadBytes() > 1 {
		return ErrNonCanonicalEncoding
	}
	if r.BitsR.Read(r.BitsR.NonReadBits()) != 0 {
		return ErrNonCanonicalEncoding
	}
	if !r.BytesR.Empty() {
		return ErrNonCanonicalEncoding
	}
	return nil
}

func tail(b []byte, n int) []byte {
	if len(b) > n {
		return b[len(b)-n:]
	}
	return b
}

func reversed(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}
