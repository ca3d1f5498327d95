package cser

import (
	"errors"

	"github.com/rony4d/go-kred/utils/bits"
	"github.com/rony4d/go-kred/utils/fast"
)

var (
	ErrNonCanonicalEncoding = errors.New("non canonical encoding")
	ErrMalformedEncoding    = errors.New("malformed encoding")
	ErrTooLargeAlloc        = errors.New("too large allocation")
)

// MaxAlloc bounds any single byte slice or string read from untrusted input.
const MaxAlloc = 1024 * 1024

// Writer splits output into a bit stream (flags, length prefixes) and a byte
// stream (payload).
type Writer struct {
	BitsW  *bits.Writer
	BytesW *fast.Writer
}

// Reader is the decoding counterpart of Writer.
type Reader struct {
	BitsR  *bits.Reader
	BytesR *fast.Reader
}

func NewWriter() *Writer {
	return &Writer{
		BitsW:  bits.NewWriter(&bits.Array{Bytes: make([]byte, 0, 32)}),
		BytesW: fast.NewWriter(make([]byte, 0, 256)),
	}
}

// writeUint64Compact writes v as a little-endian base-128 varint in which a
// set high bit marks the final byte.
func writeUint64Compact(w *fast.Writer, v uint64) {
	for {
		chunk := byte(v & 0x7f)
		v >>= 7
		if v == 0 {
			w.WriteByte(chunk | 0x80)
			return
		}
		w.WriteByte(chunk)
	}
}

func readUint64Compact(r *fast.Reader) uint64 {
	var v uint64
	for i := uint(0); ; i++ {
		chunk := r.ReadByte()
		word := uint64(chunk & 0x7f)
		stop := chunk&0x80 != 0
		if i > 0 && stop && word == 0 {
			panic(ErrNonCanonicalEncoding)
		}
		v |= word << (7 * i)
		if stop {
			return v
		}
		if i == 9 {
			panic(ErrMalformedEncoding)
		}
	}
}

// writeUint64BitCompact writes the minimal little-endian form of v using at
// least minSize bytes and returns the size used.
func writeUint64BitCompact(w *fast.Writer, v uint64, minSize int) (size int) {
	for size < minSize || v != 0 {
		w.WriteByte(byte(v))
		size++
		v >>= 8
	}
	return size
}

func readUint64BitCompact(r *fast.Reader, size int) uint64 {
	buf := r.Read(size)
	var v uint64
	for i, b := range buf {
		v |= uint64(b) << (8 * uint(i))
	}
	if size > 1 && buf[size-1] == 0 {
		panic(ErrNonCanonicalEncoding)
	}
	return v
}

// writeSized stores the value bytes in the byte stream and (size - minSize)
// in bitsForSize bits of the bit stream.
func (w *Writer) writeSized(minSize, bitsForSize int, v uint64) {
	size := writeUint64BitCompact(w.BytesW, v, minSize)
	w.BitsW.Write(bitsForSize, uint(size-minSize))
}

func (r *Reader) readSized(minSize, bitsForSize int) uint64 {
	size := int(r.BitsR.Read(bitsForSize)) + minSize
	return readUint64BitCompact(r.BytesR, size)
}

// U64 takes 1..8 bytes plus a 3-bit size.
func (w *Writer) U64(v uint64) {
	w.writeSized(1, 3, v)
}

func (r *Reader) U64() uint64 {
	return r.readSized(1, 3)
}

// I64 writes a sign bit followed by the magnitude.
func (w *Writer) I64(v int64) {
	w.Bool(v < 0)
	if v < 0 {
		w.U64(uint64(-v))
		return
	}
	w.U64(uint64(v))
}

func (r *Reader) I64() int64 {
	neg := r.Bool()
	abs := r.U64()
	if neg && abs == 0 {
		panic(ErrNonCanonicalEncoding)
	}
	if neg {
		return -int64(abs)
	}
	return int64(abs)
}

// U56 is used for lengths. Zero takes no payload bytes.
func (w *Writer) U56(v uint64) {
	const max = 1<<(8*7) - 1
	if v > max {
		panic("cser: value exceeds 56 bits")
	}
	w.writeSized(0, 3, v)
}

func (r *Reader) U56() uint64 {
	return r.readSized(0, 3)
}

func (w *Writer) Bool(v bool) {
	var b uint
	if v {
		b = 1
	}
	w.BitsW.Write(1, b)
}

func (r *Reader) Bool() bool {
	return r.BitsR.Read(1) != 0
}

func (w *Writer) FixedBytes(v []byte) {
	w.BytesW.Write(v)
}

func (r *Reader) FixedBytes(v []byte) {
	copy(v, r.BytesR.Read(len(v)))
}

// SliceBytes writes a length-prefixed byte slice.
func (w *Writer) SliceBytes(v []byte) {
	w.U56(uint64(len(v)))
	w.FixedBytes(v)
}

func (r *Reader) SliceBytes(maxLen int) []byte {
	size := r.U56()
	if size > uint64(maxLen) {
		panic(ErrTooLargeAlloc)
	}
	if size > uint64(r.BytesR.Remaining()) {
		panic(ErrMalformedEncoding)
	}
	buf := make([]byte, size)
	r.FixedBytes(buf)
	return buf
}

// String writes a length-prefixed UTF-8 string.
func (w *Writer) String(s string) {
	w.SliceBytes([]byte(s))
}

func (r *Reader) String(maxLen int) string {
	return string(r.SliceBytes(maxLen))
}
