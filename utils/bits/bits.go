// Package bits implements an LSB-first bit stream over a byte slice.
//
// The CSER codec uses it as a side channel for flags and integer length
// prefixes, so that a boolean costs one bit rather than one byte.
package bits

type (
	// Array holds the packed stream.
	Array struct {
		Bytes []byte
	}

	// Writer appends bits to an Array.
	Writer struct {
		*Array
		bitOffset int // next free bit in the last byte, 0 means a new byte is needed
	}

	// Reader consumes bits from an Array.
	Reader struct {
		*Array
		byteOffset int
		bitOffset  int
	}
)

// NewWriter returns a Writer appending to arr.
func NewWriter(arr *Array) *Writer {
	return &Writer{Array: arr}
}

// NewReader returns a Reader positioned at the first bit of arr.
func NewReader(arr *Array) *Reader {
	return &Reader{Array: arr}
}

// Write appends the low n bits of v, least significant bit first.
func (w *Writer) Write(n int, v uint) {
	for n > 0 {
		if w.bitOffset == 0 {
			w.Bytes = append(w.Bytes, 0)
		}
		chunk := 8 - w.bitOffset
		if chunk > n {
			chunk = n
		}
		mask := uint(1)<<uint(chunk) - 1
		w.Bytes[len(w.Bytes)-1] |= byte((v & mask) << uint(w.bitOffset))

		v >>= uint(chunk)
		n -= chunk
		w.bitOffset = (w.bitOffset + chunk) % 8
	}
}

// Read consumes n bits and returns them as an integer. It panics when the
// stream holds fewer than n unread bits.
func (r *Reader) Read(n int) uint {
	var (
		v     uint
		shift uint
	)
	for n > 0 {
		chunk := 8 - r.bitOffset
		if chunk > n {
			chunk = n
		}
		mask := uint(1)<<uint(chunk) - 1
		v |= ((uint(r.Bytes[r.byteOffset]) >> uint(r.bitOffset)) & mask) << shift

		shift += uint(chunk)
		n -= chunk
		r.bitOffset += chunk
		if r.bitOffset == 8 {
			r.bitOffset = 0
			r.byteOffset++
		}
	}
	return v
}

// NonReadBytes counts bytes that are at least partially unread.
func (r *Reader) NonReadBytes() int {
	return len(r.Bytes) - r.byteOffset
}

// NonReadBits counts unread bits, including zero padding in the last byte.
func (r *Reader) NonReadBits() int {
	return r.NonReadBytes()*8 - r.bitOffset
}
