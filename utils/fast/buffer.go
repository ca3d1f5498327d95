// Package fast provides append-only byte writers and cursor-based byte readers
// for linear serialization of trusted data.
//
// Neither type reports errors: a Reader asked for more bytes than remain
// panics with a slice bounds error. Callers that decode untrusted input
// (see utils/cser) recover that panic and map it to a decoding error.
package fast

// Writer accumulates bytes into a growing slice.
type Writer struct {
	buf []byte
}

// Reader consumes bytes from a slice, front to back.
type Reader struct {
	buf    []byte
	offset int
}

// NewWriter returns a Writer appending to bb. Pass make([]byte, 0, n) to
// pre-size the buffer.
func NewWriter(bb []byte) *Writer {
	return &Writer{buf: bb}
}

// NewReader returns a Reader positioned at the start of bb.
func NewReader(bb []byte) *Reader {
	return &Reader{buf: bb}
}

// WriteByte appends one byte.
func (w *Writer) WriteByte(v byte) {
	w.buf = append(w.buf, v)
}

// Write appends v.
func (w *Writer) Write(v []byte) {
	w.buf = append(w.buf, v...)
}

// Bytes returns everything written so far.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Read returns the next n bytes and advances the cursor. The result aliases
// the underlying buffer.
func (r *Reader) Read(n int) []byte {
	res := r.buf[r.offset : r.offset+n]
	r.offset += n
	return res
}

// ReadByte returns the next byte and advances the cursor.
func (r *Reader) ReadByte() byte {
	res := r.buf[r.offset]
	r.offset++
	return res
}

// Position is the number of bytes consumed.
func (r *Reader) Position() int {
	return r.offset
}

// Remaining is the number of bytes not yet consumed.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.offset
}

// Empty reports whether every byte has been consumed.
func (r *Reader) Empty() bool {
	return r.offset == len(r.buf)
}
