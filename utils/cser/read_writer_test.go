package cser

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rony4d/go-kred/utils/bits"
	"github.com/rony4d/go-kred/utils/fast"
)

// newReaderFromWriter connects a Reader directly to a Writer's streams,
// without the framing done by MarshalBinaryAdapter.
func newReaderFromWriter(w *Writer) *Reader {
	return &Reader{
		BitsR:  bits.NewReader(w.BitsW.Array),
		BytesR: fast.NewReader(w.BytesW.Bytes()),
	}
}

func TestIntegers_RoundTrip(t *testing.T) {
	w := NewWriter()

	u64Vals := []uint64{0, 1, 0xFF, 0x100, 0xFFFF, 0xFFFFFFFF, math.MaxUint64}
	i64Vals := []int64{0, 1, -1, math.MinInt64, math.MaxInt64}
	u56Vals := []uint64{0, 1, 1<<56 - 1}

	for _, v := range u64Vals {
		w.U64(v)
	}
	for _, v := range i64Vals {
		w.I64(v)
	}
	for _, v := range u56Vals {
		w.U56(v)
	}

	r := newReaderFromWriter(w)
	for i, want := range u64Vals {
		assert.Equal(t, want, r.U64(), "U64 mismatch at index %d", i)
	}
	for i, want := range i64Vals {
		assert.Equal(t, want, r.I64(), "I64 mismatch at index %d", i)
	}
	for i, want := range u56Vals {
		assert.Equal(t, want, r.U56(), "U56 mismatch at index %d", i)
	}
	assert.True(t, r.BytesR.Empty())
}

func TestIntegers_MinimalSize(t *testing.T) {
	tests := []struct {
		v     uint64
		bytes int
	}{
		{0, 1},
		{0xFF, 1},
		{0x100, 2},
		{math.MaxUint64, 8},
	}
	for _, test := range tests {
		w := NewWriter()
		w.U64(test.v)
		require.Len(t, w.BytesW.Bytes(), test.bytes, "U64(%d)", test.v)
	}

	w := NewWriter()
	w.U56(0)
	require.Empty(t, w.BytesW.Bytes(), "U56(0) needs no payload")
}

func TestU56_Overflow(t *testing.T) {
	require.Panics(t, func() { NewWriter().U56(1 << 56) })
}

func TestPaddedInteger_Rejected(t *testing.T) {
	// Two bytes for a value that fits in one.
	w := NewWriter()
	w.BitsW.Write(3, 1)
	w.BytesW.Write([]byte{0x05, 0x00})

	r := newReaderFromWriter(w)
	require.PanicsWithValue(t, ErrNonCanonicalEncoding, func() { r.U64() })
}

func TestNegativeZero_Rejected(t *testing.T) {
	w := NewWriter()
	w.Bool(true)
	w.U64(0)

	r := newReaderFromWriter(w)
	require.PanicsWithValue(t, ErrNonCanonicalEncoding, func() { r.I64() })
}

func TestBytesAndStrings_RoundTrip(t *testing.T) {
	w := NewWriter()
	w.Bool(true)
	w.Bool(false)
	w.FixedBytes([]byte{1, 2, 3})
	w.SliceBytes(nil)
	w.SliceBytes([]byte("payload"))
	w.String("")
	w.String("KredChain Genesis Block - 2025: Participation Begins")

	r := newReaderFromWriter(w)
	require.True(t, r.Bool())
	require.False(t, r.Bool())

	fixed := make([]byte, 3)
	r.FixedBytes(fixed)
	require.Equal(t, []byte{1, 2, 3}, fixed)

	require.Empty(t, r.SliceBytes(MaxAlloc))
	require.Equal(t, []byte("payload"), r.SliceBytes(MaxAlloc))
	require.Equal(t, "", r.String(MaxAlloc))
	require.Equal(t, "KredChain Genesis Block - 2025: Participation Begins", r.String(MaxAlloc))
}

func TestSliceBytes_Limits(t *testing.T) {
	w := NewWriter()
	w.String("abcdef")

	r := newReaderFromWriter(w)
	require.PanicsWithValue(t, ErrTooLargeAlloc, func() { r.String(5) })

	// Declared length beyond the available payload.
	w = NewWriter()
	w.U56(100)
	w.FixedBytes([]byte("short"))
	r = newReaderFromWriter(w)
	require.PanicsWithValue(t, ErrMalformedEncoding, func() { r.SliceBytes(MaxAlloc) })
}

func TestCompactVarint(t *testing.T) {
	for _, v := range []uint64{0, 1, 127, 128, 1 << 20, math.MaxUint64} {
		w := fast.NewWriter(nil)
		writeUint64Compact(w, v)
		require.Equal(t, v, readUint64Compact(fast.NewReader(w.Bytes())), "value %d", v)
	}

	// A trailing empty group is a padded encoding.
	require.PanicsWithValue(t, ErrNonCanonicalEncoding, func() {
		readUint64Compact(fast.NewReader([]byte{0x01, 0x80}))
	})
	// Ten groups without a stop bit overflow 64 bits.
	require.PanicsWithValue(t, ErrMalformedEncoding, func() {
		readUint64Compact(fast.NewReader(make([]byte, 10)))
	})
}
