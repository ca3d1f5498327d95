package cser

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

type sample struct {
	U    uint64
	I    int64
	Flag bool
	Name string
	Raw  []byte
}

func (s *sample) marshal(w *Writer) error {
	w.U64(s.U)
	w.I64(s.I)
	w.Bool(s.Flag)
	w.String(s.Name)
	w.SliceBytes(s.Raw)
	return nil
}

func (s *sample) unmarshal(r *Reader) error {
	s.U = r.U64()
	s.I = r.I64()
	s.Flag = r.Bool()
	s.Name = r.String(MaxAlloc)
	s.Raw = r.SliceBytes(MaxAlloc)
	return nil
}

func TestRoundTrip(t *testing.T) {
	tests := []sample{
		{Raw: []byte{}},
		{U: 1, I: -1, Flag: true, Name: "a", Raw: []byte{0}},
		{U: math.MaxUint64, I: math.MinInt64 + 1, Name: "KRDx00ff", Raw: []byte{1, 2, 3}},
		{U: 256, I: math.MaxInt64, Flag: true, Name: "0000abc", Raw: make([]byte, 300)},
	}

	for _, want := range tests {
		require := require.New(t)

		raw, err := MarshalBinaryAdapter(want.marshal)
		require.NoError(err)

		var got sample
		require.NoError(UnmarshalBinaryAdapter(raw, got.unmarshal))
		require.Equal(want, got)

		// Same value, same bytes.
		again, err := MarshalBinaryAdapter(got.marshal)
		require.NoError(err)
		require.Equal(raw, again)
	}
}

func TestEmpty(t *testing.T) {
	raw, err := MarshalBinaryAdapter(func(*Writer) error { return nil })
	require.NoError(t, err)
	require.NoError(t, UnmarshalBinaryAdapter(raw, func(*Reader) error { return nil }))
}

func TestMarshalError(t *testing.T) {
	errExp := errors.New("custom")
	_, err := MarshalBinaryAdapter(func(w *Writer) error {
		w.Bool(true)
		return errExp
	})
	require.Equal(t, errExp, err)
}

func TestMalformed(t *testing.T) {
	raw, err := MarshalBinaryAdapter((&sample{U: 70000, Name: "block", Raw: []byte{1}}).marshal)
	require.NoError(t, err)

	t.Run("nil input", func(t *testing.T) {
		var s sample
		require.Equal(t, ErrMalformedEncoding, UnmarshalBinaryAdapter(nil, s.unmarshal))
	})

	t.Run("truncated", func(t *testing.T) {
		for i := 1; i < len(raw); i++ {
			var s sample
			require.Error(t, UnmarshalBinaryAdapter(raw[i:], s.unmarshal), "cut %d", i)
		}
	})

	t.Run("leftover bytes", func(t *testing.T) {
		extended, err := MarshalBinaryAdapter(func(w *Writer) error {
			w.U64(1)
			w.U64(2)
			return nil
		})
		require.NoError(t, err)
		err = UnmarshalBinaryAdapter(extended, func(r *Reader) error {
			r.U64()
			return nil
		})
		require.Equal(t, ErrNonCanonicalEncoding, err)
	})

	t.Run("oversized slice", func(t *testing.T) {
		big, err := MarshalBinaryAdapter(func(w *Writer) error {
			w.SliceBytes(make([]byte, 10))
			return nil
		})
		require.NoError(t, err)
		err = UnmarshalBinaryAdapter(big, func(r *Reader) error {
			r.SliceBytes(5)
			return nil
		})
		require.Equal(t, ErrTooLargeAlloc, err)
	})

	t.Run("reader error", func(t *testing.T) {
		errExp := errors.New("custom")
		err := UnmarshalBinaryAdapter(raw, func(*Reader) error { return errExp })
		require.Equal(t, errExp, err)
	})
}
