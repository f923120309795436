package lzw

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/textlzw/errs"
)

func newTestDictionary(t *testing.T, width int) *Dictionary {
	t.Helper()

	d, err := NewDictionary(width)
	require.NoError(t, err)
	t.Cleanup(d.Release)

	return d
}

func TestNewDictionary_InvalidWidth(t *testing.T) {
	for _, width := range []int{0, 8, 17, 32} {
		t.Run(fmt.Sprintf("width=%d", width), func(t *testing.T) {
			_, err := NewDictionary(width)
			require.ErrorIs(t, err, errs.ErrInvalidCodeWidth)
		})
	}
}

func TestDictionary_PreSeeded(t *testing.T) {
	d := newTestDictionary(t, DefaultCodeWidth)

	require.Equal(t, AlphabetSize, d.Len())
	require.Equal(t, FirstCode, d.NextCode())
	require.False(t, d.Exhausted())

	for b := range AlphabetSize {
		seq := []byte{byte(b)}

		code, ok := d.Lookup(seq)
		require.True(t, ok, "byte %d", b)
		require.Equal(t, Code(b), code)

		require.Equal(t, seq, d.LongestPrefix(seq, 0))
	}
}

func TestDictionary_InsertAndLookup(t *testing.T) {
	d := newTestDictionary(t, DefaultCodeWidth)

	code, ok := d.Insert([]byte("AB"))
	require.True(t, ok)
	require.Equal(t, FirstCode, code)

	code, ok = d.Insert([]byte("ABC"))
	require.True(t, ok)
	require.Equal(t, FirstCode+1, code)

	got, ok := d.Lookup([]byte("AB"))
	require.True(t, ok)
	require.Equal(t, FirstCode, got)

	got, ok = d.Lookup([]byte("ABC"))
	require.True(t, ok)
	require.Equal(t, FirstCode+1, got)

	_, ok = d.Lookup([]byte("ABD"))
	require.False(t, ok)
	_, ok = d.Lookup(nil)
	require.False(t, ok)

	require.Equal(t, AlphabetSize+2, d.Len())
	require.Equal(t, FirstCode+2, d.NextCode())
}

func TestDictionary_InsertRejectsDuplicatesAndEmpty(t *testing.T) {
	d := newTestDictionary(t, DefaultCodeWidth)

	_, ok := d.Insert([]byte("A"))
	require.False(t, ok, "single bytes are pre-seeded")

	_, ok = d.Insert([]byte("AB"))
	require.True(t, ok)

	_, ok = d.Insert([]byte("AB"))
	require.False(t, ok)

	_, ok = d.Insert(nil)
	require.False(t, ok)

	require.Equal(t, FirstCode+1, d.NextCode(), "rejected inserts must not consume codes")
}

func TestDictionary_LongestPrefix(t *testing.T) {
	d := newTestDictionary(t, DefaultCodeWidth)
	for _, s := range []string{"TO", "TOB", "TOBE", "OR", "NOT"} {
		_, ok := d.Insert([]byte(s))
		require.True(t, ok, s)
	}

	input := []byte("TOBEORNOTTOBX")
	tests := []struct {
		offset int
		want   string
	}{
		{0, "TOBE"},
		{1, "O"},
		{4, "OR"},
		{6, "NOT"},
		{9, "TOB"},
		{12, "X"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("offset=%d", tt.offset), func(t *testing.T) {
			require.Equal(t, tt.want, string(d.LongestPrefix(input, tt.offset)))
		})
	}

	require.Nil(t, d.LongestPrefix(input, len(input)))
	require.Nil(t, d.LongestPrefix(input, -1))
	require.Nil(t, d.LongestPrefix(nil, 0))
}

func TestDictionary_LongestPrefixSkipsUnboundIntermediateNodes(t *testing.T) {
	d := newTestDictionary(t, DefaultCodeWidth)

	// "XY" becomes an interior node without a code.
	_, ok := d.Insert([]byte("XYZ"))
	require.True(t, ok)

	_, ok = d.Lookup([]byte("XY"))
	require.False(t, ok)

	require.Equal(t, "XYZ", string(d.LongestPrefix([]byte("XYZ!"), 0)))
	require.Equal(t, "X", string(d.LongestPrefix([]byte("XYQ"), 0)))

	code, ok := d.Insert([]byte("XY"))
	require.True(t, ok)
	require.Equal(t, FirstCode+1, code)
	require.Equal(t, "XY", string(d.LongestPrefix([]byte("XYQ"), 0)))
}

func TestDictionary_TernaryBranches(t *testing.T) {
	d := newTestDictionary(t, DefaultCodeWidth)

	// Second bytes inserted out of order exercise both lo and hi links.
	seconds := []byte("MFTBHRZAQ")
	want := make(map[string]Code)
	for _, b := range seconds {
		seq := []byte{'K', b}
		code, ok := d.Insert(seq)
		require.True(t, ok)
		want[string(seq)] = code
	}

	for seq, code := range want {
		got, ok := d.Lookup([]byte(seq))
		require.True(t, ok, seq)
		require.Equal(t, code, got, seq)
		require.Equal(t, seq, string(d.LongestPrefix([]byte(seq+"~"), 0)))
	}

	_, ok := d.Lookup([]byte("KC"))
	require.False(t, ok)
}

func TestDictionary_Exhaustion(t *testing.T) {
	d := newTestDictionary(t, MinCodeWidth)
	limit := 1 << MinCodeWidth

	assigned := 0
	for i := 0; ; i++ {
		seq := []byte{byte(i >> 8), byte(i), 'x'}
		code, ok := d.Insert(seq)
		if !ok {
			break
		}
		require.Equal(t, FirstCode+Code(assigned), code)
		assigned++
	}

	require.Equal(t, limit-int(FirstCode), assigned)
	require.True(t, d.Exhausted())
	require.Equal(t, limit-1, d.Len())

	_, ok := d.Insert([]byte("never"))
	require.False(t, ok)

	// The frozen dictionary still answers queries.
	code, ok := d.Lookup([]byte{0, 0, 'x'})
	require.True(t, ok)
	require.Equal(t, FirstCode, code)
}

func TestDictionary_MatchAndExtend(t *testing.T) {
	d := newTestDictionary(t, DefaultCodeWidth)
	input := []byte("ABAB")

	length, code, last := d.match(input, 0)
	require.Equal(t, 1, length)
	require.Equal(t, Code('A'), code)

	learned, ok := d.extend(last, input[length])
	require.True(t, ok)
	require.Equal(t, FirstCode, learned)

	length, code, _ = d.match(input, 2)
	require.Equal(t, 2, length)
	require.Equal(t, FirstCode, code)

	length, _, last = d.match(input, 4)
	require.Equal(t, 0, length)
	require.Equal(t, nilNode, last)
}
