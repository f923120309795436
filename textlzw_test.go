package textlzw

import (
	"strings"
	"testing"

	"github.com/dchest/uniuri"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/textlzw/errs"
	"github.com/arloliu/textlzw/format"
	"github.com/arloliu/textlzw/frame"
	"github.com/arloliu/textlzw/lzw"
)

func TestCompressExpand(t *testing.T) {
	text := []byte(strings.Repeat("TOBEORNOTTOBEORTOBEORNOT", 100))

	stream, err := Compress(text)
	require.NoError(t, err)
	require.Less(t, len(stream), len(text))

	got, err := Expand(stream)
	require.NoError(t, err)
	require.Equal(t, text, got)
}

func TestCompressExpand_Width(t *testing.T) {
	text := []byte(uniuri.NewLen(8000))

	stream, err := Compress(text, lzw.WithCodeWidth(15))
	require.NoError(t, err)

	got, err := Expand(stream, lzw.WithCodeWidth(15))
	require.NoError(t, err)
	require.Equal(t, text, got)

	_, err = Compress(text, lzw.WithCodeWidth(4))
	require.ErrorIs(t, err, errs.ErrInvalidCodeWidth)

	_, err = Expand(stream, lzw.WithCodeWidth(99))
	require.ErrorIs(t, err, errs.ErrInvalidCodeWidth)
}

func TestExpand_Invalid(t *testing.T) {
	_, err := Expand([]byte{0x10})
	require.ErrorIs(t, err, errs.ErrTruncatedStream)

	_, err = Expand([]byte{0x20, 0x00, 0x10, 0x00})
	require.ErrorIs(t, err, errs.ErrMalformedStream)
}

func TestCompressExpandFramed(t *testing.T) {
	text := []byte(strings.Repeat("framed text, ", 500))

	framed, err := CompressFramed(text, frame.WithCompression(format.CompressionS2))
	require.NoError(t, err)

	h, err := frame.ParseHeader(framed)
	require.NoError(t, err)
	require.Equal(t, format.CompressionS2, h.Compression)

	got, err := ExpandFramed(framed)
	require.NoError(t, err)
	require.Equal(t, text, got)

	framed[len(framed)-1] ^= 0xFF
	_, err = ExpandFramed(framed)
	require.Error(t, err)
}
