package compress

import (
	"github.com/arloliu/textlzw/lzw"
)

// LZWCompressor adapts the fixed-width LZW engine to the Codec interface.
//
// The code width is not stored in the output, so data compressed with one
// width must be decompressed by an LZWCompressor of the same width.
type LZWCompressor struct {
	enc *lzw.Encoder
	dec *lzw.Decoder
}

var _ Codec = (*LZWCompressor)(nil)

// NewLZWCompressor creates an LZW codec with the default 12-bit code width.
func NewLZWCompressor() LZWCompressor {
	c, _ := NewLZWCompressorWidth(lzw.DefaultCodeWidth)
	return c
}

// NewLZWCompressorWidth creates an LZW codec with the given code width.
//
// Returns an error wrapping errs.ErrInvalidCodeWidth if bits is outside [9, 16].
func NewLZWCompressorWidth(bits int) (LZWCompressor, error) {
	enc, err := lzw.NewEncoder(lzw.WithCodeWidth(bits))
	if err != nil {
		return LZWCompressor{}, err
	}
	dec, err := lzw.NewDecoder(lzw.WithCodeWidth(bits))
	if err != nil {
		return LZWCompressor{}, err
	}

	return LZWCompressor{enc: enc, dec: dec}, nil
}

// CodeWidth returns the code width in bits.
func (c LZWCompressor) CodeWidth() int {
	return c.enc.CodeWidth()
}

// Compress returns the LZW code stream for data.
//
// Unlike the other codecs, empty input produces a non-empty result: the
// two-byte stream holding only the end-of-stream code.
func (c LZWCompressor) Compress(data []byte) ([]byte, error) {
	return c.enc.Compress(data)
}

// Decompress expands an LZW code stream.
//
// Returns errors wrapping errs.ErrMalformedStream or errs.ErrTruncatedStream
// for invalid input.
func (c LZWCompressor) Decompress(data []byte) ([]byte, error) {
	return c.dec.Expand(data)
}
