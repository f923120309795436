// Package textlzw is a fixed-width LZW compressor for text.
//
// Compression walks the input with a prefix dictionary, emitting the code of
// the longest known sequence and learning that sequence extended by the next
// byte. Expansion rebuilds the same dictionary from the codes alone, so the
// stream carries no header and no dictionary.
//
// # Core Features
//
//   - 12-bit codes by default, configurable from 9 to 16 bits
//   - Explicit end-of-stream code (256) and zero-padded final byte
//   - Dictionary freezes once the code space is exhausted
//   - Optional checksummed frame with secondary compression (Zstd, S2, LZ4, ...)
//
// # Basic Usage
//
//	stream, err := textlzw.Compress([]byte("TOBEORNOTTOBEORTOBEORNOT"))
//	if err != nil {
//	    return err
//	}
//
//	text, err := textlzw.Expand(stream)
//
// Framed data records the code width and verifies itself on decode:
//
//	framed, _ := textlzw.CompressFramed(text, frame.WithCompression(format.CompressionS2))
//	text, err := textlzw.ExpandFramed(framed)
//
// # Package Structure
//
// This package wraps the most common calls. For more control use:
//
//   - lzw: Encoder, Decoder, Dictionary and CodeTable
//   - frame: the self-describing container
//   - compress: LZW and the other codecs behind one interface
//   - cmd/textlzw: the command-line tool
package textlzw

import (
	"github.com/arloliu/textlzw/frame"
	"github.com/arloliu/textlzw/lzw"
)

// Compress compresses data into a raw LZW code stream.
//
// Parameters:
//   - data: input bytes, may be empty
//   - opts: lzw options such as lzw.WithCodeWidth
//
// Returns an error only for invalid options.
func Compress(data []byte, opts ...lzw.Option) ([]byte, error) {
	enc, err := lzw.NewEncoder(opts...)
	if err != nil {
		return nil, err
	}

	return enc.Compress(data)
}

// Expand expands a raw LZW code stream. The options must match those used to compress.
//
// Returns errors wrapping errs.ErrMalformedStream or errs.ErrTruncatedStream for invalid streams.
func Expand(stream []byte, opts ...lzw.Option) ([]byte, error) {
	dec, err := lzw.NewDecoder(opts...)
	if err != nil {
		return nil, err
	}

	return dec.Expand(stream)
}

// CompressFramed compresses data and wraps the code stream in a frame.
func CompressFramed(data []byte, opts ...frame.Option) ([]byte, error) {
	return frame.Encode(data, opts...)
}

// ExpandFramed verifies a frame and returns the original data.
func ExpandFramed(data []byte) ([]byte, error) {
	return frame.Decode(data)
}
