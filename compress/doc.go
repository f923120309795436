// Package compress provides whole-buffer compression codecs behind a common interface.
//
// The package puts the fixed-width LZW engine next to the general-purpose
// algorithms used for comparison and as a secondary stage in frames.
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Codecs are selected by format.CompressionType:
//
//	codec, err := compress.GetCodec(format.CompressionLZW)
//	if err != nil {
//	    return err
//	}
//	stream, err := codec.Compress(text)
//
// GetCodec returns shared instances; CreateCodec returns a fresh one.
//
// # Supported Algorithms
//
//	Type               Codec               Library
//	-----------------  ------------------  -----------------------------------
//	CompressionNone    NoOpCompressor      none
//	CompressionZstd    ZstdCompressor      klauspost/compress/zstd (or gozstd)
//	CompressionS2      S2Compressor        klauspost/compress/s2
//	CompressionLZ4     LZ4Compressor       pierrec/lz4/v4
//	CompressionLZW     LZWCompressor       this module's lzw package
//	CompressionSnappy  SnappyCompressor    golang/snappy
//	CompressionBrotli  BrotliCompressor    andybalholm/brotli
//	CompressionGzip    GzipCompressor      klauspost/compress/gzip
//
// **LZW** emits 12-bit codes by default. It needs no tuning and no header, and
// on English text it usually lands between LZ4 and gzip in ratio.
// NewLZWCompressorWidth selects another width; both ends must agree on it.
//
// **Zstd** builds on pure Go by default. Building with `-tags gozstd` and cgo
// enabled switches to the libzstd bindings.
//
// Empty input compresses to nil for every codec except LZW, which always
// emits at least the end-of-stream code.
//
// # Thread Safety
//
// All codec implementations are safe for concurrent use. Encoders and
// decoders that carry state (zstd, lz4, brotli, gzip) are pooled internally.
//
// # Examples
//
// See examples/compare_demo for a side-by-side comparison on generated text.
package compress
