package compress

import (
	"fmt"

	"github.com/arloliu/textlzw/errs"
	"github.com/arloliu/textlzw/format"
)

// Compressor compresses a complete buffer.
//
// Implementations return a newly allocated slice owned by the caller and never
// modify the input, except NoOpCompressor which returns its input as-is.
type Compressor interface {
	// Compress compresses data and returns the compressed result.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm.
//
// Example:
//
//	codec, _ := compress.GetCodec(format.CompressionLZW)
//	text, err := codec.Decompress(payload)
//	if err != nil {
//	    return fmt.Errorf("decompression failed: %w", err)
//	}
//
// Thread Safety: all built-in implementations are safe for concurrent use.
type Decompressor interface {
	// Decompress decompresses data previously produced by the matching Compressor.
	//
	// Returns an error if data is corrupted or was produced by another algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes one measured compression round trip.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType `json:"algorithm"`

	// OriginalSize is the size of input data before compression
	OriginalSize int64 `json:"original_size"`

	// CompressedSize is the size of data after compression
	CompressedSize int64 `json:"compressed_size"`

	// CompressionTimeNs is the time taken to compress the data
	CompressionTimeNs int64 `json:"compression_time_ns"`

	// DecompressionTimeNs is the time taken to decompress the data (if measured)
	DecompressionTimeNs int64 `json:"decompression_time_ns"`
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Values less than 1.0 indicate successful compression.
// Returns 0.0 if the original size is zero.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage.
// Negative values mean the output grew.
func (s CompressionStats) SpaceSavings() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec creates a new Codec for the given compression type.
//
// Parameters:
//   - compressionType: any valid format.CompressionType
//   - target: description of the caller's usage, used in error messages
//
// Returns an error wrapping errs.ErrInvalidCompression for unknown types.
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	case format.CompressionLZW:
		return NewLZWCompressor(), nil
	case format.CompressionSnappy:
		return NewSnappyCompressor(), nil
	case format.CompressionBrotli:
		return NewBrotliCompressor(), nil
	case format.CompressionGzip:
		return NewGzipCompressor(), nil
	default:
		return nil, fmt.Errorf("%w: invalid %s compression: %s", errs.ErrInvalidCompression, target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone:   NewNoOpCompressor(),
	format.CompressionZstd:   NewZstdCompressor(),
	format.CompressionS2:     NewS2Compressor(),
	format.CompressionLZ4:    NewLZ4Compressor(),
	format.CompressionLZW:    NewLZWCompressor(),
	format.CompressionSnappy: NewSnappyCompressor(),
	format.CompressionBrotli: NewBrotliCompressor(),
	format.CompressionGzip:   NewGzipCompressor(),
}

// GetCodec retrieves the shared built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: unsupported compression type: %s", errs.ErrInvalidCompression, compressionType)
}
