package compress

// ZstdCompressor provides Zstandard compression.
//
// Two implementations exist behind build tags:
//   - default: pure Go github.com/klauspost/compress/zstd with pooled encoders and decoders
//   - `-tags gozstd` with cgo enabled: github.com/valyala/gozstd bindings to libzstd
//
// Both produce standard zstd frames and can decode each other's output.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
