package compress

import (
	"fmt"

	"github.com/golang/snappy"
)

// SnappyCompressor uses the Snappy block format.
//
// Snappy blocks record their decoded length, so Decompress allocates the
// output exactly once.
type SnappyCompressor struct{}

var _ Codec = (*SnappyCompressor)(nil)

// NewSnappyCompressor creates a new Snappy compressor.
func NewSnappyCompressor() SnappyCompressor {
	return SnappyCompressor{}
}

// Compress compresses the input data using Snappy block compression.
func (c SnappyCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return snappy.Encode(nil, data), nil
}

// Decompress decompresses a Snappy block.
func (c SnappyCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decompressed, err := snappy.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("snappy decompression failed: %w", err)
	}

	return decompressed, nil
}
