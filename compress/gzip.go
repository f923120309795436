package compress

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/gzip"
)

var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(nil)
	},
}

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// GzipCompressor produces standard gzip members (RFC 1952) at the default level.
type GzipCompressor struct{}

var _ Codec = (*GzipCompressor)(nil)

// NewGzipCompressor creates a new gzip compressor.
func NewGzipCompressor() GzipCompressor {
	return GzipCompressor{}
}

// Compress compresses the input data using a pooled gzip writer.
func (c GzipCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	w, _ := gzipWriterPool.Get().(*gzip.Writer)
	defer gzipWriterPool.Put(w)
	w.Reset(&buf)

	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("gzip compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("gzip compression failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress decompresses a gzip member using a pooled reader.
func (c GzipCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	r, _ := gzipReaderPool.Get().(*gzip.Reader)
	defer gzipReaderPool.Put(r)

	if err := r.Reset(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("gzip decompression failed: %w", err)
	}

	decompressed, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("gzip decompression failed: %w", err)
	}

	return decompressed, nil
}
