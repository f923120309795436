package frame

import (
	"fmt"
	"math"

	"github.com/arloliu/textlzw/compress"
	"github.com/arloliu/textlzw/errs"
	"github.com/arloliu/textlzw/internal/hash"
	"github.com/arloliu/textlzw/internal/options"
	"github.com/arloliu/textlzw/internal/pool"
	"github.com/arloliu/textlzw/lzw"
)

// Encode compresses data with LZW, applies the secondary compression and
// prepends a Header.
//
// Example:
//
//	framed, err := frame.Encode(text,
//	    frame.WithCompression(format.CompressionS2),
//	    frame.WithCodeWidth(14),
//	)
func Encode(data []byte, opts ...Option) ([]byte, error) {
	out, _, err := EncodeWithStats(data, opts...)
	return out, err
}

// EncodeWithStats is Encode plus the statistics of the LZW stage.
func EncodeWithStats(data []byte, opts ...Option) ([]byte, lzw.Stats, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, lzw.Stats{}, err
	}

	enc, err := lzw.NewEncoder(lzw.WithCodeWidth(cfg.codeWidth))
	if err != nil {
		return nil, lzw.Stats{}, err
	}
	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, lzw.Stats{}, err
	}

	stream, stats, err := enc.CompressWithStats(data)
	if err != nil {
		return nil, stats, err
	}

	payload, err := codec.Compress(stream)
	if err != nil {
		return nil, stats, fmt.Errorf("failed to apply %s compression: %w", cfg.compression, err)
	}
	if uint64(len(payload)) > math.MaxUint32 {
		return nil, stats, fmt.Errorf("%w: %d bytes", errs.ErrInvalidPayloadSize, len(payload))
	}

	h := Header{
		Flag:         NewFlag(),
		Version:      Version,
		CodeWidth:    uint8(cfg.codeWidth), //nolint: gosec
		Compression:  cfg.compression,
		OriginalSize: uint64(len(data)),
		Checksum:     hash.Checksum(data),
		PayloadSize:  uint32(len(payload)), //nolint: gosec
	}
	if cfg.bigEndian {
		h.Flag.WithBigEndian()
	}

	buf := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(buf)

	buf.MustWrite(h.Bytes())
	buf.MustWrite(payload)
	stats.OutputBytes = buf.Len()

	return append([]byte(nil), buf.Bytes()...), stats, nil
}

// Decode verifies a frame and returns the original data.
//
// Returns header errors from ParseHeader, errs.ErrInvalidPayloadSize if the
// payload length disagrees with the header, LZW stream errors, and
// errs.ErrSizeMismatch or errs.ErrChecksumMismatch if the decoded data does
// not match the header.
func Decode(data []byte) ([]byte, error) {
	out, _, err := DecodeWithStats(data)
	return out, err
}

// DecodeWithStats is Decode plus the statistics of the LZW stage.
func DecodeWithStats(data []byte) ([]byte, lzw.Stats, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, lzw.Stats{}, err
	}

	payload := data[HeaderSize:]
	if uint64(len(payload)) != uint64(h.PayloadSize) {
		return nil, lzw.Stats{}, fmt.Errorf("%w: header says %d bytes, frame has %d",
			errs.ErrInvalidPayloadSize, h.PayloadSize, len(payload))
	}

	codec, err := compress.GetCodec(h.Compression)
	if err != nil {
		return nil, lzw.Stats{}, err
	}
	stream, err := codec.Decompress(payload)
	if err != nil {
		return nil, lzw.Stats{}, fmt.Errorf("failed to undo %s compression: %w", h.Compression, err)
	}

	dec, err := lzw.NewDecoder(lzw.WithCodeWidth(int(h.CodeWidth)))
	if err != nil {
		return nil, lzw.Stats{}, err
	}
	out, stats, err := dec.ExpandWithStats(stream)
	if err != nil {
		return nil, stats, err
	}
	stats.InputBytes = len(data)

	if uint64(len(out)) != h.OriginalSize {
		return nil, stats, fmt.Errorf("%w: header says %d bytes, decoded %d",
			errs.ErrSizeMismatch, h.OriginalSize, len(out))
	}
	if sum := hash.Checksum(out); sum != h.Checksum {
		return nil, stats, fmt.Errorf("%w: header 0x%016x, decoded 0x%016x",
			errs.ErrChecksumMismatch, h.Checksum, sum)
	}

	return out, stats, nil
}
