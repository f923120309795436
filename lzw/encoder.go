package lzw

import (
	"bytes"
	"fmt"
	"io"

	"github.com/arloliu/textlzw/internal/bitio"
)

// Encoder compresses byte slices into fixed-width LZW code streams.
//
// An Encoder only carries configuration. Every call builds and discards its
// own Dictionary, so one Encoder may be shared by several goroutines as long
// as its AssignHook, if any, tolerates concurrent calls.
type Encoder struct {
	cfg config
}

// NewEncoder creates an Encoder.
//
// Returns an error wrapping errs.ErrInvalidCodeWidth for an out-of-range width.
//
// Example:
//
//	enc, err := lzw.NewEncoder(lzw.WithCodeWidth(14))
//	if err != nil {
//	    return err
//	}
//	stream, err := enc.Compress(text)
func NewEncoder(opts ...Option) (*Encoder, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return &Encoder{cfg: cfg}, nil
}

// CodeWidth returns the configured code width in bits.
func (e *Encoder) CodeWidth() int {
	return e.cfg.width
}

// Compress returns the code stream for data. The result is owned by the caller.
func (e *Encoder) Compress(data []byte) ([]byte, error) {
	out, _, err := e.CompressWithStats(data)
	return out, err
}

// CompressWithStats is Compress plus the run statistics.
func (e *Encoder) CompressWithStats(data []byte) ([]byte, Stats, error) {
	w := bitio.NewWriter()
	defer w.Release()

	stats, err := e.encode(data, w)
	if err != nil {
		return nil, stats, err
	}

	return bytes.Clone(w.Bytes()), stats, nil
}

// CompressTo writes the code stream for data to dst.
func (e *Encoder) CompressTo(dst io.Writer, data []byte) (Stats, error) {
	w := bitio.NewWriter()
	defer w.Release()

	stats, err := e.encode(data, w)
	if err != nil {
		return stats, err
	}

	if _, err := w.WriteTo(dst); err != nil {
		return stats, fmt.Errorf("failed to write code stream: %w", err)
	}

	return stats, nil
}

// encode runs the LZW scan over data and closes w.
//
// Each step emits the code of the longest known prefix at i and, unless the
// prefix reaches the end of data, learns that prefix plus the following byte.
func (e *Encoder) encode(data []byte, w *bitio.Writer) (Stats, error) {
	width := e.cfg.width
	stats := Stats{CodeWidth: width, InputBytes: len(data)}

	dict, err := NewDictionary(width)
	if err != nil {
		return stats, err
	}
	defer dict.Release()

	for i := 0; i < len(data); {
		length, code, last := dict.match(data, i)
		w.WriteBits(uint64(code), width)
		stats.CodesEmitted++

		next := i + length
		if next < len(data) {
			if learned, ok := dict.extend(last, data[next]); ok {
				stats.CodesAssigned++
				if e.cfg.hook != nil {
					e.cfg.hook(learned, data[i:next+1])
				}
			}
		}
		i = next
	}

	w.WriteBits(uint64(EOS), width)
	w.Close()

	stats.Frozen = dict.Exhausted()
	stats.OutputBytes = len(w.Bytes())

	return stats, nil
}

// Compress compresses data with the default 12-bit code width.
func Compress(data []byte) ([]byte, error) {
	return defaultEncoder.Compress(data)
}

var defaultEncoder = &Encoder{cfg: defaultConfig()}
