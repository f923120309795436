package lzw

import (
	"bytes"
	"fmt"
	"io"

	"github.com/arloliu/textlzw/errs"
	"github.com/arloliu/textlzw/internal/bitio"
	"github.com/arloliu/textlzw/internal/pool"
)

// Decoder expands fixed-width LZW code streams produced by an Encoder of the same width.
//
// Like Encoder, a Decoder only carries configuration and may be shared.
type Decoder struct {
	cfg config
}

// NewDecoder creates a Decoder.
//
// Returns an error wrapping errs.ErrInvalidCodeWidth for an out-of-range width.
func NewDecoder(opts ...Option) (*Decoder, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return &Decoder{cfg: cfg}, nil
}

// CodeWidth returns the configured code width in bits.
func (d *Decoder) CodeWidth() int {
	return d.cfg.width
}

// Expand decodes a code stream and returns the original bytes.
//
// Returns:
//   - errs.ErrMalformedStream if a code could not have been learned at its position
//   - errs.ErrTruncatedStream if the stream ends before the end-of-stream code
func (d *Decoder) Expand(stream []byte) ([]byte, error) {
	out, _, err := d.ExpandWithStats(stream)
	return out, err
}

// ExpandWithStats is Expand plus the run statistics.
func (d *Decoder) ExpandWithStats(stream []byte) ([]byte, Stats, error) {
	buf := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(buf)

	stats, err := d.decode(stream, buf)
	if err != nil {
		return nil, stats, err
	}

	return bytes.Clone(buf.Bytes()), stats, nil
}

// ExpandTo decodes a code stream and writes the original bytes to dst.
// Nothing is written to dst if the stream is invalid.
func (d *Decoder) ExpandTo(dst io.Writer, stream []byte) (Stats, error) {
	buf := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(buf)

	stats, err := d.decode(stream, buf)
	if err != nil {
		return stats, err
	}

	if _, err := buf.WriteTo(dst); err != nil {
		return stats, fmt.Errorf("failed to write expanded data: %w", err)
	}

	return stats, nil
}

// decode mirrors Encoder.encode: after every code but the first it learns the
// previous sequence extended by the first byte of the current one.
func (d *Decoder) decode(stream []byte, out *pool.ByteBuffer) (Stats, error) {
	width := d.cfg.width
	stats := Stats{CodeWidth: width, InputBytes: len(stream)}

	table, err := NewCodeTable(width)
	if err != nil {
		return stats, err
	}
	defer table.Release()

	r := bitio.NewReader(stream)
	readCode := func() (Code, error) {
		v, ok := r.ReadBits(width)
		if !ok {
			return 0, fmt.Errorf("%w: no end-of-stream code after %d codes", errs.ErrTruncatedStream, stats.CodesEmitted)
		}

		return Code(v), nil //nolint: gosec
	}

	first, err := readCode()
	if err != nil {
		return stats, err
	}
	if first == EOS {
		return stats, nil
	}

	current, ok := table.Get(first)
	if !ok {
		return stats, fmt.Errorf("%w: first code %d is not a single byte", errs.ErrMalformedStream, first)
	}
	stats.CodesEmitted++

	for {
		out.MustWrite(current)

		code, err := readCode()
		if err != nil {
			return stats, err
		}
		if code == EOS {
			break
		}

		var next []byte
		learned := false

		seq, res := table.Resolve(code)
		switch res {
		case Found:
			next = seq
		case PendingSelfReference:
			// The sequence being defined is current + current[0], which is
			// exactly what this step would learn anyway.
			newCode, stored, _ := table.appendExtended(current, current[0])
			d.learned(&stats, newCode, stored)
			next = stored
			learned = true
		case Unknown:
			return stats, fmt.Errorf("%w: code %d at bit offset %d, expected below %d",
				errs.ErrMalformedStream, code, r.Offset()-width, table.NextCode())
		}

		if !learned {
			if newCode, stored, ok := table.appendExtended(current, next[0]); ok {
				d.learned(&stats, newCode, stored)
			}
		}

		stats.CodesEmitted++
		current = next
	}

	stats.Frozen = table.Exhausted()
	stats.OutputBytes = out.Len()

	return stats, nil
}

func (d *Decoder) learned(stats *Stats, code Code, seq []byte) {
	stats.CodesAssigned++
	if d.cfg.hook != nil {
		d.cfg.hook(code, seq)
	}
}

// Expand expands a stream produced with the default 12-bit code width.
func Expand(stream []byte) ([]byte, error) {
	return defaultDecoder.Expand(stream)
}

var defaultDecoder = &Decoder{cfg: defaultConfig()}
