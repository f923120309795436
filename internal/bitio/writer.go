// Package bitio implements the MSB-first bit channels that carry fixed-width codes.
//
// Writer packs values of 1-64 bits densely into bytes, most significant bit
// first, and zero-pads the final byte on Close. Reader is its inverse.
package bitio

import (
	"encoding/binary"
	"io"

	"github.com/arloliu/textlzw/internal/pool"
)

// Writer accumulates bits in a 64-bit register and spills full registers into a pooled byte buffer.
type Writer struct {
	bitBuf   uint64 // pending bits, right-aligned
	bitCount int    // number of valid bits in bitBuf
	bitLen   int    // total bits written since creation
	closed   bool

	buf *pool.ByteBuffer
}

// NewWriter creates a Writer backed by a buffer from the stream pool.
// Call Release when the encoded bytes are no longer needed.
func NewWriter() *Writer {
	return &Writer{buf: pool.GetStreamBuffer()}
}

// WriteBits writes the numBits low bits of value, most significant bit first.
//
// Parameters:
//   - value: the bits to write (only the least significant numBits are used)
//   - numBits: number of bits to write (0-64)
func (w *Writer) WriteBits(value uint64, numBits int) {
	if w.closed {
		panic("bitio: write after Close")
	}
	if numBits == 0 {
		return
	}

	if numBits < 64 {
		value &= (1 << numBits) - 1
	}
	w.bitLen += numBits

	available := 64 - w.bitCount
	if numBits < available {
		w.bitBuf = (w.bitBuf << numBits) | value
		w.bitCount += numBits

		return
	}

	// Fill the register, spill it, then keep the low bits that did not fit.
	rest := numBits - available
	if available == 64 {
		w.bitBuf = value >> rest
	} else {
		w.bitBuf = (w.bitBuf << available) | (value >> rest)
	}
	w.bitCount = 64
	w.flush()

	if rest > 0 {
		w.bitBuf = value & ((1 << rest) - 1)
		w.bitCount = rest
	}
}

// Close pads the final partial byte with zero bits and flushes it. Close is idempotent.
func (w *Writer) Close() {
	if w.closed {
		return
	}

	w.flush()
	w.closed = true
}

// Bytes returns the encoded bytes written so far.
//
// Before Close, a trailing partial register is not included. The returned slice
// references the internal buffer and is valid until Release.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// BitLen returns the number of bits written, excluding padding.
func (w *Writer) BitLen() int {
	return w.bitLen
}

// WriteTo writes the flushed bytes to dst.
func (w *Writer) WriteTo(dst io.Writer) (int64, error) {
	return w.buf.WriteTo(dst)
}

// Release returns the backing buffer to the pool. The Writer is unusable afterwards.
func (w *Writer) Release() {
	if w.buf == nil {
		return
	}

	pool.PutStreamBuffer(w.buf)
	w.buf = nil
	w.closed = true
}

// flush appends the pending bits, left-aligned and zero-padded, to the byte buffer.
func (w *Writer) flush() {
	if w.bitCount == 0 {
		return
	}

	numBytes := (w.bitCount + 7) / 8
	aligned := w.bitBuf << (64 - w.bitCount)

	start := w.buf.Len()
	w.buf.ExtendOrGrow(numBytes)
	bs := w.buf.Slice(start, start+numBytes)

	if numBytes == 8 {
		binary.BigEndian.PutUint64(bs, aligned)
	} else {
		for i := range numBytes {
			bs[i] = byte(aligned >> (56 - i*8))
		}
	}

	w.bitBuf = 0
	w.bitCount = 0
}
