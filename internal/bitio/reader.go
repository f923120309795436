package bitio

import "encoding/binary"

// Reader reads MSB-first bit fields from a byte slice.
type Reader struct {
	data     []byte // source data
	bytePos  int    // next byte to load into bitBuf
	bitBuf   uint64 // pending bits, left-aligned
	bitCount int    // number of valid bits in bitBuf
}

// NewReader creates a Reader over data. The slice is not copied.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// ReadBits reads numBits (0-64) bits and returns them right-aligned.
//
// Returns false if fewer than numBits bits remain; the reader position is
// then unspecified.
func (r *Reader) ReadBits(numBits int) (uint64, bool) {
	if numBits == 0 {
		return 0, true
	}

	if numBits <= r.bitCount {
		result := r.bitBuf >> (64 - numBits)
		r.bitBuf <<= numBits
		r.bitCount -= numBits

		return result, true
	}

	var result uint64
	for numBits > 0 {
		if r.bitCount == 0 && !r.fill() {
			return 0, false
		}

		n := min(numBits, r.bitCount)
		part := r.bitBuf >> (64 - n)
		if n == 64 {
			result = part
		} else {
			result = (result << n) | part
		}

		r.bitBuf <<= n
		r.bitCount -= n
		numBits -= n
	}

	return result, true
}

// Remaining returns the number of unread bits, including padding bits.
func (r *Reader) Remaining() int {
	return (len(r.data)-r.bytePos)*8 + r.bitCount
}

// Offset returns the number of bits consumed so far.
func (r *Reader) Offset() int {
	return r.bytePos*8 - r.bitCount
}

// fill loads up to 8 bytes into the empty bit register.
func (r *Reader) fill() bool {
	avail := len(r.data) - r.bytePos
	if avail <= 0 {
		return false
	}

	if avail >= 8 {
		r.bitBuf = binary.BigEndian.Uint64(r.data[r.bytePos:])
		r.bytePos += 8
		r.bitCount = 64

		return true
	}

	r.bitBuf = 0
	for i := 0; i < avail; i++ {
		r.bitBuf = (r.bitBuf << 8) | uint64(r.data[r.bytePos])
		r.bytePos++
	}
	r.bitBuf <<= (8 - avail) * 8
	r.bitCount = avail * 8

	return true
}
