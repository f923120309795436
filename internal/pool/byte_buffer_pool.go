package pool

import (
	"io"
	"sync"
)

const (
	StreamBufferDefaultSize  = 1024 * 16       // 16KiB, code streams and expanded text
	StreamBufferMaxThreshold = 1024 * 1024     // 1MiB
	InputBufferDefaultSize   = 1024 * 64       // 64KiB, materialized stdin
	InputBufferMaxThreshold  = 1024 * 1024 * 8 // 8MiB

	readChunkSize = 1024 * 32
)

type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer but keeps the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Slice returns a slice of the buffer from start to end.
// Panics if the indices are out of bounds.
func (bb *ByteBuffer) Slice(start, end int) []byte {
	if start < 0 || end < start || end > cap(bb.B) {
		panic("Slice: invalid indices")
	}

	return bb.B[start:end]
}

// ExtendOrGrow extends the buffer length by n bytes, growing it if necessary.
func (bb *ByteBuffer) ExtendOrGrow(n int) {
	curLen := len(bb.B)
	if cap(bb.B)-curLen < n {
		bb.Grow(n)
	}

	bb.B = bb.B[:curLen+n]
}

// Grow ensures the buffer can hold requiredBytes more bytes without reallocating.
//
// Small buffers (up to 4x StreamBufferDefaultSize) grow by StreamBufferDefaultSize,
// larger ones by 25% of their capacity, and never by less than requiredBytes.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := StreamBufferDefaultSize
	if cap(bb.B) > 4*StreamBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}

	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends the contents of data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ReadFrom appends everything from r until io.EOF.
// The returned count is the number of bytes appended; io.EOF is not reported as an error.
func (bb *ByteBuffer) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	for {
		bb.Grow(readChunkSize)
		start := len(bb.B)
		n, err := r.Read(bb.B[start:cap(bb.B)])
		if n < 0 {
			panic("ReadFrom: reader returned negative count")
		}
		bb.B = bb.B[:start+n]
		total += int64(n)

		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations.
//
// Buffers whose capacity grew beyond maxThreshold are dropped on Put instead of
// being retained, so one huge input does not pin memory for the process lifetime.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	streamDefaultPool = NewByteBufferPool(StreamBufferDefaultSize, StreamBufferMaxThreshold)
	inputDefaultPool  = NewByteBufferPool(InputBufferDefaultSize, InputBufferMaxThreshold)
)

// GetStreamBuffer retrieves a ByteBuffer from the default stream pool.
func GetStreamBuffer() *ByteBuffer {
	return streamDefaultPool.Get()
}

// PutStreamBuffer returns a ByteBuffer to the default stream pool.
func PutStreamBuffer(bb *ByteBuffer) {
	streamDefaultPool.Put(bb)
}

// GetInputBuffer retrieves a ByteBuffer from the default input pool.
func GetInputBuffer() *ByteBuffer {
	return inputDefaultPool.Get()
}

// PutInputBuffer returns a ByteBuffer to the default input pool.
func PutInputBuffer(bb *ByteBuffer) {
	inputDefaultPool.Put(bb)
}
