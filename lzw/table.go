package lzw

import (
	"github.com/arloliu/textlzw/internal/pool"
)

// Resolution classifies the outcome of CodeTable.Resolve.
type Resolution uint8

const (
	// Found means the code is bound and its sequence was returned.
	Found Resolution = iota
	// PendingSelfReference means the code is the next one to be assigned: the
	// encoder created it in the same step it emitted it, so its sequence is the
	// current sequence extended by its own first byte.
	PendingSelfReference
	// Unknown means the code cannot appear in a well-formed stream at this point.
	Unknown
)

func (r Resolution) String() string {
	switch r {
	case Found:
		return "Found"
	case PendingSelfReference:
		return "PendingSelfReference"
	default:
		return "Unknown"
	}
}

var slotPool = pool.NewSlicePool[[]byte](1 << MaxCodeWidth)

// CodeTable is the decoder's code-to-sequence table.
//
// Slots are indexed by code. Learned sequences are carved out of an
// append-only arena, so previously returned slices never change. A CodeTable
// is owned by a single expand run and is not safe for concurrent use.
type CodeTable struct {
	slots [][]byte
	arena []byte
	space codeSpace
}

// NewCodeTable creates a table for the given code width with codes 0-255
// bound to their single-byte sequences.
func NewCodeTable(width int) (*CodeTable, error) {
	if err := validateWidth(width); err != nil {
		return nil, err
	}

	t := &CodeTable{
		slots: slotPool.Get(1 << width),
		arena: make([]byte, AlphabetSize, 8*AlphabetSize),
		space: newCodeSpace(width),
	}
	for i := range AlphabetSize {
		t.arena[i] = byte(i)
		t.slots[i] = t.arena[i : i+1 : i+1]
	}

	return t, nil
}

// Release returns the slot slice to the pool. The table is unusable afterwards.
func (t *CodeTable) Release() {
	if t.slots == nil {
		return
	}

	slotPool.Put(t.slots)
	t.slots = nil
	t.arena = nil
}

// Len returns the number of bound codes, including the 256 single bytes.
func (t *CodeTable) Len() int {
	return t.space.next - 1
}

// NextCode returns the code the next Append would assign.
func (t *CodeTable) NextCode() Code {
	return Code(t.space.next) //nolint: gosec
}

// Exhausted reports whether every code of the configured width has been assigned.
func (t *CodeTable) Exhausted() bool {
	return t.space.exhausted()
}

// Get returns the sequence bound to code.
// The returned slice must not be modified.
func (t *CodeTable) Get(code Code) ([]byte, bool) {
	if code == EOS || int(code) >= t.space.next {
		return nil, false
	}

	return t.slots[code], true
}

// Resolve looks code up and reports how the decoder should treat it.
func (t *CodeTable) Resolve(code Code) ([]byte, Resolution) {
	if seq, ok := t.Get(code); ok {
		return seq, Found
	}

	if int(code) == t.space.next && !t.space.exhausted() {
		return nil, PendingSelfReference
	}

	return nil, Unknown
}

// Append binds seq to the next available code.
// It returns false once the code space is exhausted or if seq is empty.
func (t *CodeTable) Append(seq []byte) (Code, bool) {
	if len(seq) == 0 {
		return 0, false
	}

	code, _, ok := t.appendExtended(seq[:len(seq)-1], seq[len(seq)-1])

	return code, ok
}

// appendExtended binds prefix followed by b to the next code and returns the stored sequence.
func (t *CodeTable) appendExtended(prefix []byte, b byte) (Code, []byte, bool) {
	code, ok := t.space.assign()
	if !ok {
		return 0, nil, false
	}

	start := len(t.arena)
	t.arena = append(t.arena, prefix...)
	t.arena = append(t.arena, b)
	seq := t.arena[start:len(t.arena):len(t.arena)]
	t.slots[code] = seq

	return code, seq, true
}
