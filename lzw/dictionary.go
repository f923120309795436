package lzw

import (
	"github.com/arloliu/textlzw/internal/pool"
)

const (
	nilNode int32 = -1
	noCode  int32 = -1

	// initialNodeCapacity covers the alphabet plus the learned codes of a 12-bit dictionary.
	initialNodeCapacity = 1 << DefaultCodeWidth
)

// node is one byte position in the dictionary trie.
//
// Nodes 0-255 are the single-byte roots and are addressed directly by byte
// value. Every deeper level is a ternary search tree: lo and hi lead to
// siblings with a smaller or larger byte, eq leads to the next position.
type node struct {
	lo, eq, hi int32
	code       int32 // noCode if no sequence ends here
	b          byte
}

var nodePool = pool.NewSlicePool[node](1 << (MaxCodeWidth + 1))

// Dictionary is the encoder's prefix dictionary.
//
// It maps byte sequences to codes and answers longest-prefix queries in time
// proportional to the match length. A Dictionary is owned by a single
// compress run and is not safe for concurrent use.
type Dictionary struct {
	nodes []node
	space codeSpace
	count int // bound sequences, alphabet included
}

// NewDictionary creates a dictionary for the given code width with codes
// 0-255 bound to their single-byte sequences.
func NewDictionary(width int) (*Dictionary, error) {
	if err := validateWidth(width); err != nil {
		return nil, err
	}

	nodes := nodePool.Get(max(initialNodeCapacity, 1<<width))[:AlphabetSize]
	for i := range nodes {
		nodes[i] = node{lo: nilNode, eq: nilNode, hi: nilNode, code: int32(i), b: byte(i)}
	}

	return &Dictionary{
		nodes: nodes,
		space: newCodeSpace(width),
		count: AlphabetSize,
	}, nil
}

// Release returns the node arena to the pool. The dictionary is unusable afterwards.
func (d *Dictionary) Release() {
	if d.nodes == nil {
		return
	}

	nodePool.Put(d.nodes)
	d.nodes = nil
}

// Len returns the number of bound sequences, including the 256 single bytes.
func (d *Dictionary) Len() int {
	return d.count
}

// NextCode returns the code the next Insert would assign.
// The result is meaningless once Exhausted reports true.
func (d *Dictionary) NextCode() Code {
	return Code(d.space.next) //nolint: gosec
}

// Exhausted reports whether every code of the configured width has been assigned.
func (d *Dictionary) Exhausted() bool {
	return d.space.exhausted()
}

// LongestPrefix returns the longest dictionary sequence that starts at input[offset].
//
// Since every single byte is bound, the result is at least one byte long
// whenever offset is inside input; otherwise it is nil. The result aliases input.
func (d *Dictionary) LongestPrefix(input []byte, offset int) []byte {
	length, _, _ := d.match(input, offset)
	if length == 0 {
		return nil
	}

	return input[offset : offset+length]
}

// Lookup returns the code bound to seq.
func (d *Dictionary) Lookup(seq []byte) (Code, bool) {
	if len(seq) == 0 {
		return 0, false
	}

	n := int32(seq[0])
	for _, b := range seq[1:] {
		n = d.child(n, b, false)
		if n == nilNode {
			return 0, false
		}
	}

	if d.nodes[n].code == noCode {
		return 0, false
	}

	return Code(d.nodes[n].code), true //nolint: gosec
}

// Insert binds seq to the next available code and returns that code.
//
// It returns false without consuming a code if seq is empty, already bound,
// or the code space is exhausted.
func (d *Dictionary) Insert(seq []byte) (Code, bool) {
	if len(seq) == 0 || d.space.exhausted() {
		return 0, false
	}

	n := int32(seq[0])
	for _, b := range seq[1:] {
		n = d.child(n, b, true)
	}

	return d.bind(n)
}

// match walks input from offset and returns the length and code of the
// longest bound sequence plus the node where it ends.
func (d *Dictionary) match(input []byte, offset int) (int, Code, int32) {
	if offset < 0 || offset >= len(input) {
		return 0, 0, nilNode
	}

	last := int32(input[offset])
	length := 1

	n := d.nodes[last].eq
	for i := offset + 1; n != nilNode && i < len(input); {
		nd := &d.nodes[n]
		c := input[i]
		switch {
		case c < nd.b:
			n = nd.lo
		case c > nd.b:
			n = nd.hi
		default:
			i++
			if nd.code != noCode {
				length = i - offset
				last = n
			}
			n = nd.eq
		}
	}

	return length, Code(d.nodes[last].code), last //nolint: gosec
}

// extend binds the sequence ending at parent followed by b to the next code.
func (d *Dictionary) extend(parent int32, b byte) (Code, bool) {
	if d.space.exhausted() {
		return 0, false
	}

	return d.bind(d.child(parent, b, true))
}

func (d *Dictionary) bind(n int32) (Code, bool) {
	if d.nodes[n].code != noCode {
		return 0, false
	}

	code, ok := d.space.assign()
	if !ok {
		return 0, false
	}
	d.nodes[n].code = int32(code)
	d.count++

	return code, true
}

// child finds the node for byte b one position after parent, creating it when create is set.
// It returns nilNode when the node does not exist and create is false.
func (d *Dictionary) child(parent int32, b byte, create bool) int32 {
	n := d.nodes[parent].eq
	if n == nilNode {
		if !create {
			return nilNode
		}
		id := d.newNode(b)
		d.nodes[parent].eq = id

		return id
	}

	for {
		nd := d.nodes[n]
		switch {
		case b < nd.b:
			if nd.lo == nilNode {
				if !create {
					return nilNode
				}
				id := d.newNode(b)
				d.nodes[n].lo = id

				return id
			}
			n = nd.lo
		case b > nd.b:
			if nd.hi == nilNode {
				if !create {
					return nilNode
				}
				id := d.newNode(b)
				d.nodes[n].hi = id

				return id
			}
			n = nd.hi
		default:
			return n
		}
	}
}

func (d *Dictionary) newNode(b byte) int32 {
	d.nodes = append(d.nodes, node{lo: nilNode, eq: nilNode, hi: nilNode, code: noCode, b: b})
	return int32(len(d.nodes) - 1) //nolint: gosec
}
