package frame

import (
	"github.com/arloliu/textlzw/endian"
)

// Flag is the packed 16-bit field at the start of every frame.
//
// It is always stored little-endian so the byte order of the remaining
// fields can be read from it.
type Flag struct {
	// Options holds the magic number in bits 4-15 and the endianness in bit 0.
	Options uint16
}

// NewFlag returns a little-endian version 1 flag.
func NewFlag() Flag {
	return Flag{Options: MagicV1}
}

// IsBigEndian returns whether the header fields are big-endian.
func (f Flag) IsBigEndian() bool {
	return f.Options&EndiannessMask != 0
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// GetMagicNumber returns the magic number bits of the flag.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// IsValid reports whether the magic number matches and the reserved bits are clear.
func (f Flag) IsValid() bool {
	return f.GetMagicNumber() == MagicV1 && f.Options&ReservedBitsMask == 0
}

// GetEndianEngine returns the engine for the byte order selected by the flag.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	return endian.EngineFor(f.IsBigEndian())
}
