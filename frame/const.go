package frame

const (
	// Bit masks of the 16-bit flag field.
	EndiannessMask   = 0x0001 // bit 0: 0=little-endian, 1=big-endian
	ReservedBitsMask = 0x000E // bits 1-3, must be zero
	MagicNumberMask  = 0xFFF0 // bits 4-15

	// MagicV1 identifies a version 1 LZW frame ("LP" with the low nibble cleared).
	MagicV1 = 0x4C50

	// Version is the only frame layout version this package writes and reads.
	Version = 1
)

// byte offsets of the fixed header fields
const (
	HeaderSize = 32

	flagOffset         = 0
	versionOffset      = 2
	codeWidthOffset    = 3
	compressionOffset  = 4
	originalSizeOffset = 8
	checksumOffset     = 16
	payloadSizeOffset  = 24
)
