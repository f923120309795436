package frame

import (
	"fmt"

	"github.com/arloliu/textlzw/endian"
	"github.com/arloliu/textlzw/errs"
	"github.com/arloliu/textlzw/format"
	"github.com/arloliu/textlzw/lzw"
)

// Header is the fixed 32-byte header in front of every frame payload.
//
//	offset size field
//	0      2    flag (always little-endian)
//	2      1    version
//	3      1    LZW code width
//	4      1    secondary compression
//	5      3    reserved
//	8      8    original size
//	16     8    xxHash64 of the original data
//	24     4    payload size
//	28     4    reserved
type Header struct {
	Flag         Flag
	Version      uint8
	CodeWidth    uint8
	Compression  format.CompressionType
	OriginalSize uint64
	Checksum     uint64
	PayloadSize  uint32
}

// Parse parses the header from exactly HeaderSize bytes and validates it.
//
// Returns:
//   - errs.ErrInvalidHeaderSize if data is not HeaderSize bytes
//   - errs.ErrInvalidMagic for a foreign flag
//   - errs.ErrUnsupportedVersion, errs.ErrInvalidCodeWidth or errs.ErrInvalidCompression
//     for field values this package cannot decode
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	le := endian.GetLittleEndianEngine()
	h.Flag.Options = le.Uint16(data[flagOffset:])
	if !h.Flag.IsValid() {
		return fmt.Errorf("%w: flag 0x%04x", errs.ErrInvalidMagic, h.Flag.Options)
	}

	engine := h.Flag.GetEndianEngine()
	h.Version = data[versionOffset]
	h.CodeWidth = data[codeWidthOffset]
	h.Compression = format.CompressionType(data[compressionOffset])
	h.OriginalSize = engine.Uint64(data[originalSizeOffset:])
	h.Checksum = engine.Uint64(data[checksumOffset:])
	h.PayloadSize = engine.Uint32(data[payloadSizeOffset:])

	return h.Validate()
}

// Validate checks the fields that Decode depends on.
func (h *Header) Validate() error {
	if !h.Flag.IsValid() {
		return fmt.Errorf("%w: flag 0x%04x", errs.ErrInvalidMagic, h.Flag.Options)
	}
	if h.Version != Version {
		return fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, h.Version)
	}
	if h.CodeWidth < lzw.MinCodeWidth || h.CodeWidth > lzw.MaxCodeWidth {
		return fmt.Errorf("%w: %d", errs.ErrInvalidCodeWidth, h.CodeWidth)
	}
	if !h.Compression.IsValid() {
		return fmt.Errorf("%w: 0x%02x", errs.ErrInvalidCompression, uint8(h.Compression))
	}

	return nil
}

// Bytes serializes the header into a new HeaderSize byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	endian.GetLittleEndianEngine().PutUint16(b[flagOffset:], h.Flag.Options)

	engine := h.Flag.GetEndianEngine()
	b[versionOffset] = h.Version
	b[codeWidthOffset] = h.CodeWidth
	b[compressionOffset] = uint8(h.Compression)
	engine.PutUint64(b[originalSizeOffset:], h.OriginalSize)
	engine.PutUint64(b[checksumOffset:], h.Checksum)
	engine.PutUint32(b[payloadSizeOffset:], h.PayloadSize)

	return b
}

// ParseHeader parses the Header at the start of a frame.
//
// Only the first HeaderSize bytes are examined; the payload is not checked.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: got %d bytes, want at least %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
