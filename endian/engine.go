// Package endian provides the byte order engines used by frame headers.
//
// EndianEngine combines encoding/binary's ByteOrder and AppendByteOrder so a
// header can both fill fixed offsets and append fields with one value:
//
//	engine := endian.GetLittleEndianEngine()
//	engine.PutUint64(hdr[8:16], originalSize)
//	buf = engine.AppendUint32(buf, payloadSize)
//
// The engines returned here are the stateless binary.LittleEndian and
// binary.BigEndian values and are safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// EngineFor returns the big-endian engine when bigEndian is set, little-endian otherwise.
func EngineFor(bigEndian bool) EndianEngine {
	if bigEndian {
		return GetBigEndianEngine()
	}

	return GetLittleEndianEngine()
}

// IsBigEndian reports whether engine writes the most significant byte first.
func IsBigEndian(engine EndianEngine) bool {
	var b [2]byte
	engine.PutUint16(b[:], 0x0102)

	return b[0] == 0x01
}
