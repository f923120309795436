package format

import (
	"strings"

	"github.com/arloliu/textlzw/errs"
)

type CompressionType uint8

const (
	CompressionNone   CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd   CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2     CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4    CompressionType = 0x4 // CompressionLZ4 represents LZ4 block compression.
	CompressionLZW    CompressionType = 0x5 // CompressionLZW represents fixed-width LZW codes.
	CompressionSnappy CompressionType = 0x6 // CompressionSnappy represents Snappy block compression.
	CompressionBrotli CompressionType = 0x7 // CompressionBrotli represents Brotli compression.
	CompressionGzip   CompressionType = 0x8 // CompressionGzip represents gzip compression.
)

var compressionNames = map[CompressionType]string{
	CompressionNone:   "None",
	CompressionZstd:   "Zstd",
	CompressionS2:     "S2",
	CompressionLZ4:    "LZ4",
	CompressionLZW:    "LZW",
	CompressionSnappy: "Snappy",
	CompressionBrotli: "Brotli",
	CompressionGzip:   "Gzip",
}

func (c CompressionType) String() string {
	if name, ok := compressionNames[c]; ok {
		return name
	}

	return "Unknown"
}

// IsValid reports whether c is one of the known compression types.
func (c CompressionType) IsValid() bool {
	_, ok := compressionNames[c]
	return ok
}

// AllCompressionTypes returns every known compression type in ascending order.
func AllCompressionTypes() []CompressionType {
	return []CompressionType{
		CompressionNone,
		CompressionZstd,
		CompressionS2,
		CompressionLZ4,
		CompressionLZW,
		CompressionSnappy,
		CompressionBrotli,
		CompressionGzip,
	}
}

// ParseCompressionType converts a case-insensitive name such as "zstd" into a CompressionType.
func ParseCompressionType(name string) (CompressionType, error) {
	for _, c := range AllCompressionTypes() {
		if strings.EqualFold(name, c.String()) {
			return c, nil
		}
	}

	return 0, errs.ErrInvalidCompression
}
