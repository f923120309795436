package frame

import (
	"fmt"

	"github.com/arloliu/textlzw/errs"
	"github.com/arloliu/textlzw/format"
	"github.com/arloliu/textlzw/internal/options"
	"github.com/arloliu/textlzw/lzw"
)

type config struct {
	compression format.CompressionType
	bigEndian   bool
	codeWidth   int
}

func defaultConfig() config {
	return config{
		compression: format.CompressionNone,
		codeWidth:   lzw.DefaultCodeWidth,
	}
}

// Option configures Encode.
type Option = options.Option[*config]

// WithCompression sets the secondary compression applied to the LZW stream.
// The default is format.CompressionNone.
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(c *config) error {
		if !compression.IsValid() {
			return fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compression)
		}
		c.compression = compression

		return nil
	})
}

// WithBigEndian writes the header fields in big-endian byte order.
func WithBigEndian() Option {
	return options.NoError(func(c *config) {
		c.bigEndian = true
	})
}

// WithLittleEndian writes the header fields in little-endian byte order. This is the default.
func WithLittleEndian() Option {
	return options.NoError(func(c *config) {
		c.bigEndian = false
	})
}

// WithCodeWidth sets the LZW code width recorded in the header.
func WithCodeWidth(bits int) Option {
	return options.New(func(c *config) error {
		if bits < lzw.MinCodeWidth || bits > lzw.MaxCodeWidth {
			return fmt.Errorf("%w: %d", errs.ErrInvalidCodeWidth, bits)
		}
		c.codeWidth = bits

		return nil
	})
}
