package lzw

import (
	"fmt"

	"github.com/arloliu/textlzw/errs"
	"github.com/arloliu/textlzw/internal/options"
)

// Code identifies one dictionary sequence in the compressed stream.
type Code uint16

const (
	// AlphabetSize is the number of pre-seeded single-byte sequences (codes 0-255).
	AlphabetSize = 256
	// EOS is the end-of-stream sentinel. It is never bound to a sequence.
	EOS Code = 256
	// FirstCode is the first code assigned to a learned sequence.
	FirstCode Code = 257

	DefaultCodeWidth = 12 // DefaultCodeWidth gives a 4096-entry dictionary.
	MinCodeWidth     = 9  // MinCodeWidth is the narrowest width that can carry EOS and one learned code.
	MaxCodeWidth     = 16 // MaxCodeWidth keeps every code representable as a Code.
)

// AssignHook observes every newly learned code together with its sequence.
// The sequence slice is only valid for the duration of the call.
type AssignHook func(code Code, seq []byte)

// codeSpace hands out learned codes in increasing order until the width is exhausted.
type codeSpace struct {
	next  int // next code to assign
	limit int // 1 << width; codes are assigned while next < limit
}

func newCodeSpace(width int) codeSpace {
	return codeSpace{next: int(FirstCode), limit: 1 << width}
}

// assign returns the next code, or false once the code space is exhausted.
func (s *codeSpace) assign() (Code, bool) {
	if s.next >= s.limit {
		return 0, false
	}
	code := Code(s.next) //nolint: gosec
	s.next++

	return code, true
}

func (s *codeSpace) exhausted() bool {
	return s.next >= s.limit
}

func validateWidth(width int) error {
	if width < MinCodeWidth || width > MaxCodeWidth {
		return fmt.Errorf("%w: %d (must be between %d and %d)", errs.ErrInvalidCodeWidth, width, MinCodeWidth, MaxCodeWidth)
	}

	return nil
}

// config is shared by Encoder and Decoder so both sides agree on the width.
type config struct {
	width int
	hook  AssignHook
}

func defaultConfig() config {
	return config{width: DefaultCodeWidth}
}

// Option configures an Encoder or a Decoder.
type Option = options.Option[*config]

// WithCodeWidth sets the code width W in bits. Valid widths are 9 through 16; the default is 12.
//
// Both sides of a stream must use the same width since it is not transmitted.
func WithCodeWidth(bits int) Option {
	return options.New(func(c *config) error {
		if err := validateWidth(bits); err != nil {
			return err
		}
		c.width = bits

		return nil
	})
}

// WithAssignHook registers fn to be called for every code learned during a run.
//
// Encoder and Decoder call the hook at the same logical step, so the two
// traces of a round trip are identical.
func WithAssignHook(fn AssignHook) Option {
	return options.NoError(func(c *config) {
		c.hook = fn
	})
}

func newConfig(opts []Option) (config, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return config{}, err
	}

	return cfg, nil
}
