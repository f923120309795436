package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type codecConfig struct {
	width   int
	name    string
	applied []string
}

var errNegativeWidth = errors.New("width cannot be negative")

func withWidth(w int) Option[*codecConfig] {
	return New(func(c *codecConfig) error {
		if w < 0 {
			return errNegativeWidth
		}
		c.width = w
		c.applied = append(c.applied, "width")

		return nil
	})
}

func withName(name string) Option[*codecConfig] {
	return NoError(func(c *codecConfig) {
		c.name = name
		c.applied = append(c.applied, "name")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &codecConfig{}

		err := Apply(cfg, withName("lzw"), withWidth(12), withName("lzw12"))

		require.NoError(t, err)
		require.Equal(t, 12, cfg.width)
		require.Equal(t, "lzw12", cfg.name)
		require.Equal(t, []string{"name", "width", "name"}, cfg.applied)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &codecConfig{}

		err := Apply(cfg, withWidth(-1), withName("never"))

		require.ErrorIs(t, err, errNegativeWidth)
		require.Empty(t, cfg.name)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &codecConfig{width: 9}

		require.NoError(t, Apply(cfg))
		require.Equal(t, 9, cfg.width)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &codecConfig{}

		require.NoError(t, Apply(cfg, nil, withWidth(16)))
		require.Equal(t, 16, cfg.width)
	})
}

func TestNoErrorNeverFails(t *testing.T) {
	cfg := &codecConfig{}

	require.NoError(t, withName("").apply(cfg))
	require.Equal(t, []string{"name"}, cfg.applied)
}
