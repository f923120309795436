package frame

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/textlzw/errs"
	"github.com/arloliu/textlzw/format"
)

func validHeader() Header {
	return Header{
		Flag:         NewFlag(),
		Version:      Version,
		CodeWidth:    12,
		Compression:  format.CompressionS2,
		OriginalSize: 0x0102030405060708,
		Checksum:     0xA1A2A3A4A5A6A7A8,
		PayloadSize:  0x0B0C0D0E,
	}
}

func TestFlag(t *testing.T) {
	flag := NewFlag()

	require.True(t, flag.IsValid())
	require.False(t, flag.IsBigEndian())
	require.Equal(t, uint16(MagicV1), flag.GetMagicNumber())

	flag.WithBigEndian()
	require.True(t, flag.IsBigEndian())
	require.True(t, flag.IsValid())
	require.Equal(t, uint16(MagicV1), flag.GetMagicNumber())

	flag.WithLittleEndian()
	require.False(t, flag.IsBigEndian())

	require.False(t, Flag{Options: 0xEB10}.IsValid())
	require.False(t, Flag{Options: MagicV1 | 0x0002}.IsValid(), "reserved bits must be clear")
}

func TestHeader_Layout(t *testing.T) {
	t.Run("little endian", func(t *testing.T) {
		h := validHeader()
		b := h.Bytes()

		require.Len(t, b, HeaderSize)
		require.Equal(t, []byte{0x50, 0x4C}, b[0:2])
		require.Equal(t, byte(Version), b[2])
		require.Equal(t, byte(12), b[3])
		require.Equal(t, byte(format.CompressionS2), b[4])
		require.Equal(t, []byte{0, 0, 0}, b[5:8])
		require.Equal(t, []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, b[8:16])
		require.Equal(t, []byte{0x0E, 0x0D, 0x0C, 0x0B}, b[24:28])
		require.Equal(t, []byte{0, 0, 0, 0}, b[28:32])
	})

	t.Run("big endian", func(t *testing.T) {
		h := validHeader()
		h.Flag.WithBigEndian()
		b := h.Bytes()

		// the flag itself stays little-endian
		require.Equal(t, []byte{0x51, 0x4C}, b[0:2])
		require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}, b[8:16])
		require.Equal(t, []byte{0xA1, 0xA2, 0xA3, 0xA4, 0xA5, 0xA6, 0xA7, 0xA8}, b[16:24])
		require.Equal(t, []byte{0x0B, 0x0C, 0x0D, 0x0E}, b[24:28])
	})
}

func TestHeader_RoundTrip(t *testing.T) {
	for _, bigEndian := range []bool{false, true} {
		h := validHeader()
		if bigEndian {
			h.Flag.WithBigEndian()
		}

		parsed, err := ParseHeader(h.Bytes())
		require.NoError(t, err)
		require.Equal(t, h, parsed)
	}
}

func TestParseHeader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(b []byte) []byte
		wantErr error
	}{
		{
			name:    "too short",
			mutate:  func(b []byte) []byte { return b[:HeaderSize-1] },
			wantErr: errs.ErrInvalidHeaderSize,
		},
		{
			name:    "foreign magic",
			mutate:  func(b []byte) []byte { b[1] = 0xEB; return b },
			wantErr: errs.ErrInvalidMagic,
		},
		{
			name:    "reserved flag bits",
			mutate:  func(b []byte) []byte { b[0] |= 0x04; return b },
			wantErr: errs.ErrInvalidMagic,
		},
		{
			name:    "future version",
			mutate:  func(b []byte) []byte { b[2] = Version + 1; return b },
			wantErr: errs.ErrUnsupportedVersion,
		},
		{
			name:    "code width too small",
			mutate:  func(b []byte) []byte { b[3] = 8; return b },
			wantErr: errs.ErrInvalidCodeWidth,
		},
		{
			name:    "code width too large",
			mutate:  func(b []byte) []byte { b[3] = 17; return b },
			wantErr: errs.ErrInvalidCodeWidth,
		},
		{
			name:    "unknown compression",
			mutate:  func(b []byte) []byte { b[4] = 0x7F; return b },
			wantErr: errs.ErrInvalidCompression,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := validHeader()
			_, err := ParseHeader(tt.mutate(h.Bytes()))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHeader_ParseRequiresExactSize(t *testing.T) {
	h := validHeader()
	b := append(h.Bytes(), 0x00)

	var parsed Header
	require.ErrorIs(t, parsed.Parse(b), errs.ErrInvalidHeaderSize)

	// ParseHeader only looks at the first HeaderSize bytes.
	_, err := ParseHeader(b)
	require.NoError(t, err)
}
