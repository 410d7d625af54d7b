package legend

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  color.NRGBA
	}{
		{"plain", "FF0000FF", color.NRGBA{0xff, 0x00, 0x00, 0xff}},
		{"hash prefix", "#00FF00FF", color.NRGBA{0x00, 0xff, 0x00, 0xff}},
		{"lower case", "#0a0b0c0d", color.NRGBA{0x0a, 0x0b, 0x0c, 0x0d}},
		{"mixed case", "aBcDeF01", color.NRGBA{0xab, 0xcd, 0xef, 0x01}},
		{"trailing newline", "12345678\n", color.NRGBA{0x12, 0x34, 0x56, 0x78}},
		{"trailing crlf", "12345678\r\n", color.NRGBA{0x12, 0x34, 0x56, 0x78}},
		{"transparent", "00000000", color.NRGBA{}},
		{"repeated hash", "##FF00FFFF", color.NRGBA{0xff, 0x00, 0xff, 0xff}},
		{"extra digits", "FF00FFFF00", color.NRGBA{0xff, 0x00, 0xff, 0xff}},
		{"trailing garbage", "#12345678 zz", color.NRGBA{0x12, 0x34, 0x56, 0x78}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseColor(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c)
		})
	}
}

func TestParseColorErrors(t *testing.T) {
	tests := []struct {
		input string
		err   error
	}{
		{"", ErrMalformedColor},
		{"#", ErrMalformedColor},
		{"FF00FF", ErrMalformedColor},
		{"FF00FF0", ErrMalformedColor},
		{"##FF00FF", ErrMalformedColor},
		{"GG00FFFF", ErrInvalidHex},
		{"FF00FF-1", ErrInvalidHex},
		{"#FF 00FFF", ErrInvalidHex},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseColor(tt.input)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestFormatColor(t *testing.T) {
	assert.Equal(t, "#FF0000FF", FormatColor(color.NRGBA{0xff, 0x00, 0x00, 0xff}))
	assert.Equal(t, "#0A0B0C0D", FormatColor(color.NRGBA{0x0a, 0x0b, 0x0c, 0x0d}))
	// Premultiplied colors are written with straight alpha
	assert.Equal(t, "#FF000080", FormatColor(color.RGBA{0x80, 0x00, 0x00, 0x80}))
	assert.Equal(t, "#FFFFFFFF", FormatColor(color.White))
}

func TestColorRoundTrip(t *testing.T) {
	for _, h := range []string{"00000000", "FFFFFFFF", "ff00ffff", "#12345678", "0a1B2c3D", "80808080", "DEADBEEF"} {
		t.Run(h, func(t *testing.T) {
			want, err := ParseColor(h)
			require.NoError(t, err)

			got, err := ParseColor(FormatColor(want))
			require.NoError(t, err)

			assert.Equal(t, want, got)
		})
	}
}
