package legend

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = color.NRGBA{0xff, 0x00, 0x00, 0xff}
	green = color.NRGBA{0x00, 0xff, 0x00, 0xff}
	blue  = color.NRGBA{0x00, 0x00, 0xff, 0xff}
)

func TestParse(t *testing.T) {
	lines := []string{
		"#\n",
		"#!size 2 1\n",
		"#!a FF0000FF\n",
		"#!b 00FF00FF\n",
		"ab\n",
	}

	l, err := Parse(lines)
	require.NoError(t, err)

	assert.Equal(t, '#', l.Meta)
	assert.Equal(t, 2, l.Width)
	assert.Equal(t, 1, l.Height)
	assert.Equal(t, map[rune]color.NRGBA{'a': red, 'b': green}, l.Colors)
}

func TestParseDefaults(t *testing.T) {
	l, err := Parse([]string{"#\n", "abc\n"})
	require.NoError(t, err)

	assert.Equal(t, DefaultWidth, l.Width)
	assert.Equal(t, DefaultHeight, l.Height)
	assert.Equal(t, 0, l.Len())
}

func TestParseMeta(t *testing.T) {
	l, err := Parse([]string{
		"%\n",
		"%!size 1 1\n",
		"%!# #0000ffff\n",
		"#!a FF0000FF\n",
	})
	require.NoError(t, err)

	assert.Equal(t, '%', l.Meta)
	assert.Equal(t, map[rune]color.NRGBA{'#': blue}, l.Colors)
}

func TestParseLastWriteWins(t *testing.T) {
	l, err := Parse([]string{
		"#\n",
		"#!a FF0000FF\n",
		"#!a 0000FFFF\n",
		"#!size 3 3\n",
		"#!size 1 2\n",
	})
	require.NoError(t, err)

	assert.Equal(t, blue, l.Lookup('a'))
	assert.Equal(t, 1, l.Width)
	assert.Equal(t, 2, l.Height)
}

func TestParseLenientColor(t *testing.T) {
	l, err := Parse([]string{
		"#\n",
		"#!a FF0000FF00\n",
		"#!b ##00FF00FF\n",
	})
	require.NoError(t, err)

	assert.Equal(t, map[rune]color.NRGBA{'a': red, 'b': green}, l.Colors)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		err   error
	}{
		{
			name:  "no lines",
			lines: nil,
			err:   ErrNoMeta,
		},
		{
			name:  "empty first line",
			lines: []string{""},
			err:   ErrNoMeta,
		},
		{
			name:  "three size values",
			lines: []string{"#\n", "#!size 4 4 4\n"},
			err:   ErrMalformedSize,
		},
		{
			name:  "one size value",
			lines: []string{"#\n", "#!size 4\n"},
			err:   ErrMalformedSize,
		},
		{
			name:  "size not a number",
			lines: []string{"#\n", "#!size four 4\n"},
			err:   ErrMalformedSize,
		},
		{
			name:  "negative size",
			lines: []string{"#\n", "#!size -1 4\n"},
			err:   ErrMalformedSize,
		},
		{
			name:  "double space in size",
			lines: []string{"#\n", "#!size  4 4\n"},
			err:   ErrMalformedSize,
		},
		{
			name:  "short color",
			lines: []string{"#\n", "#!a FF00FF\n"},
			err:   ErrMalformedColor,
		},
		{
			name:  "missing color",
			lines: []string{"#\n", "#!a\n"},
			err:   ErrMalformedColor,
		},
		{
			name:  "bare directive",
			lines: []string{"#\n", "#!\n"},
			err:   ErrMalformedColor,
		},
		{
			name:  "invalid hex",
			lines: []string{"#\n", "#!a FF00GGFF\n"},
			err:   ErrInvalidHex,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.lines)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestParseErrorLine(t *testing.T) {
	_, err := Parse([]string{"#\n", "#!a FF0000FF\n", "#!b nope\n"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}

func TestFilter(t *testing.T) {
	l := New('#')
	lines := []string{"#\n", "ab\n", "#!size 2 2\n", "cd\n", " #\n"}
	assert.Equal(t, []string{"ab\n", "cd\n", " #\n"}, l.Filter(lines))
}

func TestLookupFallback(t *testing.T) {
	l := New('#')
	l.Set('a', red)

	assert.Equal(t, red, l.Lookup('a'))
	assert.Equal(t, Fallback, l.Lookup('z'))
	assert.Equal(t, color.NRGBA{255, 0, 255, 255}, l.Lookup(' '))
}

func TestHeader(t *testing.T) {
	l := New('#')
	l.Width, l.Height = 1, 2
	l.Set('a', red)
	l.Set('b', blue)
	l.Set('a', green)

	assert.Equal(t, []string{
		"#",
		"#!size 1 2",
		"#!a #00FF00FF",
		"#!b #0000FFFF",
	}, l.Header())
}

func TestMarshalText(t *testing.T) {
	l := New('#')
	l.Width, l.Height = 3, 4
	l.Set('x', red)
	l.Set('y', color.NRGBA{0x12, 0x34, 0x56, 0x78})

	b, err := l.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "#\n#!size 3 4\n#!x #FF0000FF\n#!y #12345678\n", string(b))

	n := new(Legend)
	require.NoError(t, n.UnmarshalText(b))
	assert.Equal(t, l, n)
}

func TestMarshalTextBadMeta(t *testing.T) {
	l := New('a')
	_, err := l.MarshalText()
	assert.ErrorIs(t, err, ErrBadMeta)
}
