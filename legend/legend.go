/*
Package legend implements the small metadata header that precedes every
pixeltext grid.

The header is a run of lines that each start with the meta character, which
is whatever character opens the first line of the input:

	#
	#!size 2 1
	#!a #FF0000FF
	#!b #00FF00FF

The size directive declares the grid dimensions and every other directive maps
a single grid character to an RGBA color. The character sits at a fixed
position (the third character of the line) and the color starts two positions
later; these offsets are part of the format.
*/
package legend

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultWidth and DefaultHeight are used when no size directive is
	// present
	DefaultWidth  = 16
	DefaultHeight = 16

	// DefaultMeta is the meta character written when converting images
	DefaultMeta = '#'

	directive = '!'
	sizeName  = "size"

	charOffset  = 2
	colorOffset = 4
)

// Errors returned by Parse, ParseColor and Builder. They are usually wrapped
// with more context so compare using errors.Is.
var (
	ErrNoMeta          = errors.New("legend: missing meta character")
	ErrMalformedSize   = errors.New("legend: malformed size directive")
	ErrMalformedColor  = errors.New("legend: malformed color directive")
	ErrInvalidHex      = errors.New("legend: invalid hex digit")
	ErrPaletteTooLarge = errors.New("legend: palette too large")
	ErrBadMeta         = errors.New("legend: invalid meta character")
)

// Fallback is the color used for any grid character without a legend entry.
var Fallback = color.NRGBA{0xff, 0x00, 0xff, 0xff}

// Legend maps grid characters to colors. It implements the
// encoding.TextMarshaler and encoding.TextUnmarshaler interfaces.
type Legend struct {
	Meta   rune
	Width  int
	Height int
	Colors map[rune]color.NRGBA

	// Characters in the order they were first set
	order []rune
}

// New returns an empty legend with the default dimensions
func New(meta rune) *Legend {
	return &Legend{
		Meta:   meta,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Colors: make(map[rune]color.NRGBA),
	}
}

// Set maps r to c, replacing any existing mapping
func (l *Legend) Set(r rune, c color.NRGBA) {
	if _, ok := l.Colors[r]; !ok {
		l.order = append(l.order, r)
	}
	l.Colors[r] = c
}

// Lookup returns the color for r or Fallback if there isn't one
func (l *Legend) Lookup(r rune) color.NRGBA {
	if c, ok := l.Colors[r]; ok {
		return c
	}
	return Fallback
}

// Len returns the number of mapped characters
func (l *Legend) Len() int {
	return len(l.Colors)
}

// IsMeta reports whether line is a metadata line
func (l *Legend) IsMeta(line string) bool {
	return strings.HasPrefix(line, string(l.Meta))
}

// Filter returns the lines that are not metadata lines, in their original
// order
func (l *Legend) Filter(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if !l.IsMeta(line) {
			out = append(out, line)
		}
	}
	return out
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

func parseSize(line string) (int, int, error) {
	dims := strings.Split(trimEOL(line), " ")[1:]
	if len(dims) != 2 {
		return 0, 0, fmt.Errorf("%w: expected two integers separated by a space, got %d values", ErrMalformedSize, len(dims))
	}

	var size [2]int
	for i, d := range dims {
		n, err := strconv.ParseUint(d, 10, 31)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %q is not a non-negative integer", ErrMalformedSize, d)
		}
		size[i] = int(n)
	}

	return size[0], size[1], nil
}

func parseColorDirective(line string) (rune, color.NRGBA, error) {
	r := []rune(trimEOL(line))
	if len(r) < colorOffset {
		return 0, color.NRGBA{}, fmt.Errorf("%w: line too short", ErrMalformedColor)
	}

	c, err := ParseColor(string(r[colorOffset:]))
	if err != nil {
		return 0, color.NRGBA{}, err
	}

	return r[charOffset], c, nil
}

// Parse builds a legend from the metadata lines in lines. Lines that are not
// metadata lines are ignored.
func Parse(lines []string) (*Legend, error) {
	if len(lines) == 0 || lines[0] == "" {
		return nil, ErrNoMeta
	}

	meta, _ := utf8.DecodeRuneInString(lines[0])
	l := New(meta)

	size := string(meta) + string(directive) + sizeName
	prefix := string(meta) + string(directive)

	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, size):
			w, h, err := parseSize(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			l.Width, l.Height = w, h
		case strings.HasPrefix(line, prefix):
			r, c, err := parseColorDirective(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			l.Set(r, c)
		}
	}

	return l, nil
}

// Header returns the metadata lines describing the legend, without line
// terminators. Colors are listed in the order they were first set.
func (l *Legend) Header() []string {
	lines := make([]string, 0, 2+len(l.order))
	lines = append(lines, string(l.Meta))
	lines = append(lines, fmt.Sprintf("%c%c%s %d %d", l.Meta, directive, sizeName, l.Width, l.Height))
	for _, r := range l.order {
		lines = append(lines, fmt.Sprintf("%c%c%c %s", l.Meta, directive, r, FormatColor(l.Colors[r])))
	}
	return lines
}

// MarshalText encodes the legend header
func (l *Legend) MarshalText() ([]byte, error) {
	if err := ValidateMeta(l.Meta); err != nil {
		return nil, err
	}

	b := new(bytes.Buffer)
	for _, line := range l.Header() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.Bytes(), nil
}

// UnmarshalText decodes a legend header. Any grid lines are ignored.
func (l *Legend) UnmarshalText(text []byte) error {
	var lines []string
	s := bufio.NewScanner(bytes.NewReader(text))
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return err
	}

	n, err := Parse(lines)
	if err != nil {
		return err
	}
	*l = *n

	return nil
}
