package legend

import (
	"fmt"
	"image/color"
	"strings"
	"unicode"
)

// Alphabet is the ordered set of characters assigned to colors when
// converting an image
const Alphabet = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789" +
	`!"$%&/()=?{[]}+-_,.;:*~@<>`

// AlphabetSize is the maximum number of distinct colors an image can have
const AlphabetSize = len(Alphabet)

// ValidateMeta checks r can be used as a meta character. It can't be
// whitespace or collide with a character from Alphabet.
func ValidateMeta(r rune) error {
	switch {
	case r == 0, unicode.IsSpace(r), !unicode.IsPrint(r):
		return fmt.Errorf("%w: %q", ErrBadMeta, r)
	case strings.ContainsRune(Alphabet, r):
		return fmt.Errorf("%w: %q is used for colors", ErrBadMeta, r)
	}
	return nil
}

// Builder assigns characters from Alphabet to colors in the order they are
// first seen and accumulates the resulting legend
type Builder struct {
	legend *Legend
	index  map[color.NRGBA]rune
	next   int
}

// NewBuilder returns a Builder for a width by height grid
func NewBuilder(meta rune, width, height int) (*Builder, error) {
	if err := ValidateMeta(meta); err != nil {
		return nil, err
	}

	l := New(meta)
	l.Width, l.Height = width, height

	return &Builder{
		legend: l,
		index:  make(map[color.NRGBA]rune),
	}, nil
}

// Assign returns the character for c, allocating the next unused one if c
// hasn't been seen before
func (b *Builder) Assign(c color.Color) (rune, error) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if r, ok := b.index[n]; ok {
		return r, nil
	}

	if b.next >= AlphabetSize {
		return 0, fmt.Errorf("%w: image has more than %d colors, reduce its palette first", ErrPaletteTooLarge, AlphabetSize)
	}

	r := rune(Alphabet[b.next])
	b.next++

	b.index[n] = r
	b.legend.Set(r, n)

	return r, nil
}

// Legend returns the accumulated legend
func (b *Builder) Legend() *Legend {
	return b.legend
}
