package text

import (
	"bufio"
	"image"
	"io"
	"strings"

	"github.com/bodgit/pixeltext/legend"
)

// Options are the encoding parameters
type Options struct {
	// Meta is the character that prefixes every legend line. The zero
	// value means legend.DefaultMeta.
	Meta rune
}

func (o *Options) meta() rune {
	if o == nil || o.Meta == 0 {
		return legend.DefaultMeta
	}
	return o.Meta
}

type encoder struct {
	w *bufio.Writer
}

func (e *encoder) encode(lines []string) error {
	for _, line := range lines {
		if _, err := e.w.WriteString(line); err != nil {
			return err
		}
		if err := e.w.WriteByte(newline); err != nil {
			return err
		}
	}
	return e.w.Flush()
}

// Marshal converts m into lines of text, without line terminators. The
// legend comes first, followed by one line per row of pixels. Characters are
// assigned from legend.Alphabet in the order colors are first seen scanning
// left to right, top to bottom.
func Marshal(m image.Image, o *Options) ([]string, error) {
	bounds := m.Bounds()

	b, err := legend.NewBuilder(o.meta(), bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	rows := make([]string, 0, bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		var row strings.Builder
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, err := b.Assign(m.At(x, y))
			if err != nil {
				return nil, err
			}
			row.WriteRune(r)
		}
		rows = append(rows, row.String())
	}

	return append(b.Legend().Header(), rows...), nil
}

// WriteLines writes lines to w, terminating each with a newline
func WriteLines(w io.Writer, lines []string) error {
	e := encoder{w: bufio.NewWriter(w)}

	return e.encode(lines)
}

// Encode writes the Image m to w as text. Options may be nil.
func Encode(w io.Writer, m image.Image, o *Options) error {
	lines, err := Marshal(m, o)
	if err != nil {
		return err
	}

	return WriteLines(w, lines)
}
