package text

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/bodgit/pixeltext/legend"
)

// ErrSizeMismatch is returned when the grid doesn't hold exactly the number
// of pixels declared by the legend
var ErrSizeMismatch = errors.New("text: grid does not match declared size")

// ReadLines reads r to the end and splits it into lines. Each line keeps its
// trailing newline except possibly the last.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString(newline)
		if line != "" {
			lines = append(lines, line)
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// Strip a single line terminator and pad with spaces to at least width
// characters. Longer lines are left alone so they show up as a size
// mismatch rather than being silently cropped.
func padLine(line string, width int) string {
	line = strings.TrimSuffix(line, string(newline))
	line = strings.TrimSuffix(line, "\r")
	if n := utf8.RuneCountInString(line); n < width {
		line += strings.Repeat(string(pad), width-n)
	}
	return line
}

// Convert maps the grid lines through l and returns the resulting image. The
// lines must not include any metadata lines, see legend.Legend.Filter. The
// Pix field of the returned image holds the pixels in row-major order with
// four bytes per pixel and no padding between rows.
func Convert(lines []string, l *legend.Legend) (*image.NRGBA, error) {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(padLine(line, l.Width))
	}

	pix := make([]byte, 0, b.Len()*bytesPerPixel)
	for _, r := range b.String() {
		c := l.Lookup(r)
		pix = append(pix, c.R, c.G, c.B, c.A)
	}

	expected := uint64(l.Width) * uint64(l.Height) * bytesPerPixel
	if actual := uint64(len(pix)); actual != expected {
		return nil, fmt.Errorf("%w: expected image of size %d=%d*%d*%d, but got %d bytes", ErrSizeMismatch, expected, l.Width, l.Height, bytesPerPixel, actual)
	}

	return &image.NRGBA{
		Pix:    pix,
		Stride: l.Width * bytesPerPixel,
		Rect:   image.Rect(0, 0, l.Width, l.Height),
	}, nil
}

type decoder struct {
	lines  []string
	legend *legend.Legend
	image  *image.NRGBA
}

func (d *decoder) decode(r io.Reader, configOnly bool) error {
	var err error
	if d.lines, err = ReadLines(r); err != nil {
		return err
	}

	if d.legend, err = legend.Parse(d.lines); err != nil {
		return err
	}

	if configOnly {
		return nil
	}

	d.image, err = Convert(d.legend.Filter(d.lines), d.legend)
	return err
}

// Decode reads a text image from r and returns it as an image.Image. The
// concrete type is *image.NRGBA.
func Decode(r io.Reader) (image.Image, error) {
	var d decoder
	if err := d.decode(r, false); err != nil {
		return nil, err
	}
	return d.image, nil
}

// DecodeConfig returns the color model and dimensions declared by a text
// image without converting the grid.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var d decoder
	if err := d.decode(r, true); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.NRGBAModel,
		Width:      d.legend.Width,
		Height:     d.legend.Height,
	}, nil
}
