/*
Package palette reduces the number of distinct colors in an image so that it
fits within the character alphabet of a text image.
*/
package palette

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/bodgit/pixeltext/legend"
	"github.com/ericpauley/go-quantize/quantize"
)

// ErrBadColorCount is returned when asking for an unusable number of colors
var ErrBadColorCount = errors.New("palette: invalid number of colors")

// Count returns the number of distinct colors in m, compared as
// non-premultiplied RGBA values
func Count(m image.Image) int {
	colors := make(map[color.NRGBA]struct{})
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			colors[color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)] = struct{}{}
		}
	}
	return len(colors)
}

// Reduce returns m with no more than n distinct colors. If m already fits it
// is returned unchanged, otherwise a median cut palette is computed and every
// pixel is replaced by its nearest palette entry without dithering.
func Reduce(m image.Image, n int) (image.Image, error) {
	if n < 1 || n > legend.AlphabetSize {
		return nil, fmt.Errorf("%w: %d is not between 1 and %d", ErrBadColorCount, n, legend.AlphabetSize)
	}

	if Count(m) <= n {
		return m, nil
	}

	b := m.Bounds()

	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, n), m))
	draw.Draw(pm, b, m, b.Min, draw.Src)

	// Adjust image so that top-left corner is at (0, 0)
	if pm.Rect.Min != (image.Point{}) {
		dup := *pm
		dup.Rect = dup.Rect.Sub(dup.Rect.Min)
		pm = &dup
	}

	return pm, nil
}
