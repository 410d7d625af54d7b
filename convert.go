package pixeltext

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/bodgit/pixeltext/legend"
	"github.com/bodgit/pixeltext/palette"
	"github.com/bodgit/pixeltext/text"
	"github.com/dustin/go-humanize"
	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// Mode selects the direction of a conversion
type Mode int

const (
	// ModeAuto picks the direction from the input filename; anything
	// that isn't an image file, including standard input, is text
	ModeAuto Mode = iota
	// ModeText converts text to an image
	ModeText
	// ModeImage converts an image to text
	ModeImage
)

var modeNames = map[Mode]string{
	ModeAuto:  "auto",
	ModeText:  "text",
	ModeImage: "image",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode returns the Mode named by s
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}
	return ModeAuto, fmt.Errorf("pixeltext: unknown mode %q", s)
}

func isStdio(path string) bool {
	return path == "" || path == "-"
}

// Resolve returns the direction used for infile
func (c *Converter) Resolve(infile string) Mode {
	if c.opts.Mode != ModeAuto {
		return c.opts.Mode
	}
	if IsImageFile(infile) {
		return ModeImage
	}
	return ModeText
}

// TextToImage reads a text image from r and writes it to w encoded as format
func (c *Converter) TextToImage(r io.Reader, w io.Writer, format string) error {
	enc, err := encoderFor(format)
	if err != nil {
		return err
	}

	lines, err := text.ReadLines(r)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreadableSource, err)
	}

	l, err := legend.Parse(lines)
	if err != nil {
		return err
	}
	c.logger.Printf("Legend declares %dx%d image with %d colors\n", l.Width, l.Height, l.Len())

	var m image.Image
	if m, err = text.Convert(l.Filter(lines), l); err != nil {
		return err
	}

	if c.opts.Scale > 1 {
		b := m.Bounds()
		m = resize.Resize(uint(b.Dx()*c.opts.Scale), uint(b.Dy()*c.opts.Scale), m, resize.NearestNeighbor)
		c.logger.Printf("Scaled image by %d to %dx%d\n", c.opts.Scale, m.Bounds().Dx(), m.Bounds().Dy())
	}

	if err := enc(w, m); err != nil {
		return fmt.Errorf("%w: %v", ErrUnwritableDestination, err)
	}

	return nil
}

// shrink resizes m to width by height by picking the nearest source pixel so
// no new colors are introduced. A zero dimension keeps the aspect ratio.
func shrink(m image.Image, width, height uint) *image.NRGBA {
	b := m.Bounds()
	w, h := int(width), int(height)
	switch {
	case w == 0:
		w = int(0.7 + float64(h)*float64(b.Dx())/float64(b.Dy()))
	case h == 0:
		h = int(0.7 + float64(w)*float64(b.Dy())/float64(b.Dx()))
	}

	dst := image.NewNRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), m, b, draw.Src, nil)

	return dst
}

// ImageToText reads an image in any registered format from r and writes it
// to w as text
func (c *Converter) ImageToText(r io.Reader, w io.Writer) error {
	m, format, err := image.Decode(r)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreadableSource, err)
	}
	c.logger.Printf("Decoded %dx%d %s image\n", m.Bounds().Dx(), m.Bounds().Dy(), format)

	if c.opts.Width > 0 || c.opts.Height > 0 {
		m = shrink(m, c.opts.Width, c.opts.Height)
		c.logger.Printf("Resized image to %dx%d\n", m.Bounds().Dx(), m.Bounds().Dy())
	}

	if c.opts.Colors > 0 {
		before := palette.Count(m)
		if m, err = palette.Reduce(m, c.opts.Colors); err != nil {
			return err
		}
		c.logger.Printf("Reduced palette from %d to %d colors\n", before, palette.Count(m))
	}

	lines, err := text.Marshal(m, &text.Options{Meta: c.opts.Meta})
	if err != nil {
		return err
	}
	c.logger.Printf("Assigned characters to %d colors\n", len(lines)-m.Bounds().Dy()-2)

	if err := text.WriteLines(w, lines); err != nil {
		return fmt.Errorf("%w: %v", ErrUnwritableDestination, err)
	}

	return nil
}

func (c *Converter) openInput(infile string) (io.ReadCloser, error) {
	if isStdio(infile) {
		return io.NopCloser(c.stdin), nil
	}
	f, err := os.Open(infile)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableSource, err)
	}
	return f, nil
}

func (c *Converter) writeOutput(outfile string, b *bytes.Buffer) error {
	n := b.Len()
	if isStdio(outfile) {
		if _, err := b.WriteTo(c.stdout); err != nil {
			return fmt.Errorf("%w: %v", ErrUnwritableDestination, err)
		}
		c.logger.Printf("Wrote %s to standard output\n", humanize.Bytes(uint64(n)))
		return nil
	}

	if err := os.WriteFile(outfile, b.Bytes(), 0666); err != nil {
		return fmt.Errorf("%w: %v", ErrUnwritableDestination, err)
	}
	c.logger.Printf("Wrote %s to \"%s\"\n", humanize.Bytes(uint64(n)), outfile)

	return nil
}

// ConvertFile converts infile and writes the result to outfile. An empty or
// "-" infile reads standard input. When converting an image to text an
// empty or "-" outfile writes to standard output. When converting text to
// an image an empty outfile means DefaultImageFile and "-" writes PNG to
// standard output. Nothing is written unless the conversion succeeds.
func (c *Converter) ConvertFile(infile, outfile string) error {
	r, err := c.openInput(infile)
	if err != nil {
		return err
	}
	defer r.Close()

	b := new(bytes.Buffer)

	switch c.Resolve(infile) {
	case ModeImage:
		c.logger.Printf("Converting image \"%s\" to text\n", infile)
		if err := c.ImageToText(r, b); err != nil {
			return err
		}
	default:
		if outfile == "" {
			outfile = DefaultImageFile
		}

		format := formatPNG
		if !isStdio(outfile) {
			if format, err = FormatFromPath(outfile); err != nil {
				return err
			}
		}

		c.logger.Printf("Converting text \"%s\" to %s image\n", infile, format)
		if err := c.TextToImage(r, b, format); err != nil {
			return err
		}
	}

	return c.writeOutput(outfile, b)
}
