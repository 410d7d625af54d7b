/*
Package pixeltext is a library for converting between images and text files
where each character is a pixel, in either direction.
*/
package pixeltext

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bodgit/pixeltext/legend"
	"github.com/bodgit/pixeltext/palette"
)

// DefaultImageFile is written when converting text and no output file is
// given
const DefaultImageFile = "stdin.png"

var (
	// ErrUnreadableSource is returned when the input can't be opened,
	// read or decoded
	ErrUnreadableSource = errors.New("pixeltext: unreadable source")
	// ErrUnwritableDestination is returned when the output can't be
	// created or written
	ErrUnwritableDestination = errors.New("pixeltext: unwritable destination")
	// ErrUnsupportedFormat is returned for an output file extension that
	// has no image encoder
	ErrUnsupportedFormat = errors.New("pixeltext: unsupported image format")
	errBadScale          = errors.New("pixeltext: scale must be at least 1")
)

// Options control the optional processing around the core conversion
type Options struct {
	// Mode selects the conversion direction
	Mode Mode
	// Meta is the meta character used when writing text, zero means '#'
	Meta rune
	// Colors reduces an input image to at most this many colors before
	// converting it to text, zero disables it
	Colors int
	// Width and Height resize an input image before converting it to
	// text. If only one is set the aspect ratio is kept.
	Width  uint
	Height uint
	// Scale enlarges the image produced from text by an integer factor
	Scale int
}

// Converter converts text to images and images to text
type Converter struct {
	opts   Options
	logger *log.Logger

	stdin  io.Reader
	stdout io.Writer
}

// New returns a Converter using opts, logging progress to logger
func New(logger *log.Logger, opts Options) (*Converter, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	if opts.Scale == 0 {
		opts.Scale = 1
	}
	if opts.Scale < 1 {
		return nil, errBadScale
	}

	if opts.Meta != 0 {
		if err := legend.ValidateMeta(opts.Meta); err != nil {
			return nil, err
		}
	}

	if opts.Colors < 0 || opts.Colors > legend.AlphabetSize {
		return nil, fmt.Errorf("%w: %d is not between 0 and %d", palette.ErrBadColorCount, opts.Colors, legend.AlphabetSize)
	}

	return &Converter{
		opts:   opts,
		logger: logger,
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}, nil
}
