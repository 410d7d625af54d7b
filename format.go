package pixeltext

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/ericpauley/go-quantize/quantize"
	"golang.org/x/image/bmp"
)

// Importing the codecs also registers their decoders for image.Decode
const (
	formatPNG  = "png"
	formatBMP  = "bmp"
	formatJPEG = "jpeg"
	formatGIF  = "gif"
)

// Extensions that mark an input file as an image. The match is case
// sensitive and ".jepg" is accepted for compatibility with older scripts.
var imageExtensions = []string{".png", ".bmp", ".jpg", ".jpeg", ".jepg"}

var formatExtensions = map[string]string{
	".png":  formatPNG,
	".bmp":  formatBMP,
	".jpg":  formatJPEG,
	".jpeg": formatJPEG,
	".jepg": formatJPEG,
	".gif":  formatGIF,
}

type encodeFunc func(io.Writer, image.Image) error

var encoders = map[string]encodeFunc{
	formatPNG: png.Encode,
	formatBMP: bmp.Encode,
	formatJPEG: func(w io.Writer, m image.Image) error {
		return jpeg.Encode(w, m, &jpeg.Options{Quality: 100})
	},
	formatGIF: func(w io.Writer, m image.Image) error {
		return gif.Encode(w, m, &gif.Options{
			NumColors: 256,
			Quantizer: &quantize.MedianCutQuantizer{},
		})
	},
}

// IsImageFile reports whether path names an image rather than a text file,
// judging by its extension alone
func IsImageFile(path string) bool {
	for _, ext := range imageExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// FormatFromPath returns the image format to write for path
func FormatFromPath(path string) (string, error) {
	if f, ok := formatExtensions[filepath.Ext(path)]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
}

func encoderFor(format string) (encodeFunc, error) {
	if e, ok := encoders[format]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}
