package legend

import (
	"encoding/hex"
	"errors"
	"fmt"
	"image/color"
	"strings"
)

const hexDigits = 8

// ParseColor parses an RRGGBBAA hex color. Any leading '#' characters and
// surrounding whitespace are removed, case is ignored and anything after the
// first eight digits is ignored.
func ParseColor(s string) (color.NRGBA, error) {
	h := strings.TrimLeft(strings.TrimSpace(s), "#")
	if len(h) < hexDigits {
		return color.NRGBA{}, fmt.Errorf("%w: %q has fewer than 8 RGBA digits", ErrMalformedColor, s)
	}

	b, err := hex.DecodeString(h[:hexDigits])
	if err != nil {
		var ib hex.InvalidByteError
		if errors.As(err, &ib) {
			return color.NRGBA{}, fmt.Errorf("%w: %q in %q", ErrInvalidHex, byte(ib), s)
		}
		return color.NRGBA{}, fmt.Errorf("%w: %v", ErrMalformedColor, err)
	}

	return color.NRGBA{b[0], b[1], b[2], b[3]}, nil
}

// FormatColor returns c as '#' followed by eight upper case hex digits. The
// channels are not premultiplied by alpha.
func FormatColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02X%02X%02X%02X", n.R, n.G, n.B, n.A)
}
