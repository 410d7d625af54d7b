/*
Package text implements a decoder and encoder for images drawn as text.

Each pixel is a single character and a legend at the top of the file maps
characters to colors:

	#
	#!size 2 1
	#!a #FF0000FF
	#!b #00FF00FF
	ab

Every line starting with the meta character (the first character of the
file) belongs to the legend, see package legend for its format. The
remaining lines form the grid; short lines are padded with spaces and any
character missing from the legend is drawn in legend.Fallback. The grid must
hold exactly width by height characters.

Decoded images are always *image.NRGBA so the pixel values are exactly those
written in the legend.
*/
package text

const (
	bytesPerPixel = 4
	pad           = ' '
	newline       = '\n'
)
