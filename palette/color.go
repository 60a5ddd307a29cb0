package palette

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrInvalidColorFormat is returned for color strings that are not #RGB or #RRGGBB.
var ErrInvalidColorFormat = errors.New("invalid color format")

// ParseHex reads a "#RRGGBB" (or short "#RGB") color. The result is always opaque.
func ParseHex(s string) (color.RGBA, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.RGBA{}, errors.Wrapf(ErrInvalidColorFormat, "%q: missing leading '#'", s)
	}

	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return color.RGBA{}, errors.Wrapf(ErrInvalidColorFormat, "%q: should be #RGB or #RRGGBB", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, errors.Wrapf(ErrInvalidColorFormat, "%q: %v", s, err)
	}

	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xFF,
	}, nil
}

// Hex formats c as "#rrggbb", dropping alpha.
func Hex(c color.Color) string {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}

// Series is Paul Tol's qualitative palette, used when a series has no
// explicit color. See: https://personal.sron.nl/~pault/
var Series = []color.RGBA{
	{R: 0x44, G: 0x77, B: 0xAA, A: 0xFF}, // blue
	{R: 0xEE, G: 0x66, B: 0x77, A: 0xFF}, // rose
	{R: 0x22, G: 0x88, B: 0x33, A: 0xFF}, // green
	{R: 0xCC, G: 0xBB, B: 0x44, A: 0xFF}, // olive
	{R: 0x66, G: 0xCC, B: 0xEE, A: 0xFF}, // cyan
	{R: 0xAA, G: 0x33, B: 0x77, A: 0xFF}, // purple
	{R: 0xBB, G: 0xBB, B: 0xBB, A: 0xFF}, // grey
	{R: 0xEE, G: 0x88, B: 0x66, A: 0xFF}, // orange
	{R: 0x44, G: 0xBB, B: 0x99, A: 0xFF}, // teal
	{R: 0xFF, G: 0xAA, B: 0xBB, A: 0xFF}, // pink
}

// Cycle returns colors[index % len(colors)], falling back to Series when
// colors is empty.
func Cycle(colors []color.RGBA, index int) color.RGBA {
	if len(colors) == 0 {
		colors = Series
	}
	return colors[index%len(colors)]
}
