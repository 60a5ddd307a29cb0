// Package glyph holds the tiny bitmap font used for axis labels: the ten
// digits, the minus sign and the decimal point, each four pixels wide and
// five pixels tall.
package glyph

import (
	"image"
	"iter"
)

const (
	Width   = 4         // glyph width in pixels
	Height  = 5         // glyph height in pixels
	Advance = Width + 1 // distance between the left edges of adjacent glyphs
)

// rows are listed top to bottom.
var table = map[rune][Height]string{
	'0': {" ## ", "#  #", "#  #", "#  #", " ## "},
	'1': {"  # ", " ## ", "# # ", "  # ", "####"},
	'2': {" ## ", "#  #", "  # ", " #  ", "####"},
	'3': {" ## ", "#  #", "  # ", "#  #", " ## "},
	'4': {"#  #", "#  #", " ###", "   #", "   #"},
	'5': {"####", "#   ", "### ", "   #", "### "},
	'6': {" ###", "#   ", "### ", "#  #", " ## "},
	'7': {"####", "   #", "  # ", " #  ", "#   "},
	'8': {" ## ", "#  #", " ## ", "#  #", " ## "},
	'9': {" ## ", "#  #", " ###", "   #", "### "},
	'-': {"    ", "    ", "####", "    ", "    "},
	'.': {"    ", "    ", "    ", "    ", " ## "},
}

var pixels = compile()

func compile() map[rune][]image.Point {
	res := make(map[rune][]image.Point, len(table))
	for r, rows := range table {
		var pts []image.Point
		for i, row := range rows {
			for x, c := range row {
				if c == '#' {
					pts = append(pts, image.Point{X: x, Y: Height - i})
				}
			}
		}
		res[r] = pts
	}
	return res
}

// Pixels returns the lit pixels of r with x in [0, Width) and y in
// [1, Height], y growing upward. Runes without a glyph return nil.
// The returned slice must not be modified.
func Pixels(r rune) []image.Point {
	return pixels[r]
}

// Has reports whether r has a glyph.
func Has(r rune) bool {
	_, ok := pixels[r]
	return ok
}

// Text yields the pixels of s laid out left to right, the first glyph
// starting at column x. Runes without a glyph leave a blank cell.
func Text(s string, x int) iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		for _, r := range s {
			for _, p := range pixels[r] {
				if !yield(image.Point{X: x + p.X, Y: p.Y}) {
					return
				}
			}
			x += Advance
		}
	}
}
