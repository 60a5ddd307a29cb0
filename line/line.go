// Package line turns polylines of pixel points into the connected set of
// pixels that draws them.
package line

import (
	"image"
	"iter"
)

// Rasterize yields the pixels of the polyline through pts. Consecutive
// pixels are 8-connected. Pixels shared by adjacent segments are yielded
// once per segment, so callers that count pixels should deduplicate.
// The sequence is computed afresh on every range over it.
func Rasterize(pts []image.Point) iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		for i, a := range pts {
			b := a
			if i+1 < len(pts) {
				b = pts[i+1]
			}
			if !walk(a, b, yield) {
				return
			}
		}
	}
}

// Segment yields a and every pixel on the way to b, excluding b itself
// unless a == b.
func Segment(a, b image.Point) iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		walk(a, b, yield)
	}
}

func walk(a, b image.Point, yield func(image.Point) bool) bool {
	d := b.Sub(a)
	n := max(abs(d.X), abs(d.Y))
	if n == 0 {
		return yield(a)
	}
	for i := range n {
		p := image.Point{
			X: a.X + roundDiv(d.X*i, n),
			Y: a.Y + roundDiv(d.Y*i, n),
		}
		if !yield(p) {
			return false
		}
	}
	return true
}

// roundDiv divides rounding half away from zero. d > 0.
func roundDiv(v, d int) int {
	if v < 0 {
		return -((-v + d/2) / d)
	}
	return (v + d/2) / d
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
