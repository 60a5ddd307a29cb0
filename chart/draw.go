package chart

import (
	"image"

	"bmpchart/axis"
	"bmpchart/line"
)

// barb is the reach of each arrowhead stroke back from the tip.
const barb = 2

// canvas is a pixel buffer under construction. Writes outside it are
// dropped.
type canvas struct {
	width, height int
	pix           []uint8
}

func (cv *canvas) set(p image.Point, idx uint8) {
	if p.X < 0 || p.Y < 0 || p.X >= cv.width || p.Y >= cv.height {
		return
	}
	cv.pix[p.Y*cv.width+p.X] = idx
}

func (cv *canvas) fill(idx uint8) {
	for i := range cv.pix {
		cv.pix[i] = idx
	}
}

func (cv *canvas) polyline(pts []image.Point, idx uint8) {
	for p := range line.Rasterize(pts) {
		cv.set(p, idx)
	}
}

// grid draws a dashed line across the data area at every tick after the
// first.
func (cv *canvas) grid(xs, ys *axis.Scale, idx uint8) {
	for i := 1; i <= xs.Intervals; i++ {
		x := axis.Origin + xs.Offset(i)
		for dy := 0; dy <= ys.Available; dy += 2 {
			cv.set(image.Pt(x, axis.Origin+dy), idx)
		}
	}
	for i := 1; i <= ys.Intervals; i++ {
		y := axis.Origin + ys.Offset(i)
		for dx := 0; dx <= xs.Available; dx += 2 {
			cv.set(image.Pt(axis.Origin+dx, y), idx)
		}
	}
}

// axes draws both axis lines with arrowheads, tick marks and labels.
func (cv *canvas) axes(xs, ys *axis.Scale, idx uint8) {
	o := image.Pt(axis.Origin, axis.Origin)

	tip := image.Pt(axis.Origin+xs.Available+axis.Arrow, axis.Origin)
	cv.polyline([]image.Point{o, tip}, idx)
	cv.polyline([]image.Point{tip.Add(image.Pt(-barb, barb)), tip, tip.Add(image.Pt(-barb, -barb))}, idx)

	tip = image.Pt(axis.Origin, axis.Origin+ys.Available+axis.Arrow)
	cv.polyline([]image.Point{o, tip}, idx)
	cv.polyline([]image.Point{tip.Add(image.Pt(-barb, -barb)), tip, tip.Add(image.Pt(barb, -barb))}, idx)

	for p := range xs.Layout(axis.Horizontal) {
		cv.set(p, idx)
	}
	// the vertical strip runs along y, so swap coordinates
	for p := range ys.Layout(axis.Vertical) {
		cv.set(image.Pt(p.Y, p.X), idx)
	}
}

func (cv *canvas) series(s *Series, xs, ys *axis.Scale, idx uint8) {
	pts := make([]image.Point, len(s.points))
	for i, p := range s.points {
		pts[i] = image.Pt(axis.Origin+xs.Map(p.X), axis.Origin+ys.Map(p.Y))
	}
	cv.polyline(pts, idx)
}
