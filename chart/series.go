package chart

import (
	"image/color"
	"iter"
	"math"
	"slices"

	"bmpchart/palette"

	"github.com/cockroachdb/errors"
)

// Point is a data point in domain coordinates.
type Point struct {
	X, Y float64
}

// Series is an ordered run of points drawn as one connected line.
type Series struct {
	name   string
	points []Point
	color  color.RGBA
}

// NewSeries validates points and the "#RRGGBB" color of a series. The
// points are copied.
func NewSeries(points []Point, hex string) (*Series, error) {
	if len(points) < 2 {
		return nil, errors.Wrapf(ErrNotEnoughPoints, "got %d", len(points))
	}
	for i, p := range points {
		if !finite(p.X) || !finite(p.Y) {
			return nil, errors.Wrapf(ErrNonFinitePoint, "point %d is (%g, %g)", i, p.X, p.Y)
		}
	}
	if !slices.ContainsFunc(points[1:], func(p Point) bool { return p != points[0] }) {
		return nil, errors.Wrapf(ErrDegenerateSeries, "%d copies of (%g, %g)", len(points), points[0].X, points[0].Y)
	}
	c, err := palette.ParseHex(hex)
	if err != nil {
		return nil, err
	}
	return &Series{points: slices.Clone(points), color: c}, nil
}

// Named sets the name used in logs and errors and returns s.
func (s *Series) Named(name string) *Series {
	s.name = name
	return s
}

func (s *Series) Name() string {
	if s.name == "" {
		return "unnamed"
	}
	return s.name
}

func (s *Series) Color() color.RGBA {
	return s.color
}

// Points returns a copy of the series points.
func (s *Series) Points() []Point {
	return slices.Clone(s.points)
}

func (s *Series) Len() int {
	return len(s.points)
}

// extent returns the bounding box of the points.
func (s *Series) extent() (minX, maxX, minY, maxY float64) {
	minX, maxX = math.Inf(1), math.Inf(-1)
	minY, maxY = math.Inf(1), math.Inf(-1)
	for _, p := range s.points {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	return
}

// Collect gathers (x, y) pairs from a generator into points.
func Collect(seq iter.Seq2[float64, float64]) []Point {
	var pts []Point
	for x, y := range seq {
		pts = append(pts, Point{X: x, Y: y})
	}
	return pts
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
