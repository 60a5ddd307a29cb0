// Package chart composites axes, gridlines, tick labels and data series
// into an indexed pixel buffer and encodes it as a bitmap.
//
// Buffer coordinates have their origin at the bottom-left corner: row 0
// is the bottom row of the drawing and y grows upward with the data.
package chart

import (
	"bytes"
	"image"
	"io"
	"log/slog"
	"slices"

	"bmpchart/axis"
	"bmpchart/bitmap"
	"bmpchart/palette"

	"github.com/cockroachdb/errors"
)

// State tracks how far a chart has progressed.
type State int

const (
	Created State = iota
	AxesResolved
	Rendered
)

func (s State) String() string {
	switch s {
	case Created:
		return "created"
	case AxesResolved:
		return "axes resolved"
	case Rendered:
		return "rendered"
	default:
		return "unknown"
	}
}

// Options holds the optional parts of a chart. Nil axes are derived from
// the series of the first successful render and kept afterwards.
type Options struct {
	XAxis  *axis.Manual
	YAxis  *axis.Manual
	Logger *slog.Logger
}

// Chart owns one pixel buffer and its palette. It is not safe for
// concurrent use.
type Chart struct {
	width, height int

	// axes from Options or the first render, nil until known
	fixedX, fixedY *axis.Scale
	x, y           *axis.Scale

	pal   *palette.Palette
	bg    uint8
	fg    uint8
	pix   []uint8
	state State

	logger *slog.Logger
}

// New creates a chart of width x height pixels. background and axisColor
// are "#RRGGBB" strings. Manual axes are validated here.
func New(width, height int, background, axisColor string, opts Options) (*Chart, error) {
	if width < 2*axis.Margin || height < 2*axis.Margin {
		return nil, errors.Wrapf(ErrInsufficientCanvasSize, "%dx%d, need at least %dx%d", width, height, 2*axis.Margin, 2*axis.Margin)
	}

	c := &Chart{
		width:  width,
		height: height,
		pal:    palette.New(),
		pix:    make([]uint8, width*height),
		logger: opts.Logger,
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}

	var err error
	if c.bg, err = c.pal.AddHex(background); err != nil {
		return nil, errors.Wrap(err, "background")
	}
	if c.fg, err = c.pal.AddHex(axisColor); err != nil {
		return nil, errors.Wrap(err, "axis color")
	}

	if opts.XAxis != nil {
		if c.fixedX, err = opts.XAxis.Resolve(width); err != nil {
			return nil, errors.Wrap(err, "x axis")
		}
		c.x = c.fixedX
	}
	if opts.YAxis != nil {
		if c.fixedY, err = opts.YAxis.Resolve(height); err != nil {
			return nil, errors.Wrap(err, "y axis")
		}
		c.y = c.fixedY
	}
	if c.x != nil && c.y != nil {
		c.state = AxesResolved
	}
	return c, nil
}

// Render draws series, in order, over the background, grid and axes.
// Later series overwrite earlier ones where they cross. On error the
// chart is left exactly as it was.
func (c *Chart) Render(series ...*Series) error {
	xs, ys, err := c.resolveAxes(series)
	if err != nil {
		return err
	}

	pal := c.pal.Clone()
	colors := make([]uint8, len(series))
	for i, s := range series {
		if colors[i], err = pal.Add(s.color); err != nil {
			return errors.Wrapf(err, "series %q", s.Name())
		}
	}

	cv := canvas{width: c.width, height: c.height, pix: make([]uint8, len(c.pix))}
	cv.fill(c.bg)
	cv.grid(xs, ys, c.fg)
	cv.axes(xs, ys, c.fg)
	for i, s := range series {
		cv.series(s, xs, ys, colors[i])
	}

	c.x, c.y = xs, ys
	c.fixedX, c.fixedY = xs, ys
	c.pal = pal
	c.pix = cv.pix
	c.state = Rendered

	c.logger.Debug("rendered chart",
		"size", c.Bounds().Size(),
		"series", len(series),
		"x", xs,
		"y", ys,
		"colors", pal.Len())
	return nil
}

func (c *Chart) resolveAxes(series []*Series) (xs, ys *axis.Scale, err error) {
	xs, ys = c.fixedX, c.fixedY
	if xs != nil && ys != nil {
		return xs, ys, nil
	}
	if len(series) == 0 {
		return nil, nil, ErrNoSeries
	}

	minX, maxX, minY, maxY := series[0].extent()
	for _, s := range series[1:] {
		x0, x1, y0, y1 := s.extent()
		minX, maxX = min(minX, x0), max(maxX, x1)
		minY, maxY = min(minY, y0), max(maxY, y1)
	}

	if xs == nil {
		if xs, err = axis.ResolveAuto(maxX, minX, c.width); err != nil {
			return nil, nil, errors.Wrap(err, "x axis")
		}
	}
	if ys == nil {
		if ys, err = axis.ResolveAuto(maxY, minY, c.height); err != nil {
			return nil, nil, errors.Wrap(err, "y axis")
		}
	}
	return xs, ys, nil
}

// Draw renders series and returns the encoded bitmap.
func (c *Chart) Draw(series ...*Series) ([]byte, error) {
	if err := c.Render(series...); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := c.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes the rendered chart to w as a bitmap.
func (c *Chart) Encode(w io.Writer) error {
	if c.state != Rendered {
		return ErrNotRendered
	}
	return bitmap.Encode(w, c.width, c.height, c.pal.Colors(), c.pix)
}

func (c *Chart) State() State {
	return c.state
}

func (c *Chart) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// Axes returns copies of the current axes. Derived axes are nil until the
// first render.
func (c *Chart) Axes() (x, y *axis.Scale) {
	return clone(c.x), clone(c.y)
}

func clone(s *axis.Scale) *axis.Scale {
	if s == nil {
		return nil
	}
	cp := *s
	return &cp
}

// Palette returns the colors registered so far, in index order.
func (c *Chart) Palette() *palette.Palette {
	return c.pal.Clone()
}

// Pix returns a copy of the pixel buffer in buffer order.
func (c *Chart) Pix() []uint8 {
	return slices.Clone(c.pix)
}

// ColorIndexAt returns the palette index at (x, y) in buffer coordinates.
func (c *Chart) ColorIndexAt(x, y int) uint8 {
	if !image.Pt(x, y).In(c.Bounds()) {
		return c.bg
	}
	return c.pix[y*c.width+x]
}
