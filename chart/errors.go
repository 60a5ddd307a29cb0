package chart

import (
	"bmpchart/axis"
	"bmpchart/palette"

	"github.com/cockroachdb/errors"
)

var (
	ErrInsufficientCanvasSize = axis.ErrInsufficientCanvasSize
	ErrDegenerateAxisRange    = axis.ErrDegenerateRange
	ErrPaletteExhausted       = palette.ErrExhausted
	ErrInvalidColorFormat     = palette.ErrInvalidColorFormat

	ErrNotEnoughPoints  = errors.New("series needs at least two points")
	ErrDegenerateSeries = errors.New("all series points are identical")
	ErrNonFinitePoint   = errors.New("series point is not finite")
	ErrNoSeries         = errors.New("no series to derive an axis from")
	ErrNotRendered      = errors.New("chart has not been rendered")
)
