// Package axis derives readable axis scales from data ranges, maps domain
// values onto pixel offsets and lays out tick marks with their labels.
//
// All pixel coordinates in this package are measured along an axis strip:
// the axis line runs at offset Origin, data occupies offsets
// Origin..Origin+Available, and the strip ends with the arrowhead and a
// one pixel border.
package axis

import (
	"math"
	"strconv"

	"bmpchart/glyph"

	"github.com/cockroachdb/errors"
)

const (
	Border     = 1 // blank pixels at the canvas edge
	LabelGap   = 1 // blank pixels between a label and its tick mark
	TickLength = 2
	Arrow      = 4 // length of the arrowhead beyond the last data pixel

	// Origin is the offset of the axis line from the canvas edge.
	Origin = Border + glyph.Height + LabelGap + TickLength
	// Margin is the number of pixels along an axis that cannot hold data.
	Margin = Origin + 1 + Arrow + Border

	// LabelPixelWidth is the space reserved per label character.
	LabelPixelWidth = glyph.Width + 2

	MaxIntervals = 10
	MaxDecimals  = 15
)

var (
	// ErrInsufficientCanvasSize is returned when the fixed margins leave no room for data.
	ErrInsufficientCanvasSize = errors.New("insufficient canvas size")
	// ErrDegenerateRange is returned for empty, inverted or non-finite ranges.
	ErrDegenerateRange = errors.New("degenerate axis range")
	// ErrInvalidScale is returned for manual interval counts or precisions out of range.
	ErrInvalidScale = errors.New("invalid axis scale")
)

// Scale is a resolved axis. Max == Min + Step*Intervals, so every tick
// lands on a value with at most Decimals fractional digits.
type Scale struct {
	Min, Max   float64
	Intervals  int     // number of tick intervals, 1..MaxIntervals
	Step       float64 // value distance between adjacent ticks
	StepPixels float64 // pixel distance between adjacent ticks
	Decimals   int     // fractional digits shown on labels
	Available  int     // pixels usable for data
}

// Manual is a caller-chosen scale, resolved against a canvas size with Resolve.
type Manual struct {
	Min       float64 `yaml:"min"`
	Max       float64 `yaml:"max"`
	Intervals int     `yaml:"intervals"`
	Decimals  int     `yaml:"decimals"`
}

// Resolve is shorthand for ResolveManual.
func (m Manual) Resolve(totalPixels int) (*Scale, error) {
	return ResolveManual(m.Min, m.Max, m.Intervals, m.Decimals, totalPixels)
}

// ResolveAuto picks a readable scale covering [dataMin, dataMax] on an
// axis totalPixels long. The resolved range may be wider than the data.
func ResolveAuto(dataMax, dataMin float64, totalPixels int) (*Scale, error) {
	available, err := availablePixels(totalPixels)
	if err != nil {
		return nil, err
	}
	if err := checkRange(dataMin, dataMax); err != nil {
		return nil, err
	}

	decimals, ok := decimalPlaces(dataMax - dataMin)
	if !ok {
		return nil, errors.Wrapf(ErrDegenerateRange, "range [%g, %g] is too narrow to label", dataMin, dataMax)
	}
	digits := max(digitCount(dataMax), digitCount(dataMin)) + 1 + decimals
	intervals := intervalCount(available, digits)

	minValue := floorAt(dataMin, decimals)
	maxValue := ceilAt(dataMax, decimals)
	step := ceilAt((maxValue-minValue)/float64(intervals), decimals)
	maxValue = roundAt(minValue+step*float64(intervals), decimals)

	return &Scale{
		Min:        minValue,
		Max:        maxValue,
		Intervals:  intervals,
		Step:       step,
		StepPixels: float64(available) / float64(intervals),
		Decimals:   decimals,
		Available:  available,
	}, nil
}

// ResolveManual builds a scale from caller-supplied values. Data outside
// [minValue, maxValue] is not rejected here; Map pins it to the edges.
func ResolveManual(minValue, maxValue float64, intervals, decimals, totalPixels int) (*Scale, error) {
	available, err := availablePixels(totalPixels)
	if err != nil {
		return nil, err
	}
	if err := checkRange(minValue, maxValue); err != nil {
		return nil, err
	}
	if intervals < 1 || intervals > MaxIntervals {
		return nil, errors.Wrapf(ErrInvalidScale, "%d intervals, want 1..%d", intervals, MaxIntervals)
	}
	if decimals < 0 || decimals > MaxDecimals {
		return nil, errors.Wrapf(ErrInvalidScale, "%d decimal places, want 0..%d", decimals, MaxDecimals)
	}

	return &Scale{
		Min:        minValue,
		Max:        maxValue,
		Intervals:  intervals,
		Step:       (maxValue - minValue) / float64(intervals),
		StepPixels: float64(available) / float64(intervals),
		Decimals:   decimals,
		Available:  available,
	}, nil
}

func availablePixels(totalPixels int) (int, error) {
	if totalPixels <= Margin {
		return 0, errors.Wrapf(ErrInsufficientCanvasSize, "%d pixels along the axis, need more than %d", totalPixels, Margin)
	}
	return totalPixels - Margin, nil
}

func checkRange(minValue, maxValue float64) error {
	if math.IsInf(minValue, 0) || math.IsInf(maxValue, 0) {
		return errors.Wrapf(ErrDegenerateRange, "range [%g, %g] is not finite", minValue, maxValue)
	}
	// also catches NaN
	if !(maxValue > minValue) {
		return errors.Wrapf(ErrDegenerateRange, "range [%g, %g] is empty", minValue, maxValue)
	}
	if math.IsInf(maxValue-minValue, 0) {
		return errors.Wrapf(ErrDegenerateRange, "range [%g, %g] is too wide", minValue, maxValue)
	}
	return nil
}

// decimalPlaces returns how many fractional digits tell the ends of a
// range of width d apart.
func decimalPlaces(d float64) (int, bool) {
	n := 0
	for d < 10 {
		if n == MaxDecimals {
			return 0, false
		}
		d *= 10
		n++
	}
	return n, true
}

// digitCount is the number of characters of the integer part of v,
// including a minus sign.
func digitCount(v float64) int {
	n := len(strconv.FormatFloat(math.Abs(math.Trunc(v)), 'f', 0, 64))
	if v < 0 {
		n++
	}
	return n
}

// intervalCount leaves room for one label of digits characters per
// interval plus one spare.
func intervalCount(available, digits int) int {
	k := available/(LabelPixelWidth*digits) - 1
	return min(max(k, 1), MaxIntervals)
}

// floorAt never returns more than v, even when snapping moved v*p up.
func floorAt(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	r := math.Floor(snap(v*p)) / p
	if r > v {
		r = math.Floor(v*p) / p
	}
	if r > v {
		r = (math.Floor(v*p) - 1) / p
	}
	return r
}

// ceilAt never returns less than v.
func ceilAt(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	r := math.Ceil(snap(v*p)) / p
	if r < v {
		r = math.Ceil(v*p) / p
	}
	if r < v {
		r = (math.Ceil(v*p) + 1) / p
	}
	return r
}

func roundAt(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(v*p) / p
}

// snap removes float noise such as 0.3*10 == 3.0000000000000004 so that
// floor and ceil do not step to the next integer.
func snap(v float64) float64 {
	if r := math.Round(v); math.Abs(v-r) < 1e-9 {
		return r
	}
	return v
}
