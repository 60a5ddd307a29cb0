package axis

import (
	"fmt"
	"image"
	"iter"
	"math"
	"strconv"

	"bmpchart/glyph"
)

// Orientation selects how tick labels are laid out.
type Orientation int

const (
	// Horizontal lays labels out for an axis drawn along x.
	Horizontal Orientation = iota
	// Vertical mirrors label rows so that the points read correctly once
	// the caller swaps x and y.
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// labelHeight is the height of the label band including its border row.
const labelHeight = glyph.Height + Border

// Tick is one labelled tick mark.
type Tick struct {
	Value  float64
	Label  string
	Offset int // pixel offset from Origin
}

// Ticks returns the labelled ticks of s, one per interval start. The tick
// at Max carries no label; the arrowhead marks the end of the axis.
func (s *Scale) Ticks() []Tick {
	ticks := make([]Tick, s.Intervals)
	for i := range ticks {
		v := roundAt(s.Min+s.Step*float64(i), s.Decimals)
		if v == 0 {
			v = 0 // drop the sign of -0
		}
		ticks[i] = Tick{
			Value:  v,
			Label:  strconv.FormatFloat(v, 'f', s.Decimals, 64),
			Offset: s.Offset(i),
		}
	}
	return ticks
}

// Layout yields the pixels of every tick mark and label of s in axis
// strip coordinates: x runs along the axis, y across it, with the axis
// line at y == Origin.
func (s *Scale) Layout(o Orientation) iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		for _, t := range s.Ticks() {
			x := Origin + t.Offset
			for dy := TickLength; dy > 0; dy-- {
				if !yield(image.Point{X: x, Y: Origin - dy}) {
					return
				}
			}
			for p := range glyph.Text(t.Label, x-glyph.Width) {
				if o == Vertical {
					p.Y = labelHeight - p.Y
				}
				if !yield(p) {
					return
				}
			}
		}
	}
}

// String is used in logs.
func (s *Scale) String() string {
	return fmt.Sprintf("[%.*f, %.*f] step %.*f x%d",
		s.Decimals, s.Min, s.Decimals, s.Max, s.Decimals, s.Step, s.Intervals)
}

// Contains reports whether v lies inside the resolved range.
func (s *Scale) Contains(v float64) bool {
	return v >= s.Min && v <= s.Max && !math.IsNaN(v)
}
