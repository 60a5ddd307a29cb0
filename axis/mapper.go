package axis

import "math"

// Map converts a domain value into a pixel offset from Origin. Values
// outside [Min, Max] are pinned to 0 or Available instead of being dropped.
func (s *Scale) Map(v float64) int {
	resolution := (s.Max - s.Min) / float64(s.Available)
	off := math.Round((v - s.Min) / resolution)
	switch {
	case math.IsNaN(off) || off < 0:
		return 0
	case off > float64(s.Available):
		return s.Available
	}
	return int(off)
}

// Offset returns the pixel offset of tick i, 0 <= i <= Intervals.
func (s *Scale) Offset(i int) int {
	return int(math.Round(s.StepPixels * float64(i)))
}
