package axis

import (
	"image"
	"slices"
	"testing"

	"bmpchart/glyph"
)

func TestTicksNormalizeNegativeZero(t *testing.T) {
	s, err := ResolveManual(-1, 1, 2, 1, 200)
	if err != nil {
		t.Fatal(err)
	}

	ticks := s.Ticks()
	want := []string{"-1.0", "0.0"}
	if len(ticks) != len(want) {
		t.Fatalf("got %d ticks, want %d", len(ticks), len(want))
	}
	for i, tick := range ticks {
		if tick.Label != want[i] {
			t.Errorf("tick %d label = %q, want %q", i, tick.Label, want[i])
		}
	}
}

func TestLayoutTickMarks(t *testing.T) {
	s, err := ResolveAuto(100, 0, 89+Margin)
	if err != nil {
		t.Fatal(err)
	}

	pts := slices.Collect(s.Layout(Horizontal))
	for _, tick := range s.Ticks() {
		x := Origin + tick.Offset
		for dy := 1; dy <= TickLength; dy++ {
			if !slices.Contains(pts, image.Pt(x, Origin-dy)) {
				t.Errorf("missing tick mark pixel (%d, %d)", x, Origin-dy)
			}
		}
	}

	labels := 0
	for _, tick := range s.Ticks() {
		for _, r := range tick.Label {
			labels += len(glyph.Pixels(r))
		}
	}
	if want := labels + len(s.Ticks())*TickLength; len(pts) != want {
		t.Errorf("Layout() yielded %d pixels, want %d", len(pts), want)
	}
}

func TestLayoutStaysInStrip(t *testing.T) {
	s, err := ResolveManual(-1000, 1000, 4, 0, 400)
	if err != nil {
		t.Fatal(err)
	}

	for _, o := range []Orientation{Horizontal, Vertical} {
		for p := range s.Layout(o) {
			if p.Y < Border || p.Y >= Origin {
				t.Errorf("%s: pixel %v crosses the axis line", o, p)
			}
		}
	}
}

func TestLayoutIdempotent(t *testing.T) {
	s, err := ResolveAuto(1.54543, 1.34, 215)
	if err != nil {
		t.Fatal(err)
	}

	for _, o := range []Orientation{Horizontal, Vertical} {
		first := slices.Collect(s.Layout(o))
		second := slices.Collect(s.Layout(o))
		if !slices.Equal(first, second) {
			t.Errorf("%s: Layout() differs between calls", o)
		}
	}
}

func TestLayoutVerticalMirrorsLabels(t *testing.T) {
	s, err := ResolveAuto(100, 0, 89+Margin)
	if err != nil {
		t.Fatal(err)
	}

	h := slices.Collect(s.Layout(Horizontal))
	v := slices.Collect(s.Layout(Vertical))
	if len(h) != len(v) {
		t.Fatalf("got %d and %d pixels", len(h), len(v))
	}
	for i := range h {
		if h[i].X != v[i].X {
			t.Fatalf("pixel %d: x %d != %d", i, h[i].X, v[i].X)
		}
		if h[i].Y >= Origin-TickLength {
			// tick marks are not mirrored
			if h[i] != v[i] {
				t.Errorf("tick pixel %d: %v != %v", i, h[i], v[i])
			}
			continue
		}
		if v[i].Y != labelHeight-h[i].Y {
			t.Errorf("label pixel %d: vertical y %d, horizontal y %d", i, v[i].Y, h[i].Y)
		}
	}
}

func TestLayoutStopsEarly(t *testing.T) {
	s, err := ResolveAuto(100, 0, 89+Margin)
	if err != nil {
		t.Fatal(err)
	}

	n := 0
	for range s.Layout(Horizontal) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("iterated %d times, want 3", n)
	}
}

func TestOrientationString(t *testing.T) {
	if Horizontal.String() != "horizontal" || Vertical.String() != "vertical" {
		t.Error("unexpected orientation names")
	}
	if Orientation(7).String() != "unknown" {
		t.Error("unexpected name for invalid orientation")
	}
}
