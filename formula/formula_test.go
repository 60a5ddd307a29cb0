package formula

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
)

func collect(start, stop, step float64, f Func) (xs, ys []float64) {
	for x, y := range Sample(start, stop, step, f) {
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys
}

func near(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-9 {
			return false
		}
	}
	return true
}

func TestSample(t *testing.T) {
	identity := func(x float64) float64 { return x }
	tests := []struct {
		name              string
		start, stop, step float64
		want              []float64
	}{
		{"ascending inclusive", 0, 1, 0.25, []float64{0, 0.25, 0.5, 0.75, 1}},
		{"descending inclusive", 1, -1, 0.5, []float64{1, 0.5, 0, -0.5, -1}},
		{"stop not on a step", 0, 1, 0.3, []float64{0, 0.3, 0.6, 0.9}},
		{"single point", 0.8, 0.8, 0.01, []float64{0.8}},
		{"tenths reach stop", -1, 1, 0.1, []float64{-1, -0.9, -0.8, -0.7, -0.6, -0.5, -0.4, -0.3, -0.2, -0.1, 0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1}},
		{"zero step", 0, 1, 0, nil},
		{"negative step", 0, 1, -0.1, nil},
		{"NaN step", 0, 1, math.NaN(), nil},
		{"infinite stop", 0, math.Inf(1), 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs, ys := collect(tt.start, tt.stop, tt.step, identity)
			if !near(xs, tt.want) {
				t.Errorf("Sample() x = %v, want %v", xs, tt.want)
			}
			if !near(ys, xs) {
				t.Errorf("Sample() y = %v, want %v", ys, xs)
			}
		})
	}
}

func TestSampleEndsExactlyOnStop(t *testing.T) {
	xs, _ := collect(-1, 1, 0.01, func(float64) float64 { return 0 })
	if len(xs) != 201 {
		t.Fatalf("got %d samples, want 201", len(xs))
	}
	if xs[len(xs)-1] != 1 {
		t.Errorf("last x = %v, want exactly 1", xs[len(xs)-1])
	}
}

func TestSampleRestartable(t *testing.T) {
	seq := Sample(0, 2, 0.5, math.Sqrt)
	n := 0
	for range seq {
		n++
	}
	for range seq {
		n++
	}
	if n != 10 {
		t.Errorf("two passes yielded %d pairs, want 10", n)
	}
}

func TestSampleStopsEarly(t *testing.T) {
	n := 0
	for range Sample(0, 100, 1, math.Sin) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("iterated %d times, want 3", n)
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"square", 3, 9},
		{"-square", 3, -9},
		{"semicircle", 0, 1},
		{"-semicircle", 0.6, -0.8},
		{"semicircle", 2, math.Sqrt(3)},
		{"sinc", 0, 1},
		{"identity", -4, -4},
	}
	for _, tt := range tests {
		f, err := Lookup(tt.name)
		if err != nil {
			t.Fatalf("Lookup(%q) error = %v", tt.name, err)
		}
		if got := f(tt.x); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%s(%v) = %v, want %v", tt.name, tt.x, got, tt.want)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	for _, name := range []string{"", "-", "sine", "--sin"} {
		if _, err := Lookup(name); !errors.Is(err, ErrUnknownFunction) {
			t.Errorf("Lookup(%q) error = %v, want %v", name, err, ErrUnknownFunction)
		}
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) != len(builtins) {
		t.Fatalf("Names() has %d entries, want %d", len(names), len(builtins))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Names() not sorted at %q, %q", names[i-1], names[i])
		}
	}
}
