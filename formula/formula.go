// Package formula samples unary functions over a range to produce chart
// data.
package formula

import (
	"iter"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
)

// epsilon is how close a step has to land to stop to count as reaching it.
const epsilon = 1e-7

var ErrUnknownFunction = errors.New("unknown function")

// Func is a function sampled by Sample.
type Func func(x float64) float64

// Sample yields (x, f(x)) from start toward stop, step apart. The
// direction follows the sign of stop-start and stop is included when a
// step lands within epsilon of it. x is computed from the step count, so
// rounding errors do not accumulate. A step that is not positive yields
// nothing.
func Sample(start, stop, step float64, f Func) iter.Seq2[float64, float64] {
	return func(yield func(float64, float64) bool) {
		if !(step > 0) || math.IsInf(step, 0) || !finite(start) || !finite(stop) {
			return
		}
		dir := 1.0
		if stop < start {
			dir = -1
		}
		for i := 0; ; i++ {
			x := start + dir*float64(i)*step
			if math.Abs(stop-x) < epsilon {
				yield(stop, f(stop))
				return
			}
			if dir*(stop-x) < 0 {
				return
			}
			if !yield(x, f(x)) {
				return
			}
		}
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

var builtins = map[string]Func{
	"identity": func(x float64) float64 { return x },
	"square":   func(x float64) float64 { return x * x },
	"cube":     func(x float64) float64 { return x * x * x },
	"abs":      math.Abs,
	"sqrt":     math.Sqrt,
	"cbrt":     math.Cbrt,
	"exp":      math.Exp,
	"log":      math.Log,
	"log10":    math.Log10,
	"sin":      math.Sin,
	"cos":      math.Cos,
	"tan":      math.Tan,
	"atan":     math.Atan,
	"tanh":     math.Tanh,
	"sinc": func(x float64) float64 {
		if x == 0 {
			return 1
		}
		return math.Sin(x) / x
	},
	// upper half of the unit circle; |1-x²| keeps it defined past ±1
	"semicircle": func(x float64) float64 { return math.Sqrt(math.Abs(1 - x*x)) },
	"gauss":      func(x float64) float64 { return math.Exp(-x * x / 2) },
}

// Lookup returns the builtin function called name. A leading '-' negates
// it, so "-semicircle" is the lower half of the unit circle.
func Lookup(name string) (Func, error) {
	neg := strings.HasPrefix(name, "-")
	f, ok := builtins[strings.TrimPrefix(name, "-")]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownFunction, "%q, want one of %s", name, strings.Join(Names(), ", "))
	}
	if neg {
		return func(x float64) float64 { return -f(x) }, nil
	}
	return f, nil
}

// Names lists the builtin functions in alphabetical order.
func Names() []string {
	return slices.Sorted(maps.Keys(builtins))
}
