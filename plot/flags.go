package plot

import (
	"strconv"
	"strings"

	"bmpchart/axis"

	"github.com/alecthomas/kong"
	"github.com/cockroachdb/errors"
)

// rawValue takes the next token as is, so values with a leading hyphen
// such as "-1:1:4:1" are not mistaken for short flags.
func rawValue(ctx *kong.DecodeContext, what string) ([]byte, error) {
	t := ctx.Scan.Pop()
	if t.IsEOL() {
		return nil, errors.Newf("missing %s", what)
	}
	s, ok := t.Value.(string)
	if !ok {
		return nil, errors.Newf("expected %s but got %v", what, t.Value)
	}
	return []byte(s), nil
}

// AxisFlag is a fixed axis given as "min:max:intervals:decimals".
type AxisFlag struct {
	axis.Manual
	set bool
}

func (f *AxisFlag) UnmarshalText(text []byte) error {
	fields := strings.Split(string(text), ":")
	if len(fields) != 4 {
		return errors.Newf("invalid axis %q, want min:max:intervals:decimals", text)
	}

	var err error
	if f.Min, err = strconv.ParseFloat(fields[0], 64); err != nil {
		return errors.Wrapf(err, "invalid axis minimum %q", fields[0])
	}
	if f.Max, err = strconv.ParseFloat(fields[1], 64); err != nil {
		return errors.Wrapf(err, "invalid axis maximum %q", fields[1])
	}
	if f.Intervals, err = strconv.Atoi(fields[2]); err != nil {
		return errors.Wrapf(err, "invalid axis interval count %q", fields[2])
	}
	if f.Decimals, err = strconv.Atoi(fields[3]); err != nil {
		return errors.Wrapf(err, "invalid axis decimal places %q", fields[3])
	}
	f.set = true
	return nil
}

func (f *AxisFlag) Decode(ctx *kong.DecodeContext) error {
	text, err := rawValue(ctx, "axis")
	if err != nil {
		return err
	}
	return f.UnmarshalText(text)
}

// Get returns the axis, or nil when the flag was not given.
func (f *AxisFlag) Get() *axis.Manual {
	if !f.set {
		return nil
	}
	m := f.Manual
	return &m
}

// FnFlag is a sampled series given as "name:start:stop:step[:#color]".
type FnFlag struct {
	SeriesSpec
}

func (f *FnFlag) Decode(ctx *kong.DecodeContext) error {
	text, err := rawValue(ctx, "function")
	if err != nil {
		return err
	}
	return f.UnmarshalText(text)
}

func (f *FnFlag) UnmarshalText(text []byte) error {
	fields := strings.Split(string(text), ":")
	if len(fields) != 4 && len(fields) != 5 {
		return errors.Newf("invalid function %q, want name:start:stop:step[:#color]", text)
	}

	spec := SeriesSpec{Name: fields[0], Fn: fields[0]}
	for i, dst := range []*float64{&spec.Start, &spec.Stop, &spec.Step} {
		v, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return errors.Wrapf(err, "invalid number %q in function %q", fields[i+1], text)
		}
		*dst = v
	}
	if len(fields) == 5 {
		spec.Color = fields[4]
	}
	f.SeriesSpec = spec
	return nil
}
