package plot

import (
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"bmpchart/axis"
	"bmpchart/chart"
	"bmpchart/formula"
	"bmpchart/palette"

	"github.com/cockroachdb/errors"
)

const (
	DefaultWidth      = 740
	DefaultHeight     = 480
	DefaultBackground = "#ffffff"
	DefaultAxis       = "#000000"
	DefaultFormat     = "bmp"
)

// Formats lists the supported output formats. "bmp" is the native
// indexed bitmap; the rest go through the standard image encoders.
var Formats = []string{"bmp", "bmp-std", "png", "gif", "tiff"}

var ErrInvalidJob = errors.New("invalid job")

// SeriesSpec describes one series, either sampled from a builtin function
// or given as literal points.
type SeriesSpec struct {
	Name   string      `yaml:"name"`
	Fn     string      `yaml:"fn"`
	Start  float64     `yaml:"start"`
	Stop   float64     `yaml:"stop"`
	Step   float64     `yaml:"step"`
	Color  string      `yaml:"color"`
	Points [][]float64 `yaml:"points,flow"`
}

// Build returns the chart series, colored with fallback when no color is
// set.
func (s *SeriesSpec) Build(fallback color.RGBA) (*chart.Series, error) {
	var pts []chart.Point
	switch {
	case len(s.Points) > 0 && s.Fn != "":
		return nil, errors.Wrapf(ErrInvalidJob, "series %q has both points and a function", s.Name)
	case len(s.Points) > 0:
		pts = make([]chart.Point, len(s.Points))
		for i, p := range s.Points {
			if len(p) != 2 {
				return nil, errors.Wrapf(ErrInvalidJob, "series %q point %d has %d coordinates", s.Name, i, len(p))
			}
			pts[i] = chart.Point{X: p[0], Y: p[1]}
		}
	default:
		f, err := formula.Lookup(s.Fn)
		if err != nil {
			return nil, errors.Wrapf(err, "series %q", s.Name)
		}
		pts = chart.Collect(formula.Sample(s.Start, s.Stop, s.Step, f))
	}

	hex := s.Color
	if hex == "" {
		hex = palette.Hex(fallback)
	}
	series, err := chart.NewSeries(pts, hex)
	if err != nil {
		return nil, errors.Wrapf(err, "series %q", s.Name)
	}
	name := s.Name
	if name == "" {
		name = s.Fn
	}
	return series.Named(name), nil
}

// Job is one chart to render and write.
type Job struct {
	Out           string       `yaml:"out"`
	Width         int          `yaml:"width"`
	Height        int          `yaml:"height"`
	Background    string       `yaml:"background"`
	Axis          string       `yaml:"axis"`
	XAxis         *axis.Manual `yaml:"x_axis"`
	YAxis         *axis.Manual `yaml:"y_axis"`
	Format        string       `yaml:"format"`
	Scale         int          `yaml:"scale"`
	SeriesPalette string       `yaml:"series_palette"`
	PaletteOut    string       `yaml:"palette_out"`
	Force         bool         `yaml:"force"`
	Series        []SeriesSpec `yaml:"series"`
}

// Normalize fills unset fields with defaults and resolves relative paths
// against dir.
func (j *Job) Normalize(dir string) {
	if j.Width == 0 {
		j.Width = DefaultWidth
	}
	if j.Height == 0 {
		j.Height = DefaultHeight
	}
	if j.Background == "" {
		j.Background = DefaultBackground
	}
	if j.Axis == "" {
		j.Axis = DefaultAxis
	}
	if j.Format == "" {
		j.Format = DefaultFormat
	}
	if j.Scale == 0 {
		j.Scale = 1
	}
	for _, p := range []*string{&j.Out, &j.SeriesPalette, &j.PaletteOut} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
}

// Validate checks the parts of a job that do not need rendering.
func (j *Job) Validate() error {
	switch {
	case j.Out == "":
		return errors.Wrap(ErrInvalidJob, "no output file")
	case !slices.Contains(Formats, j.Format):
		return errors.Wrapf(ErrInvalidJob, "unsupported output format %q", j.Format)
	case j.Scale < 1:
		return errors.Wrapf(ErrInvalidJob, "invalid scale %d", j.Scale)
	case j.Scale > 1 && j.Format == "bmp":
		return errors.Wrap(ErrInvalidJob, "the native bmp format cannot be scaled, use bmp-std")
	case len(j.Series) == 0:
		return errors.Wrap(ErrInvalidJob, "no series")
	}
	for i, s := range j.Series {
		if s.Fn == "" && len(s.Points) == 0 {
			return errors.Wrapf(ErrInvalidJob, "series %d has neither points nor a function", i)
		}
	}
	return nil
}

// Run renders the job and writes its outputs.
func (j *Job) Run(logger *slog.Logger) error {
	logger = logger.With("out", j.Out)

	colors := palette.Series
	if j.SeriesPalette != "" {
		var err error
		if colors, err = palette.LoadPAL(j.SeriesPalette); err != nil {
			return err
		}
	}

	series := make([]*chart.Series, len(j.Series))
	for i := range j.Series {
		s, err := j.Series[i].Build(palette.Cycle(colors, i))
		if err != nil {
			return err
		}
		logger.Debug("series ready", "name", s.Name(), "points", s.Len(), "color", palette.Hex(s.Color()))
		series[i] = s
	}

	c, err := chart.New(j.Width, j.Height, j.Background, j.Axis, chart.Options{
		XAxis:  j.XAxis,
		YAxis:  j.YAxis,
		Logger: logger,
	})
	if err != nil {
		return err
	}
	if err = c.Render(series...); err != nil {
		return err
	}

	if err = save(j.Out, j.Force, func(f *os.File) error {
		return export(f, c, j.Format, j.Scale)
	}); err != nil {
		return err
	}

	if j.PaletteOut != "" {
		if err = save(j.PaletteOut, j.Force, func(f *os.File) error {
			_, err := palette.WritePAL(f, c.Palette().Colors())
			return err
		}); err != nil {
			return err
		}
	}

	x, y := c.Axes()
	logger.Info("chart written", "format", j.Format, "size", c.Bounds().Size().Mul(j.Scale), "x", x, "y", y, "series", len(series))
	return nil
}
