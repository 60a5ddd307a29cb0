// Package plot implements the command that renders one chart from
// builtin functions.
package plot

import (
	"log/slog"

	"github.com/alecthomas/kong"
	"github.com/cockroachdb/errors"
)

type CLICmd struct {
	Out           string   `short:"o" help:"Destination file" required:"" type:"path"`
	Fn            []FnFlag `help:"Series to sample, as name:start:stop:step[:#color]. Repeat for more series" sep:"none" required:"" placeholder:"NAME:START:STOP:STEP[:#RRGGBB]"`
	Width         int      `help:"Chart width in pixels" default:"740" group:"canvas"`
	Height        int      `help:"Chart height in pixels" default:"480" group:"canvas"`
	Background    string   `help:"Background color" default:"#ffffff" group:"canvas"`
	Axis          string   `help:"Axis, grid and label color" default:"#000000" group:"canvas"`
	XAxis         AxisFlag `help:"Fixed x axis instead of fitting the data" placeholder:"MIN:MAX:INTERVALS:DECIMALS" group:"axes"`
	YAxis         AxisFlag `help:"Fixed y axis instead of fitting the data" placeholder:"MIN:MAX:INTERVALS:DECIMALS" group:"axes"`
	SeriesPalette string   `help:"PAL file in RIFF format with colors for series that have none" type:"existingfile" group:"palette"`
	PaletteOut    string   `help:"Also write the chart palette as a PAL file in RIFF format" type:"path" group:"palette"`
	Format        string   `help:"Output format. bmp is the native indexed bitmap" enum:"bmp,bmp-std,png,gif,tiff" default:"bmp"`
	Scale         int      `help:"Integer upscaling factor for formats other than bmp" default:"1"`
	Force         bool     `help:"Overwrite existing files" default:"false"`
	job           Job      `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	c.job = Job{
		Out:           c.Out,
		Width:         c.Width,
		Height:        c.Height,
		Background:    c.Background,
		Axis:          c.Axis,
		XAxis:         c.XAxis.Get(),
		YAxis:         c.YAxis.Get(),
		Format:        c.Format,
		Scale:         c.Scale,
		SeriesPalette: c.SeriesPalette,
		PaletteOut:    c.PaletteOut,
		Force:         c.Force,
	}
	for _, fn := range c.Fn {
		c.job.Series = append(c.job.Series, fn.SeriesSpec)
	}
	c.job.Normalize(".")
	return c.job.Validate()
}

func (c *CLICmd) Run(logger *slog.Logger) error {
	if err := c.job.Run(logger); err != nil {
		return errors.Wrap(err, "could not plot")
	}
	return nil
}
