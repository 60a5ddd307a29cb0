// Package batch renders every chart listed in a YAML job file.
package batch

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"bmpchart/parallel"
	"bmpchart/plot"

	"github.com/alecthomas/kong"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v2"
)

// File is the layout of a job file. Relative paths in jobs are resolved
// against the folder of the file.
type File struct {
	Defaults plot.Job   `yaml:"defaults"`
	Jobs     []plot.Job `yaml:"jobs"`
}

// Load reads and validates the job file at path.
func Load(path string) ([]plot.Job, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read job file %q", path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid job file path %q", path)
	}
	return Parse(b, filepath.Dir(abs))
}

// Parse decodes a job file. Unset job fields take the value from the
// defaults section, then the built-in defaults.
func Parse(b []byte, dir string) ([]plot.Job, error) {
	var f File
	if err := yaml.UnmarshalStrict(b, &f); err != nil {
		return nil, errors.Wrap(err, "could not decode job file")
	}
	if len(f.Jobs) == 0 {
		return nil, errors.Wrap(plot.ErrInvalidJob, "job file lists no jobs")
	}

	seen := make(map[string]int, len(f.Jobs))
	for i := range f.Jobs {
		j := &f.Jobs[i]
		inherit(j, &f.Defaults)
		j.Normalize(dir)
		if err := j.Validate(); err != nil {
			return nil, errors.Wrapf(err, "job %d", i)
		}
		if prev, ok := seen[j.Out]; ok {
			return nil, errors.Wrapf(plot.ErrInvalidJob, "jobs %d and %d both write %q", prev, i, j.Out)
		}
		seen[j.Out] = i
	}
	return f.Jobs, nil
}

func inherit(j, d *plot.Job) {
	set := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	set(&j.Background, d.Background)
	set(&j.Axis, d.Axis)
	set(&j.Format, d.Format)
	set(&j.SeriesPalette, d.SeriesPalette)
	if j.Width == 0 {
		j.Width = d.Width
	}
	if j.Height == 0 {
		j.Height = d.Height
	}
	if j.Scale == 0 {
		j.Scale = d.Scale
	}
	if j.XAxis == nil {
		j.XAxis = d.XAxis
	}
	if j.YAxis == nil {
		j.YAxis = d.YAxis
	}
	j.Force = j.Force || d.Force
}

type CLICmd struct {
	Jobs  string     `arg:"" help:"YAML job file" type:"existingfile"`
	Force bool       `help:"Overwrite existing files" default:"false"`
	Print bool       `help:"Print the jobs with defaults applied as YAML instead of rendering them" default:"false"`
	jobs  []plot.Job `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	jobs, err := Load(c.Jobs)
	if err != nil {
		return err
	}
	for i := range jobs {
		jobs[i].Force = jobs[i].Force || c.Force
	}
	c.jobs = jobs
	return nil
}

func (c *CLICmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc, logger *slog.Logger) error {
	if c.Print {
		return Print(os.Stdout, c.jobs)
	}
	return Render(c.jobs, worker, wait, logger)
}

// Print writes jobs to w as a job file.
func Print(w io.Writer, jobs []plot.Job) error {
	b, err := yaml.Marshal(File{Jobs: jobs})
	if err != nil {
		return errors.Wrap(err, "could not encode jobs")
	}
	_, err = fmt.Fprint(w, string(b))
	return err
}

// Render runs every job on worker and waits for all of them.
func Render(jobs []plot.Job, worker parallel.WorkerFunc, wait parallel.WaitFunc, logger *slog.Logger) error {
	var processedCount, errCount atomic.Uint64
	for i := range jobs {
		worker(func(j *plot.Job) func() {
			return func() {
				// counted as failed until Run returns
				errCount.Add(1)
				if err := j.Run(logger.With("job", i)); err != nil {
					logger.Error("could not render chart", "job", i, "out", j.Out, "error", err)
					return
				}
				errCount.Add(^uint64(0))
				processedCount.Add(1)
			}
		}(&jobs[i]))
	}

	wait(true)

	processed := processedCount.Load()
	failed := errCount.Load()
	logger.Info("stats", "processed", processed, "errors", failed, "total", processed+failed)

	if failed > 0 {
		return errors.Newf("error rendering %d charts", failed)
	}
	return nil
}
