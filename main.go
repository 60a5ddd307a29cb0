package main

import (
	"log/slog"
	"os"
	"strings"

	"bmpchart/batch"
	"bmpchart/parallel"
	"bmpchart/plot"

	"github.com/alecthomas/kong"
	"golang.org/x/term"
)

type CLI struct {
	LogLevel  slog.Level      `help:"Log level (debug, info, warn, error)" default:"info"`
	LogFormat string          `help:"Log output format. auto picks text on a terminal and json otherwise" enum:"auto,text,json" default:"auto"`
	Workers   int             `help:"Number of charts rendered at once by batch. Defaults to the number of CPUs" default:"0"`
	Config    kong.ConfigFlag `help:"JSON file with flag defaults"`

	Plot  plot.CLICmd  `cmd:"" help:"Render one chart from builtin functions"`
	Batch batch.CLICmd `cmd:"" help:"Render every chart of a YAML job file"`
}

func newLogger(level slog.Level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if format == "auto" {
		format = "json"
		if term.IsTerminal(int(os.Stderr.Fd())) {
			format = "text"
		}
	}
	if strings.EqualFold(format, "json") {
		h = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		h = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(h)
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("bmpchart"),
		kong.Description("Draw line charts of builtin functions and data points into indexed bitmaps."),
		kong.UsageOnError(),
		kong.Configuration(kong.JSON, "~/.bmpchart.json"),
	)

	logger := newLogger(cli.LogLevel, cli.LogFormat)
	slog.SetDefault(logger)

	pool := parallel.Start(cli.Workers, logger)
	err := kctx.Run(pool.Do, pool.Wait, logger)
	pool.Wait(true)

	if done, panicked := pool.Stats(); panicked > 0 {
		logger.Error("jobs panicked", "panicked", panicked, "done", done)
	}
	if err != nil {
		logger.Error("command failed", "command", kctx.Command(), "error", err)
		os.Exit(1)
	}
}
