package main

import (
	"log/slog"
	"testing"

	"github.com/alecthomas/kong"
)

func TestNewLogger(t *testing.T) {
	if _, ok := newLogger(slog.LevelInfo, "json").Handler().(*slog.JSONHandler); !ok {
		t.Error("json format did not produce a JSON handler")
	}
	if _, ok := newLogger(slog.LevelInfo, "text").Handler().(*slog.TextHandler); !ok {
		t.Error("text format did not produce a text handler")
	}
	if l := newLogger(slog.LevelWarn, "text"); l.Enabled(t.Context(), slog.LevelInfo) {
		t.Error("info enabled at warn level")
	}
}

func TestCLIDefaults(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli)
	if err != nil {
		t.Fatalf("kong.New() error = %v", err)
	}
	if _, err := parser.Parse([]string{"--log-level", "debug", "--workers", "2", "plot", "-o", t.TempDir() + "/c.bmp", "--fn", "sin:0:1:0.1"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cli.LogLevel != slog.LevelDebug || cli.Workers != 2 || cli.LogFormat != "auto" {
		t.Errorf("global flags = %v %d %q", cli.LogLevel, cli.Workers, cli.LogFormat)
	}
}
