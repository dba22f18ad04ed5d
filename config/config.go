// Package config loads ProgramOptions from a YAML file, following the
// small single-purpose config structs in the pack's market-fetcher config
// package: one struct per concern, defaults applied before unmarshal, a
// Validate/clamp pass afterward.
package config

import (
	"os"

	"github.com/juju/errors"
	"gopkg.in/yaml.v3"

	"github.com/stukennedy/boba/command"
	"github.com/stukennedy/boba/program"
)

// File is the on-disk shape of a ProgramOptions YAML file. Fields mirror
// program.ProgramOptions exactly (spec §3's exhaustive set); mouse_mode is
// a string ("cell-motion" | "all-motion") rather than the enum type so an
// absent key cleanly means "disabled".
type File struct {
	FPS            *int    `yaml:"fps,omitempty"`
	AltScreen      *bool   `yaml:"alt_screen,omitempty"`
	MouseMode      *string `yaml:"mouse_mode,omitempty"`
	BracketedPaste *bool   `yaml:"bracketed_paste,omitempty"`
	FocusReporting *bool   `yaml:"focus_reporting,omitempty"`
	Title          *string `yaml:"title,omitempty"`
	CatchPanics    *bool   `yaml:"catch_panics,omitempty"`
	HandleSignals  *bool   `yaml:"handle_signals,omitempty"`
	LogFile        *string `yaml:"log_file,omitempty"`
	Output         *string `yaml:"output,omitempty"`
}

// Default returns the documented defaults before any file is applied.
func Default() program.ProgramOptions {
	return program.Default()
}

// Load reads path, unmarshals it onto a copy of Default() so a partial YAML
// file only overrides what it sets, clamps fps, and returns the result.
func Load(path string) (program.ProgramOptions, error) {
	opts := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return program.ProgramOptions{}, errors.Annotatef(err, "read config file %q", path)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return program.ProgramOptions{}, errors.Annotatef(err, "parse config file %q", path)
	}

	applyTo(&opts, f)
	opts.Clamp()
	return opts, nil
}

func applyTo(opts *program.ProgramOptions, f File) {
	if f.FPS != nil {
		opts.FPS = *f.FPS
	}
	if f.AltScreen != nil {
		opts.AltScreen = *f.AltScreen
	}
	if f.MouseMode != nil {
		mode := parseMouseMode(*f.MouseMode)
		opts.MouseMode = mode
	}
	if f.BracketedPaste != nil {
		opts.BracketedPaste = *f.BracketedPaste
	}
	if f.FocusReporting != nil {
		opts.FocusReporting = *f.FocusReporting
	}
	if f.Title != nil {
		opts.Title = *f.Title
	}
	if f.CatchPanics != nil {
		opts.CatchPanics = *f.CatchPanics
	}
	if f.HandleSignals != nil {
		opts.HandleSignals = *f.HandleSignals
	}
	if f.LogFile != nil {
		opts.LogFile = *f.LogFile
	}
	if f.Output != nil && *f.Output == "stderr" {
		opts.Output = program.OutputStderr
	}
}

func parseMouseMode(s string) *command.MouseMode {
	var mode command.MouseMode
	switch s {
	case "all-motion":
		mode = command.MouseAllMotion
	case "cell-motion":
		mode = command.MouseCellMotion
	default:
		return nil
	}
	return &mode
}
