package config

import (
	"os"
	"testing"

	"github.com/stukennedy/boba/command"
	"github.com/stukennedy/boba/program"
)

func writeTempConfig(t *testing.T, yaml string) string {
	tmpfile, err := os.CreateTemp("", "boba-config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tmpfile.Write([]byte(yaml)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}
	return tmpfile.Name()
}

func TestLoadOverridesOnlySetFields(t *testing.T) {
	path := writeTempConfig(t, `
fps: 30
title: "my app"
`)
	defer os.Remove(path)

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if opts.FPS != 30 {
		t.Errorf("FPS = %v, want 30", opts.FPS)
	}
	if opts.Title != "my app" {
		t.Errorf("Title = %q, want %q", opts.Title, "my app")
	}
	// Everything else should still be the default.
	if !opts.AltScreen {
		t.Error("AltScreen should remain the default (true)")
	}
	if !opts.BracketedPaste {
		t.Error("BracketedPaste should remain the default (true)")
	}
}

func TestLoadClampsFPS(t *testing.T) {
	path := writeTempConfig(t, "fps: 500\n")
	defer os.Remove(path)

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if opts.FPS != 120 {
		t.Errorf("FPS = %v, want clamped to 120", opts.FPS)
	}
}

func TestLoadMouseMode(t *testing.T) {
	path := writeTempConfig(t, "mouse_mode: all-motion\n")
	defer os.Remove(path)

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if opts.MouseMode == nil || *opts.MouseMode != command.MouseAllMotion {
		t.Errorf("MouseMode = %v, want all-motion", opts.MouseMode)
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load("/nonexistent/boba-config.yaml")
	if err == nil {
		t.Fatal("Load() on a missing file should error")
	}
}

func TestDefaultMatchesProgramDefault(t *testing.T) {
	if Default() != program.Default() {
		t.Fatal("config.Default() should match program.Default()")
	}
}
