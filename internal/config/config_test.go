package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
[parse]
root = "statements"
jobs = 4

[output]
color = "off"

[cache]
enabled = true
dir = ".adaleph-cache"

[trace]
level = "phase"
format = "ndjson"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Parse.Root != "statements" || cfg.Parse.Jobs != 4 {
		t.Fatalf("parse = %+v", cfg.Parse)
	}
	if cfg.Parse.Format != "pretty" || cfg.Parse.MaxDiagnostics != 100 {
		t.Fatalf("defaults lost: %+v", cfg.Parse)
	}
	if cfg.Output.Color != "off" || cfg.Output.PathMode != "auto" {
		t.Fatalf("output = %+v", cfg.Output)
	}
	if !cfg.Cache.Enabled || cfg.Cache.Dir != filepath.Join(dir, ".adaleph-cache") {
		t.Fatalf("cache = %+v", cfg.Cache)
	}
	if cfg.Trace.Level != "phase" || cfg.Trace.Format != "ndjson" {
		t.Fatalf("trace = %+v", cfg.Trace)
	}
	if cfg.Path != path {
		t.Fatalf("path = %q", cfg.Path)
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"unknown key", "[parse]\nrooot = \"program\"\n", "unknown keys: parse.rooot"},
		{"bad root", "[parse]\nroot = \"expression\"\n", "[parse].root"},
		{"bad color", "[output]\ncolor = \"sometimes\"\n", "[output].color"},
		{"negative jobs", "[parse]\njobs = -1\n", "jobs must not be negative"},
		{"syntax", "[parse\n", "failed to parse TOML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.body)
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[parse]\nformat = \"json\"\n")
	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	cfg, err := Discover(nested)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Parse.Format != "json" {
		t.Fatalf("format = %q", cfg.Parse.Format)
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatal(err)
	}
}
