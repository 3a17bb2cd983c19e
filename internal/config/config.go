// Package config loads adaleph.toml. The file is optional: the CLI looks for
// it from the working directory upwards and command-line flags override it.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file searched for by Find.
const FileName = "adaleph.toml"

type Config struct {
	Parse  ParseConfig  `toml:"parse"`
	Output OutputConfig `toml:"output"`
	Cache  CacheConfig  `toml:"cache"`
	Trace  TraceConfig  `toml:"trace"`

	// Path is the file the config was read from; empty for defaults.
	Path string `toml:"-"`
}

type ParseConfig struct {
	Root           string `toml:"root"`
	Format         string `toml:"format"`
	MaxDiagnostics int    `toml:"max_diagnostics"`
	Jobs           int    `toml:"jobs"`
}

type OutputConfig struct {
	Color    string `toml:"color"`
	PathMode string `toml:"path_mode"`
}

type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

type TraceConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	Output string `toml:"output"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Parse: ParseConfig{
			Root:           "program",
			Format:         "pretty",
			MaxDiagnostics: 100,
		},
		Output: OutputConfig{Color: "auto", PathMode: "auto"},
		Trace:  TraceConfig{Level: "off", Format: "auto"},
	}
}

// Find walks from startDir upwards looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load reads path on top of Default. Unknown keys are an error so typos do
// not silently fall back to defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path
	if cfg.Cache.Dir != "" && !filepath.IsAbs(cfg.Cache.Dir) {
		cfg.Cache.Dir = filepath.Join(filepath.Dir(path), cfg.Cache.Dir)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover finds and loads the nearest config, or returns Default when there is none.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks enumerated values; numeric limits are clamped by their consumers.
func (c Config) Validate() error {
	var errs []error
	check := func(field, value string, allowed ...string) {
		for _, a := range allowed {
			if strings.EqualFold(value, a) {
				return
			}
		}
		errs = append(errs, fmt.Errorf("%s: invalid value %q (expected %s)", field, value, strings.Join(allowed, "|")))
	}
	check("[parse].root", c.Parse.Root, "program", "declarations", "statements")
	check("[parse].format", c.Parse.Format, "pretty", "tree", "json", "msgpack")
	check("[output].color", c.Output.Color, "auto", "on", "off")
	check("[output].path_mode", c.Output.PathMode, "auto", "absolute", "relative", "basename")
	check("[trace].level", c.Trace.Level, "off", "error", "phase", "detail", "debug")
	check("[trace].format", c.Trace.Format, "auto", "text", "ndjson")
	if c.Parse.MaxDiagnostics < 0 {
		errs = append(errs, fmt.Errorf("[parse].max_diagnostics must not be negative"))
	}
	if c.Parse.Jobs < 0 {
		errs = append(errs, fmt.Errorf("[parse].jobs must not be negative"))
	}
	return errors.Join(errs...)
}
