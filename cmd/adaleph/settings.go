package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"adaleph/internal/config"
	"adaleph/internal/diagfmt"
	"adaleph/internal/driver"
)

// settings: итоговая конфигурация команды: adaleph.toml, поверх него флаги.
type settings struct {
	cfg            config.Config
	colorMode      string
	quiet          bool
	timings        bool
	maxDiagnostics int
	pathMode       diagfmt.PathMode
}

var appSettings = &settings{cfg: config.Default(), colorMode: "auto", maxDiagnostics: driver.DefaultMaxDiagnostics}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	flags := cmd.Root().PersistentFlags()

	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}

	s := &settings{cfg: cfg}
	s.colorMode = cfg.Output.Color
	if flags.Changed("color") {
		if s.colorMode, err = flags.GetString("color"); err != nil {
			return nil, fmt.Errorf("failed to get color flag: %w", err)
		}
	}
	switch s.colorMode {
	case "auto", "on", "off":
	default:
		return nil, fmt.Errorf("invalid --color value %q (expected auto|on|off)", s.colorMode)
	}
	if s.quiet, err = flags.GetBool("quiet"); err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if s.timings, err = flags.GetBool("timings"); err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	s.maxDiagnostics = cfg.Parse.MaxDiagnostics
	if flags.Changed("max-diagnostics") {
		if s.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
			return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
	}
	pathMode := cfg.Output.PathMode
	if flags.Changed("path-mode") {
		if pathMode, err = flags.GetString("path-mode"); err != nil {
			return nil, fmt.Errorf("failed to get path-mode flag: %w", err)
		}
	}
	s.pathMode = diagfmt.ParsePathMode(pathMode)
	return s, nil
}

func loadConfig(flags *pflag.FlagSet) (config.Config, error) {
	if skip, _ := flags.GetBool("no-config"); skip {
		return config.Default(), nil
	}
	path, err := flags.GetString("config")
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path != "" {
		return config.Load(path)
	}
	return config.Discover(".")
}

// stringSetting возвращает значение флага, если он задан явно, иначе fallback из конфига.
func stringSetting(cmd *cobra.Command, name, fallback string) (string, error) {
	if !cmd.Flags().Changed(name) {
		return fallback, nil
	}
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return "", fmt.Errorf("failed to get %s flag: %w", name, err)
	}
	return v, nil
}

func useColor(mode string, f *os.File) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	}
	return isTerminal(f)
}

func (s *settings) prettyOpts() diagfmt.PrettyOpts {
	return diagfmt.PrettyOpts{
		Color:     useColor(s.colorMode, os.Stderr),
		Context:   2,
		PathMode:  s.pathMode,
		ShowNotes: true,
	}
}

func (s *settings) jsonOpts() diagfmt.JSONOpts {
	return diagfmt.JSONOpts{
		IncludePositions: true,
		PathMode:         s.pathMode,
		Max:              s.maxDiagnostics,
		IncludeNotes:     true,
	}
}

// openCache собирает кэш разбора по [cache] и флагу --cache.
func (s *settings) openCache(enabled bool) (*driver.Cache, error) {
	if !enabled {
		return nil, nil
	}
	dir := s.cfg.Cache.Dir
	if dir == "" {
		var err error
		if dir, err = driver.DefaultCacheDir("adaleph"); err != nil {
			return driver.NewCache(nil), nil
		}
	}
	disk, err := driver.OpenDiskCache(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}
	return driver.NewCache(disk), nil
}
