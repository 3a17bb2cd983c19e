package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"adaleph/internal/diagfmt"
	"adaleph/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.adb|->",
	Short: "Parse an Ada source file and print its syntax tree",
	Long: `Parse reads one Ada source (or stdin for "-") as a compilation unit,
a declaration list or a statement list and prints the resulting tree`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("root", "program", "parse root (program|declarations|statements)")
	parseCmd.Flags().String("format", "pretty", "output format (pretty|tree|json|msgpack)")
	parseCmd.Flags().String("diagnostics", "pretty", "diagnostics format on stderr (pretty|short|json)")
	parseCmd.Flags().Bool("cache", false, "reuse cached results (json and msgpack output only)")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]
	cfg := appSettings.cfg

	rootName, err := stringSetting(cmd, "root", cfg.Parse.Root)
	if err != nil {
		return err
	}
	root, err := driver.ParseRoot(rootName)
	if err != nil {
		return err
	}
	format, err := stringSetting(cmd, "format", cfg.Parse.Format)
	if err != nil {
		return err
	}
	switch format {
	case "pretty", "tree", "json", "msgpack":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	diagFormat, err := cmd.Flags().GetString("diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get diagnostics flag: %w", err)
	}

	cacheEnabled := cfg.Cache.Enabled
	if cmd.Flags().Changed("cache") {
		if cacheEnabled, err = cmd.Flags().GetBool("cache"); err != nil {
			return fmt.Errorf("failed to get cache flag: %w", err)
		}
	}
	// кэш хранит только сериализованное дерево
	if format == "pretty" || format == "tree" {
		cacheEnabled = false
	}
	cache, err := appSettings.openCache(cacheEnabled)
	if err != nil {
		return err
	}

	opts := driver.Options{MaxDiagnostics: appSettings.maxDiagnostics, Cache: cache}
	var res *driver.Result
	if filePath == "-" {
		src, rerr := readStdin()
		if rerr != nil {
			return rerr
		}
		res, err = driver.Parse(cmd.Context(), root, stdinName, src, opts)
	} else {
		res, err = driver.ParseFile(cmd.Context(), root, filePath, opts)
	}
	if res == nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if rerr := reportDiagnostics(res.Bag, res.FileSet, diagFormat); rerr != nil {
		return rerr
	}
	if appSettings.timings && !appSettings.quiet {
		fmt.Fprint(os.Stderr, res.Timings.Summary())
	}
	if err != nil {
		return checkOutcome(err, 1)
	}

	switch format {
	case "tree":
		return diagfmt.FormatTreeDiagram(os.Stdout, res.List())
	case "json":
		return diagfmt.FormatTreeJSON(os.Stdout, res.Output())
	case "msgpack":
		return diagfmt.FormatTreeMsgpack(os.Stdout, res.Output())
	default:
		return diagfmt.FormatTreePretty(os.Stdout, res.List(), res.FileSet)
	}
}
