package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"adaleph/internal/diag"
	"adaleph/internal/driver"
	"adaleph/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.adb|directory>",
	Short: "Parse Ada sources and report syntax errors",
	Long: `Check parses one file or every .ads/.adb/.ada file under a directory
and prints diagnostics. The exit status is 1 when any file fails to parse`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("root", "program", "parse root (program|declarations|statements)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	checkCmd.Flags().String("ui", "auto", "progress UI for directories (auto|on|off)")
	checkCmd.Flags().Bool("cache", false, "reuse cached parse results")
	checkCmd.Flags().Bool("clear-cache", false, "drop the on-disk cache before checking")
	checkCmd.Flags().String("diagnostics", "pretty", "diagnostics format on stderr (pretty|short|json)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	target := args[0]
	cfg := appSettings.cfg

	rootName, err := stringSetting(cmd, "root", cfg.Parse.Root)
	if err != nil {
		return err
	}
	root, err := driver.ParseRoot(rootName)
	if err != nil {
		return err
	}
	jobs := cfg.Parse.Jobs
	if cmd.Flags().Changed("jobs") {
		if jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
			return fmt.Errorf("failed to get jobs flag: %w", err)
		}
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
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
	cache, err := appSettings.openCache(cacheEnabled)
	if err != nil {
		return err
	}
	if drop, _ := cmd.Flags().GetBool("clear-cache"); drop {
		if err := clearDiskCache(); err != nil {
			return err
		}
	}

	st, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	opts := driver.Options{MaxDiagnostics: appSettings.maxDiagnostics, Cache: cache}

	if !st.IsDir() {
		res, perr := driver.ParseFile(cmd.Context(), root, target, opts)
		if res == nil {
			return perr
		}
		if rerr := reportDiagnostics(res.Bag, res.FileSet, diagFormat); rerr != nil {
			return rerr
		}
		if appSettings.timings && !appSettings.quiet {
			fmt.Fprint(os.Stderr, res.Timings.Summary())
		}
		return checkOutcome(perr, 1)
	}

	files, err := driver.ListSources(target)
	if err != nil {
		return fmt.Errorf("failed to list sources: %w", err)
	}
	dirOpts := driver.DirOptions{Options: opts, Jobs: jobs}

	var (
		fileSet *source.FileSet
		results []driver.FileResult
	)
	if shouldUseTUI(mode, appSettings.quiet) && len(files) > 0 {
		fileSet, results, err = runParseDirWithUI(cmd.Context(), "checking "+target, target, files, root, dirOpts)
	} else {
		fileSet, results, err = driver.ParseDir(cmd.Context(), target, root, dirOpts)
	}
	if err != nil {
		return err
	}

	bag := driver.MergeDiagnostics(results, appSettings.maxDiagnostics)
	if rerr := reportDiagnostics(bag, fileSet, diagFormat); rerr != nil {
		return rerr
	}

	failed := 0
	var internal bool
	for _, r := range results {
		if r.Err == nil {
			continue
		}
		failed++
		if driver.IsKind(r.Err, driver.ErrInternal) {
			internal = true
		}
		// ошибки загрузки не попадают в Bag
		var perr *driver.Error
		if !errors.As(r.Err, &perr) {
			fmt.Fprintf(os.Stderr, "%s: error %s: %v\n", r.Path, diag.IOLoadFileError.ID(), r.Err)
		}
	}
	if internal {
		dumpRing()
	}
	if !appSettings.quiet {
		printCheckSummary(len(results), failed, bag, cache)
	}
	if failed > 0 {
		return &exitError{code: 1}
	}
	return nil
}

func checkOutcome(err error, code int) error {
	if err == nil {
		return nil
	}
	if driver.IsKind(err, driver.ErrInternal) {
		dumpRing()
	}
	var perr *driver.Error
	if !errors.As(err, &perr) {
		return err
	}
	return &exitError{code: code}
}

func printCheckSummary(total, failed int, bag *diag.Bag, cache *driver.Cache) {
	fmt.Fprintf(os.Stderr, "checked %d files: %d ok, %d failed", total, total-failed, failed)
	if bag.Len() > 0 {
		fmt.Fprintf(os.Stderr, ", %d diagnostics", bag.Len())
	}
	if cache != nil {
		hits, misses := cache.Stats()
		fmt.Fprintf(os.Stderr, " (cache: %d hits, %d misses)", hits, misses)
	}
	fmt.Fprintln(os.Stderr)
}

func clearDiskCache() error {
	dir := appSettings.cfg.Cache.Dir
	if dir == "" {
		var err error
		if dir, err = driver.DefaultCacheDir("adaleph"); err != nil {
			return err
		}
	}
	disk, err := driver.OpenDiskCache(dir)
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	return disk.DropAll()
}
