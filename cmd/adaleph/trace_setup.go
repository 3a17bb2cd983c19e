package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"adaleph/internal/trace"
)

var (
	traceCleanup func()
	// ringTracer задан при --trace-level=error: его содержимое печатается
	// только после внутренней ошибки разбора.
	ringTracer *trace.RingTracer
)

func runTraceCleanup() {
	if traceCleanup != nil {
		traceCleanup()
		traceCleanup = nil
	}
}

// setupTracing inspects trace-related flags (falling back to [trace] in
// adaleph.toml) and initializes the tracer. It returns a cleanup function.
func setupTracing(cmd *cobra.Command, s *settings) (func(), error) {
	flags := cmd.Root().PersistentFlags()

	verbosity, err := flags.GetInt("log-verbosity")
	if err != nil {
		return nil, fmt.Errorf("failed to get log-verbosity flag: %w", err)
	}
	logFile, err := flags.GetString("log-file")
	if err != nil {
		return nil, fmt.Errorf("failed to get log-file flag: %w", err)
	}
	trace.ConfigureLog(verbosity, logFile)

	traceOutput := s.cfg.Trace.Output
	if flags.Changed("trace") {
		if traceOutput, err = flags.GetString("trace"); err != nil {
			return nil, fmt.Errorf("failed to get trace flag: %w", err)
		}
	}
	levelStr := s.cfg.Trace.Level
	if flags.Changed("trace-level") {
		if levelStr, err = flags.GetString("trace-level"); err != nil {
			return nil, fmt.Errorf("failed to get trace-level flag: %w", err)
		}
	}
	formatStr := s.cfg.Trace.Format
	if flags.Changed("trace-format") {
		if formatStr, err = flags.GetString("trace-format"); err != nil {
			return nil, fmt.Errorf("failed to get trace-format flag: %w", err)
		}
	}
	ringSize, err := flags.GetInt("trace-ring-size")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-ring-size flag: %w", err)
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}
	// --trace без уровня включает фазы
	if level == trace.LevelOff && traceOutput != "" {
		level = trace.LevelPhase
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return func() {}, nil
	}

	format, err := trace.ParseFormat(formatStr)
	if err != nil {
		return nil, err
	}

	cfg := trace.Config{
		Level:      level,
		Format:     format,
		OutputPath: traceOutput,
		RingSize:   ringSize,
	}
	if verbosity > 0 {
		cfg.LogName = "adaleph"
	}
	tracer, err := trace.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	if ring, ok := tracer.(*trace.RingTracer); ok {
		ringTracer = ring
	}

	ctx := trace.WithTracer(cmd.Context(), tracer)
	cmd.SetContext(ctx)
	cmd.Root().SetContext(ctx)

	cleanup := func() {
		if err := tracer.Flush(); err != nil {
			fmt.Fprintf(os.Stderr, "trace: flush error: %v\n", err)
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "trace: close error: %v\n", err)
		}
	}
	return cleanup, nil
}

// dumpRing печатает последние события трейса после внутренней ошибки.
func dumpRing() {
	if ringTracer == nil {
		return
	}
	fmt.Fprintln(os.Stderr, "--- trace (last events) ---")
	if err := ringTracer.Dump(os.Stderr, trace.FormatText); err != nil {
		fmt.Fprintf(os.Stderr, "trace: dump error: %v\n", err)
	}
}
