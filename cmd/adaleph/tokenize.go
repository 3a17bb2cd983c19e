package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"adaleph/internal/diagfmt"
	"adaleph/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file.adb|->",
	Short: "Tokenize an Ada source file",
	Long:  `Tokenize breaks an Ada source file into tokens with their leading trivia`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().String("diagnostics", "pretty", "diagnostics format on stderr (pretty|short|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	diagFormat, err := cmd.Flags().GetString("diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get diagnostics flag: %w", err)
	}
	switch format {
	case "pretty", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	var result *driver.TokenizeResult
	if filePath == "-" {
		src, rerr := readStdin()
		if rerr != nil {
			return rerr
		}
		result, err = driver.TokenizeSource(cmd.Context(), stdinName, src, appSettings.maxDiagnostics)
	} else {
		result, err = driver.Tokenize(cmd.Context(), filePath, appSettings.maxDiagnostics)
	}
	if result == nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Выводим диагностику в stderr, если есть
	if rerr := reportDiagnostics(result.Bag, result.FileSet, diagFormat); rerr != nil {
		return rerr
	}
	if err != nil {
		return checkOutcome(err, 1)
	}

	// Выводим токены в выбранном формате
	if format == "json" {
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens, result.FileSet)
	}
	return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet)
}
