package main

import (
	"fmt"
	"io"
	"os"

	"adaleph/internal/diag"
	"adaleph/internal/diagfmt"
	"adaleph/internal/source"
)

// stdinName: имя виртуального файла для входа "-".
const stdinName = "<stdin>"

// readStdin читает весь stdin для аргумента "-".
func readStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

// reportDiagnostics печатает диагностики в stderr в выбранном формате.
func reportDiagnostics(bag *diag.Bag, fs *source.FileSet, format string) error {
	if bag == nil || bag.Len() == 0 {
		return nil
	}
	switch format {
	case "short":
		bag.Sort()
		_, err := fmt.Fprint(os.Stderr, diag.FormatShort(bag.Items(), fs, true))
		return err
	case "json":
		return diagfmt.JSON(os.Stderr, bag, fs, appSettings.jsonOpts())
	default:
		diagfmt.Pretty(os.Stderr, bag, fs, appSettings.prettyOpts())
		return nil
	}
}
