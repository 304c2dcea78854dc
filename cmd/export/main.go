// Command export writes the curriculum to an .xlsx workbook for offline review.
//
//	export -o curriculum.xlsx [-dir ./epochs]
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/p-n-ai/pai-curriculum/internal/content"
	"github.com/p-n-ai/pai-curriculum/internal/export"
	"github.com/p-n-ai/pai-curriculum/internal/platform/config"
	"github.com/p-n-ai/pai-curriculum/internal/platform/logger"
)

func main() {
	logger.Setup(os.Stderr, config.LogConfig{Level: "info", Format: "text"})

	if err := run(os.Args[1:], os.Stdout); err != nil {
		slog.Error("export failed", "error", err)
		os.Exit(1)
	}
}

// run parses args and writes the workbook to -o, or to stdout when -o is "-".
func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	out := fs.String("o", "curriculum.xlsx", `output file, "-" for stdout`)
	dir := fs.String("dir", os.Getenv("LEARN_CURRICULUM_PATH"), "directory of *.epoch.yaml files")
	if err := fs.Parse(args); err != nil {
		return err
	}

	registry, err := content.NewRegistry(*dir)
	if err != nil {
		return err
	}
	epochs, err := registry.Epochs()
	if err != nil {
		return err
	}

	if *out == "-" {
		return export.WriteWorkbook(stdout, epochs)
	}

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", *out, err)
	}
	if err := export.WriteWorkbook(f, epochs); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", *out, err)
	}

	slog.Info("workbook written", "path", *out, "epochs", len(epochs))
	return nil
}
