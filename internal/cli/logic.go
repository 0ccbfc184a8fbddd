package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/idelchi/fss/internal/report"
	"github.com/idelchi/fss/internal/walk"
)

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// newLogger returns a development logger on stderr when debug is set, and a no-op logger otherwise.
func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}

	return zap.NewNop(), nil
}

func logic(ctx context.Context, options Options, stdout, stderr io.Writer) error {
	logger, err := newLogger(options.Debug)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}

	defer logger.Sync() //nolint:errcheck // Syncing stderr fails on some platforms

	enableProgress := options.Progress &&
		options.Output == "table" &&
		!options.Debug &&
		isTerminal(stderr)

	// Simple progress callback that prints directly to stderr
	var progressHook func(files, bytes int64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(stderr, "\033[?25l")
		defer fmt.Fprint(stderr, "\033[?25h")

		progressHook = func(files, bytes int64) {
			msg := fmt.Sprintf("Scanning… %d files, %s",
				files, humanize.Bytes(uint64(bytes))) //nolint:gosec // Bytes is always positive
			fmt.Fprintf(stderr, "\r\033[2K%s\r", msg)
		}
	}

	sizeMode := walk.DiskUsage
	if options.ApparentSize {
		sizeMode = walk.ApparentSize
	}

	result, err := walk.Run(ctx, walk.Options{
		Roots:    options.Paths,
		Threads:  options.Threads,
		SizeMode: sizeMode,
		GroupBy:  options.GroupBy,
		Engine:   options.Engine,
		Logger:   logger,
	}, progressHook)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	rep := report.Build(result, options.Filters, options.Top)

	PrintErrors(rep, options.Verbose, stderr)

	switch options.Output {
	case "json":
		return PrintJSON(rep, stdout)
	case "yaml":
		return PrintYAML(rep, stdout)
	case "table":
		return PrintTable(rep, options.SizeFormat.Resolve(isTerminal(stdout)), stdout)
	default:
		return fmt.Errorf("unknown output format: %s", options.Output)
	}
}
