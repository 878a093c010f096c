package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/idelchi/dirinv/internal/config"
	"github.com/idelchi/dirinv/internal/inventory"
	"github.com/idelchi/dirinv/internal/logger"
	"github.com/idelchi/dirinv/internal/report"
)

func logic(ctx context.Context, cfg *config.Config, stdout io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	run := config.NewRun(cfg, time.Now())
	if err := run.Prepare(); err != nil {
		return err
	}

	logCfg := run.Logging(cfg.Logging)

	log, err := logger.New(&logCfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		if err := log.Close(); err != nil {
			fmt.Fprintln(os.Stderr, "closing log:", err)
		}
	}()

	log = log.WithFields(map[string]any{"run": run.Stamp})

	enableProgress := cfg.Output.Format != "json" &&
		cfg.Logging.Level != "debug" &&
		logCfg.Output != "stderr" && logCfg.Output != "" &&
		isatty.IsTerminal(os.Stderr.Fd())

	// Simple progress callback that prints directly to stderr
	var progressHook func(folders int64, bytes uint64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		progressHook = func(folders int64, bytes uint64) {
			msg := fmt.Sprintf("Scanning… %d folders, %s", folders, humanize.IBytes(bytes))
			fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
		}
	}

	result, err := inventory.Run(ctx, inventory.Options{
		Path:             cfg.Scan.Path,
		Strategy:         inventory.Strategy(cfg.Scan.Strategy),
		ProgressInterval: cfg.Scan.ProgressInterval,
	}, log, progressHook)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	switch cfg.Output.Format {
	case "xlsx":
		path := run.ReportPath()
		if err := report.WriteWorkbook(path, result.Root, result.Records); err != nil {
			log.Errorw("Failed to create Excel file", "path", path, "error", err)

			return fmt.Errorf("writing report: %w", err)
		}

		log.Infow("Excel report created successfully", "path", path)

		_, err := fmt.Fprintln(stdout, path)

		return err
	case "json":
		return PrintJSON(result, stdout)
	case "table":
		return PrintTable(result, stdout, isTerminal(stdout))
	default:
		return fmt.Errorf("%w: %s", errUnknownFormat, cfg.Output.Format)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && isatty.IsTerminal(f.Fd())
}
