package inventory

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/idelchi/dirinv/internal/logger"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// Precondition and result errors returned by Run.
var (
	ErrRootNotFound = errors.New("the specified path does not exist")
	ErrNotDirectory = errors.New("the specified path is not a directory")
	ErrNoRecords    = errors.New("no folder data collected")
)

// Options configures an analysis run.
type Options struct {
	// Path is the root directory to analyze.
	Path string
	// Strategy selects how subtree totals are computed.
	Strategy Strategy
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Extractor overrides the filesystem metadata extractor.
	Extractor Extractor
}

// Result is the outcome of a run.
type Result struct {
	// Root is the absolute path that was analyzed.
	Root string `json:"root"`
	// Records holds one entry per folder in pre-order.
	Records []FolderRecord `json:"records"`
	// Summary holds the grand totals.
	Summary Summary `json:"summary"`
	// ErrorCount is the number of entries or folders skipped because of errors.
	ErrorCount int64 `json:"error_count"`
	// Elapsed is the total time taken for analysis.
	Elapsed time.Duration `json:"elapsed"`
}

// startProgressReporter invokes hook(folders, bytes) on each tick until ctx is done.
//
//nolint:varnamelen // c is idiomatic for collector
func startProgressReporter(ctx context.Context, c *Collector, hook func(int64, uint64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(c.Progress())
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Run analyzes the folder tree at opt.Path and returns its records and totals.
//
// The root must exist and be a directory; otherwise no records are produced and
// ErrRootNotFound or ErrNotDirectory is returned. Problems below the root are logged
// and skipped. If nothing could be collected, the result is returned with ErrNoRecords.
//
// The walk stops early if ctx is cancelled. Progress updates are sent to progressHook
// if provided.
func Run(ctx context.Context, opt Options, log *logger.Logger, progressHook func(int64, uint64)) (*Result, error) {
	if opt.Path == "" {
		opt.Path = "."
	}

	root, err := filepath.Abs(filepath.Clean(opt.Path))
	if err != nil {
		return nil, fmt.Errorf("resolving absolute path: %w", err)
	}

	if statInfo, err := os.Stat(root); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Errorw("The specified path does not exist.", "path", root)

			return nil, fmt.Errorf("%w: %q", ErrRootNotFound, root)
		}

		log.Errorw("Cannot access the specified path.", "path", root, "error", err)

		return nil, fmt.Errorf("accessing path %q: %w", root, err)
	} else if !statInfo.IsDir() {
		log.Errorw("The specified path is not a directory.", "path", root)

		return nil, fmt.Errorf("%w: %q", ErrNotDirectory, root)
	}

	opts := []CollectorOption{WithStrategy(opt.Strategy)}
	if opt.Extractor != nil {
		opts = append(opts, WithExtractor(opt.Extractor))
	}

	collector := NewCollector(log, opts...)

	// Create child context to ensure progress reporter cleanup
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startProgressReporter(ctx, collector, progressHook, opt.ProgressInterval)

	log.Infow("Starting hierarchical folder analysis", "path", root, "strategy", collector.strategy)

	start := time.Now()
	records := collector.Collect(ctx, root, 0)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("analysis of %q interrupted: %w", root, err)
	}

	result := &Result{
		Root:       root,
		Records:    records,
		ErrorCount: collector.Errors(),
		Elapsed:    time.Since(start),
	}

	if len(records) == 0 {
		log.Warn("No folder data collected.")

		return result, ErrNoRecords
	}

	result.Summary = Summarize(records, log)

	log.Infow("Analysis complete",
		"folders", result.Summary.Folders,
		"files", result.Summary.Files,
		"subfolders", result.Summary.Subfolders,
		"total_size", result.Summary.TotalSize,
		"errors", result.ErrorCount,
		"elapsed", result.Elapsed,
	)

	return result, nil
}
