package inventory

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/idelchi/dirinv/internal/logger"
)

// Strategy selects how subtree totals are computed.
type Strategy string

const (
	// StrategyBottomUp lists every folder once and sums children's totals into their parent.
	StrategyBottomUp Strategy = "bottomup"
	// StrategyRewalk enumerates the full subtree of every folder to compute its totals.
	StrategyRewalk Strategy = "rewalk"
)

// Collector walks a directory tree and builds its FolderRecords.
// Recursion is sequential; the mutex only guards the counters read by the progress reporter.
type Collector struct {
	log       *logger.Logger
	extractor Extractor
	strategy  Strategy
	readDir   func(name string) ([]fs.DirEntry, error)

	mu         sync.Mutex
	folders    int64
	bytes      uint64
	errorCount int64
}

// CollectorOption configures a Collector.
type CollectorOption func(*Collector)

// WithExtractor replaces the filesystem metadata extractor.
func WithExtractor(e Extractor) CollectorOption {
	return func(c *Collector) { c.extractor = e }
}

// WithStrategy selects the subtree-total strategy.
func WithStrategy(s Strategy) CollectorOption {
	return func(c *Collector) { c.strategy = s }
}

// WithDirReader replaces os.ReadDir for listing folders.
func WithDirReader(fn func(name string) ([]fs.DirEntry, error)) CollectorOption {
	return func(c *Collector) { c.readDir = fn }
}

// NewCollector creates a Collector with the bottom-up strategy and the filesystem extractor.
func NewCollector(log *logger.Logger, opts ...CollectorOption) *Collector {
	c := &Collector{
		log:      log,
		strategy: StrategyBottomUp,
		readDir:  os.ReadDir,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.extractor == nil {
		c.extractor = NewFSExtractor(log)
	}

	if c.strategy == "" {
		c.strategy = StrategyBottomUp
	}

	return c
}

// Collect returns the records of the folder at path and all its descendants in pre-order,
// children visited in name order. A folder that cannot be listed or whose metadata cannot
// be read contributes no records; the failure is logged and its siblings are unaffected.
func (c *Collector) Collect(ctx context.Context, path string, depth int) []FolderRecord {
	path = filepath.Clean(path)

	if c.strategy == StrategyRewalk {
		return c.collectRewalk(ctx, path, depth)
	}

	records, _, _ := c.collectBottomUp(ctx, path, depth)

	return records
}

// Progress returns the number of folders recorded and bytes seen so far.
func (c *Collector) Progress() (int64, uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.folders, c.bytes
}

// Errors returns the number of entries skipped because of access errors.
func (c *Collector) Errors() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.errorCount
}

// collectBottomUp returns the subtree's records and totals. ok is false when the folder
// could not be listed, in which case it does not count towards its parent either.
func (c *Collector) collectBottomUp(ctx context.Context, path string, depth int) ([]FolderRecord, totals, bool) {
	if ctx.Err() != nil {
		return nil, totals{}, false
	}

	listing, err := c.list(path)
	if err != nil {
		c.folderFailed(path, depth, err)

		return nil, totals{}, false
	}

	meta, err := c.extractor.Extract(path)
	if err != nil {
		c.folderFailed(path, depth, err)

		return nil, c.sumBottomUp(ctx, listing), true
	}

	// Slot 0 is filled once the children's totals are known.
	records := make([]FolderRecord, 1)
	sum := listing.direct

	for _, child := range listing.dirs {
		childRecords, childTotals, ok := c.collectBottomUp(ctx, child, depth+1)
		if !ok {
			continue
		}

		sum.addChild(childTotals)
		records = append(records, childRecords...)
	}

	records[0] = newRecord(path, depth, sum, meta)
	c.recorded(records[0])

	return records, sum, true
}

// sumBottomUp totals an already listed folder without reading metadata or building records.
// Subfolders that cannot be listed are skipped and not counted.
func (c *Collector) sumBottomUp(ctx context.Context, l listing) totals {
	sum := l.direct

	for _, child := range l.dirs {
		if ctx.Err() != nil {
			break
		}

		childListing, err := c.list(child)
		if err != nil {
			c.log.WithPath(child).Warnw("Error accessing path", "error", err)
			c.addError()

			continue
		}

		sum.addChild(c.sumBottomUp(ctx, childListing))
	}

	return sum
}

// collectRewalk computes each folder's totals with a full walk of its own subtree.
func (c *Collector) collectRewalk(ctx context.Context, path string, depth int) []FolderRecord {
	if ctx.Err() != nil {
		return nil
	}

	listing, err := c.list(path)
	if err != nil {
		c.folderFailed(path, depth, err)

		return nil
	}

	sum, err := c.subtreeTotals(path)
	if err != nil {
		c.folderFailed(path, depth, err)

		return nil
	}

	meta, err := c.extractor.Extract(path)
	if err != nil {
		c.folderFailed(path, depth, err)

		return nil
	}

	records := []FolderRecord{newRecord(path, depth, sum, meta)}
	c.recorded(records[0])

	for _, child := range listing.dirs {
		records = append(records, c.collectRewalk(ctx, child, depth+1)...)
	}

	return records
}

// listing is the one-level view of a folder.
type listing struct {
	dirs   []string
	direct totals
}

// list reads the immediate entries of path. Subdirectories are returned in name order;
// regular files are summed. Symlinks and other special files are ignored.
func (c *Collector) list(path string) (listing, error) {
	entries, err := c.readDir(path)
	if err != nil {
		return listing{}, fmt.Errorf("listing %q: %w", path, err)
	}

	var l listing

	for _, entry := range entries {
		child := filepath.Join(path, entry.Name())

		switch {
		case entry.IsDir():
			l.dirs = append(l.dirs, child)
		case entry.Type().IsRegular():
			info, err := entry.Info()
			if err != nil {
				c.log.WithPath(child).Warnw("Couldn't get size", "error", err)
				c.addError()

				continue
			}

			l.direct.addFile(info.Size())
		}
	}

	c.mu.Lock()
	c.bytes += l.direct.bytes
	c.mu.Unlock()

	return l, nil
}

func (c *Collector) recorded(record FolderRecord) {
	c.mu.Lock()
	c.folders++
	c.mu.Unlock()

	c.log.Infow("Processed folder",
		"path", record.Path,
		"depth", record.Depth,
		"files", record.FileCount,
		"subfolders", record.SubfolderCount,
		"size", record.SizeLabel,
		"year_created", record.YearCreated,
		"last_modified_date", record.LastModifiedDate,
		"last_modified_by", record.LastModifiedBy,
	)
}

func (c *Collector) folderFailed(path string, depth int, err error) {
	c.log.WithPath(path).WithDepth(depth).Errorw("Error processing folder", "error", err)
	c.addError()
}

func (c *Collector) addError() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.errorCount++
}
