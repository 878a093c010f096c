package inventory

import (
	"io/fs"
	"sync"

	"github.com/charlievieth/fastwalk"
)

// accumulator gathers subtree totals from concurrent fastwalk callbacks using a mutex.
type accumulator struct {
	mu     sync.Mutex
	sum    totals
	dirs   map[string]struct{}
	failed map[string]struct{}
}

func newAccumulator() *accumulator {
	return &accumulator{
		dirs:   make(map[string]struct{}),
		failed: make(map[string]struct{}),
	}
}

func (a *accumulator) addFile(size int64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.sum.addFile(size)
}

func (a *accumulator) addDir(path string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.dirs[path] = struct{}{}
}

// fail marks a directory whose contents could not be read.
func (a *accumulator) fail(path string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.failed[path] = struct{}{}
}

// totals counts only folders that could be listed, matching the bottom-up strategy.
func (a *accumulator) totals() totals {
	a.mu.Lock()
	defer a.mu.Unlock()

	sum := a.sum
	for dir := range a.dirs {
		if _, ok := a.failed[dir]; !ok {
			sum.folders++
		}
	}

	return sum
}

// subtreeTotals enumerates everything below root and returns its totals.
// Entries that cannot be accessed are logged and skipped; only a failure on root itself is returned.
func (c *Collector) subtreeTotals(root string) (totals, error) {
	acc := newAccumulator()

	conf := &fastwalk.Config{
		Follow: false, // Don't follow symlinks
	}

	//nolint:varnamelen // d is standard for DirEntry
	err := fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}

			c.log.WithPath(path).Warnw("Error accessing path", "error", err)
			c.addError()

			if d != nil && d.IsDir() {
				acc.fail(path)
			}

			return nil
		}

		if path == root {
			return nil
		}

		if d.IsDir() {
			acc.addDir(path)

			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			c.log.WithPath(path).Warnw("Couldn't get size", "error", err)
			c.addError()

			return nil //nolint:nilerr // Intentionally skip errors during walk
		}

		acc.addFile(info.Size())

		return nil
	})
	if err != nil {
		return totals{}, err
	}

	return acc.totals(), nil
}
