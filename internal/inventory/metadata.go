package inventory

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/idelchi/dirinv/internal/logger"
)

// UnknownOwner is reported when the owner of a folder cannot be resolved.
const UnknownOwner = "Unknown"

var errOwnerUnsupported = errors.New("owner lookup not supported on this platform")

// Metadata holds the folder-level attributes of a FolderRecord.
type Metadata struct {
	YearCreated      int
	LastModifiedDate string
	LastModifiedBy   string
}

// Extractor reads folder-level metadata for a single path.
type Extractor interface {
	Extract(path string) (Metadata, error)
}

// OwnerResolver looks up the display name of a path's owner.
type OwnerResolver interface {
	ResolveOwner(path string) (string, error)
}

// FSExtractor reads metadata from the local filesystem.
type FSExtractor struct {
	owners OwnerResolver
	log    *logger.Logger
}

// NewFSExtractor returns an extractor using the platform's owner lookup.
func NewFSExtractor(log *logger.Logger) *FSExtractor {
	return NewFSExtractorWithOwners(log, platformOwners{})
}

// NewFSExtractorWithOwners returns an extractor using the given owner lookup.
func NewFSExtractorWithOwners(log *logger.Logger, owners OwnerResolver) *FSExtractor {
	return &FSExtractor{owners: owners, log: log}
}

// Extract returns the creation year, modification date and owner of path.
// Failing to stat the path is an error; failing to resolve the owner is not.
func (e *FSExtractor) Extract(path string) (Metadata, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("reading timestamps of %q: %w", path, err)
	}

	return Metadata{
		YearCreated:      creationTime(path, info).Local().Year(),
		LastModifiedDate: info.ModTime().Local().Format(time.DateOnly),
		LastModifiedBy:   e.owner(path),
	}, nil
}

func (e *FSExtractor) owner(path string) string {
	name, err := e.owners.ResolveOwner(path)
	if err != nil || name == "" {
		e.log.Infow("Could not resolve folder owner", "path", path, "error", err)

		return UnknownOwner
	}

	return name
}
