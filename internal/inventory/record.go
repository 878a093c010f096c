package inventory

import (
	"path/filepath"
)

// ReviewFields are the annotation columns filled in by hand during review.
type ReviewFields struct {
	// SizeBeforeDeletion starts out equal to the folder's size label.
	SizeBeforeDeletion string `json:"folder_size_before_deletion"`
	SizeAfterDeletion  string `json:"folder_size_after_deletion"`
	ScreamTest         string `json:"scream_test"`
	RenamedDate        string `json:"renamed_date"`
	Delete             string `json:"delete"`
	Retain             string `json:"retain"`
	Hold               string `json:"hold"`
	Comment            string `json:"comment"`
}

// FolderRecord holds the statistics for a single folder.
// Sizes and counts cover the whole subtree, not just direct children.
type FolderRecord struct {
	// Depth is the distance from the root (root = 0).
	Depth int `json:"depth"`
	// Name is the folder's basename.
	Name string `json:"folder_name"`
	// Path is the absolute, cleaned folder path.
	Path string `json:"folder_path"`
	// SizeBytes is the cumulative size of all non-empty regular files.
	SizeBytes uint64 `json:"size_bytes"`
	// SizeLabel is SizeBytes rendered by FormatSize.
	SizeLabel string `json:"folder_size"`
	// FileCount is the number of non-empty regular files.
	FileCount int64 `json:"total_files"`
	// SubfolderCount is the number of descendant folders.
	SubfolderCount int64 `json:"total_subfolders"`
	// YearCreated is the year of the folder's creation timestamp.
	YearCreated int `json:"year_created"`
	// LastModifiedDate is the folder's modification date as YYYY-MM-DD.
	LastModifiedDate string `json:"last_modified_date"`
	// LastModifiedBy is the folder owner, or UnknownOwner.
	LastModifiedBy string `json:"last_modified_by"`

	ReviewFields
}

// totals accumulates subtree sizes and counts.
type totals struct {
	bytes   uint64
	files   int64
	folders int64
}

// addFile counts a regular file. Empty files are ignored.
func (t *totals) addFile(size int64) {
	if size <= 0 {
		return
	}

	t.bytes += uint64(size)
	t.files++
}

// addChild folds a child folder's totals in, counting the child itself.
func (t *totals) addChild(child totals) {
	t.bytes += child.bytes
	t.files += child.files
	t.folders += child.folders + 1
}

// folderName returns the basename of path, or path itself for roots like "/" or "C:\".
func folderName(path string) string {
	name := filepath.Base(path)
	if name == "" || name == "." || name == string(filepath.Separator) {
		return path
	}

	return name
}

func newRecord(path string, depth int, sum totals, meta Metadata) FolderRecord {
	label := FormatSize(float64(sum.bytes))

	return FolderRecord{
		Depth:            depth,
		Name:             folderName(path),
		Path:             path,
		SizeBytes:        sum.bytes,
		SizeLabel:        label,
		FileCount:        sum.files,
		SubfolderCount:   sum.folders,
		YearCreated:      meta.YearCreated,
		LastModifiedDate: meta.LastModifiedDate,
		LastModifiedBy:   meta.LastModifiedBy,
		ReviewFields: ReviewFields{
			SizeBeforeDeletion: label,
		},
	}
}
