package inventory

import (
	"github.com/idelchi/dirinv/internal/logger"
)

// Summary holds the grand totals of a run.
type Summary struct {
	// Folders is the number of records.
	Folders int `json:"folders"`
	// Files is the sum of every record's FileCount.
	Files int64 `json:"files"`
	// Subfolders is the sum of every record's SubfolderCount.
	Subfolders int64 `json:"subfolders"`
	// TotalBytes is re-derived from the size labels and inherits their rounding.
	TotalBytes float64 `json:"total_bytes"`
	// TotalSize is TotalBytes rendered by FormatSize.
	TotalSize string `json:"total_size"`
	// ParseErrors is the number of labels that could not be parsed and counted as zero.
	ParseErrors int `json:"parse_errors"`
}

// Summarize sums the records. Sizes are rebuilt from SizeLabel, so nested folders are
// counted once per ancestor, exactly as the review workbook's size column adds up.
func Summarize(records []FolderRecord, log *logger.Logger) Summary {
	summary := Summary{Folders: len(records)}

	for _, record := range records {
		summary.Files += record.FileCount
		summary.Subfolders += record.SubfolderCount

		bytes, err := ParseSize(record.SizeLabel)
		if err != nil {
			log.Errorw("Error parsing size", "path", record.Path, "size", record.SizeLabel, "error", err)
			summary.ParseErrors++

			continue
		}

		summary.TotalBytes += bytes
	}

	summary.TotalSize = FormatSize(summary.TotalBytes)

	return summary
}
