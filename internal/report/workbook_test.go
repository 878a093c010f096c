package report

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/idelchi/dirinv/internal/inventory"
)

func sampleRecords(root string) []inventory.FolderRecord {
	record := func(depth int, path, label string, files, subfolders int64) inventory.FolderRecord {
		return inventory.FolderRecord{
			Depth:            depth,
			Name:             filepath.Base(path),
			Path:             path,
			SizeLabel:        label,
			FileCount:        files,
			SubfolderCount:   subfolders,
			YearCreated:      2023,
			LastModifiedDate: "2024-02-29",
			LastModifiedBy:   "alice",
			ReviewFields:     inventory.ReviewFields{SizeBeforeDeletion: label},
		}
	}

	return []inventory.FolderRecord{
		record(0, root, "2.0 KB", 1, 2),
		record(1, filepath.Join(root, "a"), "0.0 KB", 0, 1),
		record(2, filepath.Join(root, "a", "b"), "0.0 KB", 0, 0),
	}
}

func TestWriteWorkbook(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "share")
	out := filepath.Join(dir, "report.xlsx")

	require.NoError(t, WriteWorkbook(out, root, sampleRecords(root)))

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{HierarchySheet, PropertiesSheet}, f.GetSheetList())

	t.Run("hierarchy", func(t *testing.T) {
		rows, err := f.GetRows(HierarchySheet)
		require.NoError(t, err)

		assert.Equal(t, [][]string{
			{"Level 0", "Level 1", "Level 2"},
			{"share"},
			{"share", "a"},
			{"share", "a", "b"},
		}, rows)
	})

	t.Run("properties", func(t *testing.T) {
		rows, err := f.GetRows(PropertiesSheet)
		require.NoError(t, err)
		require.Len(t, rows, 4)

		assert.Equal(t, PropertyHeaders(), rows[0])

		assert.Equal(t, []string{
			"0", "share", root, "2.0 KB", "1", "2", "2023", "2024-02-29", "alice", "2.0 KB",
		}, rows[1][:10])

		for _, row := range rows[1:] {
			for _, cell := range row[10:] {
				assert.Empty(t, cell)
			}
		}
	})
}

func TestWriteWorkbook_NoRecords(t *testing.T) {
	err := WriteWorkbook(filepath.Join(t.TempDir(), "x.xlsx"), "/", nil)
	require.ErrorIs(t, err, ErrNoRecords)
}

func TestWriteWorkbook_BadPath(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(root, "missing-dir", "report.xlsx")

	require.Error(t, WriteWorkbook(out, root, sampleRecords(root)))
}

func TestPropertyHeaders(t *testing.T) {
	assert.Equal(t, []string{
		"depth",
		"folder_name",
		"folder_path",
		"folder_size",
		"total_files",
		"total_subfolders",
		"year_created",
		"last_modified_date",
		"last_modified_by",
		"folder_size_before_deletion",
		"folder_size_after_deletion",
		"scream_test",
		"renamed_date",
		"delete",
		"retain",
		"hold",
		"comment",
	}, PropertyHeaders())
	assert.Equal(t, 17, propertyColumns().Len())
}

func TestRelativeParts(t *testing.T) {
	root := filepath.Join(t.TempDir(), "r")

	assert.Empty(t, relativeParts(root, root))
	assert.Equal(t, []any{"x"}, relativeParts(root, filepath.Join(root, "x")))
	assert.Equal(t, []any{"x", "y"}, relativeParts(root, filepath.Join(root, "x", "y")+string(filepath.Separator)))
}
