// Package report writes folder inventories as review workbooks.
package report

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/idelchi/dirinv/internal/inventory"
)

// Sheet names of the review workbook.
const (
	HierarchySheet  = "Folder_Hierarchy"
	PropertiesSheet = "Folder_Properties"
)

// ErrNoRecords is returned when there is nothing to write.
var ErrNoRecords = errors.New("no folder records to write")

// WriteWorkbook writes records to an xlsx file at path.
//
// Folder_Hierarchy has one column per depth level: the root's name in the first
// column and the folder's path below root spread over the following ones.
// Folder_Properties has one row per record with the columns of PropertyHeaders.
func WriteWorkbook(path, root string, records []inventory.FolderRecord) error {
	if len(records) == 0 {
		return ErrNoRecords
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", HierarchySheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	if err := writeHierarchy(f, root, records); err != nil {
		return err
	}

	if _, err := f.NewSheet(PropertiesSheet); err != nil {
		return fmt.Errorf("creating sheet %s: %w", PropertiesSheet, err)
	}

	if err := writeProperties(f, records); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %q: %w", path, err)
	}

	return nil
}

func writeHierarchy(f *excelize.File, root string, records []inventory.FolderRecord) error {
	maxDepth := 0
	for _, r := range records {
		maxDepth = max(maxDepth, r.Depth)
	}

	header := make([]any, maxDepth+1)
	for i := range header {
		header[i] = fmt.Sprintf("Level %d", i)
	}

	if err := setRow(f, HierarchySheet, 1, header); err != nil {
		return err
	}

	root = filepath.Clean(root)
	rootName := filepath.Base(root)
	if rootName == "." || rootName == string(filepath.Separator) {
		rootName = root
	}

	for i, r := range records {
		row := append([]any{rootName}, relativeParts(root, r.Path)...)

		if err := setRow(f, HierarchySheet, i+2, row); err != nil {
			return err
		}
	}

	return nil
}

// relativeParts splits path below root into its folder names.
func relativeParts(root, path string) []any {
	rel, err := filepath.Rel(root, filepath.Clean(path))
	if err != nil || rel == "." {
		return nil
	}

	parts := strings.Split(rel, string(filepath.Separator))
	row := make([]any, len(parts))

	for i, p := range parts {
		row[i] = p
	}

	return row
}

func writeProperties(f *excelize.File, records []inventory.FolderRecord) error {
	cols := propertyColumns()

	header := make([]any, 0, cols.Len())
	for el := cols.Front(); el != nil; el = el.Next() {
		header = append(header, el.Key)
	}

	if err := setRow(f, PropertiesSheet, 1, header); err != nil {
		return err
	}

	for i, r := range records {
		row := make([]any, 0, cols.Len())
		for el := cols.Front(); el != nil; el = el.Next() {
			row = append(row, el.Value(r))
		}

		if err := setRow(f, PropertiesSheet, i+2, row); err != nil {
			return err
		}
	}

	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}

	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("writing %s row %d: %w", sheet, row, err)
	}

	return nil
}
