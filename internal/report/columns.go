package report

import (
	"github.com/elliotchance/orderedmap/v2"

	"github.com/idelchi/dirinv/internal/inventory"
)

// column extracts one cell value from a record.
type column func(r inventory.FolderRecord) any

// propertyColumns returns the Folder_Properties columns in sheet order.
func propertyColumns() *orderedmap.OrderedMap[string, column] {
	cols := orderedmap.NewOrderedMap[string, column]()

	cols.Set("depth", func(r inventory.FolderRecord) any { return r.Depth })
	cols.Set("folder_name", func(r inventory.FolderRecord) any { return r.Name })
	cols.Set("folder_path", func(r inventory.FolderRecord) any { return r.Path })
	cols.Set("folder_size", func(r inventory.FolderRecord) any { return r.SizeLabel })
	cols.Set("total_files", func(r inventory.FolderRecord) any { return r.FileCount })
	cols.Set("total_subfolders", func(r inventory.FolderRecord) any { return r.SubfolderCount })
	cols.Set("year_created", func(r inventory.FolderRecord) any { return r.YearCreated })
	cols.Set("last_modified_date", func(r inventory.FolderRecord) any { return r.LastModifiedDate })
	cols.Set("last_modified_by", func(r inventory.FolderRecord) any { return r.LastModifiedBy })
	cols.Set("folder_size_before_deletion", func(r inventory.FolderRecord) any { return r.SizeBeforeDeletion })
	cols.Set("folder_size_after_deletion", func(r inventory.FolderRecord) any { return r.SizeAfterDeletion })
	cols.Set("scream_test", func(r inventory.FolderRecord) any { return r.ScreamTest })
	cols.Set("renamed_date", func(r inventory.FolderRecord) any { return r.RenamedDate })
	cols.Set("delete", func(r inventory.FolderRecord) any { return r.Delete })
	cols.Set("retain", func(r inventory.FolderRecord) any { return r.Retain })
	cols.Set("hold", func(r inventory.FolderRecord) any { return r.Hold })
	cols.Set("comment", func(r inventory.FolderRecord) any { return r.Comment })

	return cols
}

// PropertyHeaders returns the Folder_Properties header row.
func PropertyHeaders() []string {
	cols := propertyColumns()
	headers := make([]string, 0, cols.Len())

	for el := cols.Front(); el != nil; el = el.Next() {
		headers = append(headers, el.Key)
	}

	return headers
}
