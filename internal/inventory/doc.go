// Package inventory collects per-folder statistics for a directory tree.
//
// It walks the tree depth-first, totals the sizes and counts of every
// subtree, attaches timestamps and ownership to each folder and returns
// one FolderRecord per folder in pre-order. Sizes are rendered as
// KB/MB/GB labels for the manual review workbook.
package inventory
