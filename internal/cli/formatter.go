package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"github.com/idelchi/dirinv/internal/inventory"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2

	// MaxNameWidth is the display width at which folder names are truncated in the table.
	MaxNameWidth = 48
)

// PrintJSON outputs the result in JSON format.
func PrintJSON(result *inventory.Result, writer io.Writer) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTable outputs the folder tree and totals in human-readable table format.
// Headings are colored when colorize is set.
//
//nolint:forbidigo // This function prints output to the console.
func PrintTable(result *inventory.Result, writer io.Writer, colorize bool) error {
	heading := func(s string) string {
		if colorize {
			return color.Bold.Sprint(s)
		}
		return s
	}

	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintln(w, heading("Folder\tSize\tFiles\tSubfolders\tCreated\tModified\tOwner"))

	for _, r := range result.Records {
		name := strings.Repeat("  ", r.Depth) + r.Name
		name = runewidth.Truncate(name, MaxNameWidth, "…")

		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\t%s\n",
			name, humanize.IBytes(r.SizeBytes), r.FileCount, r.SubfolderCount,
			r.YearCreated, r.LastModifiedDate, r.LastModifiedBy)
	}

	// Stats summary
	s := result.Summary
	fmt.Fprintln(w, "\n"+heading("Stats:")+"\t\t")
	fmt.Fprintf(w, "Root:\t%s\n", result.Root)
	fmt.Fprintf(w, "Total folders processed:\t%d\n", s.Folders)
	fmt.Fprintf(w, "Total files:\t%d\n", s.Files)
	fmt.Fprintf(w, "Total subfolders:\t%d\n", s.Subfolders)
	fmt.Fprintf(w, "Total size:\t%s\n", s.TotalSize)

	if result.ErrorCount > 0 {
		errs := fmt.Sprintf("%d", result.ErrorCount)
		if colorize {
			errs = color.Red.Sprint(errs)
		}
		fmt.Fprintf(w, "Skipped (errors):\t%s\n", errs)
	}

	fmt.Fprintf(w, "\nElapsed:\t%v\n", result.Elapsed)

	return w.Flush()
}
