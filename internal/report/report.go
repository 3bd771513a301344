// Package report renders the final per-language table.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/DeusData/loc-analyzer/internal/walker"
)

type row struct {
	name string
	loc  int
}

// Render writes the analysis report. Languages are sorted by line count
// descending, ties broken by name ascending.
func Render(w io.Writer, s *walker.Summary) {
	fmt.Fprintln(w, "\n--- LOC Analysis Report ---")
	if len(s.Stats) == 0 {
		fmt.Fprintln(w, "No source code files found or processed.")
		return
	}

	rows := make([]row, 0, len(s.Stats))
	for name, loc := range s.Stats {
		rows = append(rows, row{name, loc})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].loc != rows[j].loc {
			return rows[i].loc > rows[j].loc
		}
		return rows[i].name < rows[j].name
	})

	fmt.Fprintf(w, "%-20s | %-15s\n", "Language", "Lines of Code")
	fmt.Fprintln(w, strings.Repeat("-", 38))
	for _, r := range rows {
		fmt.Fprintf(w, "%-20s | %-15s\n", r.name, humanize.Comma(int64(r.loc)))
	}
	fmt.Fprintln(w, strings.Repeat("-", 38))
	fmt.Fprintf(w, "%-20s | %-15s\n", "TOTAL", humanize.Comma(int64(s.TotalLOC)))
	fmt.Fprintf(w, "\nTotal source files processed: %d\n", s.FilesProcessed)
	fmt.Fprintln(w, "--- End of Report ---")
}
