// Package display provides the startup banner, byte formatting for the run
// summary, and table previews of the output relations.
package display

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// FormatBytes returns a human-readable size (B, KiB, MiB, GiB, TiB, PiB).
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	suffixes := []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	if exp >= len(suffixes) {
		exp = len(suffixes) - 1
		div = 1
		for i := 0; i <= exp; i++ {
			div *= unit
		}
	}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), suffixes[exp])
}

// RenderPreview writes the first limit data rows of a CSV table (header row
// included in rows[0]) to w as an ASCII table, with a trailing note when rows
// were elided. A limit of 0 renders nothing.
func RenderPreview(w io.Writer, title string, rows [][]string, limit int) {
	if limit <= 0 || len(rows) == 0 {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(title)

	// Keep header values exactly as written to the CSV.
	t.Style().Format.Header = text.FormatDefault

	t.AppendHeader(toRow(rows[0]))
	data := rows[1:]
	shown := len(data)
	if shown > limit {
		shown = limit
	}
	for _, row := range data[:shown] {
		t.AppendRow(toRow(row))
	}
	t.Render()

	if shown < len(data) {
		fmt.Fprintf(w, "(%d more rows)\n", len(data)-shown)
	}
	fmt.Fprintln(w)
}

func toRow(cells []string) table.Row {
	row := make(table.Row, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	return row
}
