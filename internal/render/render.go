// Package render formats catalog listings for the terminal.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/go-ports/cataloger/internal/catalog"
)

// Row is one object listing entry.
type Row struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Location string `json:"location"`
}

var columns = []string{"Name", "Category", "Location"}

// Rows writes the listing in the requested format: "json", "md"/"markdown",
// or the default light table.
func Rows(w io.Writer, rows []Row, format string) error {
	switch format {
	case "json":
		return renderJSON(w, rows)
	case "md", "markdown":
		return renderMarkdown(w, rows)
	default:
		return renderTable(w, rows)
	}
}

func renderTable(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		_, _ = fmt.Fprintln(w, "(0 objects)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	headerRow := make(table.Row, len(columns))
	for i, col := range columns {
		headerRow[i] = col
	}
	t.AppendHeader(headerRow)

	for _, r := range rows {
		t.AppendRow(table.Row{r.Name, r.Category, r.Location})
	}

	t.Render()
	_, _ = fmt.Fprintf(w, "(%d objects)\n", len(rows))
	return nil
}

func renderJSON(w io.Writer, rows []Row) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func renderMarkdown(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		_, _ = fmt.Fprintln(w, "(0 objects)")
		return nil
	}

	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(columns, " | "))
	seps := make([]string, len(columns))
	for i := range seps {
		seps[i] = "---"
	}
	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(seps, " | "))

	for _, r := range rows {
		_, _ = fmt.Fprintf(w, "| %s | %s | %s |\n", r.Name, r.Category, r.Location)
	}
	return nil
}

// Tree writes the container hierarchy as an indented outline, two spaces per
// level, objects omitted.
func Tree(w io.Writer, root *catalog.Container) {
	writeTree(w, root, 0)
}

func writeTree(w io.Writer, node *catalog.Container, depth int) {
	_, _ = fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), node.Name)
	for _, child := range node.Containers {
		writeTree(w, child, depth+1)
	}
}
