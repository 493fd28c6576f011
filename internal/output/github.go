package output

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// GithubFormatter outputs rows as a Markdown pipe table
type GithubFormatter struct {
	writer io.Writer
}

// NewGithubFormatter creates a new Markdown table formatter
func NewGithubFormatter(w io.Writer) *GithubFormatter {
	return &GithubFormatter{writer: w}
}

// SetOutput sets the output writer
func (g *GithubFormatter) SetOutput(w io.Writer) {
	g.writer = w
}

// Format writes header and rows as a Markdown table. Markdown tables need
// a header line, so without a header the first row takes its place.
func (g *GithubFormatter) Format(header []string, rows [][]string) error {
	if header == nil && len(rows) > 0 {
		header, rows = rows[0], rows[1:]
	}

	t := table.NewWriter()
	if header != nil {
		t.AppendHeader(toRow(header))
	}
	for _, row := range rows {
		t.AppendRow(toRow(row))
	}

	_, err := io.WriteString(g.writer, t.RenderMarkdown()+"\n")
	return err
}

func toRow(fields []string) table.Row {
	row := make(table.Row, len(fields))
	for i, f := range fields {
		row[i] = f
	}
	return row
}
