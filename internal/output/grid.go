package output

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// GridFormatter outputs rows as a boxed ASCII table
type GridFormatter struct {
	writer io.Writer
}

// NewGridFormatter creates a new grid table formatter
func NewGridFormatter(w io.Writer) *GridFormatter {
	return &GridFormatter{writer: w}
}

// SetOutput sets the output writer
func (g *GridFormatter) SetOutput(w io.Writer) {
	g.writer = w
}

// Format writes header and rows as a grid. Cells are written verbatim:
// no header upper-casing and no wrapping.
func (g *GridFormatter) Format(header []string, rows [][]string) error {
	t := tablewriter.NewWriter(g.writer)
	t.SetAutoFormatHeaders(false)
	t.SetAutoWrapText(false)
	t.SetAlignment(tablewriter.ALIGN_LEFT)
	if header != nil {
		t.SetHeader(header)
	}
	t.AppendBulk(rows)
	t.Render()
	return nil
}
