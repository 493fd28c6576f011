// Package output renders tables to a writer.
//
// Supported formats:
//   - github: Markdown pipe table (default)
//   - grid: boxed ASCII grid
//   - csv: comma-separated values with header row
//   - json: JSON Lines, one object per row
//
// Example usage:
//
//	formatter, err := output.New("github", os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := formatter.Format(tbl.Header, tbl.Rows); err != nil {
//	    log.Fatal(err)
//	}
package output

import (
	"fmt"
	"io"
	"strings"
)

// Formatter defines the interface for output formatters.
//
// A nil header means the rows carry no column names; formatters then write
// the rows alone.
type Formatter interface {
	// Format writes the header and rows in the formatter's specific format
	Format(header []string, rows [][]string) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// Format names accepted by New.
const (
	FormatGithub = "github"
	FormatGrid   = "grid"
	FormatCSV    = "csv"
	FormatJSON   = "json"
)

// Names lists the supported format names.
func Names() []string {
	return []string{FormatGithub, FormatGrid, FormatCSV, FormatJSON}
}

// New returns the formatter registered under name.
func New(name string, w io.Writer) (Formatter, error) {
	switch name {
	case FormatGithub:
		return NewGithubFormatter(w), nil
	case FormatGrid:
		return NewGridFormatter(w), nil
	case FormatCSV:
		return NewCSVFormatter(w), nil
	case FormatJSON, "jsonl":
		return NewJSONFormatter(w), nil
	default:
		return nil, fmt.Errorf("unsupported format '%s' (supported: %s)", name, strings.Join(Names(), ", "))
	}
}
