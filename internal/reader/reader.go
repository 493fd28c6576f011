// Package reader loads input files into a table.Table.
//
// CSV files are read with a header row; parquet files are selected by
// their extension and flattened to text fields so the query engine sees
// the same shape for both.
package reader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vegasq/csvcat/internal/table"
)

// Format is an input file format.
type Format string

const (
	FormatCSV     Format = "csv"
	FormatParquet Format = "parquet"
)

// DetectFormat picks the input format from the file extension. Anything
// that is not .parquet is read as CSV.
func DetectFormat(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".parquet") {
		return FormatParquet
	}
	return FormatCSV
}

// Load reads the whole file at path into memory.
//
// Errors wrap the underlying cause, so errors.Is(err, os.ErrNotExist)
// reports a missing file.
func Load(path string) (*table.Table, error) {
	var (
		t   *table.Table
		err error
	)

	switch DetectFormat(path) {
	case FormatParquet:
		t, err = readParquet(path)
	default:
		t, err = ReadCSV(path)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func readParquet(path string) (*table.Table, error) {
	r, err := NewParquetReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()
	return r.ReadAll()
}
