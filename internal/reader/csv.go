package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vegasq/csvcat/internal/table"
)

// ReadCSV reads a comma-delimited file whose first record is the header.
//
// Every data row must have as many fields as the header. An empty file
// yields a table with no header and no rows.
func ReadCSV(path string) (*table.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return ParseCSV(file)
}

// ParseCSV reads CSV records from r. See ReadCSV.
func ParseCSV(r io.Reader) (*table.Table, error) {
	csvReader := csv.NewReader(r)
	csvReader.Comma = ','

	header, err := csvReader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return table.New(nil, nil), nil
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Read pins FieldsPerRecord to the header width after the first record.
	rows := make([][]string, 0)
	for {
		record, err := csvReader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row %d: %w", len(rows)+1, err)
		}
		rows = append(rows, record)
	}

	return table.New(header, rows), nil
}
