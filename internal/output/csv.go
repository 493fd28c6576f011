package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CSVFormatter outputs rows as CSV format
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes rows as CSV, preceded by the header when there is one
func (c *CSVFormatter) Format(header []string, rows [][]string) error {
	csvWriter := csv.NewWriter(c.writer)

	if header != nil {
		if err := csvWriter.Write(sanitizeRecord(header)); err != nil {
			return err
		}
	}

	for _, row := range rows {
		if err := csvWriter.Write(sanitizeRecord(row)); err != nil {
			return err
		}
	}

	// Flush and check for errors
	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	return nil
}

func sanitizeRecord(fields []string) []string {
	record := make([]string, len(fields))
	for i, f := range fields {
		record[i] = sanitizeField(f)
	}
	return record
}

// sanitizeField guards against CSV injection by prefixing characters that
// could trigger formula execution in spreadsheet applications.
func sanitizeField(val string) string {
	if val == "" {
		return val
	}
	switch val[0] {
	case '=', '+', '@', '\t', '\r', '\n', '|':
		return "'" + strings.ReplaceAll(val, "'", "''")
	case '-':
		// Negative numbers are data, not formulas.
		if isNumber(val) {
			return val
		}
		return "'" + strings.ReplaceAll(val, "'", "''")
	}
	return val
}

// isNumber reports whether s parses as a float.
func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
