package output

import (
	"encoding/json"
	"io"
	"math"
	"strconv"
)

// JSONFormatter outputs rows as JSON Lines format
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes one JSON object per row keyed by the header. Without a
// header each row is written as an array. Fields that parse as numbers are
// emitted as JSON numbers.
func (j *JSONFormatter) Format(header []string, rows [][]string) error {
	encoder := json.NewEncoder(j.writer)
	for _, row := range rows {
		var v interface{}
		if header == nil {
			values := make([]interface{}, len(row))
			for i, f := range row {
				values[i] = jsonValue(f)
			}
			v = values
		} else {
			obj := make(map[string]interface{}, len(header))
			for i, col := range header {
				if i < len(row) {
					obj[col] = jsonValue(row[i])
				}
			}
			v = obj
		}
		if err := encoder.Encode(v); err != nil {
			return err
		}
	}
	return nil
}

// jsonValue returns field as a float when it is a finite number.
func jsonValue(field string) interface{} {
	f, err := strconv.ParseFloat(field, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return field
	}
	return f
}
