package query

// sampleRow is the row whose value decides a column's type.
const sampleRow = 1

// InferType decides whether column col of rows holds numbers or text.
//
// Only the value in rows[1] is inspected: a column is Numeric when that
// value parses as a float, and Text otherwise. Tables with fewer than two
// rows have no sample and are Text. Later rows are not checked here; a
// value that does not parse fails when it is converted.
func InferType(rows [][]string, col int) ColumnType {
	if len(rows) <= sampleRow || col < 0 || col >= len(rows[sampleRow]) {
		return Text
	}
	if _, err := parseNumber(rows[sampleRow][col]); err != nil {
		return Text
	}
	return Numeric
}
