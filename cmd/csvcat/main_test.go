package main

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegasq/csvcat/internal/config"
	"github.com/vegasq/csvcat/internal/query"
)

const productsCSV = `name,brand,price,rating
iphone 15 pro,apple,999,4.9
galaxy s23 ultra,samsung,1199,4.8
redmi note 12,xiaomi,199,4.6
iphone 14,apple,799,4.7
galaxy a54,samsung,349,4.2
poco x5 pro,xiaomi,299,4.4
iphone se,apple,429,4.1
galaxy z flip 5,samsung,999,4.6
redmi 10c,xiaomi,149,4.1
iphone 13 mini,apple,599,4.5
`

// createTestCSVFile writes the product table into a temporary directory
func createTestCSVFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.csv")
	require.NoError(t, os.WriteFile(path, []byte(productsCSV), 0o644))
	return path
}

// execute runs the root command and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	if args == nil {
		// cobra falls back to os.Args when given nil
		args = []string{}
	}
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func readCSV(t *testing.T, s string) [][]string {
	t.Helper()
	records, err := csv.NewReader(strings.NewReader(s)).ReadAll()
	require.NoError(t, err)
	return records
}

func TestRoot_PrintsTable(t *testing.T) {
	stdout, stderr, err := execute(t, createTestCSVFile(t))
	require.NoError(t, err)
	assert.Empty(t, stderr)

	assert.Contains(t, stdout, "name")
	assert.Contains(t, stdout, "iphone 15 pro")
	assert.Contains(t, stdout, "redmi 10c")
}

func TestRoot_FileFlag(t *testing.T) {
	stdout, _, err := execute(t, "-f", "csv", "--file", createTestCSVFile(t))
	require.NoError(t, err)
	assert.Len(t, readCSV(t, stdout), 11)
}

func TestRoot_FilterOrderLimit(t *testing.T) {
	stdout, _, err := execute(t,
		"-f", "csv",
		"--where", "price>500",
		"--order-by", "rating=asc",
		"--limit", "2",
		createTestCSVFile(t),
	)
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"name", "brand", "price", "rating"},
		{"iphone 13 mini", "apple", "599", "4.5"},
		{"galaxy z flip 5", "samsung", "999", "4.6"},
	}, readCSV(t, stdout))
}

func TestRoot_Aggregate(t *testing.T) {
	stdout, _, err := execute(t,
		"-f", "csv",
		"--where", "brand=apple",
		"--aggregate", "price=avg",
		createTestCSVFile(t),
	)
	require.NoError(t, err)

	// (999 + 799 + 429 + 599) / 4
	assert.Equal(t, [][]string{{"avg"}, {"706.5"}}, readCSV(t, stdout))
}

func TestRoot_Schema(t *testing.T) {
	stdout, _, err := execute(t, "-f", "csv", "--schema", createTestCSVFile(t))
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"column", "type"},
		{"name", "text"},
		{"brand", "text"},
		{"price", "numeric"},
		{"rating", "numeric"},
	}, readCSV(t, stdout))
}

func TestRoot_ConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "csvcat.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("format: csv\norder-by: price=desc\n"), 0o644))

	stdout, _, err := execute(t, "--config", cfgPath, "--limit", "1", createTestCSVFile(t))
	require.NoError(t, err)

	records := readCSV(t, stdout)
	require.Len(t, records, 2)
	assert.Equal(t, "galaxy s23 ultra", records[1][0])
}

func TestRoot_VerboseLogsToStderr(t *testing.T) {
	stdout, stderr, err := execute(t, "-v", "-f", "csv", "--where", "brand=xiaomi", createTestCSVFile(t))
	require.NoError(t, err)

	assert.Contains(t, stderr, "applied filter")
	assert.Contains(t, stderr, "run_id=")
	assert.NotContains(t, stdout, "applied filter")
}

func TestRoot_Errors(t *testing.T) {
	file := createTestCSVFile(t)

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"missing file argument", []string{}, config.ErrMissingFile},
		{"file not found", []string{filepath.Join(t.TempDir(), "nope.csv")}, os.ErrNotExist},
		{"bad format", []string{"-f", "xml", file}, config.ErrInvalidConfig},
		{"negative limit", []string{"--limit", "-1", file}, config.ErrInvalidConfig},
		{"schema with directive", []string{"--schema", "--where", "price>1", file}, config.ErrInvalidConfig},
		{"malformed where", []string{"--where", "pricerating", file}, query.ErrFormat},
		{"unknown column", []string{"--where", "weight>1", file}, query.ErrLookup},
		{"bad direction", []string{"--order-by", "rating=middle", file}, query.ErrFormat},
		{"text aggregate", []string{"--aggregate", "brand=max", file}, query.ErrType},
		{"bad literal", []string{"--where", "price>expensive", file}, query.ErrConversion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "want %v, got %v", tt.wantErr, err)
			assert.Empty(t, stdout, "no partial output on error")
		})
	}
}

func TestPrintError(t *testing.T) {
	t.Run("directive", func(t *testing.T) {
		var buf bytes.Buffer
		printError(&buf, &query.DirectiveError{Directive: "order-by", Expr: "rating=middle", Err: query.ErrFormat})
		assert.Equal(t, "Error: invalid --order-by \"rating=middle\": invalid format\n", buf.String())
	})

	t.Run("unknown column lists columns", func(t *testing.T) {
		_, _, err := execute(t, "--where", "weight>1", createTestCSVFile(t))
		require.Error(t, err)

		var buf bytes.Buffer
		printError(&buf, err)
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 2)
		assert.Contains(t, lines[0], "--where")
		assert.Contains(t, lines[0], "weight")
		assert.Equal(t, "Available columns: name, brand, price, rating", lines[1])
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := execute(t, filepath.Join(t.TempDir(), "nope.csv"))
		require.Error(t, err)

		var buf bytes.Buffer
		printError(&buf, err)
		assert.Contains(t, buf.String(), "Please check the file path")
	})
}
