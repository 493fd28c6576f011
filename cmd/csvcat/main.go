package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vegasq/csvcat/internal/config"
	"github.com/vegasq/csvcat/internal/logger"
	"github.com/vegasq/csvcat/internal/output"
	"github.com/vegasq/csvcat/internal/query"
	"github.com/vegasq/csvcat/internal/reader"
	"github.com/vegasq/csvcat/internal/table"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "csvcat [flags] <file.csv>",
		Short: "Filter, sort and aggregate CSV files",
		Long: `csvcat loads a CSV (or parquet) file into memory, optionally filters rows
with --where, sorts them with --order-by, and prints the table or a single
--aggregate value.

Directives:
  --where      <column><op><value>   op is one of < = >
  --order-by   <column>=asc|desc
  --aggregate  <column>=avg|min|max`,
		Example: `  csvcat products.csv
  csvcat --where "price>500" --order-by "rating=desc" products.csv
  csvcat --where "brand=apple" --aggregate "price=avg" products.csv
  csvcat -f csv --limit 3 --order-by "price=asc" products.csv
  csvcat --schema products.csv`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags(), configPath)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				cfg.File = args[0]
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log := logger.New(logger.Config{
				Level:  cfg.EffectiveLogLevel(),
				Format: cfg.LogFormat,
				Output: stderr,
			})
			slog.SetDefault(log)

			return run(cfg, log, stdout)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "Optional config file (yaml, json or toml)")
	flags.String("file", "", "Input file (alternative to the positional argument)")
	flags.String("where", "", "Filter rows, e.g. \"price>500\"")
	flags.String("order-by", "", "Sort rows, e.g. \"rating=desc\"")
	flags.String("aggregate", "", "Replace the table with one value, e.g. \"price=avg\"")
	flags.StringP("format", "f", output.FormatGithub, "Output format: "+strings.Join(output.Names(), ", "))
	flags.Int("limit", 0, "Limit number of rows (0 = unlimited)")
	flags.Bool("schema", false, "Show inferred column types instead of data")
	flags.BoolP("verbose", "v", false, "Log pipeline steps to stderr")
	flags.String("log-level", "WARN", "Log level: DEBUG, INFO, WARN, ERROR")
	flags.String("log-format", "text", "Log format: text, json")

	return cmd
}

// run executes one load, query and render pass.
func run(cfg *config.Config, log *slog.Logger, stdout io.Writer) error {
	tbl, err := reader.Load(cfg.File)
	if err != nil {
		return err
	}
	log.Debug("read input", "file", cfg.File, "format", reader.DetectFormat(cfg.File))

	formatter, err := output.New(cfg.Format, stdout)
	if err != nil {
		return err
	}

	if cfg.Schema {
		return formatter.Format([]string{"column", "type"}, schemaRows(tbl))
	}

	result, err := query.NewExecutor(log).Execute(tbl, query.Plan{
		Where:     cfg.Where,
		OrderBy:   cfg.OrderBy,
		Aggregate: cfg.Aggregate,
		Limit:     cfg.Limit,
	})
	if err != nil {
		if errors.Is(err, query.ErrLookup) {
			return &columnsError{err: err, columns: tbl.Header}
		}
		return err
	}

	return formatter.Format(result.Header, result.Rows)
}

func schemaRows(tbl *table.Table) [][]string {
	schema := query.Schema(tbl)
	rows := make([][]string, len(schema))
	for i, col := range schema {
		rows[i] = []string{col.Name, col.Type.String()}
	}
	return rows
}

// columnsError carries the available columns so the user can fix a typo.
type columnsError struct {
	err     error
	columns []string
}

func (e *columnsError) Error() string { return e.err.Error() }
func (e *columnsError) Unwrap() error { return e.err }

// printError writes a one-line diagnostic plus any hint for err.
func printError(w io.Writer, err error) {
	var derr *query.DirectiveError
	if errors.As(err, &derr) {
		fmt.Fprintf(w, "Error: invalid --%s %q: %v\n", derr.Directive, derr.Expr, derr.Err)
	} else {
		fmt.Fprintf(w, "Error: %v\n", err)
	}

	switch {
	case errors.Is(err, os.ErrNotExist):
		fmt.Fprintf(w, "Please check the file path and try again.\n")
	case errors.Is(err, config.ErrMissingFile):
		fmt.Fprintf(w, "Run 'csvcat --help' for usage.\n")
	}

	var cerr *columnsError
	if errors.As(err, &cerr) && len(cerr.columns) > 0 {
		fmt.Fprintf(w, "Available columns: %s\n", strings.Join(cerr.columns, ", "))
	}
}
