// Command mawarith-corpus is the offline batch/regression runner: it
// evaluates a corpus of (label, Arabic text) rows through
// internal/orchestrator and persists outcome counts to a local DuckDB file
// for later SQL-based analysis, adapted from the teacher's
// internal/db/duckdb-backed tooling.
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"mawarith.dev/inheritance-calculator/internal/corpus"
	"mawarith.dev/inheritance-calculator/internal/logging"
	"mawarith.dev/inheritance-calculator/internal/orchestrator"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	flags := pflag.NewFlagSet("mawarith-corpus", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	corpusFile := flags.String("corpus-file", "", "path to a TSV file of label\\ttext rows (default: built-in E1-E6 corpus)")
	dbPath := flags.String("db", "mawarith-corpus.duckdb", "path to the DuckDB file to persist outcomes into")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	rows, err := loadRows(*corpusFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	orc := orchestrator.NewDefault()
	results := corpus.Evaluate(orc, rows)

	if err := corpus.OpenAndStore(context.Background(), *dbPath, results); err != nil {
		logging.Error("corpus run failed: %v", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	counts := corpus.Summarize(results)
	fmt.Fprintf(stdout, "evaluated %d rows against %s\n", len(results), *dbPath)
	for outcome, n := range counts {
		fmt.Fprintf(stdout, "  %s: %d\n", outcome, n)
	}
	return 0
}

// loadRows reads a TSV corpus file (label\ttext per line) or falls back to
// the built-in E1-E6 scenario table.
func loadRows(path string) ([]corpus.Row, error) {
	if path == "" {
		return corpus.DefaultRows(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = 2
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse corpus TSV: %w", err)
	}

	rows := make([]corpus.Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, corpus.Row{Label: rec[0], Text: rec[1]})
	}
	return rows, nil
}
