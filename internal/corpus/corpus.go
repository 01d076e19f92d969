// Package corpus runs internal/orchestrator over a batch of (label, Arabic
// text) pairs and persists per-row outcome counts to a local DuckDB file,
// adapted from the teacher's internal/db/duckdb package (same
// database/sql + marcboeker/go-duckdb plumbing, now storing rule-engine
// regression outcomes instead of GWAS summary statistics). This is a
// genuinely offline batch tool: the core library (internal/orchestrator and
// below) never imports this package and never touches a database.
package corpus

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/marcboeker/go-duckdb"

	"mawarith.dev/inheritance-calculator/internal/logging"
	"mawarith.dev/inheritance-calculator/internal/orchestrator"
)

// Row is one corpus entry: a scenario label and the Arabic text to evaluate.
type Row struct {
	Label string
	Text  string
}

// Outcome classifies one row's evaluation result into the three buckets
// spec.md §7 names: a clean unity distribution, a distribution-not-unity
// warning, or an empty heir list.
type Outcome string

const (
	OutcomeOK                   Outcome = "ok"
	OutcomeDistributionNotUnity Outcome = "distribution_not_unity"
	OutcomeEmptyHeirList        Outcome = "empty_heir_list"
)

// DefaultRows is the E1-E6 scenario table from spec.md §8, shipped as the
// default corpus when no --corpus-file is given.
func DefaultRows() []Row {
	return []Row{
		{Label: "E1", Text: "توفي رجل وترك زوجة وابنان وبنتان"},
		{Label: "E2", Text: "توفي رجل وترك زوجة وأب وأم"},
		{Label: "E3", Text: "توفيت امرأة وتركت زوجا وأب وأم"},
		{Label: "E4", Text: "توفي رجل وترك زوجة وثلاثة إخوة"},
		{Label: "E5", Text: "توفي رجل وترك زوجة وأخ وبنت"},
		{Label: "E6", Text: "توفيت امرأة وتركت زوجا وأم وبنت"},
	}
}

// Result is one row's outcome, paired with the row that produced it.
type Result struct {
	Row     Row
	Outcome Outcome
	Warning string
}

// Evaluate runs the orchestrator over every row and classifies each
// outcome. Pure in-memory; OpenAndStore is the only function in this
// package that touches a database.
func Evaluate(orc *orchestrator.Orchestrator, rows []Row) []Result {
	results := make([]Result, 0, len(rows))
	for _, row := range rows {
		env := orc.Evaluate(row.Text)
		outcome := OutcomeOK
		switch {
		case len(env.Heirs) == 0:
			outcome = OutcomeEmptyHeirList
		case env.Warning != "":
			outcome = OutcomeDistributionNotUnity
		}
		results = append(results, Result{Row: row, Outcome: outcome, Warning: env.Warning})
	}
	return results
}

// OpenAndStore opens (creating if necessary) a DuckDB file at dbPath,
// ensures the regression-outcomes table exists, and inserts one row per
// Result, mirroring the teacher's duckdb.OpenDB/WithConnection pairing.
func OpenAndStore(ctx context.Context, dbPath string, results []Result) error {
	logging.Info("opening corpus DuckDB database at %s", dbPath)
	db, err := sql.Open("duckdb", dbPath)
	if err != nil {
		return fmt.Errorf("corpus: failed to open duckdb at %s: %w", dbPath, err)
	}
	defer db.Close()

	if err := ensureTable(ctx, db); err != nil {
		return err
	}
	return insertResults(ctx, db, results)
}

func ensureTable(ctx context.Context, db *sql.DB) error {
	const ddl = `CREATE TABLE IF NOT EXISTS corpus_runs (
		label VARCHAR,
		text VARCHAR,
		outcome VARCHAR,
		warning VARCHAR
	)`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("corpus: failed to create corpus_runs table: %w", err)
	}
	return nil
}

func insertResults(ctx context.Context, db *sql.DB, results []Result) error {
	stmt, err := db.PrepareContext(ctx, `INSERT INTO corpus_runs (label, text, outcome, warning) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("corpus: failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range results {
		if _, err := stmt.ExecContext(ctx, r.Row.Label, r.Row.Text, string(r.Outcome), r.Warning); err != nil {
			return fmt.Errorf("corpus: failed to insert row %q: %w", r.Row.Label, err)
		}
	}
	logging.Info("corpus run persisted %d rows", len(results))
	return nil
}

// Summarize tallies outcome counts across a result set, for a quick
// console report alongside the persisted DuckDB rows.
func Summarize(results []Result) map[Outcome]int {
	counts := make(map[Outcome]int, 3)
	for _, r := range results {
		counts[r.Outcome]++
	}
	return counts
}
