// Package store persists imported result and selection tables between the
// import and export steps.
package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/sells-group/podium-cli/internal/comp"
	"github.com/sells-group/podium-cli/internal/model"
)

// SQLiteStore holds the imported tables in a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS results (
	solver                 TEXT NOT NULL,
	division               TEXT NOT NULL,
	logic                  TEXT NOT NULL,
	track                  TEXT NOT NULL,
	disagreement           INTEGER NOT NULL,
	answer                 TEXT NOT NULL,
	cpu_time_s             REAL NOT NULL,
	wallclock_time_s       REAL NOT NULL,
	error_score            REAL NOT NULL,
	correctly_solved_score REAL NOT NULL,
	cpu_time_score         REAL NOT NULL,
	wallclock_time_score   REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS selection (
	division TEXT NOT NULL,
	logic    TEXT NOT NULL,
	selected INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS imports (
	id             TEXT PRIMARY KEY,
	results_rows   INTEGER NOT NULL,
	selection_rows INTEGER NOT NULL,
	imported_at    DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_results_division ON results(division);
CREATE INDEX IF NOT EXISTS idx_results_logic ON results(logic);
CREATE INDEX IF NOT EXISTS idx_selection_division ON selection(division);
`

// Migrate creates the schema.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ReplaceTables atomically replaces both imported tables and records the
// import batch. A re-import fully supersedes the previous one.
func (s *SQLiteStore) ReplaceTables(ctx context.Context, results []model.Result, selection []model.Selection) (string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", eris.Wrap(err, "sqlite: begin import")
	}
	defer tx.Rollback()

	for _, table := range []string{"results", "selection"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return "", eris.Wrapf(err, "sqlite: clear %s", table)
		}
	}

	insertResult, err := tx.PrepareContext(ctx, `INSERT INTO results
		(solver, division, logic, track, disagreement, answer,
		 cpu_time_s, wallclock_time_s,
		 error_score, correctly_solved_score, cpu_time_score, wallclock_time_score)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", eris.Wrap(err, "sqlite: prepare results insert")
	}
	defer insertResult.Close()

	for _, r := range results {
		_, err := insertResult.ExecContext(ctx,
			string(r.Solver), string(r.Division), string(r.Logic), string(r.Track),
			r.Disagreement, r.Answer.String(),
			r.CPUTimeS, r.WallTimeS,
			r.ErrorScore, r.CorrectScore, r.CPUScore, r.WallScore,
		)
		if err != nil {
			return "", eris.Wrap(err, "sqlite: insert result")
		}
	}

	insertSelection, err := tx.PrepareContext(ctx,
		`INSERT INTO selection (division, logic, selected) VALUES (?, ?, ?)`)
	if err != nil {
		return "", eris.Wrap(err, "sqlite: prepare selection insert")
	}
	defer insertSelection.Close()

	for _, sel := range selection {
		if _, err := insertSelection.ExecContext(ctx,
			string(sel.Division), string(sel.Logic), sel.Selected,
		); err != nil {
			return "", eris.Wrap(err, "sqlite: insert selection")
		}
	}

	id := uuid.New().String()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO imports (id, results_rows, selection_rows, imported_at) VALUES (?, ?, ?, ?)`,
		id, len(results), len(selection), time.Now().UTC(),
	); err != nil {
		return "", eris.Wrap(err, "sqlite: record import")
	}

	if err := tx.Commit(); err != nil {
		return "", eris.Wrap(err, "sqlite: commit import")
	}
	return id, nil
}

// LoadResults returns every imported result row.
func (s *SQLiteStore) LoadResults(ctx context.Context) ([]model.Result, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT
		solver, division, logic, track, disagreement, answer,
		cpu_time_s, wallclock_time_s,
		error_score, correctly_solved_score, cpu_time_score, wallclock_time_score
		FROM results`)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: query results")
	}
	defer rows.Close()

	var out []model.Result
	for rows.Next() {
		var (
			r      model.Result
			answer string
		)
		if err := rows.Scan(
			&r.Solver, &r.Division, &r.Logic, &r.Track, &r.Disagreement, &answer,
			&r.CPUTimeS, &r.WallTimeS,
			&r.ErrorScore, &r.CorrectScore, &r.CPUScore, &r.WallScore,
		); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan result")
		}
		a, err := comp.ParseAnswer(answer)
		if err != nil {
			return nil, eris.Wrap(err, "sqlite: stored answer")
		}
		r.Answer = a
		out = append(out, r)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: iterate results")
}

// LoadSelection returns every imported selection row.
func (s *SQLiteStore) LoadSelection(ctx context.Context) ([]model.Selection, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT division, logic, selected FROM selection`)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: query selection")
	}
	defer rows.Close()

	var out []model.Selection
	for rows.Next() {
		var sel model.Selection
		if err := rows.Scan(&sel.Division, &sel.Logic, &sel.Selected); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan selection")
		}
		out = append(out, sel)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: iterate selection")
}
