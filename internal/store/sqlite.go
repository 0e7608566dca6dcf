// internal/store/sqlite.go
//
// SQLite-backed Store.
// Responsibilities:
//   - Opening the database with WAL journaling, a busy timeout and foreign keys.
//   - Applying the embedded migrations (assets/sql) once each, recorded in
//     _migrations.
//   - Saving runs and their games in one transaction.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/assets"
	"github.com/robalobadob/wordle/apps/go-solver/internal/batch"
)

// timeLayout is fixed-width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and migrates it.
func OpenSQLite(path string) (Store, func() error, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, nil, err
	}
	if err := migrate(db, assets.Migrations()); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return &sqliteStore{db: db}, db.Close, nil
}

func openDB(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

// migrate applies every *.sql file of migrations in lexical order, each in
// its own transaction, skipping files already recorded.
func migrate(db *sql.DB, migrations fs.FS) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}
	files, err := fs.Glob(migrations, "*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		text, err := fs.ReadFile(migrations, f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}
		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(text)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

func (s *sqliteStore) Save(ctx context.Context, r *Run) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM run_games WHERE run_id=?`, r.ID); err != nil {
		return fmt.Errorf("clear games: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `
        INSERT OR REPLACE INTO runs
            (id, seed, sample, max_tries, started_at, finished_at, games, solved, exhausted, failed)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, int64(r.Seed), r.Sample, r.MaxTries,
		r.StartedAt.UTC().Format(timeLayout), r.FinishedAt.UTC().Format(timeLayout),
		r.Summary.Games, r.Summary.Solved, r.Summary.Exhausted, r.Summary.Failed,
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
        INSERT INTO run_games (run_id, position, secret, board, attempts, solved, kind, error)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i, g := range r.Games {
		if _, err := stmt.ExecContext(ctx, r.ID, i, g.Secret, g.Board, g.Attempts, g.Solved, g.Kind, g.Error); err != nil {
			return fmt.Errorf("insert game %d: %w", i, err)
		}
	}
	return tx.Commit()
}

func (s *sqliteStore) Get(ctx context.Context, id string) (*Run, error) {
	r, err := scanRun(s.db.QueryRowContext(ctx, `
        SELECT id, seed, sample, max_tries, started_at, finished_at, games, solved, exhausted, failed
        FROM runs WHERE id=?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
        SELECT secret, board, attempts, solved, kind, error
        FROM run_games WHERE run_id=? ORDER BY position`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var outcomes []batch.Outcome
	for rows.Next() {
		var g Game
		if err := rows.Scan(&g.Secret, &g.Board, &g.Attempts, &g.Solved, &g.Kind, &g.Error); err != nil {
			return nil, err
		}
		r.Games = append(r.Games, g)
		o := batch.Outcome{Secret: g.Secret, Kind: g.Kind}
		o.Result.Attempts, o.Result.Solved = g.Attempts, g.Solved
		outcomes = append(outcomes, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(outcomes) > 0 {
		r.Summary = batch.Summarize(outcomes)
	}
	return r, nil
}

func (s *sqliteStore) List(ctx context.Context, limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, seed, sample, max_tries, started_at, finished_at, games, solved, exhausted, failed
        FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

// scanRun reads a runs row. The summary carries only the stored counters;
// Get recomputes the full summary from the games.
func scanRun(row scanner) (*Run, error) {
	var (
		r                 Run
		seed              int64
		started, finished string
	)
	if err := row.Scan(&r.ID, &seed, &r.Sample, &r.MaxTries, &started, &finished,
		&r.Summary.Games, &r.Summary.Solved, &r.Summary.Exhausted, &r.Summary.Failed); err != nil {
		return nil, err
	}
	r.Seed = uint64(seed)
	r.StartedAt, _ = time.Parse(timeLayout, started)
	r.FinishedAt, _ = time.Parse(timeLayout, finished)
	if r.Summary.Games > 0 {
		r.Summary.SuccessRate = float64(r.Summary.Solved) / float64(r.Summary.Games)
	}
	return &r, nil
}
