package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"focusday-cli/internal/model"

	_ "modernc.org/sqlite"
)

// The snapshot lives in <dir>/state.sqlite. Each positional collection is a
// table keyed by position with a JSON blob per row; the daily plan and
// version live in plan_meta. Saves replace everything in one transaction, so
// a snapshot is always a whole-state write (no partial updates).

func (s Store) openSQLite(ctx context.Context) (*sql.DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.sqlitePath())
	if err != nil {
		return nil, err
	}
	// WAL enables one writer + many readers; busy_timeout avoids
	// "database is locked" flakiness when a CLI and a TUI overlap briefly.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := migrateSnapshot(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func migrateSnapshot(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS plan_meta (
			k TEXT PRIMARY KEY,
			v TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS inbox (
			pos INTEGER PRIMARY KEY,
			json TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS incubator (
			pos INTEGER PRIMARY KEY,
			json TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS projects (
			pos INTEGER PRIMARY KEY,
			json TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS blocks (
			pos INTEGER PRIMARY KEY,
			json TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS metrics (
			date TEXT PRIMARY KEY,
			critical_done INTEGER NOT NULL,
			json TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_metrics_done ON metrics(critical_done);`,
	}
	for _, st := range stmts {
		if _, err := db.ExecContext(ctx, st); err != nil {
			return err
		}
	}
	return nil
}

func (s Store) loadSQLite(ctx context.Context) (*DB, error) {
	sq, err := s.openSQLite(ctx)
	if err != nil {
		return nil, err
	}
	defer sq.Close()

	out := NewDB()

	readMeta := func(k string) string {
		var v string
		_ = sq.QueryRowContext(ctx, `SELECT v FROM plan_meta WHERE k = ?`, k).Scan(&v)
		return strings.TrimSpace(v)
	}
	if v := readMeta("version"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			out.Version = n
		}
	}
	// A corrupted plan blob degrades to a blank plan rather than failing startup.
	if v := readMeta("today"); v != "" {
		var plan model.DailyPlan
		if err := json.Unmarshal([]byte(v), &plan); err == nil {
			out.Today = plan
		}
	}

	if xs, err := readRows[model.InboxItem](ctx, sq, `SELECT json FROM inbox ORDER BY pos`); err != nil {
		return nil, err
	} else if xs != nil {
		out.Inbox = xs
	}
	if xs, err := readRows[model.IncubatorItem](ctx, sq, `SELECT json FROM incubator ORDER BY pos`); err != nil {
		return nil, err
	} else if xs != nil {
		out.Incubator = xs
	}
	if xs, err := readRows[model.Project](ctx, sq, `SELECT json FROM projects ORDER BY pos`); err != nil {
		return nil, err
	} else if xs != nil {
		out.Projects = xs
	}
	if xs, err := readRows[model.FocusBlock](ctx, sq, `SELECT json FROM blocks ORDER BY pos`); err != nil {
		return nil, err
	} else if xs != nil {
		out.Blocks = xs
	}
	if xs, err := readRows[model.MetricRecord](ctx, sq, `SELECT json FROM metrics ORDER BY date`); err != nil {
		return nil, err
	} else if xs != nil {
		out.Metrics = xs
	}

	return out, nil
}

func (s Store) saveSQLite(ctx context.Context, st *DB) error {
	if st == nil {
		return errors.New("nil db")
	}
	sq, err := s.openSQLite(ctx)
	if err != nil {
		return err
	}
	defer sq.Close()

	tx, err := sq.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO plan_meta(k, v) VALUES(?, ?)`, "version", strconv.Itoa(st.Version)); err != nil {
		return err
	}
	planJSON, err := json.Marshal(st.Today)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO plan_meta(k, v) VALUES(?, ?)`, "today", string(planJSON)); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO plan_meta(k, v) VALUES(?, ?)`, "saved_at", time.Now().UTC().Format(time.RFC3339)); err != nil {
		return err
	}

	// Replace-all strategy: the state is small and positional, so rewriting
	// every row keeps positions authoritative without diffing.
	for _, t := range []string{"inbox", "incubator", "projects", "blocks", "metrics"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+t); err != nil {
			return err
		}
	}

	for i, it := range st.Inbox {
		raw, _ := json.Marshal(it)
		if _, err := tx.ExecContext(ctx, `INSERT INTO inbox(pos, json) VALUES(?, ?)`, i, string(raw)); err != nil {
			return err
		}
	}
	for i, it := range st.Incubator {
		raw, _ := json.Marshal(it)
		if _, err := tx.ExecContext(ctx, `INSERT INTO incubator(pos, json) VALUES(?, ?)`, i, string(raw)); err != nil {
			return err
		}
	}
	for i, p := range st.Projects {
		raw, _ := json.Marshal(p)
		if _, err := tx.ExecContext(ctx, `INSERT INTO projects(pos, json) VALUES(?, ?)`, i, string(raw)); err != nil {
			return err
		}
	}
	for i, b := range st.Blocks {
		raw, _ := json.Marshal(b)
		if _, err := tx.ExecContext(ctx, `INSERT INTO blocks(pos, json) VALUES(?, ?)`, i, string(raw)); err != nil {
			return err
		}
	}
	for _, m := range st.Metrics {
		raw, _ := json.Marshal(m)
		done := 0
		if m.CriticalDone {
			done = 1
		}
		if _, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO metrics(date, critical_done, json) VALUES(?, ?, ?)`, m.Date, done, string(raw)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func readRows[T any](ctx context.Context, db *sql.DB, query string) ([]T, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		var js string
		if err := rows.Scan(&js); err != nil {
			return nil, err
		}
		var v T
		if err := json.Unmarshal([]byte(js), &v); err != nil {
			// Skip rows we can't decode; a corrupt row shouldn't take the
			// whole workspace down.
			continue
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
