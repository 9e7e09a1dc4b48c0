// Package sqlite implements the repository interfaces over an embedded
// SQLite database.
//
// SQLite lives inside the binary as a single file — no database server to
// install or manage, which suits a single-user tool that keeps all of its
// state in one local store. We use modernc.org/sqlite, a pure-Go translation
// of SQLite: no CGo, no C compiler, cross-compiles anywhere Go does.
// Tests open ":memory:" for a throwaway database.
package sqlite

import (
	"database/sql"
	"fmt"

	// Blank import: the driver registers itself with database/sql under the
	// name "sqlite" via its init() function.
	_ "modernc.org/sqlite"
)

// DB wraps a sql.DB connection pool and implements every repository
// interface. One struct for all five tables keeps the wiring in server.New
// down to a single sqlite.New call.
type DB struct {
	conn *sql.DB
}

// New opens the database at path (use ":memory:" for tests), verifies the
// connection, and ensures the schema exists. Callers own the returned DB and
// must Close it on shutdown — service operations assume an open connection
// and propagate the driver's error if it has been closed underneath them.
func New(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	// An in-memory database lives and dies with its connection, and every
	// pooled connection would get its own empty copy. Pin the pool to one.
	if path == ":memory:" {
		conn.SetMaxOpenConns(1)
	}

	// sql.Open only creates the pool; Ping forces a real connection so a bad
	// path surfaces here instead of on the first query.
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// WAL lets reads proceed while a write is in flight — relevant because
	// the web server runs handlers concurrently against this one file.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	// SQLite ships with foreign keys off; every log table references
	// users(id), so turn enforcement on.
	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: enabling foreign keys: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	return db, nil
}

// Close closes the connection pool, flushing the WAL and releasing the file
// lock. Always deferred next to New.
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate creates the five tables on a fresh store. CREATE TABLE IF NOT
// EXISTS makes this safe to run on every startup; the schema is small enough
// that a migration tracker would be overkill.
func (db *DB) migrate() error {
	statements := []struct {
		name string
		sql  string
	}{
		{"users", `
			CREATE TABLE IF NOT EXISTS users (
				id         INTEGER PRIMARY KEY AUTOINCREMENT,
				name       TEXT NOT NULL,
				height_cm  INTEGER,
				weight_kg  REAL,
				created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
			);
		`},
		{"water_logs", `
			CREATE TABLE IF NOT EXISTS water_logs (
				id        INTEGER PRIMARY KEY AUTOINCREMENT,
				user_id   INTEGER NOT NULL REFERENCES users(id),
				amount_ml INTEGER NOT NULL,
				logged_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX IF NOT EXISTS idx_water_logs_user_logged
				ON water_logs(user_id, logged_at);
		`},
		{"exercise_logs", `
			CREATE TABLE IF NOT EXISTS exercise_logs (
				id              INTEGER PRIMARY KEY AUTOINCREMENT,
				user_id         INTEGER NOT NULL REFERENCES users(id),
				activity        TEXT NOT NULL,
				duration_min    INTEGER NOT NULL,
				calories_burned INTEGER,
				logged_at       DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX IF NOT EXISTS idx_exercise_logs_user_logged
				ON exercise_logs(user_id, logged_at);
		`},
		{"sleep_logs", `
			CREATE TABLE IF NOT EXISTS sleep_logs (
				id         INTEGER PRIMARY KEY AUTOINCREMENT,
				user_id    INTEGER NOT NULL REFERENCES users(id),
				sleep_date DATETIME NOT NULL,
				start_time DATETIME NOT NULL,
				end_time   DATETIME NOT NULL,
				quality    INTEGER
			);
			CREATE INDEX IF NOT EXISTS idx_sleep_logs_user_date
				ON sleep_logs(user_id, sleep_date);
		`},
		{"meal_logs", `
			CREATE TABLE IF NOT EXISTS meal_logs (
				id        INTEGER PRIMARY KEY AUTOINCREMENT,
				user_id   INTEGER NOT NULL REFERENCES users(id),
				meal_type TEXT NOT NULL,
				calories  INTEGER,
				note      TEXT,
				eaten_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX IF NOT EXISTS idx_meal_logs_user_eaten
				ON meal_logs(user_id, eaten_at);
		`},
	}

	for _, stmt := range statements {
		if _, err := db.conn.Exec(stmt.sql); err != nil {
			return fmt.Errorf("creating %s table: %w", stmt.name, err)
		}
	}
	return nil
}
