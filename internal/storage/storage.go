package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/tursodatabase/libsql-client-go/libsql"

	"github.com/forja-fit/forja/internal/config"
)

// ErrNotFound is returned when a fetch-by-id finds nothing.
var ErrNotFound = errors.New("not found")

type Storage struct {
	DB *sql.DB
}

// Open connects to the database at the given URL and ensures the schema
// exists.
func Open(url string) (*Storage, error) {
	db, err := sql.Open("libsql", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open db %s: %w", url, err)
	}
	if err := initializeDB(db); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return &Storage{DB: db}, nil
}

// NewStorage opens the database named by the config file, falling back
// to TURSO_DATABASE_URL from the environment (.env included). CLI
// commands use this; anything that wants error handling uses Open.
func NewStorage() *Storage {
	var url string
	if cfg, err := config.LoadConfig(); err == nil {
		url = cfg.DB.ConnectionString
	}
	if url == "" {
		godotenv.Load()
		url = os.Getenv("TURSO_DATABASE_URL")
	}
	if url == "" {
		fmt.Fprintf(os.Stderr, "No database configured: set connection_string in the config file or TURSO_DATABASE_URL in the environment")
		os.Exit(1)
	}

	st, err := Open(url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v", err)
		os.Exit(1)
	}
	return st
}

func initializeDB(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS catalog_exercises (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL UNIQUE,
            equipment TEXT,
            primary_muscle TEXT,
            description TEXT,
            created_at TEXT NOT NULL
        );

        CREATE TABLE IF NOT EXISTS sessions (
            id TEXT PRIMARY KEY,
            template_id TEXT,
            status TEXT NOT NULL,
            start_time TEXT NOT NULL,
            end_time TEXT,
            notes TEXT
        );

        -- session_id and group_id are the child-side back-references the
        -- repair pass restores when a schema upgrade nulls them out.
        CREATE TABLE IF NOT EXISTS session_exercises (
            id TEXT PRIMARY KEY,
            session_id TEXT,
            catalog_id TEXT NOT NULL,
            group_id TEXT,
            order_index INTEGER NOT NULL,
            finished INTEGER NOT NULL DEFAULT 0,
            note TEXT,
            rest_seconds INTEGER NOT NULL DEFAULT 0,
            FOREIGN KEY (catalog_id) REFERENCES catalog_exercises(id)
        );

        CREATE TABLE IF NOT EXISTS exercise_sets (
            id TEXT PRIMARY KEY,
            exercise_id TEXT,
            order_index INTEGER NOT NULL,
            weight REAL NOT NULL DEFAULT 0,
            reps INTEGER NOT NULL DEFAULT 0,
            duration_seconds INTEGER NOT NULL DEFAULT 0,
            completed INTEGER NOT NULL DEFAULT 0,
            warmup INTEGER NOT NULL DEFAULT 0,
            rest_seconds INTEGER NOT NULL DEFAULT 0
        );

        CREATE TABLE IF NOT EXISTS exercise_groups (
            id TEXT PRIMARY KEY,
            session_id TEXT,
            group_index INTEGER NOT NULL,
            kind TEXT NOT NULL,
            current_round INTEGER NOT NULL,
            total_rounds INTEGER NOT NULL,
            completed INTEGER NOT NULL DEFAULT 0,
            rest_seconds INTEGER NOT NULL DEFAULT 0
        );

        -- Owner-side edges. The synchronizer writes them together with the
        -- child rows; the repair pass walks them to reattach children whose
        -- back-reference went null.
        CREATE TABLE IF NOT EXISTS session_exercise_refs (
            session_id TEXT NOT NULL,
            exercise_id TEXT NOT NULL,
            PRIMARY KEY (session_id, exercise_id)
        );

        CREATE TABLE IF NOT EXISTS exercise_set_refs (
            exercise_id TEXT NOT NULL,
            set_id TEXT NOT NULL,
            PRIMARY KEY (exercise_id, set_id)
        );

        CREATE TABLE IF NOT EXISTS group_member_refs (
            group_id TEXT NOT NULL,
            exercise_id TEXT NOT NULL,
            member_index INTEGER NOT NULL,
            PRIMARY KEY (group_id, exercise_id)
        );

        CREATE TABLE IF NOT EXISTS current_session (
            session_id TEXT PRIMARY KEY
        );

        CREATE TABLE IF NOT EXISTS schema_version (
            version INTEGER NOT NULL
        );
    `)
	if err != nil {
		return err
	}

	// Fresh databases start at the latest version.
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM schema_version`).Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		_, err = db.Exec(`INSERT INTO schema_version (version) VALUES (?)`, latestSchemaVersion)
	}
	return err
}
