package storage

import (
	"context"
	"fmt"
)

// latestSchemaVersion is bumped whenever the persisted schema changes.
// After any upgrade the caller must run RepairRelationships before
// anything else writes to the graph.
const latestSchemaVersion = 2

// migrations[v] holds the statements that upgrade the schema from version
// v to v+1. Databases created by initializeDB already carry the latest
// shape; these only run against databases written by older builds.
var migrations = map[int][]string{
	1: {
		`ALTER TABLE session_exercises ADD COLUMN rest_seconds INTEGER NOT NULL DEFAULT 0`,
		`ALTER TABLE exercise_sets ADD COLUMN rest_seconds INTEGER NOT NULL DEFAULT 0`,
		`ALTER TABLE exercise_groups ADD COLUMN rest_seconds INTEGER NOT NULL DEFAULT 0`,
	},
}

// SchemaVersion reads the current schema version.
func (s *Storage) SchemaVersion() (int, error) {
	var v int
	if err := s.DB.QueryRow(`SELECT version FROM schema_version`).Scan(&v); err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return v, nil
}

// Migrate upgrades the schema to the latest version, one step at a time,
// inside a single transaction. Returns the versions it moved between; when
// they differ the caller runs the relationship-repair pass next.
func (s *Storage) Migrate(ctx context.Context) (from, to int, err error) {
	from, err = s.SchemaVersion()
	if err != nil {
		return 0, 0, err
	}
	to = from
	if from >= latestSchemaVersion {
		return from, to, nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for v := from; v < latestSchemaVersion; v++ {
		for _, stmt := range migrations[v] {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return 0, 0, fmt.Errorf("failed to migrate from version %d: %w", v, err)
			}
		}
	}

	if _, err := tx.ExecContext(ctx, `UPDATE schema_version SET version = ?`, latestSchemaVersion); err != nil {
		return 0, 0, fmt.Errorf("failed to bump schema version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("failed to commit migration: %w", err)
	}
	return from, latestSchemaVersion, nil
}
