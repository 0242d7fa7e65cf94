package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/forja-fit/forja/internal/models"
)

// diffKeys splits the domain ids against the persisted ids: ids only in
// the domain are inserts, ids in both are in-place updates, ids only in
// the store are orphans to delete.
func diffKeys(domain, persisted []string) (inserts, updates, deletes []string) {
	persistedSet := make(map[string]bool, len(persisted))
	for _, id := range persisted {
		persistedSet[id] = true
	}
	domainSet := make(map[string]bool, len(domain))
	for _, id := range domain {
		domainSet[id] = true
		if persistedSet[id] {
			updates = append(updates, id)
		} else {
			inserts = append(inserts, id)
		}
	}
	for _, id := range persisted {
		if !domainSet[id] {
			deletes = append(deletes, id)
		}
	}
	return inserts, updates, deletes
}

// SyncSession reconciles the in-memory session against the persisted
// graph. Existing nodes are updated in place, never deleted and recreated:
// recreation severs the relationship wiring and is exactly the corruption
// this synchronizer exists to avoid. order_index is written explicitly on
// every call for every exercise and set, since the store guarantees
// nothing about the iteration order of its own collections.
//
// A cancelled session is discarded: its whole graph is removed.
//
// The sync runs in one transaction, so a failed sync leaves the persisted
// graph in its prior state and the whole call can simply be retried; the
// in-memory session stays the source of truth either way.
func (s *Storage) SyncSession(sess *models.Session) error {
	if sess.Status == models.StatusCancelled {
		return s.DeleteSessionGraph(sess.ID)
	}

	ctx := context.Background()
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := upsertSessionRow(ctx, tx, sess); err != nil {
		return err
	}
	if err := syncExercises(ctx, tx, sess); err != nil {
		return err
	}
	if err := syncGroups(ctx, tx, sess); err != nil {
		return err
	}

	// Active-session marker bookkeeping.
	if sess.Status.Terminal() {
		if _, err := tx.ExecContext(ctx, `DELETE FROM current_session WHERE session_id = ?`, sess.ID); err != nil {
			return fmt.Errorf("failed to clear current session: %w", err)
		}
	} else {
		if _, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO current_session (session_id) VALUES (?)`, sess.ID); err != nil {
			return fmt.Errorf("failed to set current session: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit sync: %w", err)
	}
	return nil
}

func upsertSessionRow(ctx context.Context, tx *sql.Tx, sess *models.Session) error {
	var exists bool
	if err := tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM sessions WHERE id = ?)`, sess.ID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check session row: %w", err)
	}

	endTime := ""
	if !sess.EndTime.IsZero() {
		endTime = sess.EndTime.Format(time.RFC3339)
	}

	if exists {
		_, err := tx.ExecContext(ctx,
			`UPDATE sessions
             SET template_id = ?, status = ?, start_time = ?, end_time = ?, notes = ?
             WHERE id = ?`,
			sess.TemplateID, string(sess.Status), sess.StartTime.Format(time.RFC3339),
			endTime, sess.Notes, sess.ID)
		if err != nil {
			return fmt.Errorf("failed to update session row: %w", err)
		}
		return nil
	}

	_, err := tx.ExecContext(ctx,
		`INSERT INTO sessions (id, template_id, status, start_time, end_time, notes)
         VALUES (?, ?, ?, ?, ?, ?)`,
		sess.ID, sess.TemplateID, string(sess.Status), sess.StartTime.Format(time.RFC3339),
		endTime, sess.Notes)
	if err != nil {
		return fmt.Errorf("failed to insert session row: %w", err)
	}
	return nil
}

func syncExercises(ctx context.Context, tx *sql.Tx, sess *models.Session) error {
	persisted, err := queryStrings(ctx, tx,
		`SELECT exercise_id FROM session_exercise_refs WHERE session_id = ?`, sess.ID)
	if err != nil {
		return fmt.Errorf("failed to list persisted exercises: %w", err)
	}

	domain := make([]string, len(sess.Exercises))
	byID := make(map[string]*models.SessionExercise, len(sess.Exercises))
	for i, ex := range sess.Exercises {
		domain[i] = ex.ID
		byID[ex.ID] = ex
	}

	inserts, updates, deletes := diffKeys(domain, persisted)

	for _, id := range inserts {
		ex := byID[id]
		_, err := tx.ExecContext(ctx,
			`INSERT INTO session_exercises
             (id, session_id, catalog_id, group_id, order_index, finished, note, rest_seconds)
             VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			ex.ID, sess.ID, ex.CatalogID, nullable(ex.GroupID), ex.OrderIndex,
			boolToInt(ex.Finished), ex.Note, ex.RestSeconds)
		if err != nil {
			return fmt.Errorf("failed to insert exercise: %w", err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO session_exercise_refs (session_id, exercise_id) VALUES (?, ?)`,
			sess.ID, ex.ID)
		if err != nil {
			return fmt.Errorf("failed to insert exercise ref: %w", err)
		}
	}

	for _, id := range updates {
		ex := byID[id]
		_, err := tx.ExecContext(ctx,
			`UPDATE session_exercises
             SET session_id = ?, catalog_id = ?, group_id = ?, order_index = ?,
                 finished = ?, note = ?, rest_seconds = ?
             WHERE id = ?`,
			sess.ID, ex.CatalogID, nullable(ex.GroupID), ex.OrderIndex,
			boolToInt(ex.Finished), ex.Note, ex.RestSeconds, ex.ID)
		if err != nil {
			return fmt.Errorf("failed to update exercise: %w", err)
		}
	}

	for _, id := range deletes {
		if err := deleteExerciseGraph(ctx, tx, sess.ID, id); err != nil {
			return err
		}
	}

	for _, ex := range sess.Exercises {
		if err := syncSets(ctx, tx, ex); err != nil {
			return err
		}
	}
	return nil
}

func syncSets(ctx context.Context, tx *sql.Tx, ex *models.SessionExercise) error {
	persisted, err := queryStrings(ctx, tx,
		`SELECT set_id FROM exercise_set_refs WHERE exercise_id = ?`, ex.ID)
	if err != nil {
		return fmt.Errorf("failed to list persisted sets: %w", err)
	}

	domain := make([]string, len(ex.Sets))
	byID := make(map[string]*models.ExerciseSet, len(ex.Sets))
	for i, st := range ex.Sets {
		domain[i] = st.ID
		byID[st.ID] = st
	}

	inserts, updates, deletes := diffKeys(domain, persisted)

	for _, id := range inserts {
		st := byID[id]
		_, err := tx.ExecContext(ctx,
			`INSERT INTO exercise_sets
             (id, exercise_id, order_index, weight, reps, duration_seconds, completed, warmup, rest_seconds)
             VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			st.ID, ex.ID, st.OrderIndex, st.Weight, st.Reps, st.DurationSeconds,
			boolToInt(st.Completed), boolToInt(st.Warmup), st.RestSeconds)
		if err != nil {
			return fmt.Errorf("failed to insert set: %w", err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO exercise_set_refs (exercise_id, set_id) VALUES (?, ?)`,
			ex.ID, st.ID)
		if err != nil {
			return fmt.Errorf("failed to insert set ref: %w", err)
		}
	}

	for _, id := range updates {
		st := byID[id]
		_, err := tx.ExecContext(ctx,
			`UPDATE exercise_sets
             SET exercise_id = ?, order_index = ?, weight = ?, reps = ?,
                 duration_seconds = ?, completed = ?, warmup = ?, rest_seconds = ?
             WHERE id = ?`,
			ex.ID, st.OrderIndex, st.Weight, st.Reps, st.DurationSeconds,
			boolToInt(st.Completed), boolToInt(st.Warmup), st.RestSeconds, st.ID)
		if err != nil {
			return fmt.Errorf("failed to update set: %w", err)
		}
	}

	for _, id := range deletes {
		if _, err := tx.ExecContext(ctx, `DELETE FROM exercise_sets WHERE id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete orphan set: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM exercise_set_refs WHERE exercise_id = ? AND set_id = ?`, ex.ID, id); err != nil {
			return fmt.Errorf("failed to delete set ref: %w", err)
		}
	}
	return nil
}

func syncGroups(ctx context.Context, tx *sql.Tx, sess *models.Session) error {
	persisted, err := queryStrings(ctx, tx,
		`SELECT id FROM exercise_groups WHERE session_id = ?`, sess.ID)
	if err != nil {
		return fmt.Errorf("failed to list persisted groups: %w", err)
	}

	domain := make([]string, len(sess.Groups))
	byID := make(map[string]*models.ExerciseGroup, len(sess.Groups))
	for i, g := range sess.Groups {
		domain[i] = g.ID
		byID[g.ID] = g
	}

	inserts, updates, deletes := diffKeys(domain, persisted)

	for _, id := range inserts {
		g := byID[id]
		_, err := tx.ExecContext(ctx,
			`INSERT INTO exercise_groups
             (id, session_id, group_index, kind, current_round, total_rounds, completed, rest_seconds)
             VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			g.ID, sess.ID, g.GroupIndex, string(g.Kind), g.CurrentRound, g.TotalRounds,
			boolToInt(g.Completed), g.RestSeconds)
		if err != nil {
			return fmt.Errorf("failed to insert group: %w", err)
		}
	}

	for _, id := range updates {
		g := byID[id]
		_, err := tx.ExecContext(ctx,
			`UPDATE exercise_groups
             SET session_id = ?, group_index = ?, kind = ?, current_round = ?,
                 total_rounds = ?, completed = ?, rest_seconds = ?
             WHERE id = ?`,
			sess.ID, g.GroupIndex, string(g.Kind), g.CurrentRound, g.TotalRounds,
			boolToInt(g.Completed), g.RestSeconds, g.ID)
		if err != nil {
			return fmt.Errorf("failed to update group: %w", err)
		}
	}

	for _, id := range deletes {
		if _, err := tx.ExecContext(ctx, `DELETE FROM exercise_groups WHERE id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete orphan group: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM group_member_refs WHERE group_id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete group member refs: %w", err)
		}
	}

	// Membership is immutable but the refs are cheap to rewrite, and doing
	// so keeps them trustworthy as the repair pass's source of truth.
	for _, g := range sess.Groups {
		if _, err := tx.ExecContext(ctx, `DELETE FROM group_member_refs WHERE group_id = ?`, g.ID); err != nil {
			return fmt.Errorf("failed to reset group member refs: %w", err)
		}
		for i, exID := range g.ExerciseIDs {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO group_member_refs (group_id, exercise_id, member_index) VALUES (?, ?, ?)`,
				g.ID, exID, i); err != nil {
				return fmt.Errorf("failed to insert group member ref: %w", err)
			}
		}
	}
	return nil
}

func deleteExerciseGraph(ctx context.Context, tx *sql.Tx, sessionID, exerciseID string) error {
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM exercise_sets WHERE id IN (SELECT set_id FROM exercise_set_refs WHERE exercise_id = ?)`,
		exerciseID); err != nil {
		return fmt.Errorf("failed to delete orphan exercise sets: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM exercise_set_refs WHERE exercise_id = ?`, exerciseID); err != nil {
		return fmt.Errorf("failed to delete set refs: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM session_exercises WHERE id = ?`, exerciseID); err != nil {
		return fmt.Errorf("failed to delete orphan exercise: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM session_exercise_refs WHERE session_id = ? AND exercise_id = ?`,
		sessionID, exerciseID); err != nil {
		return fmt.Errorf("failed to delete exercise ref: %w", err)
	}
	return nil
}

// DeleteSessionGraph removes a session and everything hanging off it.
func (s *Storage) DeleteSessionGraph(sessionID string) error {
	ctx := context.Background()
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	exerciseIDs, err := queryStrings(ctx, tx,
		`SELECT exercise_id FROM session_exercise_refs WHERE session_id = ?`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to list session exercises: %w", err)
	}
	for _, id := range exerciseIDs {
		if err := deleteExerciseGraph(ctx, tx, sessionID, id); err != nil {
			return err
		}
	}

	groupIDs, err := queryStrings(ctx, tx,
		`SELECT id FROM exercise_groups WHERE session_id = ?`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to list session groups: %w", err)
	}
	for _, id := range groupIDs {
		if _, err := tx.ExecContext(ctx, `DELETE FROM group_member_refs WHERE group_id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete group member refs: %w", err)
		}
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM exercise_groups WHERE session_id = ?`, sessionID); err != nil {
		return fmt.Errorf("failed to delete groups: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, sessionID); err != nil {
		return fmt.Errorf("failed to delete session row: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM current_session WHERE session_id = ?`, sessionID); err != nil {
		return fmt.Errorf("failed to clear current session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}
	return nil
}

func queryStrings(ctx context.Context, tx *sql.Tx, query string, args ...interface{}) ([]string, error) {
	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
