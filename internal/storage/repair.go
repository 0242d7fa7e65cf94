package storage

import (
	"context"
	"fmt"
)

// RepairSummary counts back-references restored per edge type.
type RepairSummary struct {
	ExerciseSessions int
	SetExercises     int
	ExerciseGroups   int
}

// Total is the number of back-references restored.
func (r RepairSummary) Total() int {
	return r.ExerciseSessions + r.SetExercises + r.ExerciseGroups
}

// RepairRelationships walks every owner-side edge (session → exercise,
// exercise → set, group → exercise) and reassigns any child whose
// back-reference is null to its recorded parent. A schema-version upgrade
// can null these out, and a single broken back-reference makes the store
// reject the next write wholesale, so this must run to completion before
// anything else touches the graph.
//
// Only null back-references are touched, so running it on an
// already-consistent graph changes nothing; it is safe to invoke twice.
func (s *Storage) RepairRelationships(ctx context.Context) (RepairSummary, error) {
	var summary RepairSummary

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return summary, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
        UPDATE session_exercises
        SET session_id = (
            SELECT r.session_id FROM session_exercise_refs r
            WHERE r.exercise_id = session_exercises.id
        )
        WHERE session_id IS NULL
          AND id IN (SELECT exercise_id FROM session_exercise_refs)`)
	if err != nil {
		return summary, fmt.Errorf("failed to repair exercise->session edges: %w", err)
	}
	n, _ := res.RowsAffected()
	summary.ExerciseSessions = int(n)

	res, err = tx.ExecContext(ctx, `
        UPDATE exercise_sets
        SET exercise_id = (
            SELECT r.exercise_id FROM exercise_set_refs r
            WHERE r.set_id = exercise_sets.id
        )
        WHERE exercise_id IS NULL
          AND id IN (SELECT set_id FROM exercise_set_refs)`)
	if err != nil {
		return summary, fmt.Errorf("failed to repair set->exercise edges: %w", err)
	}
	n, _ = res.RowsAffected()
	summary.SetExercises = int(n)

	res, err = tx.ExecContext(ctx, `
        UPDATE session_exercises
        SET group_id = (
            SELECT r.group_id FROM group_member_refs r
            WHERE r.exercise_id = session_exercises.id
        )
        WHERE group_id IS NULL
          AND id IN (SELECT exercise_id FROM group_member_refs)`)
	if err != nil {
		return summary, fmt.Errorf("failed to repair exercise->group edges: %w", err)
	}
	n, _ = res.RowsAffected()
	summary.ExerciseGroups = int(n)

	if err := tx.Commit(); err != nil {
		return summary, fmt.Errorf("failed to commit repair: %w", err)
	}
	return summary, nil
}
