package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// breakBackRefs simulates the corruption a schema upgrade leaves behind:
// children survive with their back-reference nulled while the owner-side
// ref tables keep the edges.
func breakBackRefs(t *testing.T, st *Storage, sessionID string) {
	t.Helper()
	_, err := st.DB.Exec(`UPDATE session_exercises SET session_id = NULL, group_id = NULL
        WHERE id IN (SELECT exercise_id FROM session_exercise_refs WHERE session_id = ?)`, sessionID)
	require.NoError(t, err)
	_, err = st.DB.Exec(`UPDATE exercise_sets SET exercise_id = NULL
        WHERE id IN (
            SELECT r.set_id FROM exercise_set_refs r
            JOIN session_exercise_refs se ON se.exercise_id = r.exercise_id
            WHERE se.session_id = ?)`, sessionID)
	require.NoError(t, err)
}

func TestRepairRelationships_RestoresGraph(t *testing.T) {
	st := openTestStorage(t)
	sess := testSession(t)
	cleanupSession(t, st, sess.ID)
	require.NoError(t, st.SyncSession(sess))

	breakBackRefs(t, st, sess.ID)

	// The broken graph loads empty: nothing points back at the session.
	broken, err := st.GetSessionByID(sess.ID)
	require.NoError(t, err)
	require.Empty(t, broken.Exercises)

	summary, err := st.RepairRelationships(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, summary.ExerciseSessions, 2)
	assert.GreaterOrEqual(t, summary.SetExercises, 4)
	assert.GreaterOrEqual(t, summary.ExerciseGroups, 2)

	got, err := st.GetSessionByID(sess.ID)
	require.NoError(t, err)
	require.Len(t, got.Exercises, 2)
	for _, ex := range got.Exercises {
		assert.Len(t, ex.Sets, 2)
		assert.Equal(t, sess.Groups[0].ID, ex.GroupID)
	}
}

func TestRepairRelationships_Idempotent(t *testing.T) {
	st := openTestStorage(t)
	sess := testSession(t)
	cleanupSession(t, st, sess.ID)
	require.NoError(t, st.SyncSession(sess))

	breakBackRefs(t, st, sess.ID)
	first, err := st.RepairRelationships(context.Background())
	require.NoError(t, err)
	require.Positive(t, first.Total())

	before, err := st.GetSessionByID(sess.ID)
	require.NoError(t, err)

	// Second pass finds nothing of ours to touch and changes nothing.
	_, err = st.RepairRelationships(context.Background())
	require.NoError(t, err)

	after, err := st.GetSessionByID(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
