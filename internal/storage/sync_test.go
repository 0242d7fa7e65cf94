package storage

import (
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forja-fit/forja/internal/models"
)

func TestDiffKeys(t *testing.T) {
	tests := []struct {
		name      string
		domain    []string
		persisted []string
		inserts   []string
		updates   []string
		deletes   []string
	}{
		{
			name:    "all new",
			domain:  []string{"a", "b"},
			inserts: []string{"a", "b"},
		},
		{
			name:      "all existing",
			domain:    []string{"a", "b"},
			persisted: []string{"a", "b"},
			updates:   []string{"a", "b"},
		},
		{
			name:      "mixed",
			domain:    []string{"a", "c"},
			persisted: []string{"a", "b"},
			inserts:   []string{"c"},
			updates:   []string{"a"},
			deletes:   []string{"b"},
		},
		{
			name:      "domain empty deletes everything",
			persisted: []string{"a", "b"},
			deletes:   []string{"a", "b"},
		},
		{
			name: "both empty",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inserts, updates, deletes := diffKeys(tt.domain, tt.persisted)
			assert.Equal(t, tt.inserts, inserts)
			assert.Equal(t, tt.updates, updates)
			assert.Equal(t, tt.deletes, deletes)
		})
	}
}

// openTestStorage connects to the database named by FORJA_TEST_DATABASE_URL.
// Tests that need a live database skip when it is unset.
func openTestStorage(t *testing.T) *Storage {
	t.Helper()
	url := os.Getenv("FORJA_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("FORJA_TEST_DATABASE_URL not set")
	}
	st, err := Open(url)
	require.NoError(t, err)
	t.Cleanup(func() { st.DB.Close() })
	return st
}

// testSession builds a two-exercise session with a superset over both.
func testSession(t *testing.T) *models.Session {
	t.Helper()
	sess := &models.Session{
		ID:         uuid.NewString(),
		TemplateID: "push-day",
		Status:     models.StatusActive,
		StartTime:  time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}
	for i := 0; i < 2; i++ {
		ex := &models.SessionExercise{
			ID:         uuid.NewString(),
			CatalogID:  "cat-" + sess.ID,
			OrderIndex: i,
		}
		for j := 0; j < 2; j++ {
			ex.Sets = append(ex.Sets, &models.ExerciseSet{
				ID:         uuid.NewString(),
				OrderIndex: j,
				Weight:     60,
				Reps:       8,
			})
		}
		sess.Exercises = append(sess.Exercises, ex)
	}
	group := &models.ExerciseGroup{
		ID:           uuid.NewString(),
		Kind:         models.KindSuperset,
		CurrentRound: 1,
		TotalRounds:  2,
		RestSeconds:  90,
		ExerciseIDs:  []string{sess.Exercises[0].ID, sess.Exercises[1].ID},
	}
	sess.Exercises[0].GroupID = group.ID
	sess.Exercises[1].GroupID = group.ID
	sess.Groups = append(sess.Groups, group)
	return sess
}

func cleanupSession(t *testing.T, st *Storage, sessionID string) {
	t.Helper()
	t.Cleanup(func() {
		_ = st.DeleteSessionGraph(sessionID)
	})
}

func TestSyncSession_RoundTrip(t *testing.T) {
	st := openTestStorage(t)
	sess := testSession(t)
	cleanupSession(t, st, sess.ID)

	require.NoError(t, st.SyncSession(sess))

	got, err := st.GetSessionByID(sess.ID)
	require.NoError(t, err)

	assert.Equal(t, sess.TemplateID, got.TemplateID)
	assert.Equal(t, sess.Status, got.Status)
	require.Len(t, got.Exercises, 2)
	for i, ex := range got.Exercises {
		assert.Equal(t, i, ex.OrderIndex)
		assert.Len(t, ex.Sets, 2)
		assert.Equal(t, got.Groups[0].ID, ex.GroupID)
	}
	require.Len(t, got.Groups, 1)
	assert.Equal(t, sess.Groups[0].ExerciseIDs, got.Groups[0].ExerciseIDs)

	current, err := st.CurrentSessionID()
	require.NoError(t, err)
	assert.Equal(t, sess.ID, current)
}

func TestSyncSession_SecondSyncUpdatesInPlace(t *testing.T) {
	st := openTestStorage(t)
	sess := testSession(t)
	cleanupSession(t, st, sess.ID)
	require.NoError(t, st.SyncSession(sess))

	// Mutate: reorder exercises, complete a set, drop the other set.
	sess.Exercises[0].OrderIndex = 1
	sess.Exercises[1].OrderIndex = 0
	sess.Exercises[0].Sets[0].Completed = true
	sess.Exercises[0].Sets = sess.Exercises[0].Sets[:1]
	require.NoError(t, st.SyncSession(sess))

	got, err := st.GetSessionByID(sess.ID)
	require.NoError(t, err)

	require.Len(t, got.Exercises, 2)
	assert.Equal(t, sess.Exercises[1].ID, got.Exercises[0].ID, "order_index is rewritten on every sync")
	moved := got.Exercises[1]
	assert.Equal(t, sess.Exercises[0].ID, moved.ID)
	require.Len(t, moved.Sets, 1, "orphaned sets are deleted")
	assert.True(t, moved.Sets[0].Completed)
}

func TestSyncSession_CompletedClearsCurrentMarker(t *testing.T) {
	st := openTestStorage(t)
	sess := testSession(t)
	cleanupSession(t, st, sess.ID)
	require.NoError(t, st.SyncSession(sess))

	sess.Status = models.StatusCompleted
	sess.EndTime = sess.StartTime.Add(time.Hour)
	require.NoError(t, st.SyncSession(sess))

	got, err := st.GetSessionByID(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, got.Status)
	assert.Equal(t, sess.EndTime, got.EndTime)

	current, err := st.CurrentSessionID()
	if err == nil {
		assert.NotEqual(t, sess.ID, current)
	} else {
		assert.ErrorIs(t, err, ErrNotFound)
	}
}

func TestSyncSession_CancelledRemovesGraph(t *testing.T) {
	st := openTestStorage(t)
	sess := testSession(t)
	cleanupSession(t, st, sess.ID)
	require.NoError(t, st.SyncSession(sess))

	sess.Status = models.StatusCancelled
	require.NoError(t, st.SyncSession(sess))

	_, err := st.GetSessionByID(sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
