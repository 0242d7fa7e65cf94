package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forja-fit/forja/internal/models"
)

func newExerciseLedger(t *testing.T, sets int) (*ExerciseLedger, *models.SessionExercise) {
	t.Helper()
	ex := &models.SessionExercise{ID: "ex", CatalogID: "cat"}
	l := NewExerciseLedger(ex)
	for n := 0; n < sets; n++ {
		_, err := l.AddSet(SetParams{Weight: f32(60), Reps: i(8)})
		require.NoError(t, err)
	}
	return l, ex
}

func TestExerciseLedger_FinishedWhenAllSetsComplete(t *testing.T) {
	l, ex := newExerciseLedger(t, 2)

	require.NoError(t, l.ToggleCompletion(ex.Sets[0].ID))
	assert.False(t, ex.Finished)

	require.NoError(t, l.ToggleCompletion(ex.Sets[1].ID))
	assert.True(t, ex.Finished)
}

func TestExerciseLedger_UntogglingUnfinishes(t *testing.T) {
	l, ex := newExerciseLedger(t, 2)
	require.NoError(t, l.ToggleCompletion(ex.Sets[0].ID))
	require.NoError(t, l.ToggleCompletion(ex.Sets[1].ID))
	require.True(t, ex.Finished)

	require.NoError(t, l.ToggleCompletion(ex.Sets[0].ID))

	assert.False(t, ex.Finished, "the derivation runs in both directions")
}

func TestExerciseLedger_NewSetUnfinishes(t *testing.T) {
	l, ex := newExerciseLedger(t, 1)
	require.NoError(t, l.ToggleCompletion(ex.Sets[0].ID))
	require.True(t, ex.Finished)

	_, err := l.AddSet(SetParams{})
	require.NoError(t, err)

	assert.False(t, ex.Finished)
}

func TestExerciseLedger_RemovingOpenSetCanFinish(t *testing.T) {
	l, ex := newExerciseLedger(t, 2)
	require.NoError(t, l.ToggleCompletion(ex.Sets[0].ID))
	open := ex.Sets[1].ID

	require.NoError(t, l.RemoveSet(open))

	assert.True(t, ex.Finished)
}

func TestExerciseLedger_WarmupBatchUnfinishes(t *testing.T) {
	l, ex := newExerciseLedger(t, 1)
	require.NoError(t, l.ToggleCompletion(ex.Sets[0].ID))
	require.True(t, ex.Finished)

	require.NoError(t, l.AddWarmupBatch([]WarmupSet{{Weight: 30, Reps: 5}}, 0))

	assert.False(t, ex.Finished)
}

func TestExerciseLedger_UpdateNoteTrims(t *testing.T) {
	l, ex := newExerciseLedger(t, 1)

	l.UpdateNote("  felt heavy today  ", 200)

	assert.Equal(t, "felt heavy today", ex.Note)
}

func TestExerciseLedger_UpdateNoteCapsAtLimit(t *testing.T) {
	l, ex := newExerciseLedger(t, 1)

	l.UpdateNote(strings.Repeat("é", 300), 200)

	assert.Equal(t, 200, len([]rune(ex.Note)), "the cap counts code points, not bytes")
}

func TestExerciseLedger_UpdateNoteZeroLimitUsesDefault(t *testing.T) {
	l, ex := newExerciseLedger(t, 1)

	l.UpdateNote(strings.Repeat("a", 500), 0)

	assert.Equal(t, defaultNoteLimit, len(ex.Note))
}
