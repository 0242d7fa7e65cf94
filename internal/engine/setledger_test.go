package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forja-fit/forja/internal/models"
)

func f32(v float32) *float32 { return &v }
func i(v int) *int           { return &v }

func newLedgerWithSets(t *testing.T, n int, p SetParams) (*SetLedger, *models.SessionExercise) {
	t.Helper()
	ex := &models.SessionExercise{ID: "ex", CatalogID: "cat"}
	l := NewSetLedger(ex)
	for j := 0; j < n; j++ {
		_, err := l.AddSet(p)
		require.NoError(t, err)
	}
	return l, ex
}

func TestSetLedger_AddSetAssignsDenseOrder(t *testing.T) {
	_, ex := newLedgerWithSets(t, 3, SetParams{Weight: f32(60), Reps: i(8)})

	for idx, st := range ex.Sets {
		assert.Equal(t, idx, st.OrderIndex)
		assert.Equal(t, float32(60), st.Weight)
		assert.Equal(t, 8, st.Reps)
		assert.False(t, st.Warmup)
	}
}

func TestSetLedger_AddSetFallsBackToLastValues(t *testing.T) {
	l, ex := newLedgerWithSets(t, 1, SetParams{Weight: f32(80), Reps: i(5)})

	set, err := l.AddSet(SetParams{})
	require.NoError(t, err)

	assert.Equal(t, float32(80), set.Weight)
	assert.Equal(t, 5, set.Reps)
	assert.Equal(t, 1, set.OrderIndex)
	assert.Len(t, ex.Sets, 2)
}

func TestSetLedger_AddSetPartialOverride(t *testing.T) {
	l, _ := newLedgerWithSets(t, 1, SetParams{Weight: f32(80), Reps: i(5)})

	set, err := l.AddSet(SetParams{Weight: f32(82.5)})
	require.NoError(t, err)

	assert.Equal(t, float32(82.5), set.Weight)
	assert.Equal(t, 5, set.Reps, "omitted reps come from the previous set")
}

func TestSetLedger_AddSetRejectsRepsAndDuration(t *testing.T) {
	l, ex := newLedgerWithSets(t, 1, SetParams{Reps: i(10)})

	_, err := l.AddSet(SetParams{Reps: i(10), DurationSeconds: i(30)})

	assert.ErrorIs(t, err, ErrMixedRepsAndDuration)
	assert.Len(t, ex.Sets, 1)
}

func TestSetLedger_AddDurationSet(t *testing.T) {
	ex := &models.SessionExercise{ID: "ex"}
	l := NewSetLedger(ex)

	set, err := l.AddSet(SetParams{DurationSeconds: i(45)})
	require.NoError(t, err)

	assert.Equal(t, 45, set.DurationSeconds)
	assert.Zero(t, set.Reps)
}

func TestSetLedger_AddWarmupBatchPrepends(t *testing.T) {
	l, ex := newLedgerWithSets(t, 2, SetParams{Weight: f32(100), Reps: i(5)})

	batch := []WarmupSet{{Weight: 40, Reps: 5}, {Weight: 60, Reps: 5}, {Weight: 80, Reps: 5}}
	require.NoError(t, l.AddWarmupBatch(batch, 60))

	require.Len(t, ex.Sets, 5)
	coll := Collection[*models.ExerciseSet]{Items: ex.Sets}
	assert.True(t, coll.Dense())

	for _, st := range ex.Sets {
		if st.OrderIndex < 3 {
			assert.True(t, st.Warmup, "warm-ups occupy the lowest indices")
			assert.Equal(t, 60, st.RestSeconds)
		} else {
			assert.False(t, st.Warmup)
			assert.Equal(t, float32(100), st.Weight)
		}
	}
}

func TestSetLedger_AddWarmupBatchKeepsBatchOrder(t *testing.T) {
	l, ex := newLedgerWithSets(t, 1, SetParams{Weight: f32(100), Reps: i(5)})

	batch := []WarmupSet{{Weight: 40, Reps: 5}, {Weight: 60, Reps: 5}}
	require.NoError(t, l.AddWarmupBatch(batch, 0))

	byPos := map[int]float32{}
	for _, st := range ex.Sets {
		byPos[st.OrderIndex] = st.Weight
	}
	assert.Equal(t, float32(40), byPos[0])
	assert.Equal(t, float32(60), byPos[1])
	assert.Equal(t, float32(100), byPos[2])
}

func TestSetLedger_SecondWarmupBatchRejected(t *testing.T) {
	l, ex := newLedgerWithSets(t, 1, SetParams{Weight: f32(100), Reps: i(5)})
	require.NoError(t, l.AddWarmupBatch([]WarmupSet{{Weight: 50, Reps: 5}}, 0))

	err := l.AddWarmupBatch([]WarmupSet{{Weight: 50, Reps: 5}}, 0)

	assert.ErrorIs(t, err, ErrWarmupExists)
	assert.Len(t, ex.Sets, 2)
}

func TestSetLedger_EmptyWarmupBatchIsNoop(t *testing.T) {
	l, ex := newLedgerWithSets(t, 1, SetParams{Weight: f32(5), Reps: i(5)})

	require.NoError(t, l.AddWarmupBatch(nil, 0))

	assert.Len(t, ex.Sets, 1)
}

func TestSetLedger_RemoveSetCompacts(t *testing.T) {
	l, ex := newLedgerWithSets(t, 3, SetParams{Reps: i(8)})
	victim := ex.Sets[1].ID

	require.NoError(t, l.RemoveSet(victim))

	require.Len(t, ex.Sets, 2)
	coll := Collection[*models.ExerciseSet]{Items: ex.Sets}
	assert.True(t, coll.Dense())
}

func TestSetLedger_RemoveLastSetRefused(t *testing.T) {
	l, ex := newLedgerWithSets(t, 1, SetParams{Reps: i(8)})

	err := l.RemoveSet(ex.Sets[0].ID)

	assert.ErrorIs(t, err, ErrLastSet)
	assert.Len(t, ex.Sets, 1)
}

func TestSetLedger_RemoveUnknownSet(t *testing.T) {
	l, _ := newLedgerWithSets(t, 2, SetParams{Reps: i(8)})

	assert.ErrorIs(t, l.RemoveSet("nope"), ErrSetNotFound)
}

func TestSetLedger_ToggleCompletion(t *testing.T) {
	l, ex := newLedgerWithSets(t, 1, SetParams{Reps: i(8)})
	id := ex.Sets[0].ID

	require.NoError(t, l.ToggleCompletion(id))
	assert.True(t, ex.Sets[0].Completed)

	require.NoError(t, l.ToggleCompletion(id))
	assert.False(t, ex.Sets[0].Completed, "completion is reversible")
}

func TestSetLedger_UpdateValuesSingleSet(t *testing.T) {
	l, ex := newLedgerWithSets(t, 2, SetParams{Weight: f32(60), Reps: i(8)})

	require.NoError(t, l.UpdateValues(ex.Sets[0].ID, f32(65), nil, false))

	assert.Equal(t, float32(65), ex.Sets[0].Weight)
	assert.Equal(t, 8, ex.Sets[0].Reps)
	assert.Equal(t, float32(60), ex.Sets[1].Weight, "other sets untouched")
}

func TestSetLedger_UpdateValuesApplyToRemaining(t *testing.T) {
	l, ex := newLedgerWithSets(t, 3, SetParams{Weight: f32(60), Reps: i(8)})
	require.NoError(t, l.ToggleCompletion(ex.Sets[1].ID))

	require.NoError(t, l.UpdateValues(ex.Sets[0].ID, f32(70), i(6), true))

	assert.Equal(t, float32(70), ex.Sets[0].Weight)
	assert.Equal(t, float32(60), ex.Sets[1].Weight, "completed sets keep their record")
	assert.Equal(t, 8, ex.Sets[1].Reps)
	assert.Equal(t, float32(70), ex.Sets[2].Weight)
	assert.Equal(t, 6, ex.Sets[2].Reps)
}

func TestSetLedger_UpdateValuesReachesWarmups(t *testing.T) {
	l, ex := newLedgerWithSets(t, 1, SetParams{Weight: f32(100), Reps: i(5)})
	require.NoError(t, l.AddWarmupBatch([]WarmupSet{{Weight: 40, Reps: 5}}, 0))

	working := ex.Sets[1]
	require.False(t, working.Warmup)
	require.NoError(t, l.UpdateValues(working.ID, nil, i(3), true))

	for _, st := range ex.Sets {
		assert.Equal(t, 3, st.Reps)
	}
}

func TestSetLedger_UpdateRepsClearsDuration(t *testing.T) {
	ex := &models.SessionExercise{ID: "ex"}
	l := NewSetLedger(ex)
	set, err := l.AddSet(SetParams{DurationSeconds: i(30)})
	require.NoError(t, err)

	require.NoError(t, l.UpdateValues(set.ID, nil, i(12), false))

	assert.Equal(t, 12, set.Reps)
	assert.Zero(t, set.DurationSeconds)
}
