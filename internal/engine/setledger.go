package engine

import (
	"github.com/google/uuid"

	"github.com/forja-fit/forja/internal/models"
)

// SetLedger owns the sets of a single exercise and enforces the set-level
// invariants: at least one set at all times, warm-ups contiguous at the
// lowest indices, dense ordering after every mutation.
type SetLedger struct {
	ex *models.SessionExercise
}

// NewSetLedger wraps an exercise. The ledger mutates the exercise in
// place; it holds no state of its own.
func NewSetLedger(ex *models.SessionExercise) *SetLedger {
	return &SetLedger{ex: ex}
}

// SetParams carries the optional values for a new or updated set. Nil
// means "not provided".
type SetParams struct {
	Weight          *float32
	Reps            *int
	DurationSeconds *int
	RestSeconds     int
}

func (l *SetLedger) sets() *Collection[*models.ExerciseSet] {
	return &Collection[*models.ExerciseSet]{Items: l.ex.Sets}
}

// AddSet appends a working set. Omitted weight/reps fall back to the last
// set's values, which is the common progressive-overload flow of "same as
// before, maybe a little more". Warm-up sets are only created through
// AddWarmupBatch.
func (l *SetLedger) AddSet(p SetParams) (*models.ExerciseSet, error) {
	if p.Reps != nil && p.DurationSeconds != nil {
		return nil, ErrMixedRepsAndDuration
	}

	set := &models.ExerciseSet{
		ID:          uuid.New().String(),
		RestSeconds: p.RestSeconds,
	}

	var last *models.ExerciseSet
	if n := len(l.ex.Sets); n > 0 {
		sorted := l.sets()
		sorted.Compact()
		last = sorted.Items[n-1]
	}

	switch {
	case p.Weight != nil:
		set.Weight = *p.Weight
	case last != nil:
		set.Weight = last.Weight
	}
	switch {
	case p.Reps != nil:
		set.Reps = *p.Reps
	case p.DurationSeconds != nil:
		set.DurationSeconds = *p.DurationSeconds
	case last != nil:
		set.Reps = last.Reps
		set.DurationSeconds = last.DurationSeconds
	}

	coll := l.sets()
	coll.Append(set)
	l.ex.Sets = coll.Items
	return set, nil
}

// AddWarmupBatch prepends computed warm-up sets before all working sets.
// A second batch is rejected outright: duplicate UI triggers must not
// double the warm-ups.
func (l *SetLedger) AddWarmupBatch(batch []WarmupSet, restSeconds int) error {
	for _, st := range l.ex.Sets {
		if st.Warmup {
			return ErrWarmupExists
		}
	}
	if len(batch) == 0 {
		return nil
	}

	coll := l.sets()
	for i, w := range batch {
		set := &models.ExerciseSet{
			ID:          uuid.New().String(),
			Weight:      w.Weight,
			Reps:        w.Reps,
			Warmup:      true,
			RestSeconds: restSeconds,
		}
		// Temporary negative positions sort the batch ahead of every
		// working set; compaction then lands warm-ups on 0..k-1.
		set.SetPos(i - len(batch))
		coll.Items = append(coll.Items, set)
	}
	coll.Compact()
	l.ex.Sets = coll.Items
	return nil
}

// RemoveSet deletes a set and compacts the order. The last remaining set
// of an exercise cannot be removed.
func (l *SetLedger) RemoveSet(id string) error {
	if l.ex.SetByID(id) == nil {
		return ErrSetNotFound
	}
	if len(l.ex.Sets) == 1 {
		return ErrLastSet
	}
	coll := l.sets()
	coll.RemoveByKey(id)
	l.ex.Sets = coll.Items
	return nil
}

// ToggleCompletion flips a set's completed flag. Completion is not
// monotonic: un-marking a finished set is allowed.
func (l *SetLedger) ToggleCompletion(id string) error {
	set := l.ex.SetByID(id)
	if set == nil {
		return ErrSetNotFound
	}
	set.Completed = !set.Completed
	return nil
}

// UpdateValues applies a partial update to one set. With applyToRemaining
// the same values also go to every incomplete set in the ledger, warm-ups
// included; completed sets keep their recorded values as the historical
// record of what was actually lifted.
func (l *SetLedger) UpdateValues(id string, weight *float32, reps *int, applyToRemaining bool) error {
	target := l.ex.SetByID(id)
	if target == nil {
		return ErrSetNotFound
	}

	apply := func(st *models.ExerciseSet) {
		if weight != nil {
			st.Weight = *weight
		}
		if reps != nil {
			st.Reps = *reps
			st.DurationSeconds = 0
		}
	}

	apply(target)
	if applyToRemaining {
		for _, st := range l.ex.Sets {
			if !st.Completed && st.ID != id {
				apply(st)
			}
		}
	}
	return nil
}
