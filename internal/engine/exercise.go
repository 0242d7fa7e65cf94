package engine

import (
	"strings"

	"github.com/forja-fit/forja/internal/models"
)

// defaultNoteLimit caps exercise notes, counted in code points.
const defaultNoteLimit = 200

// ExerciseLedger owns one exercise's metadata and its set ledger. It is
// the single place where the derived Finished flag is computed; nothing
// else writes it.
type ExerciseLedger struct {
	ex   *models.SessionExercise
	sets *SetLedger
}

// NewExerciseLedger wraps an exercise for mutation.
func NewExerciseLedger(ex *models.SessionExercise) *ExerciseLedger {
	return &ExerciseLedger{ex: ex, sets: NewSetLedger(ex)}
}

// Exercise exposes the wrapped exercise for read access.
func (l *ExerciseLedger) Exercise() *models.SessionExercise { return l.ex }

// AddSet appends a working set and re-derives the finished state: a new
// incomplete set un-finishes the exercise.
func (l *ExerciseLedger) AddSet(p SetParams) (*models.ExerciseSet, error) {
	set, err := l.sets.AddSet(p)
	if err != nil {
		return nil, err
	}
	l.refreshFinished()
	return set, nil
}

// AddWarmupBatch prepends warm-up sets and re-derives the finished state.
func (l *ExerciseLedger) AddWarmupBatch(batch []WarmupSet, restSeconds int) error {
	if err := l.sets.AddWarmupBatch(batch, restSeconds); err != nil {
		return err
	}
	l.refreshFinished()
	return nil
}

// RemoveSet deletes a set; removing the only incomplete set can flip the
// exercise to finished, so the derivation runs here too.
func (l *ExerciseLedger) RemoveSet(id string) error {
	if err := l.sets.RemoveSet(id); err != nil {
		return err
	}
	l.refreshFinished()
	return nil
}

// ToggleCompletion flips one set and re-derives. The derivation is
// symmetric: completing the last open set finishes the exercise, and
// un-marking any set on a finished exercise un-finishes it, so hiding a
// completed exercise in the UI stays reversible.
func (l *ExerciseLedger) ToggleCompletion(id string) error {
	if err := l.sets.ToggleCompletion(id); err != nil {
		return err
	}
	l.refreshFinished()
	return nil
}

// UpdateValues applies a partial value update through the set ledger.
func (l *ExerciseLedger) UpdateValues(id string, weight *float32, reps *int, applyToRemaining bool) error {
	return l.sets.UpdateValues(id, weight, reps, applyToRemaining)
}

// UpdateNote trims and caps the free-text note. A limit of zero or less
// falls back to the default.
func (l *ExerciseLedger) UpdateNote(text string, limit int) {
	if limit <= 0 {
		limit = defaultNoteLimit
	}
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) > limit {
		text = string(runes[:limit])
	}
	l.ex.Note = text
}

func (l *ExerciseLedger) refreshFinished() {
	finished := len(l.ex.Sets) > 0
	for _, st := range l.ex.Sets {
		if !st.Completed {
			finished = false
			break
		}
	}
	l.ex.Finished = finished
}
