package engine

import (
	"github.com/forja-fit/forja/internal/models"
)

// ValidateGroupSize checks the membership rule for a group kind: a
// superset is exactly two exercises, a circuit is three or more. This runs
// once at creation; membership is immutable afterwards.
func ValidateGroupSize(kind models.GroupKind, members int) error {
	switch kind {
	case models.KindSuperset:
		if members != 2 {
			return ErrInvalidGroupSize
		}
	case models.KindCircuit:
		if members < 3 {
			return ErrInvalidGroupSize
		}
	default:
		return ErrInvalidGroupSize
	}
	return nil
}

// GroupRoundTracker drives round progression for one superset/circuit.
// One round is one set per member exercise; the tracker moves from
// round(1) through round(totalRounds) into the terminal completed state.
type GroupRoundTracker struct {
	group   *models.ExerciseGroup
	members []*models.SessionExercise
}

// NewGroupRoundTracker wraps an existing group and its member exercises,
// in group membership order.
func NewGroupRoundTracker(g *models.ExerciseGroup, members []*models.SessionExercise) *GroupRoundTracker {
	return &GroupRoundTracker{group: g, members: members}
}

// Group exposes the wrapped group for read access.
func (t *GroupRoundTracker) Group() *models.ExerciseGroup { return t.group }

// CompleteCurrentRound advances to the next round, but only once every
// member's set for the current round is marked completed. Finishing the
// last round lands in the terminal state; further calls fail.
func (t *GroupRoundTracker) CompleteCurrentRound() error {
	if t.group.Completed {
		return ErrGroupComplete
	}
	for _, ex := range t.members {
		set := setAtPosition(ex, t.group.CurrentRound-1)
		if set == nil || !set.Completed {
			return ErrRoundIncomplete
		}
	}
	t.advance()
	return nil
}

// AdvanceManually moves to the next round regardless of completion state.
// Circuits use this as an explicit "skip"; the prior round's completion
// flags stay untouched as the record of what actually happened.
func (t *GroupRoundTracker) AdvanceManually() error {
	if t.group.Completed {
		return ErrGroupComplete
	}
	t.advance()
	return nil
}

// RestAfterRound is the rest the timer use case applies once per full
// round, not once per exercise.
func (t *GroupRoundTracker) RestAfterRound() int { return t.group.RestSeconds }

func (t *GroupRoundTracker) advance() {
	if t.group.CurrentRound >= t.group.TotalRounds {
		t.group.Completed = true
		return
	}
	t.group.CurrentRound++
}

func setAtPosition(ex *models.SessionExercise, pos int) *models.ExerciseSet {
	for _, st := range ex.Sets {
		if st.OrderIndex == pos {
			return st
		}
	}
	return nil
}
