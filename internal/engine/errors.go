package engine

import "errors"

// Validation errors. Commands fail fast with one of these before touching
// any state, so a failed command never leaves a half-applied mutation.
var (
	// ErrInvalidPermutation means a reorder was given an id list that does
	// not exactly match the collection's current ids.
	ErrInvalidPermutation = errors.New("id list is not a permutation of the collection")

	// ErrLastSet protects the "every exercise has at least one set"
	// invariant.
	ErrLastSet = errors.New("cannot remove the last set of an exercise")

	// ErrLastExercise protects the "a session has at least one exercise"
	// invariant.
	ErrLastExercise = errors.New("cannot remove the last exercise of a session")

	// ErrGroupedExercise means the exercise belongs to a superset/circuit;
	// the group must be dissolved before the exercise can be removed or
	// its set count changed.
	ErrGroupedExercise = errors.New("exercise belongs to a group; dissolve the group first")

	// ErrInvalidGroupSize means the member count does not match the group
	// kind: exactly 2 for a superset, 3 or more for a circuit.
	ErrInvalidGroupSize = errors.New("invalid number of exercises for group kind")

	// ErrUnevenSetCounts means the candidate members do not share the same
	// set count, so rounds would not line up.
	ErrUnevenSetCounts = errors.New("group members must have the same set count")

	// ErrWarmupExists guards against double-inserting a warm-up batch.
	ErrWarmupExists = errors.New("exercise already has warm-up sets")

	// ErrSessionNotActive is returned by every mutation once the session
	// has been paused, completed or cancelled.
	ErrSessionNotActive = errors.New("session is not active")

	// ErrSessionActive means another session is already in progress; at
	// most one session is active at a time.
	ErrSessionActive = errors.New("another session is already active")

	// ErrGroupComplete means every round of the group has been finished.
	ErrGroupComplete = errors.New("group already completed all rounds")

	// ErrRoundIncomplete means the current round still has unfinished sets.
	ErrRoundIncomplete = errors.New("current round has incomplete sets")

	// ErrMixedRepsAndDuration rejects a set carrying both a rep count and
	// a duration.
	ErrMixedRepsAndDuration = errors.New("a set takes either reps or a duration, not both")
)

// Not-found errors: the referenced item is no longer in the aggregate.
var (
	ErrExerciseNotFound = errors.New("exercise not found in session")
	ErrSetNotFound      = errors.New("set not found in exercise")
	ErrGroupNotFound    = errors.New("group not found in session")
)
