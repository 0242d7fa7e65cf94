package models

import "time"

// CatalogExercise is a catalog entry, owned outside the session engine.
// Sessions reference it by id for name/equipment lookups only.
type CatalogExercise struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Equipment     string    `json:"equipment"`
	PrimaryMuscle string    `json:"primary_muscle"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
}

// SessionExercise is one exercise inside a session. OrderIndex values
// across a session form a dense 0..N-1 permutation. Finished is derived
// from set completion and never written directly by callers.
type SessionExercise struct {
	ID          string         `json:"id"`
	CatalogID   string         `json:"catalog_id"`
	OrderIndex  int            `json:"order_index"`
	Finished    bool           `json:"finished"`
	Note        string         `json:"note"`
	RestSeconds int            `json:"rest_seconds"`
	GroupID     string         `json:"group_id"` // empty when ungrouped
	Sets        []*ExerciseSet `json:"sets"`
}

// SetByID returns the set with the given id, or nil.
func (e *SessionExercise) SetByID(id string) *ExerciseSet {
	for _, st := range e.Sets {
		if st.ID == id {
			return st
		}
	}
	return nil
}

// Clone returns a deep copy of the exercise and its sets.
func (e *SessionExercise) Clone() *SessionExercise {
	out := *e
	out.Sets = make([]*ExerciseSet, len(e.Sets))
	for i, st := range e.Sets {
		c := *st
		out.Sets[i] = &c
	}
	return &out
}

// Key, Pos and SetPos let the engine's ordered collection manage
// exercise ordering.
func (e *SessionExercise) Key() string  { return e.ID }
func (e *SessionExercise) Pos() int     { return e.OrderIndex }
func (e *SessionExercise) SetPos(i int) { e.OrderIndex = i }

// ExerciseSet is a single set. Reps and DurationSeconds are mutually
// exclusive; warm-up sets always precede working sets within an exercise.
type ExerciseSet struct {
	ID              string  `json:"id"`
	OrderIndex      int     `json:"order_index"`
	Weight          float32 `json:"weight"`
	Reps            int     `json:"reps"`
	DurationSeconds int     `json:"duration_seconds"`
	Completed       bool    `json:"completed"`
	Warmup          bool    `json:"warmup"`
	RestSeconds     int     `json:"rest_seconds"`
}

func (s *ExerciseSet) Key() string  { return s.ID }
func (s *ExerciseSet) Pos() int     { return s.OrderIndex }
func (s *ExerciseSet) SetPos(i int) { s.OrderIndex = i }

//
// For TOML parsing only
//

type CatalogEntryTOML struct {
	Name          string `toml:"name"`
	Equipment     string `toml:"equipment"`
	PrimaryMuscle string `toml:"primary_muscle"`
	Description   string `toml:"description"`
}

type CatalogImport struct {
	Exercises []CatalogEntryTOML `toml:"exercise"`
}
