package models

import "time"

// SessionStatus is the lifecycle state of a training session. It is a
// closed set at the domain boundary; the synchronizer maps it to the
// status column as a plain string.
type SessionStatus string

const (
	StatusActive    SessionStatus = "active"
	StatusPaused    SessionStatus = "paused"
	StatusCompleted SessionStatus = "completed"
	StatusCancelled SessionStatus = "cancelled"
)

// ParseSessionStatus validates a raw status string coming from storage.
func ParseSessionStatus(raw string) (SessionStatus, bool) {
	switch SessionStatus(raw) {
	case StatusActive, StatusPaused, StatusCompleted, StatusCancelled:
		return SessionStatus(raw), true
	}
	return "", false
}

// Terminal reports whether the status allows no further mutation.
func (s SessionStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Session is the top-level aggregate: an ordered list of exercises,
// optionally partitioned into groups. EndTime is the zero value until the
// session reaches a terminal state.
type Session struct {
	ID         string             `json:"id"`
	TemplateID string             `json:"template_id"`
	Status     SessionStatus      `json:"status"`
	StartTime  time.Time          `json:"start_time"`
	EndTime    time.Time          `json:"end_time"`
	Notes      string             `json:"notes"`
	Exercises  []*SessionExercise `json:"exercises"`
	Groups     []*ExerciseGroup   `json:"groups"`
}

// ExerciseByID returns the exercise with the given id, or nil.
func (s *Session) ExerciseByID(id string) *SessionExercise {
	for _, ex := range s.Exercises {
		if ex.ID == id {
			return ex
		}
	}
	return nil
}

// GroupByID returns the group with the given id, or nil.
func (s *Session) GroupByID(id string) *ExerciseGroup {
	for _, g := range s.Groups {
		if g.ID == id {
			return g
		}
	}
	return nil
}

// Clone returns a deep copy of the session. Readers render from clones so
// they never observe a partially-mutated aggregate.
func (s *Session) Clone() *Session {
	out := *s
	out.Exercises = make([]*SessionExercise, len(s.Exercises))
	for i, ex := range s.Exercises {
		out.Exercises[i] = ex.Clone()
	}
	out.Groups = make([]*ExerciseGroup, len(s.Groups))
	for i, g := range s.Groups {
		out.Groups[i] = g.Clone()
	}
	return &out
}
