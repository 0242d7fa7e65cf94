package models

// GroupKind distinguishes supersets (exactly two exercises) from circuits
// (three or more).
type GroupKind string

const (
	KindSuperset GroupKind = "superset"
	KindCircuit  GroupKind = "circuit"
)

// ParseGroupKind validates a raw kind string coming from storage.
func ParseGroupKind(raw string) (GroupKind, bool) {
	switch GroupKind(raw) {
	case KindSuperset, KindCircuit:
		return GroupKind(raw), true
	}
	return "", false
}

// ExerciseGroup is a cross-cutting index over session exercises, not a
// container: the exercises stay owned by the session. Membership is fixed
// at creation. CurrentRound stays in [1, TotalRounds]; Completed marks the
// terminal state.
type ExerciseGroup struct {
	ID           string    `json:"id"`
	GroupIndex   int       `json:"group_index"`
	Kind         GroupKind `json:"kind"`
	CurrentRound int       `json:"current_round"`
	TotalRounds  int       `json:"total_rounds"`
	Completed    bool      `json:"completed"`
	RestSeconds  int       `json:"rest_seconds"`
	ExerciseIDs  []string  `json:"exercise_ids"`
}

// Clone returns a deep copy of the group.
func (g *ExerciseGroup) Clone() *ExerciseGroup {
	out := *g
	out.ExerciseIDs = append([]string(nil), g.ExerciseIDs...)
	return &out
}

func (g *ExerciseGroup) Key() string  { return g.ID }
func (g *ExerciseGroup) Pos() int     { return g.GroupIndex }
func (g *ExerciseGroup) SetPos(i int) { g.GroupIndex = i }
