package engine

import (
	"sort"

	"github.com/google/uuid"

	"github.com/forja-fit/forja/internal/models"
)

// Aggregate is the single mutation boundary for a training session. Every
// command goes through it; the ledgers and trackers do the actual work and
// the aggregate keeps the cross-cutting invariants (ordering, grouping,
// lifecycle).
type Aggregate struct {
	session *models.Session
	clock   Clock
}

// Start creates a new active session. At most one session may be active
// at a time; activeExists is the caller's report of whether one already
// is, and the check lives here so no call site can forget it.
func Start(clock Clock, templateID string, activeExists bool) (*Aggregate, error) {
	if activeExists {
		return nil, ErrSessionActive
	}
	sess := &models.Session{
		ID:         uuid.New().String(),
		TemplateID: templateID,
		Status:     models.StatusActive,
		StartTime:  clock.Now(),
	}
	return &Aggregate{session: sess, clock: clock}, nil
}

// Load wraps an existing session for further mutation.
func Load(sess *models.Session, clock Clock) *Aggregate {
	return &Aggregate{session: sess, clock: clock}
}

// Session exposes the underlying session. Mutate it only through the
// aggregate.
func (a *Aggregate) Session() *models.Session { return a.session }

// Snapshot returns a deep copy with exercises, sets and groups in
// canonical order. Safe to hand to a concurrent reader.
func (a *Aggregate) Snapshot() *models.Session {
	out := a.session.Clone()
	sort.SliceStable(out.Exercises, func(i, j int) bool {
		return out.Exercises[i].OrderIndex < out.Exercises[j].OrderIndex
	})
	for _, ex := range out.Exercises {
		sort.SliceStable(ex.Sets, func(i, j int) bool {
			return ex.Sets[i].OrderIndex < ex.Sets[j].OrderIndex
		})
	}
	sort.SliceStable(out.Groups, func(i, j int) bool {
		return out.Groups[i].GroupIndex < out.Groups[j].GroupIndex
	})
	return out
}

func (a *Aggregate) ensureActive() error {
	if a.session.Status != models.StatusActive {
		return ErrSessionNotActive
	}
	return nil
}

func (a *Aggregate) exercises() *Collection[*models.SessionExercise] {
	return &Collection[*models.SessionExercise]{Items: a.session.Exercises}
}

func (a *Aggregate) groups() *Collection[*models.ExerciseGroup] {
	return &Collection[*models.ExerciseGroup]{Items: a.session.Groups}
}

//
// Exercise-level commands
//

// AddExercise appends an exercise referencing a catalog entry, seeded with
// numSets working sets (at least one: an exercise never exists without a
// set).
func (a *Aggregate) AddExercise(catalogID string, numSets int, p SetParams) (*models.SessionExercise, error) {
	if err := a.ensureActive(); err != nil {
		return nil, err
	}
	if p.Reps != nil && p.DurationSeconds != nil {
		return nil, ErrMixedRepsAndDuration
	}
	if numSets < 1 {
		numSets = 1
	}

	ex := &models.SessionExercise{
		ID:        uuid.New().String(),
		CatalogID: catalogID,
	}
	ledger := NewExerciseLedger(ex)
	for i := 0; i < numSets; i++ {
		if _, err := ledger.AddSet(p); err != nil {
			return nil, err
		}
	}

	coll := a.exercises()
	coll.Append(ex)
	a.session.Exercises = coll.Items
	return ex, nil
}

// RemoveExercise deletes an ungrouped exercise and compacts the order.
// Grouped exercises are refused: removing one member would break the
// group-size rule, so the whole group has to be dissolved first.
func (a *Aggregate) RemoveExercise(id string) error {
	if err := a.ensureActive(); err != nil {
		return err
	}
	ex := a.session.ExerciseByID(id)
	if ex == nil {
		return ErrExerciseNotFound
	}
	if ex.GroupID != "" {
		return ErrGroupedExercise
	}
	if len(a.session.Exercises) == 1 {
		return ErrLastExercise
	}
	coll := a.exercises()
	coll.RemoveByKey(id)
	a.session.Exercises = coll.Items
	return nil
}

// ReorderExercises assigns order by the supplied id permutation.
func (a *Aggregate) ReorderExercises(ids []string) error {
	if err := a.ensureActive(); err != nil {
		return err
	}
	coll := a.exercises()
	if err := coll.Reorder(ids); err != nil {
		return err
	}
	a.session.Exercises = coll.Items
	return nil
}

// SwapExercise replaces the catalog reference of an exercise and resets
// its sets to the same count with cleared values, keeping order and group
// membership intact.
func (a *Aggregate) SwapExercise(id, newCatalogID string) error {
	if err := a.ensureActive(); err != nil {
		return err
	}
	ex := a.session.ExerciseByID(id)
	if ex == nil {
		return ErrExerciseNotFound
	}
	ex.CatalogID = newCatalogID
	fresh := make([]*models.ExerciseSet, len(ex.Sets))
	for i := range ex.Sets {
		fresh[i] = &models.ExerciseSet{
			ID:          uuid.New().String(),
			OrderIndex:  i,
			RestSeconds: ex.Sets[i].RestSeconds,
		}
	}
	ex.Sets = fresh
	ex.Finished = false
	return nil
}

// UpdateExerciseNote sets the free-text note, trimmed and capped.
func (a *Aggregate) UpdateExerciseNote(id, text string, limit int) error {
	if err := a.ensureActive(); err != nil {
		return err
	}
	ex := a.session.ExerciseByID(id)
	if ex == nil {
		return ErrExerciseNotFound
	}
	NewExerciseLedger(ex).UpdateNote(text, limit)
	return nil
}

// SetExerciseRest sets the per-exercise rest duration in seconds.
func (a *Aggregate) SetExerciseRest(id string, seconds int) error {
	if err := a.ensureActive(); err != nil {
		return err
	}
	ex := a.session.ExerciseByID(id)
	if ex == nil {
		return ErrExerciseNotFound
	}
	ex.RestSeconds = seconds
	return nil
}

//
// Set-level commands
//

func (a *Aggregate) ledgerFor(exerciseID string) (*ExerciseLedger, error) {
	ex := a.session.ExerciseByID(exerciseID)
	if ex == nil {
		return nil, ErrExerciseNotFound
	}
	return NewExerciseLedger(ex), nil
}

// ungroupedLedgerFor is ledgerFor for mutations that change the set
// count or shift set positions. A group's rounds are its members' shared
// set count, so those mutations are refused while the exercise is
// grouped; toggling and value edits stay allowed.
func (a *Aggregate) ungroupedLedgerFor(exerciseID string) (*ExerciseLedger, error) {
	ex := a.session.ExerciseByID(exerciseID)
	if ex == nil {
		return nil, ErrExerciseNotFound
	}
	if ex.GroupID != "" {
		return nil, ErrGroupedExercise
	}
	return NewExerciseLedger(ex), nil
}

// AddSet appends a working set to an ungrouped exercise.
func (a *Aggregate) AddSet(exerciseID string, p SetParams) (*models.ExerciseSet, error) {
	if err := a.ensureActive(); err != nil {
		return nil, err
	}
	ledger, err := a.ungroupedLedgerFor(exerciseID)
	if err != nil {
		return nil, err
	}
	return ledger.AddSet(p)
}

// RemoveSet deletes a set from an ungrouped exercise.
func (a *Aggregate) RemoveSet(exerciseID, setID string) error {
	if err := a.ensureActive(); err != nil {
		return err
	}
	ledger, err := a.ungroupedLedgerFor(exerciseID)
	if err != nil {
		return err
	}
	return ledger.RemoveSet(setID)
}

// ToggleSetCompletion flips a set's completed flag and re-derives the
// exercise's finished state.
func (a *Aggregate) ToggleSetCompletion(exerciseID, setID string) error {
	if err := a.ensureActive(); err != nil {
		return err
	}
	ledger, err := a.ledgerFor(exerciseID)
	if err != nil {
		return err
	}
	return ledger.ToggleCompletion(setID)
}

// UpdateSetValues partially updates a set, optionally fanning the values
// out to every incomplete set of the exercise.
func (a *Aggregate) UpdateSetValues(exerciseID, setID string, weight *float32, reps *int, applyToRemaining bool) error {
	if err := a.ensureActive(); err != nil {
		return err
	}
	ledger, err := a.ledgerFor(exerciseID)
	if err != nil {
		return err
	}
	return ledger.UpdateValues(setID, weight, reps, applyToRemaining)
}

// AddWarmupBatch prepends computed warm-up sets to an ungrouped
// exercise. Grouped exercises are refused: prepending shifts every
// working set's position, which is what the round tracker indexes by.
func (a *Aggregate) AddWarmupBatch(exerciseID string, batch []WarmupSet, restSeconds int) error {
	if err := a.ensureActive(); err != nil {
		return err
	}
	ledger, err := a.ungroupedLedgerFor(exerciseID)
	if err != nil {
		return err
	}
	return ledger.AddWarmupBatch(batch, restSeconds)
}

//
// Group commands
//

// CreateGroup forms a superset or circuit over existing ungrouped
// exercises. All validation runs before anything is assigned, so a failed
// creation leaves the session untouched. TotalRounds is the members'
// shared set count: one round is one set per member.
func (a *Aggregate) CreateGroup(kind models.GroupKind, exerciseIDs []string, restSeconds int) (*models.ExerciseGroup, error) {
	if err := a.ensureActive(); err != nil {
		return nil, err
	}
	if err := ValidateGroupSize(kind, len(exerciseIDs)); err != nil {
		return nil, err
	}

	members := make([]*models.SessionExercise, 0, len(exerciseIDs))
	seen := make(map[string]bool, len(exerciseIDs))
	for _, id := range exerciseIDs {
		if seen[id] {
			return nil, ErrInvalidGroupSize
		}
		seen[id] = true
		ex := a.session.ExerciseByID(id)
		if ex == nil {
			return nil, ErrExerciseNotFound
		}
		if ex.GroupID != "" {
			return nil, ErrGroupedExercise
		}
		members = append(members, ex)
	}

	rounds := len(members[0].Sets)
	for _, ex := range members[1:] {
		if len(ex.Sets) != rounds {
			return nil, ErrUnevenSetCounts
		}
	}

	group := &models.ExerciseGroup{
		ID:           uuid.New().String(),
		Kind:         kind,
		CurrentRound: 1,
		TotalRounds:  rounds,
		RestSeconds:  restSeconds,
		ExerciseIDs:  append([]string(nil), exerciseIDs...),
	}
	for _, ex := range members {
		ex.GroupID = group.ID
	}

	coll := a.groups()
	coll.Append(group)
	a.session.Groups = coll.Items
	return group, nil
}

// DissolveGroup detaches all members and removes the group, compacting the
// remaining group order.
func (a *Aggregate) DissolveGroup(groupID string) error {
	if err := a.ensureActive(); err != nil {
		return err
	}
	group := a.session.GroupByID(groupID)
	if group == nil {
		return ErrGroupNotFound
	}
	for _, ex := range a.session.Exercises {
		if ex.GroupID == groupID {
			ex.GroupID = ""
		}
	}
	coll := a.groups()
	coll.RemoveByKey(groupID)
	a.session.Groups = coll.Items
	return nil
}

func (a *Aggregate) trackerFor(groupID string) (*GroupRoundTracker, error) {
	group := a.session.GroupByID(groupID)
	if group == nil {
		return nil, ErrGroupNotFound
	}
	members := make([]*models.SessionExercise, 0, len(group.ExerciseIDs))
	for _, id := range group.ExerciseIDs {
		ex := a.session.ExerciseByID(id)
		if ex == nil {
			return nil, ErrExerciseNotFound
		}
		members = append(members, ex)
	}
	return NewGroupRoundTracker(group, members), nil
}

// CompleteCurrentRound advances a group once its current round is fully
// completed. Returns the rest to apply after the round, for the timer.
func (a *Aggregate) CompleteCurrentRound(groupID string) (int, error) {
	if err := a.ensureActive(); err != nil {
		return 0, err
	}
	tracker, err := a.trackerFor(groupID)
	if err != nil {
		return 0, err
	}
	if err := tracker.CompleteCurrentRound(); err != nil {
		return 0, err
	}
	return tracker.RestAfterRound(), nil
}

// AdvanceRoundManually skips ahead one round regardless of completion.
func (a *Aggregate) AdvanceRoundManually(groupID string) error {
	if err := a.ensureActive(); err != nil {
		return err
	}
	tracker, err := a.trackerFor(groupID)
	if err != nil {
		return err
	}
	return tracker.AdvanceManually()
}

//
// Lifecycle
//

// Pause suspends an active session.
func (a *Aggregate) Pause() error {
	if err := a.ensureActive(); err != nil {
		return err
	}
	a.session.Status = models.StatusPaused
	return nil
}

// Resume reactivates a paused session.
func (a *Aggregate) Resume() error {
	if a.session.Status != models.StatusPaused {
		return ErrSessionNotActive
	}
	a.session.Status = models.StatusActive
	return nil
}

// Complete is a one-way terminal transition; the session is persisted and
// summarized afterwards.
func (a *Aggregate) Complete() error {
	return a.finish(models.StatusCompleted)
}

// Cancel is a one-way terminal transition; the session is discarded and
// never summarized.
func (a *Aggregate) Cancel() error {
	return a.finish(models.StatusCancelled)
}

func (a *Aggregate) finish(status models.SessionStatus) error {
	if a.session.Status.Terminal() {
		return ErrSessionNotActive
	}
	a.session.Status = status
	a.session.EndTime = a.clock.Now()
	return nil
}
