package cmd

import (
	"fmt"
	"strconv"

	"github.com/forja-fit/forja/internal/config"
	"github.com/forja-fit/forja/internal/engine"
	"github.com/forja-fit/forja/internal/models"
	"github.com/forja-fit/forja/internal/storage"
	"github.com/forja-fit/forja/internal/utils"
)

var (
	store      *storage.Storage
	labelCache = map[string]string{}
)

// openStorage opens the database once per process; every command and
// helper that needs it shares the connection.
func openStorage() *storage.Storage {
	if store == nil {
		store = storage.NewStorage()
	}
	return store
}

// exerciseLabel resolves a catalog ID into its display name, falling back
// to the raw ID when the catalog row is missing.
func exerciseLabel(catalogID string) string {
	if name, ok := labelCache[catalogID]; ok {
		return name
	}
	name, _, err := openStorage().NameAndEquipment(catalogID)
	if err != nil {
		name = catalogID
	}
	labelCache[catalogID] = name
	return name
}

// loadAggregate reads the in-progress session from the state file and
// wraps it for mutation.
func loadAggregate() (*engine.Aggregate, error) {
	if !utils.SessionExists() {
		return nil, fmt.Errorf("No active session")
	}
	sess, err := utils.LoadSessionState()
	if err != nil {
		return nil, fmt.Errorf("Failed to load session state: %w", err)
	}
	return engine.Load(sess, engine.SystemClock{}), nil
}

func saveAggregate(agg *engine.Aggregate) error {
	if err := utils.SaveSessionState(agg.Session()); err != nil {
		return fmt.Errorf("Failed to save session state: %w", err)
	}
	return nil
}

// parseIndex parses a 1-based index argument.
func parseIndex(arg string) (int, error) {
	idx, err := strconv.Atoi(arg)
	if err != nil || idx < 1 {
		return 0, fmt.Errorf("Invalid index %q. Must be a positive integer", arg)
	}
	return idx, nil
}

// exerciseAt resolves a 1-based display position into the exercise holding
// that order index.
func exerciseAt(sess *models.Session, oneBased int) (*models.SessionExercise, error) {
	for _, ex := range sess.Exercises {
		if ex.OrderIndex == oneBased-1 {
			return ex, nil
		}
	}
	return nil, fmt.Errorf("Exercise index out of range")
}

// setAt resolves a 1-based display position into the set holding that
// order index.
func setAt(ex *models.SessionExercise, oneBased int) (*models.ExerciseSet, error) {
	for _, st := range ex.Sets {
		if st.OrderIndex == oneBased-1 {
			return st, nil
		}
	}
	return nil, fmt.Errorf("Set index out of range")
}

// groupAt resolves a 1-based display position into a group.
func groupAt(sess *models.Session, oneBased int) (*models.ExerciseGroup, error) {
	for _, g := range sess.Groups {
		if g.GroupIndex == oneBased-1 {
			return g, nil
		}
	}
	return nil, fmt.Errorf("Group index out of range")
}

// trainingConfig loads the training section of the config, falling back to
// defaults when no config file exists yet.
func trainingConfig() config.TrainingConfig {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.TrainingConfig{WeightIncrement: 2.5, WarmupReps: 5, NoteMaxLen: 200}
	}
	return cfg.Training
}
