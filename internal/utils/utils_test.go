package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forja-fit/forja/internal/models"
)

func TestCalculateEpley1RM(t *testing.T) {
	assert.InDelta(t, 120, CalculateEpley1RM(100, 6), 0.001)
	assert.Equal(t, float32(0), CalculateEpley1RM(100, 0), "zero reps estimates nothing")
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "45s", FormatDuration(45*time.Second))
	assert.Equal(t, "12m30s", FormatDuration(12*time.Minute+30*time.Second))
	assert.Equal(t, "1h12m0s", FormatDuration(time.Hour+12*time.Minute+30*time.Second))
}

func TestSessionState_RoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	require.False(t, SessionExists())

	sess := &models.Session{
		ID:         "s1",
		TemplateID: "pull-day",
		Status:     models.StatusActive,
		StartTime:  time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Exercises: []*models.SessionExercise{
			{
				ID:        "e1",
				CatalogID: "c1",
				Sets: []*models.ExerciseSet{
					{ID: "st1", Weight: 60, Reps: 8},
					{ID: "st2", OrderIndex: 1, Weight: 60, Reps: 8, Completed: true},
				},
			},
		},
		Groups: []*models.ExerciseGroup{
			{
				ID:           "g1",
				Kind:         models.KindSuperset,
				CurrentRound: 1,
				TotalRounds:  2,
				ExerciseIDs:  []string{"e1", "e2"},
			},
		},
	}
	require.NoError(t, SaveSessionState(sess))
	require.True(t, SessionExists())

	got, err := LoadSessionState()
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)
	assert.Equal(t, sess.Status, got.Status)
	assert.True(t, sess.StartTime.Equal(got.StartTime))
	require.Len(t, got.Exercises, 1)
	assert.Equal(t, sess.Exercises[0].Sets[1].Completed, got.Exercises[0].Sets[1].Completed)
	require.Len(t, got.Groups, 1)
	assert.Equal(t, sess.Groups[0].ExerciseIDs, got.Groups[0].ExerciseIDs)

	require.NoError(t, ClearSessionState())
	assert.False(t, SessionExists())
}

func TestParseCatalogFromTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	content := `
[[exercise]]
name = "Bench Press"
equipment = "barbell"
primary_muscle = "chest"

[[exercise]]
name = "Face Pull"
equipment = "cable"
primary_muscle = "rear delts"
description = "High rep, light load."
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	imp, err := ParseCatalogFromTOML(path)
	require.NoError(t, err)

	require.Len(t, imp.Exercises, 2)
	assert.Equal(t, "Bench Press", imp.Exercises[0].Name)
	assert.Equal(t, "barbell", imp.Exercises[0].Equipment)
	assert.Equal(t, "High rep, light load.", imp.Exercises[1].Description)
}

func TestParseCatalogFromTOML_MissingFile(t *testing.T) {
	_, err := ParseCatalogFromTOML("/nonexistent/catalog.toml")
	assert.Error(t, err)
}
