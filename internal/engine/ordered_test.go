package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forja-fit/forja/internal/models"
)

func newSet(id string, pos int) *models.ExerciseSet {
	return &models.ExerciseSet{ID: id, OrderIndex: pos}
}

func collect(ids ...string) *Collection[*models.ExerciseSet] {
	c := &Collection[*models.ExerciseSet]{}
	for _, id := range ids {
		c.Append(newSet(id, 0))
	}
	return c
}

func positions(c *Collection[*models.ExerciseSet]) map[string]int {
	out := make(map[string]int, len(c.Items))
	for _, it := range c.Items {
		out[it.ID] = it.OrderIndex
	}
	return out
}

func TestCollection_AppendAssignsNextPosition(t *testing.T) {
	c := collect("a", "b", "c")

	assert.Equal(t, map[string]int{"a": 0, "b": 1, "c": 2}, positions(c))
	assert.True(t, c.Dense())
}

func TestCollection_AppendUsesMaxNotLen(t *testing.T) {
	// A collection with a gap (positions 0 and 2) must not hand out
	// position 2 twice.
	c := &Collection[*models.ExerciseSet]{
		Items: []*models.ExerciseSet{newSet("a", 0), newSet("b", 2)},
	}

	c.Append(newSet("c", 0))

	assert.Equal(t, 3, positions(c)["c"])
}

func TestCollection_RemoveCompacts(t *testing.T) {
	c := collect("a", "b", "c", "d")

	require.True(t, c.RemoveByKey("b"))

	assert.Equal(t, map[string]int{"a": 0, "c": 1, "d": 2}, positions(c))
	assert.True(t, c.Dense())
}

func TestCollection_RemoveMissingKey(t *testing.T) {
	c := collect("a", "b")

	assert.False(t, c.RemoveByKey("nope"))
	assert.Len(t, c.Items, 2)
}

func TestCollection_Reorder(t *testing.T) {
	c := collect("a", "b", "c")

	require.NoError(t, c.Reorder([]string{"c", "a", "b"}))

	assert.Equal(t, map[string]int{"c": 0, "a": 1, "b": 2}, positions(c))
	assert.True(t, c.Dense())
}

func TestCollection_ReorderRejectsBadPermutations(t *testing.T) {
	tests := []struct {
		name string
		keys []string
	}{
		{"too short", []string{"a", "b"}},
		{"too long", []string{"a", "b", "c", "d"}},
		{"unknown key", []string{"a", "b", "x"}},
		{"duplicate key", []string{"a", "a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := collect("a", "b", "c")
			before := positions(c)

			err := c.Reorder(tt.keys)

			assert.ErrorIs(t, err, ErrInvalidPermutation)
			assert.Equal(t, before, positions(c), "failed reorder must not move anything")
		})
	}
}

func TestCollection_AddRemoveCyclesStayDense(t *testing.T) {
	c := collect("a", "b", "c")
	require.True(t, c.RemoveByKey("a"))
	c.Append(newSet("d", 0))
	require.True(t, c.RemoveByKey("c"))
	c.Append(newSet("e", 0))

	assert.True(t, c.Dense())
	assert.Equal(t, map[string]int{"b": 0, "d": 1, "e": 2}, positions(c))
}
