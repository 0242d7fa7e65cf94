package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWarmupStrategy(t *testing.T) {
	for _, raw := range []string{"light", "standard", "extended"} {
		s, ok := ParseWarmupStrategy(raw)
		require.True(t, ok, raw)
		assert.Equal(t, WarmupStrategy(raw), s)
	}
	_, ok := ParseWarmupStrategy("pyramid")
	assert.False(t, ok)
}

func TestComputeWarmups_Standard(t *testing.T) {
	got := ComputeWarmups(100, WarmupStandard, 2.5, 5)

	assert.Equal(t, []WarmupSet{
		{Weight: 40, Reps: 5},
		{Weight: 60, Reps: 5},
		{Weight: 80, Reps: 5},
	}, got)
}

func TestComputeWarmups_Light(t *testing.T) {
	got := ComputeWarmups(100, WarmupLight, 2.5, 8)

	assert.Equal(t, []WarmupSet{
		{Weight: 50, Reps: 8},
		{Weight: 70, Reps: 8},
	}, got)
}

func TestComputeWarmups_Extended(t *testing.T) {
	got := ComputeWarmups(100, WarmupExtended, 2.5, 5)

	assert.Equal(t, []WarmupSet{
		{Weight: 30, Reps: 5},
		{Weight: 45, Reps: 5},
		{Weight: 60, Reps: 5},
		{Weight: 75, Reps: 5},
		{Weight: 90, Reps: 5},
	}, got)
}

func TestComputeWarmups_LightWorkingWeight(t *testing.T) {
	assert.Nil(t, ComputeWarmups(5, WarmupStandard, 2.5, 5))
	assert.Nil(t, ComputeWarmups(9.5, WarmupExtended, 2.5, 5))
}

func TestComputeWarmups_RoundsToIncrement(t *testing.T) {
	// 97.5 × [0.4, 0.6, 0.8] = 39, 58.5, 78 → nearest 2.5 step.
	got := ComputeWarmups(97.5, WarmupStandard, 2.5, 5)

	require.Len(t, got, 3)
	assert.Equal(t, float32(40), got[0].Weight)
	assert.Equal(t, float32(57.5), got[1].Weight)
	assert.Equal(t, float32(77.5), got[2].Weight)
}

func TestComputeWarmups_DropsStepsAtOrAboveWorkingWeight(t *testing.T) {
	// 10 × 0.9 rounds to 10, which is not below the working weight, so the
	// extended ramp loses its top step.
	got := ComputeWarmups(10, WarmupExtended, 2.5, 5)

	require.NotEmpty(t, got)
	for _, w := range got {
		assert.Less(t, w.Weight, float32(10))
	}
	assert.Equal(t, float32(7.5), got[len(got)-1].Weight)
}

func TestComputeWarmups_DropsStepsBelowMinimum(t *testing.T) {
	// A coarse increment rounds the lowest extended step to zero; it is
	// dropped instead of being clamped up.
	got := ComputeWarmups(12, WarmupExtended, 10, 5)

	for _, w := range got {
		assert.GreaterOrEqual(t, w.Weight, float32(2.5))
	}
	assert.Len(t, got, 4)
}

func TestComputeWarmups_ZeroIncrementFallsBack(t *testing.T) {
	got := ComputeWarmups(100, WarmupStandard, 0, 5)

	require.Len(t, got, 3)
	assert.Equal(t, float32(40), got[0].Weight)
}
