package engine

import "math"

// WarmupStrategy selects the percentage ramp used to build warm-up sets.
type WarmupStrategy string

const (
	WarmupLight    WarmupStrategy = "light"
	WarmupStandard WarmupStrategy = "standard"
	WarmupExtended WarmupStrategy = "extended"
)

// ParseWarmupStrategy validates a raw strategy name.
func ParseWarmupStrategy(raw string) (WarmupStrategy, bool) {
	switch WarmupStrategy(raw) {
	case WarmupLight, WarmupStandard, WarmupExtended:
		return WarmupStrategy(raw), true
	}
	return "", false
}

// Percentages returns the strategy's ramp, ascending.
func (s WarmupStrategy) Percentages() []float32 {
	switch s {
	case WarmupLight:
		return []float32{0.5, 0.7}
	case WarmupExtended:
		return []float32{0.3, 0.45, 0.6, 0.75, 0.9}
	default:
		return []float32{0.4, 0.6, 0.8}
	}
}

// WarmupSet is one computed warm-up step. It becomes a real set only when
// inserted through the normal set path, so it obeys the same invariants as
// working sets.
type WarmupSet struct {
	Weight float32
	Reps   int
}

// minWarmupWeight is the lightest useful warm-up load. Steps that round
// below it carry no training effect and are dropped rather than clamped:
// clamping collapses several steps onto the same weight.
const minWarmupWeight = 2.5

// ComputeWarmups derives warm-up sets from a working weight. Working
// weights under 10 units produce nothing, since percentage steps would
// round to the working weight itself. Each percentage is rounded to the
// nearest loadable increment and kept only while strictly below the
// working weight.
func ComputeWarmups(workingWeight float32, strategy WarmupStrategy, increment float32, reps int) []WarmupSet {
	if workingWeight < 10 {
		return nil
	}
	if increment <= 0 {
		increment = 2.5
	}

	var out []WarmupSet
	for _, p := range strategy.Percentages() {
		raw := float64(workingWeight * p)
		rounded := float32(math.Round(raw/float64(increment)) * float64(increment))
		if rounded < minWarmupWeight || rounded >= workingWeight {
			continue
		}
		out = append(out, WarmupSet{Weight: rounded, Reps: reps})
	}
	return out
}
