package font

import (
	"slices"
)

// SuggestContrastSteps proposes contrast values to offer for a selection whose
// richest family has maxWeightsSeen styles. Families with up to three styles
// get the default low/medium/high steps. Richer families get an evenly spaced
// grid over 0-900 that always contains 100, 450 and 900. The result is
// advisory; any contrast value may still be requested.
func SuggestContrastSteps(maxWeightsSeen int) []int {
	if maxWeightsSeen <= len(DefaultContrastSteps) {
		return slices.Clone(DefaultContrastSteps)
	}

	step := MaxWeight / (maxWeightsSeen - 1)
	steps := make([]int, 0, maxWeightsSeen+len(forcedContrastSteps))
	for i := 0; i < maxWeightsSeen; i++ {
		steps = append(steps, min(MaxWeight, i*step))
	}
	for _, forced := range forcedContrastSteps {
		if !slices.Contains(steps, forced) {
			steps = append(steps, forced)
		}
	}

	slices.Sort(steps)
	return slices.Compact(steps)
}
