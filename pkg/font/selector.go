package font

import (
	"slices"
)

// ChooseBase picks the style used for the non-emphasised part of the text.
// The current style is kept whenever the family offers it; otherwise the
// available style whose weight is closest to the current one wins, with ties
// going to the style listed first.
func ChooseBase(available []string, current string) string {
	if len(available) == 0 || slices.Contains(available, current) {
		return current
	}

	currentWeight := WeightToNumber(current)
	closest := available[0]
	closestDiff := -1
	for _, style := range available {
		diff := abs(WeightToNumber(style) - currentWeight)
		if closestDiff < 0 || diff < closestDiff {
			closest, closestDiff = style, diff
		}
	}
	return closest
}

// ChooseBold picks the style used for the leading characters of each word.
// Only styles heavier than base are candidates; the one closest to
// base+contrast (capped at MaxWeight) wins, ties going to the lighter style
// and then to the style listed first. When nothing is heavier than base the
// heaviest available style is returned, or base itself if it is the only one.
func ChooseBold(available []string, contrast int, base string) string {
	baseWeight := WeightToNumber(base)
	target := min(MaxWeight, baseWeight+contrast)

	sorted := sortByWeight(available)

	bold, found := base, false
	closestDiff := 0
	for _, style := range sorted {
		weight := WeightToNumber(style)
		if weight <= baseWeight {
			continue
		}
		diff := abs(weight - target)
		if !found || diff < closestDiff {
			bold, closestDiff, found = style, diff, true
		}
	}

	if !found && len(sorted) > 1 {
		return sorted[len(sorted)-1]
	}
	return bold
}

// HeavierThan reports whether bold is strictly heavier than base, which is
// what a caller checks before applying emphasis.
func HeavierThan(bold, base string) bool {
	return WeightToNumber(bold) > WeightToNumber(base)
}

// sortByWeight returns a copy of styles ordered by ascending weight, keeping
// the listed order among equal weights.
func sortByWeight(styles []string) []string {
	sorted := slices.Clone(styles)
	slices.SortStableFunc(sorted, func(a, b string) int {
		return WeightToNumber(a) - WeightToNumber(b)
	})
	return sorted
}

// DistinctWeights counts the distinct canonical weights among styles.
func DistinctWeights(styles []string) int {
	seen := make(map[int]struct{}, len(styles))
	for _, style := range styles {
		seen[WeightToNumber(style)] = struct{}{}
	}
	return len(seen)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
