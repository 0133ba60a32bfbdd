package thresholds

import "sort"

// Sort returns a copy of steps ordered by value ascending. Steps with equal
// values keep their relative order. The input slice is not modified.
func Sort(steps []Step) []Step {
	sorted := make([]Step, len(steps))
	copy(sorted, steps)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value < sorted[j].Value
	})
	return sorted
}

// IsSorted reports whether steps are already in ascending order.
func IsSorted(steps []Step) bool {
	return sort.SliceIsSorted(steps, func(i, j int) bool {
		return steps[i].Value < steps[j].Value
	})
}
