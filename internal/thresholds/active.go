package thresholds

// Locate returns the last step whose value is <= value. sorted must be in
// ascending order; it is not re-sorted here. A value below every step maps to
// the first step.
func Locate(value float64, sorted []Step) (Step, error) {
	if len(sorted) == 0 {
		return Step{}, ErrEmptyThresholdList
	}
	return sorted[activeIndex(value, sorted)], nil
}

// Active is Locate for callers holding a normalized list. It panics on an
// empty list.
func Active(value float64, sorted []Step) Step {
	step, err := Locate(value, sorted)
	if err != nil {
		panic(err)
	}
	return step
}

// activeIndex stops at the first step larger than value. Steps equal to
// value do not stop the scan, so duplicates resolve to the last of them.
func activeIndex(value float64, sorted []Step) int {
	idx := 0
	for i, step := range sorted {
		if step.Value <= value {
			idx = i
			continue
		}
		break
	}
	return idx
}
