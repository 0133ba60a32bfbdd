package thresholds

import "errors"

// ErrEmptyThresholdList is returned when a lookup is attempted on zero steps.
// Normalized configs always carry at least the base step, so hitting this is
// a programming error.
var ErrEmptyThresholdList = errors.New("threshold list is empty")
