// Package thresholds defines threshold steps and the two lookups built on
// them: ordering a step list and finding the step that is active for a value.
//
// A step's value is the inclusive lower bound of its color band. The base
// step carries math.Inf(-1) so every value falls into some band once a
// config has been normalized:
//
//	cfg := thresholds.Normalize(thresholds.Config{
//	    Mode: thresholds.ModeAbsolute,
//	    Steps: []thresholds.Step{
//	        {Value: 80, Color: "red"},
//	        {Value: 0, Color: "green"},
//	    },
//	})
//	step := thresholds.Active(42, cfg.Steps) // green
//
// Active does not sort its input. Callers that look up many values sort once
// (or normalize once) and reuse the result.
package thresholds
