package thresholds

import "math"

// Normalize returns a copy of cfg with the steps sorted and the lowest step
// turned into the -Infinity base step. An empty mode becomes ModeAbsolute.
// cfg itself is left untouched.
func Normalize(cfg Config) Config {
	out := Config{Mode: cfg.Mode, Steps: Sort(cfg.Steps)}
	if out.Mode == "" {
		out.Mode = ModeAbsolute
	}
	if len(out.Steps) > 0 {
		out.Steps[0].Value = math.Inf(-1)
	}
	return out
}

// ToAbsolute converts percentage steps into field units over [min, max]
// using min + value*(max-min). The base step stays at -Infinity. The result
// is in absolute mode and keeps the input order.
func ToAbsolute(cfg Config, min, max float64) Config {
	out := cfg.Clone()
	if cfg.Mode != ModePercentage {
		return out
	}
	delta := max - min
	for i := range out.Steps {
		if out.Steps[i].IsBase() {
			continue
		}
		out.Steps[i].Value = min + out.Steps[i].Value*delta
	}
	out.Mode = ModeAbsolute
	return out
}
