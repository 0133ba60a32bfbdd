package field

import (
	"fieldscale/internal/thresholds"
)

// NormalizeConfig returns the canonical form of cfg:
//
//   - a config with thresholds but no color settings is colored by thresholds
//   - color settings without a mode are dropped
//   - min and max are swapped when min > max
//   - thresholds are sorted and their lowest step becomes the -Infinity base
//   - a thresholds color mode without thresholds gets thresholds.Default()
//
// cfg and everything it points to are left untouched.
func NormalizeConfig(cfg Config) Config {
	out := cfg

	if cfg.Decimals != nil {
		d := *cfg.Decimals
		out.Decimals = &d
	}
	if cfg.Min != nil {
		out.Min = Float(*cfg.Min)
	}
	if cfg.Max != nil {
		out.Max = Float(*cfg.Max)
	}
	if out.Min != nil && out.Max != nil && *out.Min > *out.Max {
		out.Min, out.Max = out.Max, out.Min
	}

	if cfg.Thresholds != nil {
		norm := thresholds.Normalize(*cfg.Thresholds)
		out.Thresholds = &norm
	}

	switch {
	case cfg.Color == nil:
		if out.Thresholds != nil {
			out.Color = &ColorConfig{Mode: ColorModeThresholds}
		}
	case cfg.Color.Mode == "":
		out.Color = nil
	default:
		color := *cfg.Color
		out.Color = &color
	}

	if out.Color != nil && out.Color.Mode == ColorModeThresholds && out.Thresholds == nil {
		def := thresholds.Default()
		out.Thresholds = &def
	}

	return out
}

// Normalize returns a copy of f with its config normalized. Values are
// shared with f.
func Normalize[T any](f Field[T]) Field[T] {
	out := f
	out.Config = NormalizeConfig(f.Config)
	return out
}
