package field

import "strings"

// ColorMode names a coloring strategy.
type ColorMode string

const (
	ColorModeThresholds ColorMode = "thresholds"
	ColorModeFixed      ColorMode = "fixed"

	ColorModeContinuousGrYlRd ColorMode = "continuous-GrYlRd"
	ColorModeContinuousRdYlGr ColorMode = "continuous-RdYlGr"
	ColorModeContinuousBlYlRd ColorMode = "continuous-BlYlRd"
	ColorModeContinuousYlRd   ColorMode = "continuous-YlRd"
	ColorModeContinuousBlPu   ColorMode = "continuous-BlPu"
	ColorModeContinuousYlBl   ColorMode = "continuous-YlBl"
	ColorModeSchemeBlues      ColorMode = "continuous-blues"
	ColorModeSchemeReds       ColorMode = "continuous-reds"
	ColorModeSchemeGreens     ColorMode = "continuous-greens"
	ColorModeSchemePurples    ColorMode = "continuous-purples"
	ColorModeSchemeOranges    ColorMode = "continuous-oranges"
)

const continuousPrefix = "continuous-"

// ColorModes lists every mode the scale package can build a calculator for.
var ColorModes = []ColorMode{
	ColorModeThresholds,
	ColorModeFixed,
	ColorModeContinuousGrYlRd,
	ColorModeContinuousRdYlGr,
	ColorModeContinuousBlYlRd,
	ColorModeContinuousYlRd,
	ColorModeContinuousBlPu,
	ColorModeContinuousYlBl,
	ColorModeSchemeBlues,
	ColorModeSchemeReds,
	ColorModeSchemeGreens,
	ColorModeSchemePurples,
	ColorModeSchemeOranges,
}

// IsContinuous reports whether the mode maps values onto a gradient.
func (m ColorMode) IsContinuous() bool {
	return strings.HasPrefix(string(m), continuousPrefix) && len(m) > len(continuousPrefix)
}

// SchemeName returns the palette scheme for a continuous mode, e.g. "blues"
// for continuous-blues.
func (m ColorMode) SchemeName() (string, bool) {
	if !m.IsContinuous() {
		return "", false
	}
	return strings.TrimPrefix(string(m), continuousPrefix), true
}

// IsKnown reports whether the mode is one of ColorModes.
func (m ColorMode) IsKnown() bool {
	for _, known := range ColorModes {
		if m == known {
			return true
		}
	}
	return false
}

// Scheme returns the scheme the color config resolves to: SchemeName when
// set on a continuous mode, otherwise the one implied by the mode.
func (c ColorConfig) Scheme() (string, bool) {
	name, ok := c.Mode.SchemeName()
	if !ok {
		return "", false
	}
	if c.SchemeName != "" {
		return c.SchemeName, true
	}
	return name, true
}
