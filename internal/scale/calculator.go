package scale

import (
	"fmt"

	"fieldscale/internal/field"
	"fieldscale/internal/thresholds"
)

// Palette turns a gradient position into a color string.
type Palette interface {
	// Interpolate returns the color at percent (in [0, 1]) of the named scheme.
	Interpolate(percent float64, scheme string) string
	// HasScheme reports whether the scheme can be interpolated.
	HasScheme(name string) bool
}

// Value is the result of applying a calculator to one value.
type Value struct {
	Percent   *float64         `yaml:"percent,omitempty"`
	Threshold *thresholds.Step `yaml:"threshold,omitempty"`
	Color     string           `yaml:"color"`
}

// colorer is the mode-specific half of a Calculator.
type colorer interface {
	apply(v float64) Value
}

// Calculator maps values of one field to colors.
type Calculator struct {
	mode      field.ColorMode
	domain    Domain
	hasDomain bool
	colorer   colorer
}

// Build returns a calculator for f's config, which is expected to be
// normalized. It fails with ErrUnknownColorMode when the color config is
// unusable, and with ErrDomainUnresolved when the mode needs a domain that
// cannot be derived.
func Build[T any](f field.Field[T], palette Palette) (*Calculator, error) {
	cfg := f.Config
	if cfg.Color == nil {
		return nil, fmt.Errorf("field %q: no color config: %w", f.Name, ErrUnknownColorMode)
	}
	mode := cfg.Color.Mode
	if !mode.IsContinuous() && !mode.IsKnown() {
		return nil, fmt.Errorf("field %q: mode %q: %w", f.Name, mode, ErrUnknownColorMode)
	}

	domain, domainErr := ResolveDomain(f.Values, cfg)
	calc := &Calculator{mode: mode, domain: domain, hasDomain: domainErr == nil}

	switch {
	case mode == field.ColorModeThresholds:
		c, err := newThresholdColorer(cfg.Thresholds, domain, domainErr)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		calc.colorer = c

	case mode == field.ColorModeFixed:
		if cfg.Color.FixedColor == "" {
			return nil, fmt.Errorf("field %q: fixed mode without a color: %w", f.Name, ErrUnknownColorMode)
		}
		calc.colorer = fixedColorer{color: cfg.Color.FixedColor}

	default:
		scheme, _ := cfg.Color.Scheme()
		if palette == nil || !palette.HasScheme(scheme) {
			return nil, fmt.Errorf("field %q: scheme %q: %w", f.Name, scheme, ErrUnknownColorMode)
		}
		if domainErr != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, domainErr)
		}
		calc.colorer = schemeColorer{domain: domain, scheme: scheme, palette: palette}
	}

	return calc, nil
}

// Apply returns the color for v.
func (c *Calculator) Apply(v float64) Value {
	return c.colorer.apply(v)
}

// Mode is the color mode the calculator was built for.
func (c *Calculator) Mode() field.ColorMode {
	return c.mode
}

// Domain returns the resolved domain, if one could be derived.
func (c *Calculator) Domain() (Domain, bool) {
	return c.domain, c.hasDomain
}

// Steps returns the absolute, sorted threshold steps in threshold mode.
func (c *Calculator) Steps() []thresholds.Step {
	tc, ok := c.colorer.(thresholdColorer)
	if !ok {
		return nil
	}
	out := make([]thresholds.Step, len(tc.steps))
	copy(out, tc.steps)
	return out
}

type thresholdColorer struct {
	steps []thresholds.Step
}

func newThresholdColorer(cfg *thresholds.Config, domain Domain, domainErr error) (thresholdColorer, error) {
	if cfg == nil || len(cfg.Steps) == 0 {
		return thresholdColorer{}, fmt.Errorf("%w: %w", ErrUnknownColorMode, thresholds.ErrEmptyThresholdList)
	}
	abs := *cfg
	if cfg.Mode == thresholds.ModePercentage {
		if domainErr != nil {
			return thresholdColorer{}, fmt.Errorf("percentage thresholds: %w", domainErr)
		}
		abs = thresholds.ToAbsolute(*cfg, domain.Min, domain.Max)
	}
	if thresholds.IsSorted(abs.Steps) {
		return thresholdColorer{steps: abs.Clone().Steps}, nil
	}
	return thresholdColorer{steps: thresholds.Sort(abs.Steps)}, nil
}

func (c thresholdColorer) apply(v float64) Value {
	step := thresholds.Active(v, c.steps)
	return Value{Color: step.Color, Threshold: &step}
}

type fixedColorer struct {
	color string
}

func (c fixedColorer) apply(float64) Value {
	return Value{Color: c.color}
}

type schemeColorer struct {
	domain  Domain
	scheme  string
	palette Palette
}

func (c schemeColorer) apply(v float64) Value {
	percent := c.domain.Percent(v)
	return Value{Percent: &percent, Color: c.palette.Interpolate(percent, c.scheme)}
}
