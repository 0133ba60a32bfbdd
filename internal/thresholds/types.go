package thresholds

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Mode selects how step values are interpreted.
type Mode string

const (
	// ModeAbsolute step values are in the field's own units.
	ModeAbsolute Mode = "absolute"
	// ModePercentage step values are fractions of the field's [min, max] domain.
	ModePercentage Mode = "percentage"
)

// Step is one color band. Value is the inclusive lower bound.
type Step struct {
	Value float64 `yaml:"value"`
	Color string  `yaml:"color"`
	State string  `yaml:"state,omitempty"`
}

// IsBase reports whether the step is the -Infinity sentinel.
func (s Step) IsBase() bool {
	return math.IsInf(s.Value, -1)
}

func (s Step) String() string {
	if s.State != "" {
		return fmt.Sprintf("%s@%s(%s)", s.Color, formatValue(s.Value), s.State)
	}
	return fmt.Sprintf("%s@%s", s.Color, formatValue(s.Value))
}

func formatValue(v float64) string {
	if math.IsInf(v, -1) {
		return "-Infinity"
	}
	return fmt.Sprintf("%g", v)
}

// stepYAML mirrors Step with a nullable value. Dashboards store the base
// step as `value: null`.
type stepYAML struct {
	Value *float64 `yaml:"value"`
	Color string   `yaml:"color"`
	State string   `yaml:"state,omitempty"`
}

// UnmarshalYAML accepts a null or missing value as -Infinity.
func (s *Step) UnmarshalYAML(node *yaml.Node) error {
	var raw stepYAML
	if err := node.Decode(&raw); err != nil {
		return err
	}
	s.Color = raw.Color
	s.State = raw.State
	if raw.Value == nil {
		s.Value = math.Inf(-1)
	} else {
		s.Value = *raw.Value
	}
	return nil
}

// MarshalYAML writes the base step back as `value: null`.
func (s Step) MarshalYAML() (interface{}, error) {
	raw := stepYAML{Color: s.Color, State: s.State}
	if !s.IsBase() {
		v := s.Value
		raw.Value = &v
	}
	return raw, nil
}

// Config is a thresholds definition as attached to a field.
type Config struct {
	Mode  Mode   `yaml:"mode"`
	Steps []Step `yaml:"steps"`
}

// Default returns the thresholds a field gets when none are configured.
func Default() Config {
	return Config{
		Mode: ModeAbsolute,
		Steps: []Step{
			{Value: math.Inf(-1), Color: "green"},
			{Value: 80, Color: "red"},
		},
	}
}

// Clone returns a deep copy of the config.
func (c Config) Clone() Config {
	out := Config{Mode: c.Mode}
	if c.Steps != nil {
		out.Steps = make([]Step, len(c.Steps))
		copy(out.Steps, c.Steps)
	}
	return out
}
