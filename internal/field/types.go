package field

import (
	"fieldscale/internal/thresholds"
)

// Type is the data type of a field's values.
type Type string

const (
	TypeNumber  Type = "number"
	TypeString  Type = "string"
	TypeTime    Type = "time"
	TypeBoolean Type = "boolean"
	TypeOther   Type = "other"
)

// ColorConfig selects how values of a field are colored.
type ColorConfig struct {
	Mode       ColorMode `yaml:"mode"`
	FixedColor string    `yaml:"fixedColor,omitempty"`
	// SchemeName overrides the scheme implied by a continuous mode.
	SchemeName string `yaml:"schemeName,omitempty"`
}

// Config is the display configuration of a field.
type Config struct {
	DisplayName string             `yaml:"displayName,omitempty"`
	Unit        string             `yaml:"unit,omitempty"`
	Decimals    *int               `yaml:"decimals,omitempty"`
	Min         *float64           `yaml:"min,omitempty"`
	Max         *float64           `yaml:"max,omitempty"`
	Thresholds  *thresholds.Config `yaml:"thresholds,omitempty"`
	Color       *ColorConfig       `yaml:"color,omitempty"`
}

// Field is a named column of values. Consumers read Values and Config and
// never write them.
type Field[T any] struct {
	Name   string `yaml:"name"`
	Type   Type   `yaml:"type"`
	Config Config `yaml:"config"`
	Values []T    `yaml:"values"`
}

// DisplayName returns the configured display name, falling back to Name.
func (f Field[T]) DisplayName() string {
	if f.Config.DisplayName != "" {
		return f.Config.DisplayName
	}
	return f.Name
}

// Float returns a pointer to v, for populating Min and Max.
func Float(v float64) *float64 {
	return &v
}
