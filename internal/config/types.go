package config

import (
	"fieldscale/internal/field"
)

// FieldscaleConfig is the top-level configuration structure for fieldscale.
type FieldscaleConfig struct {
	Display DisplaySettings `yaml:"display"`
	Logging LoggingSettings `yaml:"logging"`
}

// Theme selects the terminal background the renderer targets.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// DisplaySettings control how rendered panels look.
type DisplaySettings struct {
	Theme Theme `yaml:"theme,omitempty"`
	// NeutralColor paints values whose field has no usable scale.
	NeutralColor string `yaml:"neutralColor,omitempty"`
	// DefaultScheme replaces a continuous scheme the palette does not know.
	DefaultScheme string `yaml:"defaultScheme,omitempty"`
	// NameWidth is the column width for field names; longer names are truncated.
	NameWidth int `yaml:"nameWidth,omitempty"`
}

type LoggingSettings struct {
	Level string `yaml:"level,omitempty"`
}

// Panel is a set of fields rendered together.
type Panel struct {
	Title  string             `yaml:"title,omitempty"`
	Fields []field.Field[any] `yaml:"fields"`
}

// Field returns the panel field with the given name.
func (p Panel) Field(name string) (field.Field[any], bool) {
	for _, f := range p.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return field.Field[any]{}, false
}

// GetDefaultConfig returns the built-in settings.
func GetDefaultConfig() FieldscaleConfig {
	return FieldscaleConfig{
		Display: DisplaySettings{
			Theme:         ThemeDark,
			NeutralColor:  "text",
			DefaultScheme: "GrYlRd",
			NameWidth:     20,
		},
		Logging: LoggingSettings{
			Level: "info",
		},
	}
}
