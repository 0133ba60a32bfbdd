package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fieldscale/internal/field"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/fieldscale"
	projectConfigDir = ".fieldscale"
	configFileName   = "config.yaml"
)

var (
	// ErrPanelHasNoFields is returned for a panel file without fields.
	ErrPanelHasNoFields = errors.New("panel has no fields")
	// ErrInvalidField is returned for a field without a name or with a name
	// used twice in one panel.
	ErrInvalidField = errors.New("invalid field")
)

// LoadConfig loads the fieldscale configuration by layering default, user
// and project settings.
func LoadConfig() (FieldscaleConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else if _, err := os.Stat(userConfigPath); !os.IsNotExist(err) {
		userConfig, err := loadConfigFromFile(userConfigPath)
		if err != nil {
			return FieldscaleConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
		}
		config = mergeConfigs(config, userConfig)
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else if _, err := os.Stat(projectConfigPath); !os.IsNotExist(err) {
		projectConfig, err := loadConfigFromFile(projectConfigPath)
		if err != nil {
			return FieldscaleConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
		}
		config = mergeConfigs(config, projectConfig)
	}

	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a FieldscaleConfig from a YAML file.
func loadConfigFromFile(filePath string) (FieldscaleConfig, error) {
	var config FieldscaleConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return FieldscaleConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return FieldscaleConfig{}, err
	}
	if config.Display.Theme != "" && config.Display.Theme != ThemeDark && config.Display.Theme != ThemeLight {
		return FieldscaleConfig{}, fmt.Errorf("unknown theme %q", config.Display.Theme)
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config.
func mergeConfigs(base, overlay FieldscaleConfig) FieldscaleConfig {
	merged := base

	if overlay.Display.Theme != "" {
		merged.Display.Theme = overlay.Display.Theme
	}
	if overlay.Display.NeutralColor != "" {
		merged.Display.NeutralColor = overlay.Display.NeutralColor
	}
	if overlay.Display.DefaultScheme != "" {
		merged.Display.DefaultScheme = overlay.Display.DefaultScheme
	}
	if overlay.Display.NameWidth > 0 {
		merged.Display.NameWidth = overlay.Display.NameWidth
	}
	if overlay.Logging.Level != "" {
		merged.Logging.Level = overlay.Logging.Level
	}

	return merged
}

// LoadPanel reads a panel file and normalizes the config of every field.
func LoadPanel(filePath string) (Panel, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Panel{}, err
	}
	panel, err := ParsePanel(data)
	if err != nil {
		return Panel{}, fmt.Errorf("panel %s: %w", filePath, err)
	}
	return panel, nil
}

// ParsePanel decodes a panel from YAML and normalizes its fields.
func ParsePanel(data []byte) (Panel, error) {
	var panel Panel
	if err := yaml.Unmarshal(data, &panel); err != nil {
		return Panel{}, err
	}
	if len(panel.Fields) == 0 {
		return Panel{}, ErrPanelHasNoFields
	}

	seen := make(map[string]bool, len(panel.Fields))
	for i, f := range panel.Fields {
		if f.Name == "" {
			return Panel{}, fmt.Errorf("field #%d has no name: %w", i+1, ErrInvalidField)
		}
		if seen[f.Name] {
			return Panel{}, fmt.Errorf("duplicate field %q: %w", f.Name, ErrInvalidField)
		}
		seen[f.Name] = true

		if f.Type == "" {
			f.Type = field.TypeNumber
		}
		panel.Fields[i] = field.Normalize(f)
	}
	return panel, nil
}
