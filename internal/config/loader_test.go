package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"fieldscale/internal/field"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// Helper function to create a temporary config file
func createTempConfigFile(t *testing.T, path string, content FieldscaleConfig) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	data, err := yaml.Marshal(&content)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))
}

// mockConfigPaths points the user and project config lookups into dir for
// the duration of the test.
func mockConfigPaths(t *testing.T, dir string) (userPath, projectPath string) {
	t.Helper()
	originalGetUserConfigPath := getUserConfigPath
	originalGetProjectConfigPath := getProjectConfigPath
	t.Cleanup(func() {
		getUserConfigPath = originalGetUserConfigPath
		getProjectConfigPath = originalGetProjectConfigPath
	})

	userPath = filepath.Join(dir, "home", userConfigDir, configFileName)
	projectPath = filepath.Join(dir, "project", projectConfigDir, configFileName)
	getUserConfigPath = func() (string, error) { return userPath, nil }
	getProjectConfigPath = func() (string, error) { return projectPath, nil }
	return userPath, projectPath
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	mockConfigPaths(t, t.TempDir())

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), loaded)
}

func TestLoadConfig_UserAndProjectOverride(t *testing.T) {
	userPath, projectPath := mockConfigPaths(t, t.TempDir())

	createTempConfigFile(t, userPath, FieldscaleConfig{
		Display: DisplaySettings{Theme: ThemeLight, NameWidth: 30, DefaultScheme: "blues"},
		Logging: LoggingSettings{Level: "debug"},
	})
	createTempConfigFile(t, projectPath, FieldscaleConfig{
		Display: DisplaySettings{NeutralColor: "#888888", NameWidth: 12},
	})

	loaded, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ThemeLight, loaded.Display.Theme)
	assert.Equal(t, "#888888", loaded.Display.NeutralColor)
	assert.Equal(t, 12, loaded.Display.NameWidth)
	assert.Equal(t, "debug", loaded.Logging.Level)
	assert.Equal(t, "blues", loaded.Display.DefaultScheme)
}

func TestLoadConfig_DefaultSchemeKeptWhenUnset(t *testing.T) {
	_, projectPath := mockConfigPaths(t, t.TempDir())
	createTempConfigFile(t, projectPath, FieldscaleConfig{Display: DisplaySettings{NameWidth: 8}})

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "GrYlRd", loaded.Display.DefaultScheme)
	assert.Equal(t, 8, loaded.Display.NameWidth)
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	userPath, _ := mockConfigPaths(t, t.TempDir())
	require.NoError(t, os.MkdirAll(filepath.Dir(userPath), 0755))
	require.NoError(t, os.WriteFile(userPath, []byte("display: [unclosed"), 0644))

	_, err := LoadConfig()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "error loading user config")
}

func TestLoadConfig_UnknownTheme(t *testing.T) {
	_, projectPath := mockConfigPaths(t, t.TempDir())
	createTempConfigFile(t, projectPath, FieldscaleConfig{Display: DisplaySettings{Theme: "neon"}})

	_, err := LoadConfig()
	assert.ErrorContains(t, err, `unknown theme "neon"`)
}

const panelYAML = `
title: Node health
fields:
  - name: cpu
    config:
      unit: percent
      min: 100
      max: 0
      thresholds:
        mode: absolute
        steps:
          - value: 80
            color: red
          - value: 5
            color: green
    values: [12, 55.5, null, 91]
  - name: temperature
    type: number
    config:
      color:
        mode: continuous-blues
    values: [20, 35]
`

func TestParsePanel(t *testing.T) {
	panel, err := ParsePanel([]byte(panelYAML))
	require.NoError(t, err)

	assert.Equal(t, "Node health", panel.Title)
	require.Len(t, panel.Fields, 2)

	cpu, ok := panel.Field("cpu")
	require.True(t, ok)
	assert.Equal(t, field.TypeNumber, cpu.Type)
	assert.Equal(t, 0.0, *cpu.Config.Min)
	assert.Equal(t, 100.0, *cpu.Config.Max)
	require.NotNil(t, cpu.Config.Color)
	assert.Equal(t, field.ColorModeThresholds, cpu.Config.Color.Mode)
	assert.True(t, math.IsInf(cpu.Config.Thresholds.Steps[0].Value, -1))
	assert.Equal(t, "green", cpu.Config.Thresholds.Steps[0].Color)
	assert.Equal(t, []any{12, 55.5, nil, 91}, cpu.Values)

	temp, ok := panel.Field("temperature")
	require.True(t, ok)
	assert.Equal(t, field.ColorModeSchemeBlues, temp.Config.Color.Mode)

	_, ok = panel.Field("missing")
	assert.False(t, ok)
}

func TestParsePanel_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		err  error
	}{
		{"no fields", "title: empty\n", ErrPanelHasNoFields},
		{"unnamed field", "fields:\n  - values: [1]\n", ErrInvalidField},
		{"duplicate field", "fields:\n  - name: a\n  - name: a\n", ErrInvalidField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePanel([]byte(tt.doc))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestLoadPanel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panel.yaml")
	require.NoError(t, os.WriteFile(path, []byte(panelYAML), 0644))

	panel, err := LoadPanel(path)
	require.NoError(t, err)
	assert.Len(t, panel.Fields, 2)

	_, err = LoadPanel(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
