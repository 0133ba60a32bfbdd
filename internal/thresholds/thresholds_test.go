package thresholds

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func values(steps []Step) []float64 {
	out := make([]float64, len(steps))
	for i, s := range steps {
		out[i] = s.Value
	}
	return out
}

func TestSort(t *testing.T) {
	input := []Step{
		{Value: 10, Color: "TEN"},
		{Value: 100, Color: "HHH"},
		{Value: 1, Color: "ONE"},
	}

	sorted := Sort(input)

	assert.Equal(t, []float64{1, 10, 100}, values(sorted))
	assert.Equal(t, []float64{10, 100, 1}, values(input), "input order must be preserved")
	assert.True(t, IsSorted(sorted))
	assert.False(t, IsSorted(input))
}

func TestSort_Empty(t *testing.T) {
	assert.Empty(t, Sort(nil))
	assert.Empty(t, Sort([]Step{}))
}

func TestSort_StableForEqualValues(t *testing.T) {
	sorted := Sort([]Step{
		{Value: 5, Color: "first"},
		{Value: 1, Color: "low"},
		{Value: 5, Color: "second"},
	})

	require.Len(t, sorted, 3)
	assert.Equal(t, "low", sorted[0].Color)
	assert.Equal(t, "first", sorted[1].Color)
	assert.Equal(t, "second", sorted[2].Color)
}

func TestSort_IsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 50; round++ {
		n := rng.Intn(12)
		input := make([]Step, n)
		for i := range input {
			input[i] = Step{Value: float64(rng.Intn(1000) - 500), Color: string(rune('a' + i))}
		}

		sorted := Sort(input)

		assert.ElementsMatch(t, input, sorted)
		assert.True(t, IsSorted(sorted))
	}
}

func TestNormalize_SortsAndSetsBase(t *testing.T) {
	cfg := Config{
		Mode: ModeAbsolute,
		Steps: []Step{
			{Value: 10, Color: "TEN"},
			{Value: 100, Color: "HHH"},
			{Value: 1, Color: "ONE"},
		},
	}

	norm := Normalize(cfg)

	require.Len(t, norm.Steps, 3)
	assert.True(t, norm.Steps[0].IsBase())
	assert.Equal(t, "ONE", norm.Steps[0].Color)
	assert.Equal(t, "TEN", Active(10, norm.Steps).Color)
	assert.Equal(t, float64(10), cfg.Steps[0].Value, "input must not be mutated")
	assert.Equal(t, float64(1), cfg.Steps[2].Value, "input must not be mutated")
}

func TestNormalize_EmptyMode(t *testing.T) {
	norm := Normalize(Config{Steps: []Step{{Value: 3, Color: "x"}}})
	assert.Equal(t, ModeAbsolute, norm.Mode)
}

func TestActive_Bands(t *testing.T) {
	norm := Normalize(Config{
		Mode: ModeAbsolute,
		Steps: []Step{
			{Value: 1, Color: "ONE"},
			{Value: 10, Color: "TEN"},
			{Value: 100, Color: "HHH"},
		},
	})

	tests := []struct {
		value    float64
		expected string
	}{
		{-1, "ONE"},
		{1, "ONE"},
		{5, "ONE"},
		{10, "TEN"},
		{11, "TEN"},
		{99, "TEN"},
		{100, "HHH"},
		{1000, "HHH"},
		{math.Inf(1), "HHH"},
		{math.Inf(-1), "ONE"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Active(tt.value, norm.Steps).Color, "value %v", tt.value)
	}
}

func TestActive_BelowAllStepsFallsBackToFirst(t *testing.T) {
	steps := []Step{{Value: 10, Color: "TEN"}, {Value: 20, Color: "TWENTY"}}
	assert.Equal(t, "TEN", Active(-5, steps).Color)
}

func TestActive_DuplicateValuesLastWins(t *testing.T) {
	steps := []Step{
		{Value: math.Inf(-1), Color: "base"},
		{Value: 50, Color: "a"},
		{Value: 50, Color: "b"},
	}
	assert.Equal(t, "b", Active(50, steps).Color)
	assert.Equal(t, "b", Active(70, steps).Color)
	assert.Equal(t, "base", Active(49.9, steps).Color)
}

func TestActive_GreatestLowerBound(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for round := 0; round < 100; round++ {
		steps := make([]Step, 1+rng.Intn(8))
		for i := range steps {
			steps[i] = Step{Value: float64(i*10 + rng.Intn(5))}
		}
		v := float64(rng.Intn(120) - 10)

		got := Active(v, steps)

		if v < steps[0].Value {
			assert.Equal(t, steps[0], got)
			continue
		}
		assert.LessOrEqual(t, got.Value, v)
		for _, s := range steps {
			if s.Value <= v {
				assert.LessOrEqual(t, s.Value, got.Value)
			}
		}
	}
}

func TestLocate_Empty(t *testing.T) {
	_, err := Locate(1, nil)
	assert.ErrorIs(t, err, ErrEmptyThresholdList)
	assert.Panics(t, func() { Active(1, nil) })
}

func TestToAbsolute(t *testing.T) {
	cfg := Config{
		Mode: ModePercentage,
		Steps: []Step{
			{Value: math.Inf(-1), Color: "green"},
			{Value: 0.5, Color: "orange"},
			{Value: 0.8, Color: "red"},
		},
	}

	abs := ToAbsolute(cfg, -100, 100)

	assert.Equal(t, ModeAbsolute, abs.Mode)
	assert.True(t, abs.Steps[0].IsBase())
	assert.InDelta(t, 0, abs.Steps[1].Value, 1e-9)
	assert.InDelta(t, 60, abs.Steps[2].Value, 1e-9)
	assert.Equal(t, 0.5, cfg.Steps[1].Value, "input must not be mutated")
}

func TestToAbsolute_AbsoluteIsCopy(t *testing.T) {
	cfg := Default()
	abs := ToAbsolute(cfg, 0, 1000)
	assert.Equal(t, cfg, abs)
	abs.Steps[1].Color = "blue"
	assert.Equal(t, "red", cfg.Steps[1].Color)
}

func TestStep_YAML(t *testing.T) {
	doc := `
mode: absolute
steps:
  - value: null
    color: green
  - color: blue
  - value: -.inf
    color: purple
  - value: 80
    color: red
    state: High
`
	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte(doc), &cfg))
	require.Len(t, cfg.Steps, 4)
	assert.True(t, cfg.Steps[0].IsBase())
	assert.True(t, cfg.Steps[1].IsBase())
	assert.True(t, cfg.Steps[2].IsBase())
	assert.Equal(t, Step{Value: 80, Color: "red", State: "High"}, cfg.Steps[3])

	out, err := yaml.Marshal(Default())
	require.NoError(t, err)
	assert.Contains(t, string(out), "value: null")
	assert.Contains(t, string(out), "value: 80")
}

func TestStep_String(t *testing.T) {
	assert.Equal(t, "green@-Infinity", Step{Value: math.Inf(-1), Color: "green"}.String())
	assert.Equal(t, "red@80(High)", Step{Value: 80, Color: "red", State: "High"}.String())
}
