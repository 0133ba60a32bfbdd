package render

import (
	"errors"
	"fmt"
	"strings"

	"fieldscale/internal/config"
	"fieldscale/internal/field"
	"fieldscale/internal/palette"
	"fieldscale/internal/scale"
	"fieldscale/internal/thresholds"
	"fieldscale/pkg/logging"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const subsystem = "render"

// Cell is one rendered value.
type Cell struct {
	Text string
	// Color is the resolved "#rrggbb" color, empty for neutral cells.
	Color string
	// Scale is the calculator output, nil when the value was not scaled.
	Scale *scale.Value
}

// Renderer draws fields with the colors their scales assign.
type Renderer struct {
	settings config.DisplaySettings
	palette  *palette.Provider
	neutral  lipgloss.Style
	title    lipgloss.Style
}

// NewRenderer returns a renderer for the given display settings.
func NewRenderer(settings config.DisplaySettings, p *palette.Provider) *Renderer {
	if p == nil {
		p = palette.Default()
	}
	lipgloss.SetHasDarkBackground(settings.Theme != config.ThemeLight)

	neutral := lipgloss.NewStyle()
	if hex, err := palette.ResolveHex(settings.NeutralColor); err == nil {
		neutral = neutral.Foreground(lipgloss.Color(hex))
	} else if settings.NeutralColor != "" {
		logging.Warn(subsystem, "ignoring neutral color %q: %v", settings.NeutralColor, err)
	}

	return &Renderer{
		settings: settings,
		palette:  p,
		neutral:  neutral,
		title:    lipgloss.NewStyle().Bold(true).Underline(true),
	}
}

// colorFunc maps a numeric value to a scale output; nil means neutral.
type colorFunc func(v float64) *scale.Value

// scaleFor builds the field's calculator and applies the fallback policy
// when that fails.
func (r *Renderer) scaleFor(f field.Field[any]) colorFunc {
	calc, err := scale.Build(r.withDefaultScheme(f), r.palette)
	switch {
	case err == nil:
		return func(v float64) *scale.Value {
			out := calc.Apply(v)
			return &out
		}

	case errors.Is(err, scale.ErrDomainUnresolved):
		logging.Debug(subsystem, "field %s: rendering unstyled: %v", f.Name, err)
		return nil

	case errors.Is(err, scale.ErrUnknownColorMode):
		if f.Config.Color != nil && f.Config.Color.FixedColor != "" {
			fixed := scale.Value{Color: f.Config.Color.FixedColor}
			logging.Warn(subsystem, "field %s: %v; using fixed color %s", f.Name, err, fixed.Color)
			return func(float64) *scale.Value { return &fixed }
		}
		if f.Config.Color != nil {
			logging.Warn(subsystem, "field %s: %v; rendering unstyled", f.Name, err)
		}
		return nil

	default:
		logging.Error(subsystem, err, "field %s: cannot build scale", f.Name)
		return nil
	}
}

// withDefaultScheme points a continuous field whose scheme the palette lacks
// at the configured default scheme.
func (r *Renderer) withDefaultScheme(f field.Field[any]) field.Field[any] {
	color := f.Config.Color
	if color == nil || r.settings.DefaultScheme == "" {
		return f
	}
	scheme, ok := color.Scheme()
	if !ok || r.palette.HasScheme(scheme) || !r.palette.HasScheme(r.settings.DefaultScheme) {
		return f
	}

	logging.Warn(subsystem, "field %s: unknown scheme %q; using %s", f.Name, scheme, r.settings.DefaultScheme)
	replaced := *color
	replaced.SchemeName = r.settings.DefaultScheme
	out := f
	out.Config.Color = &replaced
	return out
}

// Cells formats and colors every value of f.
func (r *Renderer) Cells(f field.Field[any]) []Cell {
	colorOf := r.scaleFor(f)
	cells := make([]Cell, len(f.Values))
	for i, v := range f.Values {
		cells[i] = Cell{Text: FormatValue(v, f.Config)}

		n, ok := scale.ToFloat(v)
		if !ok || colorOf == nil {
			continue
		}
		out := colorOf(n)
		cells[i].Scale = out

		hex, err := palette.ResolveHex(out.Color)
		if err != nil {
			logging.Debug(subsystem, "field %s: cannot paint %q: %v", f.Name, out.Color, err)
			continue
		}
		cells[i].Color = hex
	}
	return cells
}

func (r *Renderer) paint(c Cell) string {
	if c.Color == "" {
		return r.neutral.Render(c.Text)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color)).Render(c.Text)
}

func (r *Renderer) nameColumn(name string) string {
	width := r.settings.NameWidth
	if width <= 0 {
		return name
	}
	return runewidth.FillRight(runewidth.Truncate(name, width, "…"), width)
}

// RenderField draws one field as a single line: its name followed by its
// colored values.
func (r *Renderer) RenderField(f field.Field[any]) string {
	cells := r.Cells(f)
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = r.paint(c)
	}
	return r.nameColumn(f.DisplayName()) + " " + strings.Join(parts, "  ")
}

// RenderPanel draws the panel title followed by one line per field.
func (r *Renderer) RenderPanel(p config.Panel) string {
	var b strings.Builder
	if p.Title != "" {
		b.WriteString(r.title.Render(p.Title))
		b.WriteString("\n")
	}
	for _, f := range p.Fields {
		b.WriteString(r.RenderField(f))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderThresholds lists the field's threshold steps in ascending order,
// each painted in its own color. Percentage steps also show the value they
// stand for when the field has a domain.
func (r *Renderer) RenderThresholds(f field.Field[any]) (string, error) {
	if f.Config.Thresholds == nil || len(f.Config.Thresholds.Steps) == 0 {
		return "", fmt.Errorf("field %q: %w", f.Name, thresholds.ErrEmptyThresholdList)
	}
	cfg := *f.Config.Thresholds
	steps := thresholds.Sort(cfg.Steps)

	// Percentage steps are resolved by a threshold calculator over the same
	// field; its steps line up with steps since the conversion is monotonic.
	var abs []thresholds.Step
	if cfg.Mode == thresholds.ModePercentage {
		tf := f
		tf.Config.Color = &field.ColorConfig{Mode: field.ColorModeThresholds}
		if calc, err := scale.Build(tf, r.palette); err == nil {
			abs = calc.Steps()
		} else {
			logging.Debug(subsystem, "field %s: no absolute bands: %v", f.Name, err)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", f.DisplayName(), cfg.Mode)
	for i, s := range steps {
		line := fmt.Sprintf("  %-10s %s", stepValueText(s, cfg.Mode), s.Color)
		if abs != nil && !s.IsBase() {
			line += fmt.Sprintf(" [>= %s]", FormatValue(abs[i].Value, f.Config))
		}
		if s.State != "" {
			line += " " + s.State
		}

		cell := Cell{Text: line}
		if hex, err := palette.ResolveHex(s.Color); err == nil {
			cell.Color = hex
		}
		b.WriteString(r.paint(cell))
		b.WriteString("\n")
	}
	return b.String(), nil
}

func stepValueText(s thresholds.Step, mode thresholds.Mode) string {
	if s.IsBase() {
		return "base"
	}
	if mode == thresholds.ModePercentage {
		return fmt.Sprintf("%g%%", s.Value*100)
	}
	return fmt.Sprintf("%g", s.Value)
}
