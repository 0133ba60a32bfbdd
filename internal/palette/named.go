package palette

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// namedColors is the dashboard palette that threshold and fixed colors may
// refer to by name.
var namedColors = map[string]string{
	"dark-red":           "#C4162A",
	"semi-dark-red":      "#E02F44",
	"red":                "#F2495C",
	"light-red":          "#FF7383",
	"super-light-red":    "#FFA6B0",
	"dark-orange":        "#FA6400",
	"semi-dark-orange":   "#FF780A",
	"orange":             "#FF9830",
	"light-orange":       "#FFB357",
	"super-light-orange": "#FFCB7D",
	"dark-yellow":        "#E0B400",
	"semi-dark-yellow":   "#F2CC0C",
	"yellow":             "#FADE2A",
	"light-yellow":       "#FFEE52",
	"super-light-yellow": "#FFF899",
	"dark-green":         "#37872D",
	"semi-dark-green":    "#56A64B",
	"green":              "#73BF69",
	"light-green":        "#96D98D",
	"super-light-green":  "#C8F2C2",
	"dark-blue":          "#1F60C4",
	"semi-dark-blue":     "#3274D9",
	"blue":               "#5794F2",
	"light-blue":         "#8AB8FF",
	"super-light-blue":   "#C0D8FF",
	"dark-purple":        "#8F3BB8",
	"semi-dark-purple":   "#A352CC",
	"purple":             "#B877D9",
	"light-purple":       "#CA95E5",
	"super-light-purple": "#DEB6F2",
	"text":               "#D8D9DA",
}

// Resolve parses a color given as a palette name, a hex string ("#rgb" or
// "#rrggbb") or an "rgb(r, g, b)" string.
func Resolve(color string) (colorful.Color, error) {
	s := strings.TrimSpace(color)
	switch {
	case s == "":
		return colorful.Color{}, fmt.Errorf("empty color")
	case strings.HasPrefix(s, "#"):
		return colorful.Hex(s)
	case strings.HasPrefix(strings.ToLower(s), "rgb("):
		var r, g, b uint8
		if _, err := fmt.Sscanf(strings.ToLower(s), "rgb(%d, %d, %d)", &r, &g, &b); err != nil {
			return colorful.Color{}, fmt.Errorf("invalid rgb color %q: %w", color, err)
		}
		return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, nil
	}
	hex, ok := namedColors[strings.ToLower(s)]
	if !ok {
		return colorful.Color{}, fmt.Errorf("unknown color %q", color)
	}
	return colorful.Hex(hex)
}

// ResolveHex is Resolve returning "#rrggbb".
func ResolveHex(color string) (string, error) {
	c, err := Resolve(color)
	if err != nil {
		return "", err
	}
	return c.Clamped().Hex(), nil
}

// Names returns the palette color names in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(namedColors))
	for name := range namedColors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FormatRGB renders c as "rgb(r, g, b)".
func FormatRGB(c colorful.Color) string {
	r, g, b := c.Clamped().RGB255()
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
}

func mustResolve(color string) colorful.Color {
	c, err := Resolve(color)
	if err != nil {
		panic("palette: " + err.Error())
	}
	return c
}
