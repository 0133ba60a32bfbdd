package palette

import (
	"math"
	"sort"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// Scheme is a named gradient. Stops are spread evenly over [0, 1].
type Scheme struct {
	Name  string
	Stops []colorful.Color
}

// NewScheme builds a scheme from color names or hex strings. It panics on an
// unknown color, so it is meant for package-level tables.
func NewScheme(name string, stops ...string) Scheme {
	s := Scheme{Name: name, Stops: make([]colorful.Color, len(stops))}
	for i, stop := range stops {
		s.Stops[i] = mustResolve(stop)
	}
	return s
}

// At returns the color at position t, blending linearly in RGB between the
// two surrounding stops. t is clamped to [0, 1].
func (s Scheme) At(t float64) colorful.Color {
	switch len(s.Stops) {
	case 0:
		return colorful.Color{}
	case 1:
		return s.Stops[0]
	}
	if math.IsNaN(t) || t <= 0 {
		return s.Stops[0]
	}
	if t >= 1 {
		return s.Stops[len(s.Stops)-1]
	}

	pos := t * float64(len(s.Stops)-1)
	lower := int(pos)
	return s.Stops[lower].BlendRgb(s.Stops[lower+1], pos-float64(lower))
}

var builtinSchemes = []Scheme{
	NewScheme("GrYlRd", "green", "yellow", "red"),
	NewScheme("RdYlGr", "red", "yellow", "green"),
	NewScheme("BlYlRd", "dark-blue", "super-light-yellow", "dark-red"),
	NewScheme("YlRd", "super-light-yellow", "dark-red"),
	NewScheme("BlPu", "blue", "purple"),
	NewScheme("YlBl", "super-light-yellow", "dark-blue"),
	NewScheme("blues", "dark-blue", "super-light-blue"),
	NewScheme("reds", "dark-red", "super-light-red"),
	NewScheme("greens", "dark-green", "super-light-green"),
	NewScheme("purples", "dark-purple", "super-light-purple"),
	NewScheme("oranges", "dark-orange", "super-light-orange"),
}

// Provider interpolates named schemes. Its table is fixed at construction,
// so a Provider can be shared freely.
type Provider struct {
	schemes map[string]Scheme
}

// New returns a provider for the given schemes. A later scheme replaces an
// earlier one with the same name.
func New(schemes ...Scheme) *Provider {
	p := &Provider{schemes: make(map[string]Scheme, len(schemes))}
	for _, s := range schemes {
		p.schemes[s.Name] = s
	}
	return p
}

var (
	defaultProvider     *Provider
	defaultProviderOnce sync.Once
)

// Default returns the provider holding the built-in schemes.
func Default() *Provider {
	defaultProviderOnce.Do(func() {
		defaultProvider = New(builtinSchemes...)
	})
	return defaultProvider
}

// Interpolate returns the "rgb(r, g, b)" color at percent of the scheme, or
// an empty string for an unknown scheme.
func (p *Provider) Interpolate(percent float64, scheme string) string {
	s, ok := p.schemes[scheme]
	if !ok {
		return ""
	}
	return FormatRGB(s.At(percent))
}

// HasScheme reports whether the provider knows the scheme.
func (p *Provider) HasScheme(name string) bool {
	_, ok := p.schemes[name]
	return ok
}

// Schemes returns the scheme names in alphabetical order.
func (p *Provider) Schemes() []string {
	names := make([]string, 0, len(p.schemes))
	for name := range p.schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Scheme returns a copy of the named scheme. Changing its stops does not
// affect the provider.
func (p *Provider) Scheme(name string) (Scheme, bool) {
	s, ok := p.schemes[name]
	if !ok {
		return Scheme{}, false
	}
	stops := make([]colorful.Color, len(s.Stops))
	copy(stops, s.Stops)
	return Scheme{Name: s.Name, Stops: stops}, true
}
