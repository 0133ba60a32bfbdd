// Package scale maps the values of one field to display colors.
//
// Build inspects a field's normalized config once and returns a Calculator
// bound to it. The calculator's Apply method is what renderers call for every
// displayed value:
//
//	calc, err := scale.Build(f, palette.Default())
//	if err != nil {
//	    // ErrDomainUnresolved: show the value unstyled
//	    // ErrUnknownColorMode: fall back to a fixed color and warn
//	}
//	v := calc.Apply(42)
//	fmt.Println(v.Color)
//
// Three strategies are supported, chosen by the field's color mode:
//
//   - thresholds: the color of the active threshold step
//   - fixed: the configured color, whatever the value
//   - continuous-*: a point on a palette gradient, positioned by where the
//     value falls in the field's [min, max] domain
//
// A Calculator never changes after Build and may be shared between
// goroutines. Build a new one when the field's config or data range changes.
package scale
