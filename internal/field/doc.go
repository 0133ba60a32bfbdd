// Package field describes a typed data column and the display configuration
// attached to it: explicit min/max bounds, thresholds and the color mode.
//
// Configs arrive from panel files in whatever shape the author wrote them.
// NormalizeConfig turns such a config into the canonical form the scale
// package expects without modifying the original.
package field
