// Package render draws panel fields as colored terminal text.
//
// It is the caller side of the scale package. When a field's scale cannot be
// built it degrades instead of failing the whole panel: a field without a
// usable domain is drawn in the neutral color, and a field with a broken
// color config is drawn in its fixed color (or the neutral one) after a
// warning is logged.
package render
