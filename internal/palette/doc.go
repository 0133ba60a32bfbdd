// Package palette resolves dashboard color names and interpolates the
// continuous color schemes used by the scale package.
package palette
