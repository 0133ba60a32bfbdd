package scale

import "errors"

var (
	// ErrDomainUnresolved means neither the config nor the data provide a
	// numeric range.
	ErrDomainUnresolved = errors.New("no numeric domain available")
	// ErrUnknownColorMode means the color config is missing, names an
	// unsupported mode or lacks what its mode needs.
	ErrUnknownColorMode = errors.New("unknown color mode")
)
