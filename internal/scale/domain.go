package scale

import (
	"fmt"
	"math"

	"fieldscale/internal/field"
)

// Domain is the numeric range used for percentage thresholds and gradient
// positions.
type Domain struct {
	Min float64
	Max float64
}

// Delta is Max - Min.
func (d Domain) Delta() float64 {
	return d.Max - d.Min
}

// Percent places v in the domain as a fraction clamped to [0, 1]. An empty
// domain (Min == Max) and NaN both give 0.
func (d Domain) Percent(v float64) float64 {
	delta := d.Delta()
	if delta == 0 || math.IsNaN(v) {
		return 0
	}
	p := (v - d.Min) / delta
	switch {
	case math.IsNaN(p), p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

func (d Domain) String() string {
	return fmt.Sprintf("[%g, %g]", d.Min, d.Max)
}

// ResolveDomain takes Min and Max from cfg when set and from the numeric
// entries of values otherwise. Nil, non-numeric, NaN and infinite entries are
// skipped.
func ResolveDomain[T any](values []T, cfg field.Config) (Domain, error) {
	if cfg.Min != nil && cfg.Max != nil {
		return Domain{Min: *cfg.Min, Max: *cfg.Max}, nil
	}

	lo, hi, ok := valueRange(values)
	if !ok {
		return Domain{}, ErrDomainUnresolved
	}

	d := Domain{Min: lo, Max: hi}
	if cfg.Min != nil {
		d.Min = *cfg.Min
	}
	if cfg.Max != nil {
		d.Max = *cfg.Max
	}
	return d, nil
}

func valueRange[T any](values []T) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		f, isNum := ToFloat(v)
		if !isNum || math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		lo = math.Min(lo, f)
		hi = math.Max(hi, f)
		ok = true
	}
	return lo, hi, ok
}

// ToFloat converts a field value to float64. Pointers to any numeric type
// are followed; nil and non-numeric values report false.
func ToFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case *float64:
		return deref(n)
	case *float32:
		return deref(n)
	case *int:
		return deref(n)
	case *int8:
		return deref(n)
	case *int16:
		return deref(n)
	case *int32:
		return deref(n)
	case *int64:
		return deref(n)
	case *uint:
		return deref(n)
	case *uint8:
		return deref(n)
	case *uint16:
		return deref(n)
	case *uint32:
		return deref(n)
	case *uint64:
		return deref(n)
	}
	return 0, false
}

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

func deref[N number](p *N) (float64, bool) {
	if p == nil {
		return 0, false
	}
	return float64(*p), true
}
