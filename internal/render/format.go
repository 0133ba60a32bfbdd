package render

import (
	"fmt"
	"strings"
	"time"

	"fieldscale/internal/field"
	"fieldscale/internal/scale"

	"github.com/dustin/go-humanize"
)

const nullText = "-"

// maxDecimals is the most fraction digits humanize.FormatFloat can render.
const maxDecimals = 9

// FormatValue renders one field value for display using the field's
// decimals and unit.
func FormatValue(v any, cfg field.Config) string {
	if v == nil {
		return nullText
	}
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return fmt.Sprintf("%t", t)
	case time.Time:
		return humanize.Time(t)
	}

	n, ok := scale.ToFloat(v)
	if !ok {
		return nullText
	}
	return withUnit(formatNumber(n, cfg.Decimals), cfg.Unit)
}

func formatNumber(n float64, decimals *int) string {
	if decimals == nil {
		return humanize.Commaf(n)
	}
	d := min(*decimals, maxDecimals)
	if d <= 0 {
		return humanize.FormatFloat("#,###.", n)
	}
	return humanize.FormatFloat("#,###."+strings.Repeat("#", d), n)
}

func withUnit(text, unit string) string {
	switch unit {
	case "":
		return text
	case "percent":
		return text + "%"
	default:
		return text + " " + unit
	}
}
