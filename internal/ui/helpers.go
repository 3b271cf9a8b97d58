package ui

import (
	"fmt"
	"strings"
	"time"
)

// truncate shortens s to at most width runes, appending an ellipsis when
// anything was cut.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}

// pad right-pads s with spaces to exactly width runes, truncating if longer.
func pad(s string, width int) string {
	s = truncate(s, width)
	if gap := width - len([]rune(s)); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// formatPrice renders a numeric price with dot thousands separators and a
// lira suffix. Non-numeric input passes through untouched.
func formatPrice(price string) string {
	price = strings.TrimSpace(price)
	if price == "" {
		return "-"
	}
	for _, r := range price {
		if r < '0' || r > '9' {
			return price
		}
	}
	var b strings.Builder
	for i, r := range price {
		if i > 0 && (len(price)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return b.String() + " TL"
}

// formatLocation joins district and neighborhood, skipping blanks.
func formatLocation(district, neighborhood string) string {
	switch {
	case district != "" && neighborhood != "":
		return district + " / " + neighborhood
	case district != "":
		return district
	default:
		return neighborhood
	}
}

// humanizeSince renders a timestamp as a coarse relative age.
func humanizeSince(t time.Time, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
