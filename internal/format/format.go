// Package format renders counts and dates for cards and the CLI.
package format

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

// Compact shortens a count: 1.2M, 48K, 950.
func Compact(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1000:
		return fmt.Sprintf("%.0fK", float64(n)/1000)
	default:
		return strconv.Itoa(n)
	}
}

// CompactPtr is Compact for optional counters; a missing value renders empty.
func CompactPtr(n *int) string {
	if n == nil {
		return ""
	}
	return Compact(*n)
}

// Exact renders a count with thousands separators.
func Exact(n int) string {
	return humanize.Comma(int64(n))
}

// Date renders "Jun 1, 2024".
func Date(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// ShortDate renders "Jun 1".
func ShortDate(t time.Time) string {
	return t.Format("Jan 2")
}

// Ago renders a relative age such as "3 days ago".
func Ago(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}
