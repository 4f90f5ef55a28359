package kit

import (
	"time"

	humanize "github.com/dustin/go-humanize"
)

// FormatTimestamp renders t as RFC3339 with a humanized relative
// suffix, e.g. "2024-01-02T15:04:05Z (3 hours ago)".
func FormatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339) + " (" + humanize.Time(t) + ")"
}

// ParseTimestamp parses an RFC3339 timestamp, rejecting the humanized
// suffix FormatTimestamp appends (callers that round-trip should strip
// it first).
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
