package utils

import "time"

// NowUTC returns the current time in UTC, truncated to whole seconds for
// stable RFC 3339 rendering.
func NowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// FormatTimestamp renders a time as the ISO-8601 / RFC 3339 string stored on
// catalog items.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
