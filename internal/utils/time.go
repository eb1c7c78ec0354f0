package utils

import "time"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FormatISO renders a timestamp as ISO-8601 with millisecond precision,
// matching the format stored in payment and trip rows.
func FormatISO(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
