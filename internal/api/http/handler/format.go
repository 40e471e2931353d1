package handler

import "time"

// formatTime renders a timestamp as ISO 8601 with a Z suffix and
// millisecond precision.
func formatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
