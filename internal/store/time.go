package store

import "time"

// Timestamps are stored as RFC3339Nano text so lexicographic order in the
// database matches chronological order at full precision.
const timeLayout = time.RFC3339Nano

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}
