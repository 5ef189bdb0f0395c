package mappers

import (
	"fmt"
	"time"
)

// TimeLayout is used for every persisted timestamp.
const TimeLayout = time.RFC3339Nano

func formatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return t.UTC(), nil
}
