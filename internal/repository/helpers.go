package repository

import (
	"fmt"
	"time"

	"github.com/alexanderramin/studbud/internal/domain"
)

const timestampLayout = time.RFC3339Nano

// formatTime converts a time.Time to its SQLite storage string.
func formatTime(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// parseTime parses a stored timestamp. Returns the zero time on failure
// so a corrupt timestamp never fails an otherwise valid row.
func parseTime(s string) time.Time {
	t, err := time.Parse(timestampLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

// parseDate parses a stored YYYY-MM-DD date column.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return t, nil
}
