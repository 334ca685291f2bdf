package utils

import "time"

const dateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a UTC midnight time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// FormatDate renders a time back as YYYY-MM-DD for API responses.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// TruncateToDay drops the time-of-day component. Weight upserts key on
// (user, day), so anything submitted for the same day must collide.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
