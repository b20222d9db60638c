package utils

import (
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate accepts a plain calendar date or an RFC 3339 timestamp.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(DateLayout, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want %s or RFC 3339", raw, DateLayout)
	}
	return t, nil
}

// FormatDate renders only the calendar part of t.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
