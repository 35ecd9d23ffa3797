package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	layoutDateTime = "2006-01-02 15:04:05"
	layoutClock    = "15:04:05"
	layoutClockHM  = "15:04"

	// ClockUnavailable is shown for an absent time value.
	ClockUnavailable = "N/A"
)

// clockWithFraction matches a TIME value carrying sub-second precision (HH:MM:SS.ffffff).
var clockWithFraction = regexp.MustCompile(`^(\d{1,2}):(\d{1,2}):(\d{1,2})\.(\d{1,6})$`)

// FormatClock renders a raw TIME value as HH:MM:SS.
// Empty input yields "N/A"; input that is not HH:MM:SS.ffffff is returned unchanged.
func FormatClock(raw string) string {
	if raw == "" {
		return ClockUnavailable
	}
	m := clockWithFraction.FindStringSubmatch(raw)
	if m == nil {
		return raw
	}
	h, _ := strconv.Atoi(m[1])
	mi, _ := strconv.Atoi(m[2])
	s, _ := strconv.Atoi(m[3])
	if h > 23 || mi > 59 || s > 59 {
		return raw
	}
	return fmt.Sprintf("%02d:%02d:%02d", h, mi, s)
}

// ClockString turns a scanned driver value into its raw TIME text.
// The bool is false when the value is NULL.
func ClockString(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case []byte:
		return string(t), true
	case string:
		return t, true
	case time.Time:
		return t.Format("15:04:05.000000"), true
	default:
		return fmt.Sprint(t), true
	}
}

// ParseClock validates a time-of-day bound (HH:MM or HH:MM:SS) and normalizes it to HH:MM:SS.
func ParseClock(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{layoutClock, layoutClockHM} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(layoutClock), nil
		}
	}
	return "", fmt.Errorf("invalid time of day %q, expected HH:MM or HH:MM:SS", s)
}

// FormatDateTime formats time to "YYYY-MM-DD HH:MM:SS" in local timezone.
func FormatDateTime(t time.Time) string {
	return t.In(time.Local).Format(layoutDateTime)
}
