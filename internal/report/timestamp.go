package report

import (
	"fmt"
	"strconv"
	"time"
)

// CompletedLayout is the layout of completion timestamps in response records.
const CompletedLayout = "02/01/2006 15:04:05"

// ParseCompleted parses a completion timestamp such as "16/12/2021 10:46:00".
// Timestamps carry no zone and are read as UTC.
func ParseCompleted(s string) (time.Time, error) {
	t, err := time.ParseInLocation(CompletedLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
	}
	return t, nil
}

// Ordinal returns n with its English ordinal suffix: 1st, 2nd, 3rd, 4th,
// 11th, 12th, 13th, 21st and so on.
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

// FormatDate formats t as "16th December 2021".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%s %s %d", Ordinal(t.Day()), t.Month(), t.Year())
}

// FormatDateTime formats t as "16th December 2021 10:46 AM".
func FormatDateTime(t time.Time) string {
	return FormatDate(t) + " " + t.Format("3:04 PM")
}
