package daymath

import (
	"fmt"
	"time"
)

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the whole calendar days from "from" to "to".
// Both sides are truncated to their day boundary first, so partial days
// collapse toward the earlier boundary and "same day" is always 0.
// Negative when "to" is before "from".
func DaysBetween(from, to time.Time) int {
	f := StartOfDay(from)
	t := StartOfDay(to.In(from.Location()))
	return int(t.Sub(f).Hours() / 24)
}

// DaysUntil returns the whole calendar days from now until due.
// 0 means due today, negative means past due.
func DaysUntil(now, due time.Time) int {
	return DaysBetween(now, due)
}

// AddDays returns t shifted by the given number of calendar days.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// FormatTimeAgo renders a past timestamp as a coarse human label.
// nil means the action never happened.
func FormatTimeAgo(t *time.Time, now time.Time) string {
	if t == nil {
		return "Never"
	}

	diffDays := DaysBetween(*t, now)
	switch {
	case diffDays <= 0:
		return "Today"
	case diffDays == 1:
		return "Yesterday"
	case diffDays < 7:
		return fmt.Sprintf("%d days ago", diffDays)
	case diffDays < 30:
		weeks := diffDays / 7
		if weeks <= 1 {
			return "1 week ago"
		}
		return fmt.Sprintf("%d weeks ago", weeks)
	default:
		months := diffDays / 30
		if months <= 1 {
			return "1 month ago"
		}
		return fmt.Sprintf("%d months ago", months)
	}
}
