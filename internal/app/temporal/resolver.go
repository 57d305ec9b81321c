// Package temporal converts natural due-date phrases into absolute instants.
package temporal

import (
	"regexp"
	"strings"
	"time"

	"github.com/james-eo/task-manager/internal/core/domain"
)

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Resolve converts a phrase into an absolute instant relative to now.
// Supported forms: "today", "tomorrow", a YYYY-MM-DD literal and a full
// RFC 3339 date-time. Anything else is reported unresolved; the caller must
// not guess.
func Resolve(phrase string, now time.Time) (time.Time, bool) {
	phrase = strings.TrimSpace(strings.ToLower(phrase))

	switch phrase {
	case "today":
		return StartOfDay(now), true
	case "tomorrow":
		return StartOfDay(now).AddDate(0, 0, 1), true
	}

	if isoDatePattern.MatchString(phrase) {
		t, err := time.Parse("2006-01-02", phrase)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}

	if t, err := time.Parse(time.RFC3339, strings.ToUpper(phrase)); err == nil {
		return t.UTC(), true
	}

	return time.Time{}, false
}

// ReminderTime derives a reminder instant from a due instant using the
// priority-keyed offset policy: urgent 1h, high 2h, medium 1 day, low 2 days
// before due.
func ReminderTime(due time.Time, priority domain.TaskPriority) time.Time {
	return due.Add(-reminderOffset(priority))
}

func reminderOffset(priority domain.TaskPriority) time.Duration {
	switch priority {
	case domain.TaskPriorityUrgent:
		return time.Hour
	case domain.TaskPriorityHigh:
		return 2 * time.Hour
	case domain.TaskPriorityLow:
		return 48 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// StartOfDay truncates an instant to UTC midnight.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
