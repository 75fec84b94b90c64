package domain

import (
	"strings"
	"time"

	"github.com/SscSPs/timesheet_app/internal/apperrors"
)

// DaysPerWeek is the length of a timesheet week.
const DaysPerWeek = 7

// WeekStart returns midnight of the Sunday at or before t, in t's location.
func WeekStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d-int(t.Weekday()), 0, 0, 0, 0, t.Location())
}

// WeekEnd returns midnight of the Saturday closing the week that contains t.
func WeekEnd(t time.Time) time.Time {
	return WeekStart(t).AddDate(0, 0, DaysPerWeek-1)
}

// ShiftWeek moves t by n calendar weeks.
func ShiftWeek(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, DaysPerWeek*n)
}

// WeekRange returns the half-open interval [start, end) of the week containing t.
func WeekRange(t time.Time) (start, end time.Time) {
	start = WeekStart(t)
	return start, start.AddDate(0, 0, DaysPerWeek)
}

// InWeek reports whether t falls within the week starting at weekStart.
func InWeek(t, weekStart time.Time) bool {
	start, end := WeekRange(weekStart)
	return !t.Before(start) && t.Before(end)
}

// IsWeekend reports whether t is a Saturday or a Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// AddBusinessDays advances t by n weekdays. Non-positive n returns t unchanged.
func AddBusinessDays(t time.Time, n int) time.Time {
	result := t
	for n > 0 {
		result = result.AddDate(0, 0, 1)
		if !IsWeekend(result) {
			n--
		}
	}
	return result
}

// ParseWeek resolves a caller supplied week reference (a date or an instant that
// falls anywhere in the week) to the week start in loc.
func ParseWeek(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	if t, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(s), loc); err == nil {
		return WeekStart(t), nil
	}
	t, ok := ParseInstant(s, loc)
	if !ok {
		return time.Time{}, apperrors.NewValidationError("week", "Week is not a valid date")
	}
	return WeekStart(t.In(loc)), nil
}
