package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/SscSPs/timesheet_app/internal/apperrors"
)

// TimeEntryDraft is an entry as received from a caller, before validation.
type TimeEntryDraft struct {
	EmployeeID  string
	ProjectID   string
	StartTime   string
	EndTime     string
	Description string
}

// ValidationResult is the outcome of ValidateTimeEntry.
// Start and End hold the parsed UTC instants when the draft is valid.
type ValidationResult struct {
	Errors map[string]string
	Start  time.Time
	End    time.Time
	Hours  float64
}

// Valid reports whether the draft passed every check.
func (r ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Err returns nil for a valid result, otherwise an *apperrors.ValidationError.
func (r ValidationResult) Err() error {
	if r.Valid() {
		return nil
	}
	return &apperrors.ValidationError{Fields: r.Errors}
}

// localLayouts are accepted in addition to RFC 3339 and are read in the caller's location.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseInstant parses an RFC 3339 timestamp, or a local date-time interpreted in loc.
func ParseInstant(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), true
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// ValidateTimeEntry checks a draft entry. It never fails on bad input; problems are
// reported as field-keyed messages in the result.
func ValidateTimeEntry(d TimeEntryDraft, loc *time.Location) ValidationResult {
	res := ValidationResult{Errors: map[string]string{}}

	if strings.TrimSpace(d.ProjectID) == "" {
		res.Errors["projectId"] = "Project is required"
	}
	if strings.TrimSpace(d.EmployeeID) == "" {
		res.Errors["employeeId"] = "Employee is required"
	}

	start, startOK := parseField(res.Errors, "startTime", "Start time", d.StartTime, loc)
	end, endOK := parseField(res.Errors, "endTime", "End time", d.EndTime, loc)
	if startOK && endOK {
		hours, err := HoursBetween(start, end)
		if err != nil {
			res.Errors["endTime"] = "End time must be after start time"
		} else {
			res.Start, res.End, res.Hours = start, end, hours
		}
	}

	if utf8.RuneCountInString(d.Description) > MaxDescriptionLength {
		res.Errors["description"] = "Description too long"
	}

	if len(res.Errors) == 0 {
		res.Errors = nil
	}
	return res
}

func parseField(errs map[string]string, key, label, raw string, loc *time.Location) (time.Time, bool) {
	if strings.TrimSpace(raw) == "" {
		errs[key] = label + " is required"
		return time.Time{}, false
	}
	t, ok := ParseInstant(raw, loc)
	if !ok {
		errs[key] = label + " is not a valid timestamp"
		return time.Time{}, false
	}
	return t, true
}
