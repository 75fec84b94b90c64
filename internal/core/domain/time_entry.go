package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/timesheet_app/internal/apperrors"
)

// EntryStatus is the submission state of a time entry.
type EntryStatus string

const (
	StatusDraft     EntryStatus = "draft"
	StatusSubmitted EntryStatus = "submitted"
	StatusApproved  EntryStatus = "approved"
	StatusRejected  EntryStatus = "rejected"
)

// ParseEntryStatus converts a stored status value, accepting every state of the
// approval workflow including the terminal ones set by approvers.
func ParseEntryStatus(s string) (EntryStatus, error) {
	switch st := EntryStatus(s); st {
	case StatusDraft, StatusSubmitted, StatusApproved, StatusRejected:
		return st, nil
	default:
		return "", fmt.Errorf("%w: unknown entry status %q", apperrors.ErrValidation, s)
	}
}

// IsTerminal reports whether the status was set by the approval process.
func (s EntryStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// MaxDescriptionLength is the maximum number of characters in an entry description.
const MaxDescriptionLength = 500

// TimeEntry is a block of time an employee logged against a project.
type TimeEntry struct {
	EntryID       string      `json:"id"`
	EmployeeID    string      `json:"employeeId"`
	ProjectID     string      `json:"projectId"`
	StartTime     time.Time   `json:"startTime"`
	EndTime       time.Time   `json:"endTime"`
	Description   string      `json:"description"`
	Billable      bool        `json:"billable"`
	BillableHours float64     `json:"billableHours"`
	Status        EntryStatus `json:"status"`
	AuditFields
}

// Hours returns the entry duration.
func (e TimeEntry) Hours() (float64, error) {
	hours, err := HoursBetween(e.StartTime, e.EndTime)
	if err != nil {
		return 0, fmt.Errorf("entry %s: %w", e.EntryID, err)
	}
	return hours, nil
}

// WithTimes returns a copy of e spanning [start, end] with billable hours derived
// from the new duration.
func (e TimeEntry) WithTimes(start, end time.Time, billable bool) (TimeEntry, error) {
	hours, err := HoursBetween(start, end)
	if err != nil {
		return TimeEntry{}, err
	}
	e.StartTime = start.UTC()
	e.EndTime = end.UTC()
	e.Billable = billable
	e.BillableHours = 0
	if billable {
		e.BillableHours = hours
	}
	return e, nil
}
