package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/SscSPs/timesheet_app/internal/apperrors"
)

// StandardWeekHours is the weekly threshold above which hours count as overtime.
const StandardWeekHours = 40.0

// TimesheetSummary holds the weekly totals of one employee.
type TimesheetSummary struct {
	TotalHours    float64 `json:"totalHours"`
	BillableHours float64 `json:"billableHours"`
	OvertimeHours float64 `json:"overtimeHours"`
}

// Aggregate sums entries using the standard 40 hour overtime threshold.
func Aggregate(entries []TimeEntry) (TimesheetSummary, error) {
	return AggregateWithThreshold(entries, StandardWeekHours)
}

// AggregateWithThreshold sums entries into total, billable and overtime hours.
// An empty set yields a zero summary.
func AggregateWithThreshold(entries []TimeEntry, threshold float64) (TimesheetSummary, error) {
	var sum TimesheetSummary
	for _, e := range entries {
		hours, err := e.Hours()
		if err != nil {
			return TimesheetSummary{}, err
		}
		sum.TotalHours += hours
		if e.Billable {
			sum.BillableHours += e.BillableHours
		}
	}
	sum.OvertimeHours = math.Max(0, sum.TotalHours-threshold)
	return sum, nil
}

// WeekStatus derives a week's status from its entries: the week counts as
// submitted as soon as one entry is submitted.
func WeekStatus(entries []TimeEntry) EntryStatus {
	status := StatusDraft
	for _, e := range entries {
		switch e.Status {
		case StatusSubmitted:
			return StatusSubmitted
		case StatusApproved, StatusRejected:
			status = e.Status
		}
	}
	return status
}

// EnsureMutable fails with apperrors.ErrLockedPeriod when any entry of the week
// has left draft. The whole week is locked, not just the affected entry.
func EnsureMutable(weekEntries []TimeEntry) error {
	for _, e := range weekEntries {
		if e.Status != StatusDraft {
			return fmt.Errorf("%w: entry %s is %s", apperrors.ErrLockedPeriod, e.EntryID, e.Status)
		}
	}
	return nil
}

// CanSubmit reports whether the entries of one employee week may be submitted.
func CanSubmit(entries []TimeEntry, employee Employee) bool {
	return checkSubmittable(entries, employee) == nil
}

// Submit moves every entry to submitted. Either all entries transition or the
// original slice is left untouched and an error is returned.
func Submit(entries []TimeEntry, employee Employee) ([]TimeEntry, error) {
	if err := checkSubmittable(entries, employee); err != nil {
		return nil, err
	}
	submitted := make([]TimeEntry, len(entries))
	for i, e := range entries {
		e.Status = StatusSubmitted
		submitted[i] = e
	}
	return submitted, nil
}

func checkSubmittable(entries []TimeEntry, employee Employee) error {
	for _, e := range entries {
		if e.Status == StatusSubmitted {
			return fmt.Errorf("%w: entry %s", apperrors.ErrAlreadySubmitted, e.EntryID)
		}
	}
	if len(entries) == 0 {
		return fmt.Errorf("%w: no time entries", apperrors.ErrNotSubmittable)
	}
	if !employee.IsActive {
		return fmt.Errorf("%w: employee %s is inactive", apperrors.ErrNotSubmittable, employee.EmployeeID)
	}
	for _, e := range entries {
		if e.Status != StatusDraft {
			return fmt.Errorf("%w: entry %s is %s", apperrors.ErrNotSubmittable, e.EntryID, e.Status)
		}
	}
	sum, err := Aggregate(entries)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrNotSubmittable, err)
	}
	if sum.TotalHours <= 0 {
		return fmt.Errorf("%w: no hours logged", apperrors.ErrNotSubmittable)
	}
	return nil
}

// TimesheetPeriod is the persisted submission record of one employee week.
type TimesheetPeriod struct {
	PeriodID    string      `json:"id"`
	EmployeeID  string      `json:"employeeId"`
	WeekStart   time.Time   `json:"weekStart"`
	Status      EntryStatus `json:"status"`
	SubmittedAt *time.Time  `json:"submittedAt,omitempty"`
	AuditFields
}

// NewTimesheetPeriod returns the draft period of the week containing day.
func NewTimesheetPeriod(employeeID string, day time.Time) TimesheetPeriod {
	return TimesheetPeriod{
		EmployeeID: employeeID,
		WeekStart:  WeekStart(day),
		Status:     StatusDraft,
	}
}

// IsLocked reports whether the period no longer accepts entry changes.
func (p TimesheetPeriod) IsLocked() bool {
	return p.Status != StatusDraft
}

// Submit returns the period moved to submitted at the given instant.
func (p TimesheetPeriod) Submit(at time.Time) (TimesheetPeriod, error) {
	switch p.Status {
	case StatusDraft:
	case StatusSubmitted:
		return p, fmt.Errorf("%w: week of %s", apperrors.ErrAlreadySubmitted, p.WeekStart.Format(time.DateOnly))
	default:
		return p, fmt.Errorf("%w: week of %s is %s", apperrors.ErrNotSubmittable, p.WeekStart.Format(time.DateOnly), p.Status)
	}
	at = at.UTC()
	p.Status = StatusSubmitted
	p.SubmittedAt = &at
	p.LastUpdatedAt = at
	return p, nil
}

// WeekTimesheet is the assembled view of one employee week.
type WeekTimesheet struct {
	EmployeeID string
	WeekStart  time.Time
	WeekEnd    time.Time
	Status     EntryStatus
	Locked     bool
	CanSubmit  bool
	Summary    TimesheetSummary
	Entries    []TimeEntry
	Period     *TimesheetPeriod // nil while nothing was recorded for the week
}
