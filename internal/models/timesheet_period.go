package models

import "time"

// TimesheetPeriod is the timesheet_periods row. WeekStart is a DATE column.
type TimesheetPeriod struct {
	PeriodID    string      `db:"period_id"`
	EmployeeID  string      `db:"employee_id"`
	WeekStart   time.Time   `db:"week_start"`
	Status      EntryStatus `db:"status"`
	SubmittedAt *time.Time  `db:"submitted_at"` // Nullable
	AuditFields
}
