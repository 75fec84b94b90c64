package models

import "time"

// EntryStatus mirrors the status column of time_entries and timesheet_periods.
type EntryStatus string

// TimeEntry is the time_entries row.
type TimeEntry struct {
	EntryID       string      `db:"entry_id"`
	EmployeeID    string      `db:"employee_id"`
	ProjectID     string      `db:"project_id"`
	StartTime     time.Time   `db:"start_time"`
	EndTime       time.Time   `db:"end_time"`
	Description   string      `db:"description"`
	Billable      bool        `db:"billable"`
	BillableHours float64     `db:"billable_hours"`
	Status        EntryStatus `db:"status"`
	AuditFields
}
