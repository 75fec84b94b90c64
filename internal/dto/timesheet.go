package dto

import (
	"time"

	"github.com/SscSPs/timesheet_app/internal/core/domain"
)

// SubmitTimesheetRequest defines the data needed to submit an employee week.
type SubmitTimesheetRequest struct {
	EmployeeID string `json:"employeeId" binding:"required"`
	Week       string `json:"week" binding:"required"`
}

// WeekResponse is the JSON shape of a domain.WeekTimesheet.
type WeekResponse struct {
	EmployeeID  string                  `json:"employeeId"`
	WeekStart   string                  `json:"weekStart"`
	WeekEnd     string                  `json:"weekEnd"`
	Status      domain.EntryStatus      `json:"status"`
	Locked      bool                    `json:"locked"`
	CanSubmit   bool                    `json:"canSubmit"`
	SubmittedAt *time.Time              `json:"submittedAt,omitempty"`
	Summary     domain.TimesheetSummary `json:"summary"`
	Entries     []TimeEntryResponse     `json:"entries"`
}

// SubmitTimesheetResponse is returned after a successful submission.
type SubmitTimesheetResponse struct {
	Success   bool                    `json:"success"`
	Message   string                  `json:"message"`
	WeekStart string                  `json:"weekStart"`
	Summary   domain.TimesheetSummary `json:"summary"`
}

// ToWeekResponse converts a domain.WeekTimesheet to its JSON shape.
func ToWeekResponse(v *domain.WeekTimesheet) WeekResponse {
	res := WeekResponse{
		EmployeeID: v.EmployeeID,
		WeekStart:  v.WeekStart.Format(time.DateOnly),
		WeekEnd:    v.WeekEnd.Format(time.DateOnly),
		Status:     v.Status,
		Locked:     v.Locked,
		CanSubmit:  v.CanSubmit,
		Summary:    v.Summary,
		Entries:    ToListTimeEntryResponse(v.Entries),
	}
	if v.Period != nil {
		res.SubmittedAt = v.Period.SubmittedAt
	}
	return res
}
