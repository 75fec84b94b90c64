package dto

import (
	"time"

	"github.com/SscSPs/timesheet_app/internal/core/domain"
)

// CreateTimeEntryRequest defines the data needed to log a new time entry.
// Timestamps stay raw strings; they are validated field by field by the service.
type CreateTimeEntryRequest struct {
	EmployeeID    string   `json:"employeeId"`
	ProjectID     string   `json:"projectId"`
	StartTime     string   `json:"startTime"`
	EndTime       string   `json:"endTime"`
	Description   string   `json:"description"`
	BillableHours *float64 `json:"billableHours" binding:"omitempty,gte=0"`
	Billable      *bool    `json:"billable"` // Optional, wins over billableHours
}

// IsBillable resolves the billable flag. Callers that only send billableHours
// mark an entry billable by sending a positive value.
func (r CreateTimeEntryRequest) IsBillable() bool {
	return resolveBillable(r.Billable, r.BillableHours)
}

// Draft returns the raw fields for validation.
func (r CreateTimeEntryRequest) Draft() domain.TimeEntryDraft {
	return domain.TimeEntryDraft{
		EmployeeID:  r.EmployeeID,
		ProjectID:   r.ProjectID,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Description: r.Description,
	}
}

// UpdateTimeEntryRequest defines the data allowed for replacing a draft entry.
type UpdateTimeEntryRequest struct {
	ProjectID     string   `json:"projectId"`
	StartTime     string   `json:"startTime"`
	EndTime       string   `json:"endTime"`
	Description   string   `json:"description"`
	BillableHours *float64 `json:"billableHours" binding:"omitempty,gte=0"`
	Billable      *bool    `json:"billable"`
}

// IsBillable resolves the billable flag, see CreateTimeEntryRequest.IsBillable.
func (r UpdateTimeEntryRequest) IsBillable() bool {
	return resolveBillable(r.Billable, r.BillableHours)
}

// Draft returns the raw fields for validation against the owning employee.
func (r UpdateTimeEntryRequest) Draft(employeeID string) domain.TimeEntryDraft {
	return domain.TimeEntryDraft{
		EmployeeID:  employeeID,
		ProjectID:   r.ProjectID,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Description: r.Description,
	}
}

func resolveBillable(flag *bool, hours *float64) bool {
	if flag != nil {
		return *flag
	}
	return hours != nil && *hours > 0
}

// WeekQuery selects one employee week. Week may be any date or instant inside the week;
// it defaults to the current week.
type WeekQuery struct {
	Employee string `form:"employee" binding:"required"`
	Week     string `form:"week"`
}

// TimeEntryResponse defines the data returned for a time entry.
// Mirrors domain.TimeEntry.
type TimeEntryResponse struct {
	EntryID       string             `json:"id"`
	EmployeeID    string             `json:"employeeId"`
	ProjectID     string             `json:"projectId"`
	StartTime     time.Time          `json:"startTime"`
	EndTime       time.Time          `json:"endTime"`
	Description   string             `json:"description"`
	Billable      bool               `json:"billable"`
	BillableHours float64            `json:"billableHours"`
	Hours         float64            `json:"hours"`
	Status        domain.EntryStatus `json:"status"`
	CreatedAt     time.Time          `json:"createdAt"`
	LastUpdatedAt time.Time          `json:"lastUpdatedAt"`
}

// CreateTimeEntryResponse is returned after logging an entry.
type CreateTimeEntryResponse struct {
	Success bool              `json:"success"`
	ID      string            `json:"id"`
	Entry   TimeEntryResponse `json:"entry"`
}

// SuccessResponse acknowledges an operation without a payload.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ToTimeEntryResponse converts a domain.TimeEntry to TimeEntryResponse DTO
func ToTimeEntryResponse(e *domain.TimeEntry) TimeEntryResponse {
	hours, _ := e.Hours() // stored entries always satisfy end > start
	return TimeEntryResponse{
		EntryID:       e.EntryID,
		EmployeeID:    e.EmployeeID,
		ProjectID:     e.ProjectID,
		StartTime:     e.StartTime,
		EndTime:       e.EndTime,
		Description:   e.Description,
		Billable:      e.Billable,
		BillableHours: e.BillableHours,
		Hours:         hours,
		Status:        e.Status,
		CreatedAt:     e.CreatedAt,
		LastUpdatedAt: e.LastUpdatedAt,
	}
}

// ToListTimeEntryResponse converts a slice of domain.TimeEntry to a slice of TimeEntryResponse DTOs
func ToListTimeEntryResponse(entries []domain.TimeEntry) []TimeEntryResponse {
	res := make([]TimeEntryResponse, len(entries))
	for i := range entries {
		res[i] = ToTimeEntryResponse(&entries[i])
	}
	return res
}
