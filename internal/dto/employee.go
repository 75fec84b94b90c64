package dto

import (
	"time"

	"github.com/SscSPs/timesheet_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest defines the data needed to create a new employee.
type CreateEmployeeRequest struct {
	FirstName  string          `json:"firstName" binding:"required"`
	LastName   string          `json:"lastName" binding:"required"`
	Email      string          `json:"email" binding:"required,email"`
	Department string          `json:"department"`
	Role       string          `json:"role"`
	HourlyRate decimal.Decimal `json:"hourlyRate"`
	IsActive   *bool           `json:"isActive"` // Defaults to true
	ManagerID  string          `json:"managerId"`
	StartDate  *time.Time      `json:"startDate"`
}

// PayrollQuery selects the date range of a payroll estimate. Both ends are dates
// or instants; the range is [from, to).
type PayrollQuery struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

// EmployeeResponse defines the data returned for an employee.
type EmployeeResponse struct {
	EmployeeID    string          `json:"id"`
	FirstName     string          `json:"firstName"`
	LastName      string          `json:"lastName"`
	FullName      string          `json:"fullName"`
	Email         string          `json:"email"`
	Department    string          `json:"department"`
	Role          string          `json:"role"`
	HourlyRate    decimal.Decimal `json:"hourlyRate"`
	IsActive      bool            `json:"isActive"`
	ManagerID     string          `json:"managerId,omitempty"`
	StartDate     *time.Time      `json:"startDate,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// PayrollResponse is a gross to net pay estimate for an employee over a range.
type PayrollResponse struct {
	EmployeeID  string          `json:"employeeId"`
	From        time.Time       `json:"from"`
	To          time.Time       `json:"to"`
	Hours       float64         `json:"hours"`
	HourlyRate  decimal.Decimal `json:"hourlyRate"`
	GrossPay    decimal.Decimal `json:"grossPay"`
	Withholding decimal.Decimal `json:"withholding"`
	NetPay      decimal.Decimal `json:"netPay"`
}

// ToEmployeeResponse converts a domain.Employee to EmployeeResponse DTO
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:    e.EmployeeID,
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		FullName:      e.FullName(),
		Email:         e.Email,
		Department:    e.Department,
		Role:          e.Role,
		HourlyRate:    e.HourlyRate,
		IsActive:      e.IsActive,
		ManagerID:     e.ManagerID,
		StartDate:     e.StartDate,
		CreatedAt:     e.CreatedAt,
		LastUpdatedAt: e.LastUpdatedAt,
	}
}

// ToListEmployeeResponse converts a slice of domain.Employee to a slice of EmployeeResponse DTOs
func ToListEmployeeResponse(employees []domain.Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i := range employees {
		res[i] = ToEmployeeResponse(&employees[i])
	}
	return res
}
