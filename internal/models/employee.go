package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the employees row.
type Employee struct {
	EmployeeID string          `db:"employee_id"`
	FirstName  string          `db:"first_name"`
	LastName   string          `db:"last_name"`
	Email      string          `db:"email"`
	Department string          `db:"department"`
	Role       string          `db:"role"`
	HourlyRate decimal.Decimal `db:"hourly_rate"`
	IsActive   bool            `db:"is_active"`
	ManagerID  *string         `db:"manager_id"` // Nullable self reference
	StartDate  *time.Time      `db:"start_date"` // Nullable
	AuditFields
}
