package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectStatus mirrors the status column of projects.
type ProjectStatus string

// Project is the projects row. Assigned employees live in project_employees.
type Project struct {
	ProjectID         string          `db:"project_id"`
	Name              string          `db:"name"`
	Client            string          `db:"client"`
	Budget            decimal.Decimal `db:"budget"`
	HourlyCostRate    decimal.Decimal `db:"hourly_cost_rate"`
	StartDate         time.Time       `db:"start_date"`
	EndDate           time.Time       `db:"end_date"`
	Status            ProjectStatus   `db:"status"`
	TotalHoursLogged  float64         `db:"total_hours_logged"`
	RemainingBudget   decimal.Decimal `db:"remaining_budget"`
	AssignedEmployees []string        `db:"-"`
	AuditFields
}
