package domain

import (
	"fmt"
	"slices"
	"time"

	"github.com/SscSPs/timesheet_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ProjectStatus indicates whether a project accepts new time entries.
type ProjectStatus string

const (
	ProjectActive   ProjectStatus = "active"
	ProjectInactive ProjectStatus = "inactive"
)

// Project is a client engagement that time entries are logged against.
type Project struct {
	ProjectID         string          `json:"id"`
	Name              string          `json:"name"`
	Client            string          `json:"client"`
	Budget            decimal.Decimal `json:"budget"`
	HourlyCostRate    decimal.Decimal `json:"hourlyCostRate"` // Zero means use the configured default
	StartDate         time.Time       `json:"startDate"`
	EndDate           time.Time       `json:"endDate"`
	Status            ProjectStatus   `json:"status"`
	TotalHoursLogged  float64         `json:"totalHoursLogged"`
	RemainingBudget   decimal.Decimal `json:"remainingBudget"`
	AssignedEmployees []string        `json:"assignedEmployees"`
	AuditFields
}

// IsActive reports whether the project accepts new entries.
func (p Project) IsActive() bool {
	return p.Status == ProjectActive
}

// ResolveCostRate picks the cost rate for budget computations: the project's own
// rate when set, otherwise defaultRate.
func ResolveCostRate(p Project, defaultRate decimal.Decimal) decimal.Decimal {
	if p.HourlyCostRate.IsPositive() {
		return p.HourlyCostRate
	}
	return defaultRate
}

// LoggedCost returns the cost of the logged hours at rate.
func LoggedCost(p Project, rate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromFloat(p.TotalHoursLogged).Mul(rate)
}

// Attribute adds hours logged by employeeID to the project and recomputes its
// remaining budget at rate.
func Attribute(p Project, employeeID string, hours float64, rate decimal.Decimal) (Project, error) {
	if hours <= 0 {
		return p, fmt.Errorf("%w: attributed hours must be positive, got %v", apperrors.ErrValidation, hours)
	}
	if rate.IsNegative() {
		return p, fmt.Errorf("%w: hourly cost rate must not be negative", apperrors.ErrValidation)
	}
	p.TotalHoursLogged += hours
	p.AssignedEmployees = slices.Clone(p.AssignedEmployees)
	if employeeID != "" && !slices.Contains(p.AssignedEmployees, employeeID) {
		p.AssignedEmployees = append(p.AssignedEmployees, employeeID)
	}
	p.RemainingBudget = p.Budget.Sub(LoggedCost(p, rate))
	return p, nil
}

// IsOverBudget reports whether the logged cost exceeds the budget.
func IsOverBudget(p Project) bool {
	return p.RemainingBudget.IsNegative()
}

// Progress returns the elapsed share of the project window at today, in [0, 1].
func Progress(p Project, today time.Time) float64 {
	total := p.EndDate.Sub(p.StartDate)
	if total <= 0 {
		if today.Before(p.EndDate) {
			return 0
		}
		return 1
	}
	elapsed := today.Sub(p.StartDate)
	return min(max(float64(elapsed)/float64(total), 0), 1)
}

// BillableAmount prices billable hours per employee at their rate with markup
// applied. Employees without a known rate are billed at fallbackRate.
func BillableAmount(hoursByEmployee map[string]float64, ratesByEmployee map[string]decimal.Decimal, fallbackRate, markup decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for employeeID, hours := range hoursByEmployee {
		rate, ok := ratesByEmployee[employeeID]
		if !ok || !rate.IsPositive() {
			rate = fallbackRate
		}
		total = total.Add(decimal.NewFromFloat(hours).Mul(rate).Mul(markup))
	}
	return total
}
