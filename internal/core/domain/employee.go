package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/timesheet_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Employee is a person who logs time.
type Employee struct {
	EmployeeID string          `json:"id"`
	FirstName  string          `json:"firstName"`
	LastName   string          `json:"lastName"`
	Email      string          `json:"email"`
	Department string          `json:"department"`
	Role       string          `json:"role"`
	HourlyRate decimal.Decimal `json:"hourlyRate"`
	IsActive   bool            `json:"isActive"`
	ManagerID  string          `json:"managerId,omitempty"`
	StartDate  *time.Time      `json:"startDate,omitempty"`
	AuditFields
}

// FullName joins the first and last name.
func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// PayrollEstimate is a gross-to-net estimate using a flat withholding rate.
type PayrollEstimate struct {
	Hours       float64         `json:"hours"`
	GrossPay    decimal.Decimal `json:"grossPay"`
	Withholding decimal.Decimal `json:"withholding"`
	NetPay      decimal.Decimal `json:"netPay"`
}

// EstimatePayroll prices hours at hourlyRate and withholds withholdingRate of the
// gross. withholdingRate must lie in [0, 1].
func EstimatePayroll(hours float64, hourlyRate, withholdingRate decimal.Decimal) (PayrollEstimate, error) {
	if hours < 0 {
		return PayrollEstimate{}, fmt.Errorf("%w: hours must not be negative", apperrors.ErrValidation)
	}
	if withholdingRate.IsNegative() || withholdingRate.GreaterThan(decimal.NewFromInt(1)) {
		return PayrollEstimate{}, fmt.Errorf("%w: withholding rate %s out of range", apperrors.ErrValidation, withholdingRate)
	}
	gross := decimal.NewFromFloat(hours).Mul(hourlyRate).Round(2)
	withheld := gross.Mul(withholdingRate).Round(2)
	return PayrollEstimate{
		Hours:       hours,
		GrossPay:    gross,
		Withholding: withheld,
		NetPay:      gross.Sub(withheld),
	}, nil
}
