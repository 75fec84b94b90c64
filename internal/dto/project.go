package dto

import (
	"time"

	"github.com/SscSPs/timesheet_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProjectRequest defines the data needed to create a new project.
type CreateProjectRequest struct {
	Name           string           `json:"name" binding:"required"`
	Client         string           `json:"client"`
	Budget         decimal.Decimal  `json:"budget"`
	HourlyCostRate *decimal.Decimal `json:"hourlyCostRate"` // Optional project default
	StartDate      time.Time        `json:"startDate" binding:"required"`
	EndDate        time.Time        `json:"endDate" binding:"required"`
}

// ListProjectsParams defines query parameters for listing projects.
type ListProjectsParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ProjectResponse defines the data returned for a project, including its budget status.
type ProjectResponse struct {
	ProjectID         string               `json:"id"`
	Name              string               `json:"name"`
	Client            string               `json:"client"`
	Budget            decimal.Decimal      `json:"budget"`
	HourlyCostRate    decimal.Decimal      `json:"hourlyCostRate"`
	StartDate         time.Time            `json:"startDate"`
	EndDate           time.Time            `json:"endDate"`
	Status            domain.ProjectStatus `json:"status"`
	TotalHoursLogged  float64              `json:"totalHoursLogged"`
	RemainingBudget   decimal.Decimal      `json:"remainingBudget"`
	AssignedEmployees []string             `json:"assignedEmployees"`
	OverBudget        bool                 `json:"overBudget"`
	Progress          float64              `json:"progress"`
	CreatedAt         time.Time            `json:"createdAt"`
	LastUpdatedAt     time.Time            `json:"lastUpdatedAt"`
}

// ListProjectsResponse is a page of projects.
type ListProjectsResponse struct {
	Projects  []ProjectResponse `json:"projects"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// BillableAmountResponse is the amount billable to a project's client.
type BillableAmountResponse struct {
	ProjectID       string             `json:"projectId"`
	Amount          decimal.Decimal    `json:"amount"`
	Markup          decimal.Decimal    `json:"markup"`
	HoursByEmployee map[string]float64 `json:"hoursByEmployee"`
}

// ToProjectResponse converts a domain.Project to ProjectResponse DTO. The
// progress is measured at today.
func ToProjectResponse(p *domain.Project, today time.Time) ProjectResponse {
	assigned := p.AssignedEmployees
	if assigned == nil {
		assigned = []string{}
	}
	return ProjectResponse{
		ProjectID:         p.ProjectID,
		Name:              p.Name,
		Client:            p.Client,
		Budget:            p.Budget,
		HourlyCostRate:    p.HourlyCostRate,
		StartDate:         p.StartDate,
		EndDate:           p.EndDate,
		Status:            p.Status,
		TotalHoursLogged:  p.TotalHoursLogged,
		RemainingBudget:   p.RemainingBudget,
		AssignedEmployees: assigned,
		OverBudget:        domain.IsOverBudget(*p),
		Progress:          domain.Progress(*p, today),
		CreatedAt:         p.CreatedAt,
		LastUpdatedAt:     p.LastUpdatedAt,
	}
}

// ToListProjectResponse converts a slice of domain.Project to a slice of ProjectResponse DTOs
func ToListProjectResponse(projects []domain.Project, today time.Time) []ProjectResponse {
	res := make([]ProjectResponse, len(projects))
	for i := range projects {
		res[i] = ToProjectResponse(&projects[i], today)
	}
	return res
}
