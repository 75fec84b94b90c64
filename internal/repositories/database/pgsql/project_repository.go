package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/SscSPs/timesheet_app/internal/apperrors"
	"github.com/SscSPs/timesheet_app/internal/core/domain"
	portsrepo "github.com/SscSPs/timesheet_app/internal/core/ports/repositories"
	"github.com/SscSPs/timesheet_app/internal/models"
	"github.com/SscSPs/timesheet_app/internal/utils/mapping"
	"github.com/SscSPs/timesheet_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Assigned employees come back in the order they were first attributed.
const projectSelect = `
	SELECT p.project_id, p.name, p.client, p.budget, p.hourly_cost_rate, p.start_date, p.end_date,
	       p.status, p.total_hours_logged, p.remaining_budget, p.created_at, p.last_updated_at,
	       COALESCE((SELECT array_agg(pe.employee_id ORDER BY pe.assigned_seq)
	                 FROM project_employees pe WHERE pe.project_id = p.project_id), '{}')
	FROM projects p
`

type PgxProjectRepository struct {
	BaseRepository
}

// newPgxProjectRepository creates a new repository for project data.
func newPgxProjectRepository(pool *pgxpool.Pool) portsrepo.ProjectRepositoryFacade {
	return &PgxProjectRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxProjectRepository implements portsrepo.ProjectRepositoryFacade
var _ portsrepo.ProjectRepositoryFacade = (*PgxProjectRepository)(nil)

func scanProject(row rowScanner) (models.Project, error) {
	var m models.Project
	err := row.Scan(
		&m.ProjectID,
		&m.Name,
		&m.Client,
		&m.Budget,
		&m.HourlyCostRate,
		&m.StartDate,
		&m.EndDate,
		&m.Status,
		&m.TotalHoursLogged,
		&m.RemainingBudget,
		&m.CreatedAt,
		&m.LastUpdatedAt,
		&m.AssignedEmployees,
	)
	return m, err
}

func collectProjects(rows pgx.Rows) ([]models.Project, error) {
	defer rows.Close()
	var results []models.Project
	for rows.Next() {
		m, err := scanProject(rows)
		if err != nil {
			return nil, apperrors.NewStorageError("scan project", err)
		}
		results = append(results, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError("iterate projects", err)
	}
	return results, nil
}

// SaveProject inserts a new project together with its initial assignments.
func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	m := mapping.ToModelProject(project)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Ignored once committed

	query := `
		INSERT INTO projects (project_id, name, client, budget, hourly_cost_rate, start_date, end_date,
		                      status, total_hours_logged, remaining_budget, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, query,
		m.ProjectID,
		m.Name,
		m.Client,
		m.Budget,
		m.HourlyCostRate,
		m.StartDate,
		m.EndDate,
		m.Status,
		m.TotalHoursLogged,
		m.RemainingBudget,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return fmt.Errorf("%w: project %q already exists", apperrors.ErrDuplicate, m.Name)
		}
		return apperrors.NewStorageError("save project "+m.ProjectID, err)
	}

	for _, employeeID := range m.AssignedEmployees {
		_, err := tx.Exec(ctx, `INSERT INTO project_employees (project_id, employee_id) VALUES ($1, $2) ON CONFLICT DO NOTHING;`,
			m.ProjectID, employeeID)
		if err != nil {
			if pgErrorCode(err) == pgForeignKeyViolation {
				return fmt.Errorf("%w: unknown employee %s", apperrors.ErrValidation, employeeID)
			}
			return apperrors.NewStorageError("assign employee to project "+m.ProjectID, err)
		}
	}
	return r.Commit(ctx, tx)
}

// FindProjectByID retrieves a project by its ID.
func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	m, err := scanProject(r.Pool.QueryRow(ctx, projectSelect+` WHERE p.project_id = $1;`, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewStorageError("find project "+projectID, err)
	}
	project := mapping.ToDomainProject(m)
	return &project, nil
}

// FindProjectsByIDs retrieves multiple projects by their IDs.
func (r *PgxProjectRepository) FindProjectsByIDs(ctx context.Context, projectIDs []string) (map[string]domain.Project, error) {
	if len(projectIDs) == 0 {
		return map[string]domain.Project{}, nil
	}

	rows, err := r.Pool.Query(ctx, projectSelect+` WHERE p.project_id = ANY($1);`, projectIDs)
	if err != nil {
		return nil, apperrors.NewStorageError("query projects by IDs", err)
	}
	results, err := collectProjects(rows)
	if err != nil {
		return nil, err
	}

	projects := make(map[string]domain.Project, len(results))
	for _, m := range results {
		projects[m.ProjectID] = mapping.ToDomainProject(m)
	}
	return projects, nil
}

// ListActiveProjects retrieves a page of active projects ordered by name, then ID.
func (r *PgxProjectRepository) ListActiveProjects(ctx context.Context, limit int, nextToken *string) ([]domain.Project, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// One extra row tells whether another page exists.
	fetchLimit := limit + 1

	filterClause := `WHERE p.status = 'active'`
	orderByClause := `ORDER BY p.name, p.project_id`
	args := []any{}

	if nextToken != nil && *nextToken != "" {
		lastName, lastID, decodeErr := pagination.DecodeProjectToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewValidationError("nextToken", "Invalid pagination token")
		}
		filterClause += ` AND (p.name, p.project_id) > ($1, $2)`
		args = append(args, lastName, lastID)
	}
	query := projectSelect + filterClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewStorageError("query active projects", err)
	}
	results, err := collectProjects(rows)
	if err != nil {
		return nil, nil, err
	}

	var nextTokenVal *string
	if len(results) > limit {
		last := results[limit-1]
		token := pagination.EncodeProjectToken(last.Name, last.ProjectID)
		nextTokenVal = &token
		results = results[:limit]
	}
	return mapping.ToDomainProjectSlice(results), nextTokenVal, nil
}

// SumBillableHoursByEmployee totals the billable hours of submitted or approved entries per employee.
func (r *PgxProjectRepository) SumBillableHoursByEmployee(ctx context.Context, projectID string) (map[string]float64, error) {
	query := `
		SELECT employee_id, COALESCE(SUM(billable_hours), 0)
		FROM time_entries
		WHERE project_id = $1 AND billable AND status IN ('submitted', 'approved')
		GROUP BY employee_id;
	`
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, apperrors.NewStorageError("sum billable hours of "+projectID, err)
	}
	defer rows.Close()

	hours := make(map[string]float64)
	for rows.Next() {
		var employeeID string
		var total float64
		if err := rows.Scan(&employeeID, &total); err != nil {
			return nil, apperrors.NewStorageError("scan billable hours", err)
		}
		hours[employeeID] = total
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError("iterate billable hours", err)
	}
	return hours, nil
}
