package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SscSPs/timesheet_app/internal/apperrors"
	"github.com/SscSPs/timesheet_app/internal/core/domain"
	portsrepo "github.com/SscSPs/timesheet_app/internal/core/ports/repositories"
	"github.com/SscSPs/timesheet_app/internal/models"
	"github.com/SscSPs/timesheet_app/internal/utils/mapping"
	"github.com/SscSPs/timesheet_app/internal/utils/pagination"
)

const projectColumns = `project_id, name, client, budget, hourly_cost_rate, start_date, end_date,
	status, total_hours_logged, remaining_budget, created_at, last_updated_at`

type projectRepository struct {
	db *sql.DB
}

var _ portsrepo.ProjectRepositoryFacade = (*projectRepository)(nil)

func scanProject(row scanner) (models.Project, error) {
	var m models.Project
	var start, end, created, updated string
	err := row.Scan(&m.ProjectID, &m.Name, &m.Client, &m.Budget, &m.HourlyCostRate, &start, &end,
		&m.Status, &m.TotalHoursLogged, &m.RemainingBudget, &created, &updated)
	if err != nil {
		return m, err
	}
	if m.StartDate, err = parseDate(start); err != nil {
		return m, err
	}
	if m.EndDate, err = parseDate(end); err != nil {
		return m, err
	}
	if m.CreatedAt, err = parseTime(created); err != nil {
		return m, err
	}
	m.LastUpdatedAt, err = parseTime(updated)
	return m, err
}

func (r *projectRepository) queryProjects(ctx context.Context, query string, args ...any) ([]models.Project, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewStorageError("query projects", err)
	}
	var results []models.Project
	for rows.Next() {
		m, err := scanProject(rows)
		if err != nil {
			rows.Close()
			return nil, apperrors.NewStorageError("scan project", err)
		}
		results = append(results, m)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, apperrors.NewStorageError("iterate projects", err)
	}
	// The single connection must be released before assignments are read.
	rows.Close()

	for i := range results {
		if results[i].AssignedEmployees, err = r.assignedEmployees(ctx, results[i].ProjectID); err != nil {
			return nil, err
		}
	}
	return results, nil
}

func (r *projectRepository) assignedEmployees(ctx context.Context, projectID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT employee_id FROM project_employees WHERE project_id = ? ORDER BY rowid`, projectID)
	if err != nil {
		return nil, apperrors.NewStorageError("query project assignments", err)
	}
	defer rows.Close()

	employees := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, apperrors.NewStorageError("scan project assignment", err)
		}
		employees = append(employees, id)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError("iterate project assignments", err)
	}
	return employees, nil
}

func (r *projectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	m := mapping.ToModelProject(project)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return apperrors.NewStorageError("begin transaction", err)
	}
	defer tx.Rollback() // Ignored once committed

	_, err = tx.ExecContext(ctx,
		`INSERT INTO projects (`+projectColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ProjectID, m.Name, m.Client, m.Budget.String(), m.HourlyCostRate.String(),
		formatDate(m.StartDate), formatDate(m.EndDate), string(m.Status), m.TotalHoursLogged,
		m.RemainingBudget.String(), formatTime(m.CreatedAt), formatTime(m.LastUpdatedAt),
	)
	if err != nil {
		if constraintOf(err) == uniqueConstraint {
			return fmt.Errorf("%w: project %q already exists", apperrors.ErrDuplicate, m.Name)
		}
		return apperrors.NewStorageError("save project "+m.ProjectID, err)
	}
	for _, employeeID := range m.AssignedEmployees {
		_, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO project_employees (project_id, employee_id) VALUES (?, ?)`, m.ProjectID, employeeID)
		if err != nil {
			if constraintOf(err) == foreignKeyConstraint {
				return fmt.Errorf("%w: unknown employee %s", apperrors.ErrValidation, employeeID)
			}
			return apperrors.NewStorageError("assign employee to project "+m.ProjectID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return apperrors.NewStorageError("commit transaction", err)
	}
	return nil
}

func (r *projectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	results, err := r.queryProjects(ctx, `SELECT `+projectColumns+` FROM projects WHERE project_id = ?`, projectID)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, apperrors.ErrNotFound
	}
	project := mapping.ToDomainProject(results[0])
	return &project, nil
}

func (r *projectRepository) FindProjectsByIDs(ctx context.Context, projectIDs []string) (map[string]domain.Project, error) {
	projects := make(map[string]domain.Project, len(projectIDs))
	if len(projectIDs) == 0 {
		return projects, nil
	}
	results, err := r.queryProjects(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE project_id IN (`+placeholders(len(projectIDs))+`)`,
		stringArgs(projectIDs)...)
	if err != nil {
		return nil, err
	}
	for _, m := range results {
		projects[m.ProjectID] = mapping.ToDomainProject(m)
	}
	return projects, nil
}

func (r *projectRepository) ListActiveProjects(ctx context.Context, limit int, nextToken *string) ([]domain.Project, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT ` + projectColumns + ` FROM projects WHERE status = 'active'`
	var args []any
	if nextToken != nil && *nextToken != "" {
		lastName, lastID, err := pagination.DecodeProjectToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("nextToken", "Invalid pagination token")
		}
		query += ` AND (name, project_id) > (?, ?)`
		args = append(args, lastName, lastID)
	}
	query += ` ORDER BY name, project_id LIMIT ?`
	args = append(args, limit+1)

	results, err := r.queryProjects(ctx, query, args...)
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

func (r *projectRepository) SumBillableHoursByEmployee(ctx context.Context, projectID string) (map[string]float64, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT employee_id, COALESCE(SUM(billable_hours), 0)
		FROM time_entries
		WHERE project_id = ? AND billable = 1 AND status IN ('submitted', 'approved')
		GROUP BY employee_id`, projectID)
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
