package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/timesheet_app/internal/apperrors"
	"github.com/SscSPs/timesheet_app/internal/core/domain"
	portsrepo "github.com/SscSPs/timesheet_app/internal/core/ports/repositories"
	"github.com/SscSPs/timesheet_app/internal/models"
	"github.com/SscSPs/timesheet_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

const periodColumns = `period_id, employee_id, week_start, status, submitted_at, created_at, last_updated_at`

type timesheetRepository struct {
	db *sql.DB
}

var _ portsrepo.TimesheetRepositoryFacade = (*timesheetRepository)(nil)

func scanPeriod(row scanner) (models.TimesheetPeriod, error) {
	var m models.TimesheetPeriod
	var weekStart, created, updated string
	var submitted sql.NullString
	err := row.Scan(&m.PeriodID, &m.EmployeeID, &weekStart, &m.Status, &submitted, &created, &updated)
	if err != nil {
		return m, err
	}
	if m.WeekStart, err = parseDate(weekStart); err != nil {
		return m, err
	}
	if submitted.Valid {
		t, err := parseTime(submitted.String)
		if err != nil {
			return m, err
		}
		m.SubmittedAt = &t
	}
	if m.CreatedAt, err = parseTime(created); err != nil {
		return m, err
	}
	m.LastUpdatedAt, err = parseTime(updated)
	return m, err
}

func (r *timesheetRepository) FindPeriod(ctx context.Context, employeeID string, weekStart time.Time) (*domain.TimesheetPeriod, error) {
	m, err := scanPeriod(r.db.QueryRowContext(ctx,
		`SELECT `+periodColumns+` FROM timesheet_periods WHERE employee_id = ? AND week_start = ?`,
		employeeID, formatDate(weekStart)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewStorageError("find timesheet period of "+employeeID, err)
	}
	period := mapping.ToDomainTimesheetPeriod(m)
	return &period, nil
}

func (r *timesheetRepository) ListPeriodsByWeek(ctx context.Context, weekStart time.Time) ([]domain.TimesheetPeriod, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+periodColumns+` FROM timesheet_periods WHERE week_start = ? ORDER BY employee_id`,
		formatDate(weekStart))
	if err != nil {
		return nil, apperrors.NewStorageError("query timesheet periods", err)
	}
	defer rows.Close()

	var periods []domain.TimesheetPeriod
	for rows.Next() {
		m, err := scanPeriod(rows)
		if err != nil {
			return nil, apperrors.NewStorageError("scan timesheet period", err)
		}
		periods = append(periods, mapping.ToDomainTimesheetPeriod(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError("iterate timesheet periods", err)
	}
	return periods, nil
}

func (r *timesheetRepository) SubmitWeek(ctx context.Context, sub portsrepo.WeekSubmission) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return apperrors.NewStorageError("begin transaction", err)
	}
	defer tx.Rollback() // Ignored once committed

	if err := submitWeekTx(ctx, tx, sub); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return apperrors.NewStorageError("commit transaction", err)
	}
	return nil
}

func submitWeekTx(ctx context.Context, tx *sql.Tx, sub portsrepo.WeekSubmission) error {
	p := mapping.ToModelTimesheetPeriod(sub.Period)
	res, err := tx.ExecContext(ctx, `
		INSERT INTO timesheet_periods (`+periodColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (employee_id, week_start) DO UPDATE
		SET status = excluded.status, submitted_at = excluded.submitted_at, last_updated_at = excluded.last_updated_at
		WHERE timesheet_periods.status = 'draft'`,
		p.PeriodID, p.EmployeeID, formatDate(p.WeekStart), string(p.Status), nullableTime(p.SubmittedAt),
		formatTime(p.CreatedAt), formatTime(p.LastUpdatedAt),
	)
	if err != nil {
		return apperrors.NewStorageError("upsert timesheet period "+p.PeriodID, err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return apperrors.NewStorageError("rows affected", err)
	} else if n == 0 {
		return fmt.Errorf("%w: week of %s", apperrors.ErrAlreadySubmitted, formatDate(p.WeekStart))
	}

	hours := make(map[string]float64)
	ids := make([]string, len(sub.Entries))
	for i, e := range sub.Entries {
		ids[i] = e.EntryID
		h, err := e.Hours()
		if err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrNotSubmittable, err)
		}
		hours[e.ProjectID] += h
	}
	if len(ids) > 0 {
		args := append([]any{string(domain.StatusSubmitted), formatTime(p.LastUpdatedAt)}, stringArgs(ids)...)
		res, err = tx.ExecContext(ctx,
			`UPDATE time_entries SET status = ?, last_updated_at = ?
			 WHERE status = 'draft' AND entry_id IN (`+placeholders(len(ids))+`)`, args...)
		if err != nil {
			return apperrors.NewStorageError("submit time entries", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return apperrors.NewStorageError("rows affected", err)
		}
		if int(n) != len(ids) {
			return fmt.Errorf("%w: %d of %d entries were no longer draft", apperrors.ErrAlreadySubmitted, len(ids)-int(n), len(ids))
		}
	}

	for _, project := range sub.Projects {
		var remaining decimal.Decimal
		err := tx.QueryRowContext(ctx, `SELECT remaining_budget FROM projects WHERE project_id = ?`, project.ProjectID).Scan(&remaining)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("%w: project %s no longer exists", apperrors.ErrNotSubmittable, project.ProjectID)
			}
			return apperrors.NewStorageError("read project "+project.ProjectID, err)
		}
		h := hours[project.ProjectID]
		cost := decimal.NewFromFloat(h).Mul(sub.CostRates[project.ProjectID])

		_, err = tx.ExecContext(ctx, `
			UPDATE projects
			SET total_hours_logged = total_hours_logged + ?, remaining_budget = ?, last_updated_at = ?
			WHERE project_id = ?`,
			h, remaining.Sub(cost).String(), formatTime(project.LastUpdatedAt), project.ProjectID,
		)
		if err != nil {
			return apperrors.NewStorageError("update project totals "+project.ProjectID, err)
		}
		for _, employeeID := range project.AssignedEmployees {
			_, err := tx.ExecContext(ctx,
				`INSERT OR IGNORE INTO project_employees (project_id, employee_id) VALUES (?, ?)`,
				project.ProjectID, employeeID)
			if err != nil {
				return apperrors.NewStorageError("assign employee to project "+project.ProjectID, err)
			}
		}
	}
	return nil
}
