package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/timesheet_app/internal/apperrors"
	"github.com/SscSPs/timesheet_app/internal/core/domain"
	portsrepo "github.com/SscSPs/timesheet_app/internal/core/ports/repositories"
	"github.com/SscSPs/timesheet_app/internal/models"
	"github.com/SscSPs/timesheet_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const periodColumns = `period_id, employee_id, week_start, status, submitted_at, created_at, last_updated_at`

type PgxTimesheetRepository struct {
	BaseRepository
}

// newPgxTimesheetRepository creates a new repository for timesheet periods.
func newPgxTimesheetRepository(pool *pgxpool.Pool) portsrepo.TimesheetRepositoryFacade {
	return &PgxTimesheetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxTimesheetRepository implements portsrepo.TimesheetRepositoryFacade
var _ portsrepo.TimesheetRepositoryFacade = (*PgxTimesheetRepository)(nil)

func scanPeriod(row rowScanner) (models.TimesheetPeriod, error) {
	var m models.TimesheetPeriod
	err := row.Scan(
		&m.PeriodID,
		&m.EmployeeID,
		&m.WeekStart,
		&m.Status,
		&m.SubmittedAt,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// FindPeriod retrieves the period of an employee week.
func (r *PgxTimesheetRepository) FindPeriod(ctx context.Context, employeeID string, weekStart time.Time) (*domain.TimesheetPeriod, error) {
	query := `SELECT ` + periodColumns + ` FROM timesheet_periods WHERE employee_id = $1 AND week_start = $2::date;`

	m, err := scanPeriod(r.Pool.QueryRow(ctx, query, employeeID, weekStart.Format(time.DateOnly)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewStorageError("find timesheet period of "+employeeID, err)
	}
	period := mapping.ToDomainTimesheetPeriod(m)
	return &period, nil
}

// ListPeriodsByWeek retrieves every recorded period of a week.
func (r *PgxTimesheetRepository) ListPeriodsByWeek(ctx context.Context, weekStart time.Time) ([]domain.TimesheetPeriod, error) {
	query := `SELECT ` + periodColumns + ` FROM timesheet_periods WHERE week_start = $1::date ORDER BY employee_id;`

	rows, err := r.Pool.Query(ctx, query, weekStart.Format(time.DateOnly))
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

// SubmitWeek records the submitted period, moves the entries to submitted and
// accumulates project totals within one transaction. A period or entry that
// already left draft aborts the whole submission with apperrors.ErrAlreadySubmitted.
func (r *PgxTimesheetRepository) SubmitWeek(ctx context.Context, sub portsrepo.WeekSubmission) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Ignored once committed

	period := mapping.ToModelTimesheetPeriod(sub.Period)
	periodQuery := `
		INSERT INTO timesheet_periods (` + periodColumns + `)
		VALUES ($1, $2, $3::date, $4, $5, $6, $7)
		ON CONFLICT (employee_id, week_start) DO UPDATE
		SET status = EXCLUDED.status, submitted_at = EXCLUDED.submitted_at, last_updated_at = EXCLUDED.last_updated_at
		WHERE timesheet_periods.status = 'draft';
	`
	tag, err := tx.Exec(ctx, periodQuery,
		period.PeriodID,
		period.EmployeeID,
		period.WeekStart.Format(time.DateOnly),
		period.Status,
		period.SubmittedAt,
		period.CreatedAt,
		period.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewStorageError("upsert timesheet period "+period.PeriodID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: week of %s", apperrors.ErrAlreadySubmitted, period.WeekStart.Format(time.DateOnly))
	}

	ids := make([]string, len(sub.Entries))
	hours := make(map[string]float64)
	for i, e := range sub.Entries {
		ids[i] = e.EntryID
		h, err := e.Hours()
		if err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrNotSubmittable, err)
		}
		hours[e.ProjectID] += h
	}
	tag, err = tx.Exec(ctx, `
		UPDATE time_entries SET status = $2, last_updated_at = $3
		WHERE entry_id = ANY($1) AND status = 'draft';
	`, ids, string(domain.StatusSubmitted), sub.Period.LastUpdatedAt)
	if err != nil {
		return apperrors.NewStorageError("submit time entries", err)
	}
	if int(tag.RowsAffected()) != len(ids) {
		return fmt.Errorf("%w: %d of %d entries were no longer draft", apperrors.ErrAlreadySubmitted, len(ids)-int(tag.RowsAffected()), len(ids))
	}

	batch := &pgx.Batch{}
	projectQuery := `
		UPDATE projects
		SET total_hours_logged = total_hours_logged + $2, remaining_budget = remaining_budget - $3, last_updated_at = $4
		WHERE project_id = $1;
	`
	assignQuery := `
		INSERT INTO project_employees (project_id, employee_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING;
	`
	for _, p := range sub.Projects {
		rate, ok := sub.CostRates[p.ProjectID]
		if !ok {
			rate = decimal.Zero
		}
		h := hours[p.ProjectID]
		batch.Queue(projectQuery, p.ProjectID, h, decimal.NewFromFloat(h).Mul(rate), p.LastUpdatedAt)
		for _, employeeID := range p.AssignedEmployees {
			batch.Queue(assignQuery, p.ProjectID, employeeID)
		}
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewStorageError("update project totals", err)
	}

	return r.Commit(ctx, tx)
}
