package pgsql

import (
	portsrepo "github.com/SscSPs/timesheet_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	timeEntryRepo := newPgxTimeEntryRepository(dbPool)
	timesheetRepo := newPgxTimesheetRepository(dbPool)
	projectRepo := newPgxProjectRepository(dbPool)
	employeeRepo := newPgxEmployeeRepository(dbPool)

	return portsrepo.RepositoryProvider{
		TimeEntryRepo: timeEntryRepo,
		TimesheetRepo: timesheetRepo,
		ProjectRepo:   projectRepo,
		EmployeeRepo:  employeeRepo,
		Health:        &BaseRepository{Pool: dbPool},
	}
}
