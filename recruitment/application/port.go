package application

import (
	"context"
	"time"

	"github.com/hiredeck/talentgate/pkg/kernel"
)

type Repository interface {
	// Create persists a new application. A unique-constraint violation on
	// (job_id, applied_by) surfaces as ErrDuplicateApplication; the constraint
	// lives in the storage layer so concurrent submissions cannot race it.
	Create(ctx context.Context, app *Application) error

	// GetByID retrieves an application by ID
	GetByID(ctx context.Context, id kernel.ApplicationID) (*Application, error)

	// UpdateStatus changes the review state and returns the updated record
	UpdateStatus(ctx context.Context, id kernel.ApplicationID, status ApplicationStatus) (*Application, error)

	// List retrieves applications matching the filter, paginated
	List(ctx context.Context, filter ListFilter) (*kernel.Paginated[Application], error)

	// ListByApplicant retrieves one applicant's applications, newest first
	ListByApplicant(ctx context.Context, applicant kernel.UserID, filter MyApplicationsFilter) (*kernel.Paginated[Application], error)

	// StatusBreakdown counts matching applications grouped by status; every
	// status is present in the result, absent ones with a zero count
	StatusBreakdown(ctx context.Context, filter ListFilter) (map[ApplicationStatus]int, error)

	// Count counts all applications
	Count(ctx context.Context) (int, error)

	// CountCreatedSince counts applications created at or after the cutoff
	CountCreatedSince(ctx context.Context, cutoff time.Time) (int, error)
}
