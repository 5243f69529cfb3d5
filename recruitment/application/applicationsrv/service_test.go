package applicationsrv

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hiredeck/talentgate/pkg/errx"
	"github.com/hiredeck/talentgate/pkg/kernel"
	"github.com/hiredeck/talentgate/recruitment/application"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo implements application.Repository with overridable behavior.
type fakeRepo struct {
	created []*application.Application

	createErr    error
	getResult    *application.Application
	getErr       error
	updateResult *application.Application
	updateErr    error

	listFilter  application.ListFilter
	listResult  *kernel.Paginated[application.Application]
	listErr     error
	breakdown   map[application.ApplicationStatus]int
	count       int
	recentCount int
	sinceCutoff time.Time
}

func (f *fakeRepo) Create(ctx context.Context, app *application.Application) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, app)
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id kernel.ApplicationID) (*application.Application, error) {
	return f.getResult, f.getErr
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id kernel.ApplicationID, status application.ApplicationStatus) (*application.Application, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updateResult.Status = status
	return f.updateResult, nil
}

func (f *fakeRepo) List(ctx context.Context, filter application.ListFilter) (*kernel.Paginated[application.Application], error) {
	f.listFilter = filter
	return f.listResult, f.listErr
}

func (f *fakeRepo) ListByApplicant(ctx context.Context, applicant kernel.UserID, filter application.MyApplicationsFilter) (*kernel.Paginated[application.Application], error) {
	return f.listResult, f.listErr
}

func (f *fakeRepo) StatusBreakdown(ctx context.Context, filter application.ListFilter) (map[application.ApplicationStatus]int, error) {
	return f.breakdown, nil
}

func (f *fakeRepo) Count(ctx context.Context) (int, error) {
	return f.count, nil
}

func (f *fakeRepo) CountCreatedSince(ctx context.Context, cutoff time.Time) (int, error) {
	f.sinceCutoff = cutoff
	return f.recentCount, nil
}

func validRequest() application.SubmitApplicationRequest {
	return application.SubmitApplicationRequest{
		JobID:                "job-123",
		FullName:             "Ada Lovelace",
		Email:                "ada@example.com",
		Phone:                "+51 999 888 777",
		Location:             "Lima, Peru",
		PortfolioURL:         "https://github.com/ada",
		LinkedinProfile:      "https://linkedin.com/in/ada",
		EducationStatus:      "Graduated",
		DegreeDiscipline:     "Computer Science",
		ResearchPapers:       "Two papers",
		InternshipExperience: "6 months",
		Duration:             "6",
		AiMlProjects:         "Recommendation engine",
		Motivation:           "Real ML systems",
	}
}

func TestSubmitApplication(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewApplicationService(repo)
	frozen := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return frozen }

	app, err := svc.SubmitApplication(context.Background(), validRequest(), kernel.UserID("user-1"))
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	assert.Equal(t, repo.created[0], app)
	assert.NotEmpty(t, app.ID)
	assert.Equal(t, application.StatusPending, app.Status)
	assert.Equal(t, kernel.UserID("user-1"), app.AppliedBy)
	assert.Equal(t, kernel.JobID("job-123"), app.JobID)
	assert.Equal(t, frozen, app.CreatedAt)
	assert.Equal(t, frozen, app.UpdatedAt)
}

func TestSubmitApplication_NormalizesBeforePersisting(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewApplicationService(repo)

	req := validRequest()
	req.Email = "  ADA@Example.COM "
	req.FullName = " Ada Lovelace  "

	app, err := svc.SubmitApplication(context.Background(), req, kernel.UserID("user-1"))
	require.NoError(t, err)
	assert.Equal(t, kernel.Email("ada@example.com"), app.Email)
	assert.Equal(t, "Ada Lovelace", app.FullName)
}

func TestSubmitApplication_ValidationFailure(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewApplicationService(repo)

	req := validRequest()
	req.Email = "nope"
	req.Motivation = ""

	_, err := svc.SubmitApplication(context.Background(), req, kernel.UserID("user-1"))
	require.Error(t, err)
	assert.True(t, errx.HasCode(err, application.CodeValidationFailed))
	assert.Empty(t, repo.created, "invalid requests must not reach the repository")

	var e *errx.Error
	require.ErrorAs(t, err, &e)
	fieldErrs, ok := e.Extra.([]application.FieldError)
	require.True(t, ok)
	assert.Len(t, fieldErrs, 2)
}

func TestSubmitApplication_DuplicatePassesThrough(t *testing.T) {
	repo := &fakeRepo{createErr: application.ErrDuplicateApplication()}
	svc := NewApplicationService(repo)

	_, err := svc.SubmitApplication(context.Background(), validRequest(), kernel.UserID("user-1"))
	require.Error(t, err)
	assert.True(t, errx.HasCode(err, application.CodeDuplicateApplication))
}

func TestSubmitApplication_RepositoryFailureWrapped(t *testing.T) {
	repo := &fakeRepo{createErr: errors.New("connection reset")}
	svc := NewApplicationService(repo)

	_, err := svc.SubmitApplication(context.Background(), validRequest(), kernel.UserID("user-1"))
	require.Error(t, err)

	var e *errx.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errx.TypeInternal, e.Type)
}

func TestGetApplication_OwnerAccess(t *testing.T) {
	owned := &application.Application{
		ID:        kernel.ApplicationID("app-1"),
		AppliedBy: kernel.UserID("user-1"),
	}
	repo := &fakeRepo{getResult: owned}
	svc := NewApplicationService(repo)

	app, err := svc.GetApplication(context.Background(), owned.ID, kernel.UserID("user-1"), false)
	require.NoError(t, err)
	assert.Equal(t, owned, app)
}

func TestGetApplication_ForeignAccessDenied(t *testing.T) {
	owned := &application.Application{
		ID:        kernel.ApplicationID("app-1"),
		AppliedBy: kernel.UserID("user-1"),
	}
	repo := &fakeRepo{getResult: owned}
	svc := NewApplicationService(repo)

	_, err := svc.GetApplication(context.Background(), owned.ID, kernel.UserID("user-2"), false)
	require.Error(t, err)
	assert.True(t, errx.HasCode(err, application.CodeAccessDenied))

	// Admins read everything
	app, err := svc.GetApplication(context.Background(), owned.ID, kernel.UserID("user-2"), true)
	require.NoError(t, err)
	assert.Equal(t, owned, app)
}

func TestGetApplication_NotFoundPassesThrough(t *testing.T) {
	repo := &fakeRepo{getErr: application.ErrApplicationNotFound()}
	svc := NewApplicationService(repo)

	_, err := svc.GetApplication(context.Background(), kernel.ApplicationID("missing"), kernel.UserID("user-1"), true)
	require.Error(t, err)
	assert.True(t, errx.HasCode(err, application.CodeApplicationNotFound))
}

func TestUpdateStatus(t *testing.T) {
	repo := &fakeRepo{updateResult: &application.Application{
		ID:     kernel.ApplicationID("app-1"),
		Status: application.StatusPending,
	}}
	svc := NewApplicationService(repo)

	app, err := svc.UpdateStatus(context.Background(), kernel.ApplicationID("app-1"), application.StatusShortlisted)
	require.NoError(t, err)
	assert.Equal(t, application.StatusShortlisted, app.Status)
}

func TestUpdateStatus_InvalidStatusRejectedBeforeWrite(t *testing.T) {
	repo := &fakeRepo{updateErr: errors.New("must not be reached")}
	svc := NewApplicationService(repo)

	_, err := svc.UpdateStatus(context.Background(), kernel.ApplicationID("app-1"), application.ApplicationStatus("archived"))
	require.Error(t, err)
	assert.True(t, errx.HasCode(err, application.CodeInvalidStatus))
}

func TestListCandidates_ForcesExtendedSearch(t *testing.T) {
	repo := &fakeRepo{
		listResult: &kernel.Paginated[application.Application]{
			Page: kernel.Page{Number: 1, Size: 20, Total: 2, Pages: 1},
			Items: []application.Application{
				{ID: kernel.ApplicationID("app-1"), Status: application.StatusPending},
				{ID: kernel.ApplicationID("app-2"), Status: application.StatusAccepted},
			},
		},
		breakdown: map[application.ApplicationStatus]int{
			application.StatusPending:  1,
			application.StatusAccepted: 1,
		},
	}
	svc := NewApplicationService(repo)

	listing, err := svc.ListCandidates(context.Background(), application.ListFilter{Search: "ml"})
	require.NoError(t, err)
	assert.True(t, repo.listFilter.ExtendedSearch)
	assert.Len(t, listing.Applications.Items, 2)
	assert.Equal(t, repo.breakdown, listing.Breakdown)
}

func TestStatsOverview(t *testing.T) {
	repo := &fakeRepo{
		breakdown: map[application.ApplicationStatus]int{
			application.StatusPending: 3,
		},
		count:       10,
		recentCount: 4,
	}
	svc := NewApplicationService(repo)
	frozen := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return frozen }

	stats, err := svc.StatsOverview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, stats.TotalApplications)
	assert.Equal(t, 4, stats.RecentApplications)
	assert.Equal(t, repo.breakdown, stats.StatusBreakdown)
	assert.Equal(t, frozen.Add(-7*24*time.Hour), repo.sinceCutoff)
}
