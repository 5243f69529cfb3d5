package applicationsrv

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hiredeck/talentgate/pkg/errx"
	"github.com/hiredeck/talentgate/pkg/kernel"
	"github.com/hiredeck/talentgate/pkg/logx"
	"github.com/hiredeck/talentgate/recruitment/application"
)

// recentWindow is the lookback used for the overview's recent-application count.
const recentWindow = 7 * 24 * time.Hour

// ApplicationService provides business operations for applications. It is
// stateless; everything lives in the repository.
type ApplicationService struct {
	repo application.Repository
	now  func() time.Time
}

// NewApplicationService creates a new instance of the application service
func NewApplicationService(repo application.Repository) *ApplicationService {
	return &ApplicationService{
		repo: repo,
		now:  time.Now,
	}
}

// SubmitApplication validates and persists a new application. Status is
// always pending and the applicant identity always comes from the caller's
// auth context, never from the body.
func (s *ApplicationService) SubmitApplication(ctx context.Context, req application.SubmitApplicationRequest, appliedBy kernel.UserID) (*application.Application, error) {
	req.Normalize()
	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		return nil, application.ErrValidationFailed().WithExtra(fieldErrs)
	}

	now := s.now()
	newApplication := &application.Application{
		ID:                   kernel.NewApplicationID(uuid.NewString()),
		JobID:                kernel.JobID(req.JobID),
		FullName:             req.FullName,
		Email:                kernel.Email(req.Email),
		Phone:                req.Phone,
		Location:             req.Location,
		PortfolioURL:         req.PortfolioURL,
		LinkedinProfile:      req.LinkedinProfile,
		EducationStatus:      req.EducationStatus,
		DegreeDiscipline:     req.DegreeDiscipline,
		ResearchPapers:       req.ResearchPapers,
		InternshipExperience: req.InternshipExperience,
		Duration:             req.Duration,
		AiMlProjects:         req.AiMlProjects,
		Motivation:           req.Motivation,
		Status:               application.StatusPending,
		AppliedBy:            appliedBy,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := s.repo.Create(ctx, newApplication); err != nil {
		if errx.HasCode(err, application.CodeDuplicateApplication) {
			return nil, err
		}
		return nil, errx.Wrap(err, "failed to create application", errx.TypeInternal)
	}

	logx.Infof("New application submitted: %s for job %s", newApplication.FullName, newApplication.JobID)

	return newApplication, nil
}

// ListApplications retrieves applications matching the filter, paginated.
func (s *ApplicationService) ListApplications(ctx context.Context, filter application.ListFilter) (*kernel.Paginated[application.Application], error) {
	result, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list applications", errx.TypeInternal)
	}
	return result, nil
}

// ListMyApplications retrieves the caller's own applications.
func (s *ApplicationService) ListMyApplications(ctx context.Context, applicant kernel.UserID, filter application.MyApplicationsFilter) (*kernel.Paginated[application.Application], error) {
	result, err := s.repo.ListByApplicant(ctx, applicant, filter)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list applicant applications", errx.TypeInternal)
	}
	return result, nil
}

// GetApplication retrieves one application. Non-admin callers may only read
// applications they submitted themselves.
func (s *ApplicationService) GetApplication(ctx context.Context, id kernel.ApplicationID, caller kernel.UserID, isAdmin bool) (*application.Application, error) {
	app, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errx.HasCode(err, application.CodeApplicationNotFound) {
			return nil, err
		}
		return nil, errx.Wrap(err, "failed to get application", errx.TypeInternal)
	}

	if !isAdmin && !app.IsOwnedBy(caller) {
		return nil, application.ErrAccessDenied().WithDetail("application_id", id.String())
	}

	return app, nil
}

// UpdateStatus changes an application's review state. The new status is
// checked against the enum before anything is written.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id kernel.ApplicationID, newStatus application.ApplicationStatus) (*application.Application, error) {
	if !newStatus.IsValid() {
		return nil, application.ErrInvalidStatus().WithDetail("status", string(newStatus))
	}

	app, err := s.repo.UpdateStatus(ctx, id, newStatus)
	if err != nil {
		if errx.HasCode(err, application.CodeApplicationNotFound) {
			return nil, err
		}
		return nil, errx.Wrap(err, "failed to update application status", errx.TypeInternal)
	}

	logx.Infof("Application status updated: %s to %s", app.ID, newStatus)

	return app, nil
}

// ListCandidates retrieves one page of applications with extended search plus
// the status breakdown over everything the filter matched.
func (s *ApplicationService) ListCandidates(ctx context.Context, filter application.ListFilter) (*application.CandidateListing, error) {
	filter.ExtendedSearch = true

	result, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list candidates", errx.TypeInternal)
	}

	breakdown, err := s.repo.StatusBreakdown(ctx, filter)
	if err != nil {
		return nil, errx.Wrap(err, "failed to aggregate candidate statistics", errx.TypeInternal)
	}

	return &application.CandidateListing{
		Applications: result,
		Breakdown:    breakdown,
	}, nil
}

// StatsOverview computes the global status breakdown plus total and
// trailing-7-day counts.
func (s *ApplicationService) StatsOverview(ctx context.Context) (*application.OverviewStats, error) {
	breakdown, err := s.repo.StatusBreakdown(ctx, application.ListFilter{})
	if err != nil {
		return nil, errx.Wrap(err, "failed to aggregate status breakdown", errx.TypeInternal)
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to count applications", errx.TypeInternal)
	}

	recent, err := s.repo.CountCreatedSince(ctx, s.now().Add(-recentWindow))
	if err != nil {
		return nil, errx.Wrap(err, "failed to count recent applications", errx.TypeInternal)
	}

	return &application.OverviewStats{
		TotalApplications:  total,
		RecentApplications: recent,
		StatusBreakdown:    breakdown,
	}, nil
}
