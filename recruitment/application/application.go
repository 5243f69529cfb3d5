package application

import (
	"time"

	"github.com/hiredeck/talentgate/pkg/kernel"
	"slices"
)

// ApplicationStatus represents the review state of an application.
type ApplicationStatus string

const (
	StatusPending     ApplicationStatus = "pending"     // Initial state on submission
	StatusReviewed    ApplicationStatus = "reviewed"    // Seen by a reviewer
	StatusShortlisted ApplicationStatus = "shortlisted" // Passed initial review
	StatusRejected    ApplicationStatus = "rejected"    // Rejected
	StatusAccepted    ApplicationStatus = "accepted"    // Accepted
)

// AllStatuses returns every valid status, in lifecycle order.
func AllStatuses() []ApplicationStatus {
	return []ApplicationStatus{
		StatusPending,
		StatusReviewed,
		StatusShortlisted,
		StatusRejected,
		StatusAccepted,
	}
}

// IsValid reports whether the status is one of the five known values.
func (s ApplicationStatus) IsValid() bool {
	return slices.Contains(AllStatuses(), s)
}

// Application is one submitted job application. JobID is an opaque reference
// to the posting; it is never resolved against a job catalog.
type Application struct {
	ID                   kernel.ApplicationID `db:"id" json:"id"`
	JobID                kernel.JobID         `db:"job_id" json:"jobId"`
	FullName             string               `db:"full_name" json:"fullName"`
	Email                kernel.Email         `db:"email" json:"email"`
	Phone                string               `db:"phone" json:"phone"`
	Location             string               `db:"location" json:"location"`
	PortfolioURL         string               `db:"portfolio_url" json:"portfolioUrl"`
	LinkedinProfile      string               `db:"linkedin_profile" json:"linkedinProfile"`
	EducationStatus      string               `db:"education_status" json:"educationStatus"`
	DegreeDiscipline     string               `db:"degree_discipline" json:"degreeDiscipline"`
	ResearchPapers       string               `db:"research_papers" json:"researchPapers"`
	InternshipExperience string               `db:"internship_experience" json:"internshipExperience"`
	Duration             string               `db:"duration" json:"duration"`
	AiMlProjects         string               `db:"ai_ml_projects" json:"aiMlProjects"`
	Motivation           string               `db:"motivation" json:"motivation"`
	Status               ApplicationStatus    `db:"status" json:"status"`
	AppliedBy            kernel.UserID        `db:"applied_by" json:"appliedBy"`
	CreatedAt            time.Time            `db:"created_at" json:"createdAt"`
	UpdatedAt            time.Time            `db:"updated_at" json:"updatedAt"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsOwnedBy checks whether the application was submitted by the given user.
func (a *Application) IsOwnedBy(userID kernel.UserID) bool {
	return a.AppliedBy == userID
}

// SetStatus moves the application to a new review state.
func (a *Application) SetStatus(newStatus ApplicationStatus) error {
	if !newStatus.IsValid() {
		return ErrInvalidStatus().WithDetail("status", string(newStatus))
	}

	a.Status = newStatus
	a.UpdatedAt = time.Now()
	return nil
}

// EmptyStatusBreakdown returns a per-status count map with every status
// present and zeroed. Aggregations fill it in so absent statuses still
// report zero.
func EmptyStatusBreakdown() map[ApplicationStatus]int {
	breakdown := make(map[ApplicationStatus]int, len(AllStatuses()))
	for _, s := range AllStatuses() {
		breakdown[s] = 0
	}
	return breakdown
}
