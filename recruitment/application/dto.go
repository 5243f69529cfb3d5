package application

import (
	"time"

	"github.com/hiredeck/talentgate/pkg/kernel"
)

// SubmitApplicationRequest - DTO for submitting a new application. Status and
// applicant identity are never taken from the body; the server assigns both.
type SubmitApplicationRequest struct {
	JobID                string `json:"jobId"`
	FullName             string `json:"fullName"`
	Email                string `json:"email"`
	Phone                string `json:"phone"`
	Location             string `json:"location"`
	PortfolioURL         string `json:"portfolioUrl"`
	LinkedinProfile      string `json:"linkedinProfile"`
	EducationStatus      string `json:"educationStatus"`
	DegreeDiscipline     string `json:"degreeDiscipline"`
	ResearchPapers       string `json:"researchPapers"`
	InternshipExperience string `json:"internshipExperience"`
	Duration             string `json:"duration"`
	AiMlProjects         string `json:"aiMlProjects"`
	Motivation           string `json:"motivation"`
}

// UpdateStatusRequest - DTO for changing an application's review state.
type UpdateStatusRequest struct {
	Status ApplicationStatus `json:"status"`
}

// ListFilter carries the filter/search/sort/page parameters of a listing
// request. Zero values mean "no constraint"; the repository emits no clause
// for them.
type ListFilter struct {
	Status          ApplicationStatus
	JobID           kernel.JobID
	EducationStatus string
	Search          string
	SortBy          string
	SortOrder       string
	// ExtendedSearch widens the searched fields with aiMlProjects and
	// researchPapers (candidate-listing variant).
	ExtendedSearch bool
	Pagination     kernel.PaginationOptions
}

// MyApplicationsFilter scopes a listing to one applicant.
type MyApplicationsFilter struct {
	Status     ApplicationStatus
	Pagination kernel.PaginationOptions
}

// ============================================================================
// Response DTOs
// ============================================================================

// Response is the envelope every endpoint answers with.
type Response struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message,omitempty"`
	Data       any             `json:"data,omitempty"`
	Pagination *Pagination     `json:"pagination,omitempty"`
	Statistics *Statistics     `json:"statistics,omitempty"`
	Filters    *AppliedFilters `json:"filters,omitempty"`
}

// SubmitApplicationData is the payload returned after a successful submission.
type SubmitApplicationData struct {
	ID        kernel.ApplicationID `json:"id"`
	Status    ApplicationStatus    `json:"status"`
	AppliedAt time.Time            `json:"appliedAt"`
}

// Pagination describes the returned page. Limit is only reported by the
// candidates endpoint.
type Pagination struct {
	CurrentPage       int  `json:"currentPage"`
	TotalPages        int  `json:"totalPages"`
	TotalApplications int  `json:"totalApplications"`
	HasNextPage       bool `json:"hasNextPage"`
	HasPrevPage       bool `json:"hasPrevPage"`
	Limit             int  `json:"limit,omitempty"`
}

// NewPagination converts repository page metadata into the wire shape.
func NewPagination(page kernel.Page, includeLimit bool) *Pagination {
	p := &Pagination{
		CurrentPage:       page.Number,
		TotalPages:        page.Pages,
		TotalApplications: page.Total,
		HasNextPage:       page.HasNext(),
		HasPrevPage:       page.HasPrev(),
	}
	if includeLimit {
		p.Limit = page.Size
	}
	return p
}

// Statistics is the inline status breakdown of the candidates endpoint.
type Statistics struct {
	TotalCandidates int                       `json:"totalCandidates"`
	StatusBreakdown map[ApplicationStatus]int `json:"statusBreakdown"`
}

// AppliedFilters echoes the filters a candidate listing was computed with.
type AppliedFilters struct {
	AppliedStatus          string `json:"appliedStatus"`
	AppliedJobID           string `json:"appliedJobId"`
	AppliedEducationStatus string `json:"appliedEducationStatus"`
	AppliedSearch          string `json:"appliedSearch"`
}

// NewAppliedFilters builds the echo block; omitted filters read as "all".
func NewAppliedFilters(f ListFilter) *AppliedFilters {
	orAll := func(s string) string {
		if s == "" {
			return "all"
		}
		return s
	}
	return &AppliedFilters{
		AppliedStatus:          orAll(string(f.Status)),
		AppliedJobID:           orAll(f.JobID.String()),
		AppliedEducationStatus: orAll(f.EducationStatus),
		AppliedSearch:          f.Search,
	}
}

// CandidateListing is the service-level result of the candidates endpoint:
// one page of applications plus the breakdown over everything that matched.
type CandidateListing struct {
	Applications *kernel.Paginated[Application]
	Breakdown    map[ApplicationStatus]int
}

// OverviewStats is the global statistics payload.
type OverviewStats struct {
	TotalApplications  int                       `json:"totalApplications"`
	RecentApplications int                       `json:"recentApplications"`
	StatusBreakdown    map[ApplicationStatus]int `json:"statusBreakdown"`
}
