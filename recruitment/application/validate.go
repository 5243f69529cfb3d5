package application

import (
	"net/url"
	"regexp"
	"strings"
)

// FieldError is one field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

const maxFullNameLength = 100

var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// Normalize trims surrounding whitespace from every field and lowercases the
// email. Runs before Validate so checks and persistence see the same values.
func (r *SubmitApplicationRequest) Normalize() {
	r.JobID = strings.TrimSpace(r.JobID)
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.Location = strings.TrimSpace(r.Location)
	r.PortfolioURL = strings.TrimSpace(r.PortfolioURL)
	r.LinkedinProfile = strings.TrimSpace(r.LinkedinProfile)
	r.EducationStatus = strings.TrimSpace(r.EducationStatus)
	r.DegreeDiscipline = strings.TrimSpace(r.DegreeDiscipline)
	r.ResearchPapers = strings.TrimSpace(r.ResearchPapers)
	r.InternshipExperience = strings.TrimSpace(r.InternshipExperience)
	r.Duration = strings.TrimSpace(r.Duration)
	r.AiMlProjects = strings.TrimSpace(r.AiMlProjects)
	r.Motivation = strings.TrimSpace(r.Motivation)
}

// Validate checks every field and returns the full ordered list of failures;
// an empty slice means the request is valid. It never touches the store.
func (r *SubmitApplicationRequest) Validate() []FieldError {
	var errs []FieldError

	add := func(field, message string) {
		errs = append(errs, FieldError{Field: field, Message: message})
	}

	if r.JobID == "" {
		add("jobId", "Job ID is required")
	}

	if r.FullName == "" {
		add("fullName", "Full name is required")
	} else if len(r.FullName) > maxFullNameLength {
		add("fullName", "Full name cannot exceed 100 characters")
	}

	if !emailPattern.MatchString(r.Email) {
		add("email", "Please enter a valid email")
	}

	if r.Phone == "" {
		add("phone", "Phone number is required")
	}

	if r.Location == "" {
		add("location", "Location is required")
	}

	if r.PortfolioURL == "" {
		add("portfolioUrl", "Portfolio/GitHub/Website URL is required")
	} else if !isValidURL(r.PortfolioURL) {
		add("portfolioUrl", "Please enter a valid URL")
	}

	if r.LinkedinProfile == "" {
		add("linkedinProfile", "LinkedIn Profile URL is required")
	} else if !isValidURL(r.LinkedinProfile) {
		add("linkedinProfile", "Please enter a valid LinkedIn URL")
	}

	if r.EducationStatus == "" {
		add("educationStatus", "Current education status is required")
	}

	if r.DegreeDiscipline == "" {
		add("degreeDiscipline", "Degree/Discipline is required")
	}

	if r.ResearchPapers == "" {
		add("researchPapers", "Research papers information is required")
	}

	if r.InternshipExperience == "" {
		add("internshipExperience", "Internship experience information is required")
	}

	if r.Duration == "" {
		add("duration", "Duration in months is required")
	}

	if r.AiMlProjects == "" {
		add("aiMlProjects", "AI/ML projects information is required")
	}

	if r.Motivation == "" {
		add("motivation", "Motivation to join is required")
	}

	return errs
}

// isValidURL accepts absolute http(s) URLs with a host.
func isValidURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
