package applicationapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hiredeck/talentgate/pkg/kernel"
	"github.com/hiredeck/talentgate/recruitment/application"
)

const (
	defaultListLimit       = 10
	defaultCandidatesLimit = 20
	maxLimit               = 100
)

// parsePagination reads page/limit with explicit defaults. Non-numeric or
// out-of-range values fall back to the documented defaults rather than
// whatever a loose numeric coercion would produce.
func parsePagination(c *fiber.Ctx, defaultLimit int) kernel.PaginationOptions {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", defaultLimit)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return kernel.PaginationOptions{
		Page:     page,
		PageSize: limit,
	}
}

// parseListFilter extracts the public listing's filter parameters.
func parseListFilter(c *fiber.Ctx) application.ListFilter {
	return application.ListFilter{
		Status:     application.ApplicationStatus(c.Query("status")),
		JobID:      kernel.JobID(c.Query("jobId")),
		Search:     c.Query("search"),
		SortBy:     c.Query("sortBy", "createdAt"),
		SortOrder:  c.Query("sortOrder", "desc"),
		Pagination: parsePagination(c, defaultListLimit),
	}
}

// parseCandidatesFilter extracts the candidate listing's filter parameters,
// which additionally support educationStatus and a larger default page size.
func parseCandidatesFilter(c *fiber.Ctx) application.ListFilter {
	filter := parseListFilter(c)
	filter.EducationStatus = c.Query("educationStatus")
	filter.ExtendedSearch = true
	filter.Pagination = parsePagination(c, defaultCandidatesLimit)
	return filter
}

// parseMyFilter extracts the parameters of the caller-scoped listing.
func parseMyFilter(c *fiber.Ctx) application.MyApplicationsFilter {
	return application.MyApplicationsFilter{
		Status:     application.ApplicationStatus(c.Query("status")),
		Pagination: parsePagination(c, defaultListLimit),
	}
}
