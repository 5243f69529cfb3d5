package applicationapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/hiredeck/talentgate/pkg/kernel"
	"github.com/hiredeck/talentgate/recruitment/application"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureFilter runs one request through a throwaway app and returns whatever
// the parser extracted from it.
func captureFilter[T any](t *testing.T, target string, parse func(*fiber.Ctx) T) T {
	t.Helper()

	app := fiber.New()
	var got T
	app.Get("/", func(c *fiber.Ctx) error {
		got = parse(c)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestParseListFilter_Defaults(t *testing.T) {
	filter := captureFilter(t, "/", parseListFilter)

	assert.Empty(t, filter.Status)
	assert.True(t, filter.JobID.IsEmpty())
	assert.Empty(t, filter.Search)
	assert.Equal(t, "createdAt", filter.SortBy)
	assert.Equal(t, "desc", filter.SortOrder)
	assert.False(t, filter.ExtendedSearch)
	assert.Equal(t, kernel.PaginationOptions{Page: 1, PageSize: defaultListLimit}, filter.Pagination)
}

func TestParseListFilter_ExplicitValues(t *testing.T) {
	filter := captureFilter(t, "/?status=pending&jobId=job-1&search=go&sortBy=fullName&sortOrder=asc&page=3&limit=25", parseListFilter)

	assert.Equal(t, application.StatusPending, filter.Status)
	assert.Equal(t, kernel.JobID("job-1"), filter.JobID)
	assert.Equal(t, "go", filter.Search)
	assert.Equal(t, "fullName", filter.SortBy)
	assert.Equal(t, "asc", filter.SortOrder)
	assert.Equal(t, kernel.PaginationOptions{Page: 3, PageSize: 25}, filter.Pagination)
}

func TestParsePagination_BadInput(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantPage int
		wantSize int
	}{
		{"non-numeric values fall back to defaults", "/?page=abc&limit=xyz", 1, defaultListLimit},
		{"zero page clamps to one", "/?page=0", 1, defaultListLimit},
		{"negative page clamps to one", "/?page=-5", 1, defaultListLimit},
		{"zero limit falls back to default", "/?limit=0", 1, defaultListLimit},
		{"oversized limit clamps to max", "/?limit=5000", 1, maxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := captureFilter(t, tt.query, parseListFilter)
			assert.Equal(t, tt.wantPage, filter.Pagination.Page)
			assert.Equal(t, tt.wantSize, filter.Pagination.PageSize)
		})
	}
}

func TestParseCandidatesFilter(t *testing.T) {
	filter := captureFilter(t, "/?educationStatus=Graduated", parseCandidatesFilter)

	assert.Equal(t, "Graduated", filter.EducationStatus)
	assert.True(t, filter.ExtendedSearch)
	assert.Equal(t, defaultCandidatesLimit, filter.Pagination.PageSize)
}

func TestParseMyFilter(t *testing.T) {
	filter := captureFilter(t, "/?status=rejected&page=2", parseMyFilter)

	assert.Equal(t, application.StatusRejected, filter.Status)
	assert.Equal(t, kernel.PaginationOptions{Page: 2, PageSize: defaultListLimit}, filter.Pagination)
}
