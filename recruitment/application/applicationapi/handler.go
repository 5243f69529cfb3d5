package applicationapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hiredeck/talentgate/pkg/iam/auth"
	"github.com/hiredeck/talentgate/pkg/kernel"
	"github.com/hiredeck/talentgate/recruitment/application"
	"github.com/hiredeck/talentgate/recruitment/application/applicationsrv"
)

// Handlers provides HTTP handlers for application operations
type Handlers struct {
	service *applicationsrv.ApplicationService
}

// NewHandlers creates a new application handlers instance
func NewHandlers(service *applicationsrv.ApplicationService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// SubmitApplication submits a new application
// POST /api/v1/applications
func (h *Handlers) SubmitApplication(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req application.SubmitApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	app, err := h.service.SubmitApplication(c.Context(), req, authContext.UserID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(application.Response{
		Success: true,
		Message: "Application submitted successfully",
		Data: application.SubmitApplicationData{
			ID:        app.ID,
			Status:    app.Status,
			AppliedAt: app.CreatedAt,
		},
	})
}

// ListApplications lists applications with filter/search/sort/pagination
// GET /api/v1/applications (public)
func (h *Handlers) ListApplications(c *fiber.Ctx) error {
	filter := parseListFilter(c)

	result, err := h.service.ListApplications(c.Context(), filter)
	if err != nil {
		return err
	}

	return c.JSON(application.Response{
		Success:    true,
		Data:       result.Items,
		Pagination: application.NewPagination(result.Page, false),
	})
}

// ListMyApplications lists the caller's own applications
// GET /api/v1/applications/my
func (h *Handlers) ListMyApplications(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	filter := parseMyFilter(c)

	result, err := h.service.ListMyApplications(c.Context(), authContext.UserID, filter)
	if err != nil {
		return err
	}

	return c.JSON(application.Response{
		Success:    true,
		Data:       result.Items,
		Pagination: application.NewPagination(result.Page, false),
	})
}

// GetApplication fetches one application, gated to its owner or an admin
// GET /api/v1/applications/:id
func (h *Handlers) GetApplication(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	applicationID := kernel.ApplicationID(c.Params("id"))
	if applicationID.IsEmpty() {
		return application.ErrApplicationNotFound().WithDetail("id", "missing or empty")
	}

	app, err := h.service.GetApplication(c.Context(), applicationID, authContext.UserID, authContext.Role.IsAdmin())
	if err != nil {
		return err
	}

	return c.JSON(application.Response{
		Success: true,
		Data:    app,
	})
}

// UpdateApplicationStatus changes an application's review state (admin only,
// enforced by route middleware)
// PUT /api/v1/applications/:id/status
func (h *Handlers) UpdateApplicationStatus(c *fiber.Ctx) error {
	applicationID := kernel.ApplicationID(c.Params("id"))
	if applicationID.IsEmpty() {
		return application.ErrApplicationNotFound().WithDetail("id", "missing or empty")
	}

	var req application.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	app, err := h.service.UpdateStatus(c.Context(), applicationID, req.Status)
	if err != nil {
		return err
	}

	return c.JSON(application.Response{
		Success: true,
		Message: "Application status updated successfully",
		Data:    app,
	})
}

// ListCandidates lists applications with extended search plus an inline
// status breakdown
// GET /api/v1/applications/candidates
func (h *Handlers) ListCandidates(c *fiber.Ctx) error {
	filter := parseCandidatesFilter(c)

	listing, err := h.service.ListCandidates(c.Context(), filter)
	if err != nil {
		return err
	}

	return c.JSON(application.Response{
		Success: true,
		Data:    listing.Applications.Items,
		Statistics: &application.Statistics{
			TotalCandidates: listing.Applications.Page.Total,
			StatusBreakdown: listing.Breakdown,
		},
		Pagination: application.NewPagination(listing.Applications.Page, true),
		Filters:    application.NewAppliedFilters(filter),
	})
}

// StatsOverview reports global status and recency counts
// GET /api/v1/applications/stats/overview
func (h *Handlers) StatsOverview(c *fiber.Ctx) error {
	stats, err := h.service.StatsOverview(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(application.Response{
		Success: true,
		Data:    stats,
	})
}

// RegisterRoutes registers all application routes. Static paths go first so
// they are not swallowed by the :id parameter.
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.Middleware) {
	api := app.Group("/api/v1/applications")

	api.Post("/",
		authMiddleware.Authenticate(),
		handlers.SubmitApplication,
	)

	// Public listing, no authentication
	api.Get("/", handlers.ListApplications)

	api.Get("/my",
		authMiddleware.Authenticate(),
		handlers.ListMyApplications,
	)

	api.Get("/candidates",
		authMiddleware.Authenticate(),
		handlers.ListCandidates,
	)

	api.Get("/stats/overview",
		authMiddleware.Authenticate(),
		handlers.StatsOverview,
	)

	api.Get("/:id",
		authMiddleware.Authenticate(),
		handlers.GetApplication,
	)

	api.Put("/:id/status",
		authMiddleware.Authenticate(),
		authMiddleware.RequireAdmin(),
		handlers.UpdateApplicationStatus,
	)
}
