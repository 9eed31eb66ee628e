package candidateapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/talentsift/cvanalyzer/pkg/kernel"
	"github.com/talentsift/cvanalyzer/recruitment/candidate"
	"github.com/talentsift/cvanalyzer/recruitment/candidate/candidatesrv"
)

// Handlers provides HTTP handlers for candidate operations
type Handlers struct {
	service *candidatesrv.CandidateService
}

// NewHandlers creates a new candidate handlers instance
func NewHandlers(service *candidatesrv.CandidateService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// ListCandidates returns a page of candidates with nested résumés
// GET /api/candidates?page=&page_size=&search=&category=
func (h *Handlers) ListCandidates(c *fiber.Ctx) error {
	req := candidate.ListCandidatesRequest{
		Pagination: parsePaginationOptions(c),
		Search:     c.Query("search"),
		Category:   kernel.ResumeCategory(c.Query("category", string(kernel.CategoryAll))),
	}

	candidates, err := h.service.ListCandidates(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(candidates)
}

// GetCandidateByID retrieves a candidate by ID
// GET /api/candidates/:id
func (h *Handlers) GetCandidateByID(c *fiber.Ctx) error {
	candidateID := kernel.CandidateID(c.Params("id"))
	if candidateID.IsEmpty() {
		return candidate.ErrCandidateNotFound().WithDetail("id", "missing or empty")
	}

	candidateResp, err := h.service.GetCandidateByID(c.Context(), candidateID)
	if err != nil {
		return err
	}

	return c.JSON(candidateResp)
}

// ListCategories returns the distinct résumé categories
// GET /api/candidates/categories
func (h *Handlers) ListCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"categories": categories,
	})
}

// parsePaginationOptions extracts pagination options from query parameters
func parsePaginationOptions(c *fiber.Ctx) kernel.PaginationOptions {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 20)

	// Ensure valid values
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	return kernel.PaginationOptions{
		Page:     page,
		PageSize: pageSize,
	}
}

// RegisterRoutes registers all candidate routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/candidates")

	api.Get("/", handlers.ListCandidates)

	// Must be registered before the :id route
	api.Get("/categories", handlers.ListCategories)

	api.Get("/:id", handlers.GetCandidateByID)
}
