package screeningapi

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/talentsift/cvanalyzer/pkg/logx"
	"github.com/talentsift/cvanalyzer/recruitment/screening"
	"github.com/talentsift/cvanalyzer/recruitment/screening/screeningsrv"
)

// Handlers provides HTTP handlers for résumé screening
type Handlers struct {
	service *screeningsrv.Service
}

// NewHandlers creates a new screening handlers instance
func NewHandlers(service *screeningsrv.Service) *Handlers {
	return &Handlers{
		service: service,
	}
}

// AnalyzeResumes ranks stored résumés against the supplied keywords
// POST /api/analyze
func (h *Handlers) AnalyzeResumes(c *fiber.Ctx) error {
	var req screening.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return screening.ErrInvalidKeywords().WithDetail("parse_error", err.Error())
	}

	// The keywords field itself is required; an empty list is a valid
	// query that matches nothing
	if req.Keywords == nil {
		return screening.ErrInvalidKeywords().WithDetail("keywords", "missing")
	}

	for i, keyword := range req.Keywords {
		if strings.TrimSpace(keyword) == "" {
			return screening.ErrInvalidKeywords().
				WithDetail("keywords", "must be non-empty strings").
				WithDetail("index", i)
		}
	}

	if req.Limit < 0 {
		return screening.ErrInvalidKeywords().WithDetail("limit", "must be positive")
	}

	logx.Infof("Analysis request for %d keywords", len(req.Keywords))

	response, err := h.service.Analyze(c.Context(), req.Keywords, req.Limit)
	if err != nil {
		return err
	}

	return c.JSON(response)
}

// RegisterRoutes registers the screening routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api")

	api.Post("/analyze", handlers.AnalyzeResumes)
}
