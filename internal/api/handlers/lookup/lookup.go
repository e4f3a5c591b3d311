// Package lookup serves the seeded category and report reason lists.
package lookup

import (
	"log/slog"
	"net/http"

	"Dealio/internal/api/handlers"
	"Dealio/internal/core/categories"
	"Dealio/internal/core/reports"
)

// Handler serves the fixed lookup tables
type Handler struct {
	categories categories.Service
	reports    reports.Service
}

// NewHandler creates a new lookup handler
func NewHandler(categoryService categories.Service, reportService reports.Service) *Handler {
	return &Handler{
		categories: categoryService,
		reports:    reportService,
	}
}

// HandleCategories lists category names
// GET /api/v1/categories
func (h *Handler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	names, err := h.categories.ListNames(r.Context())
	if err != nil {
		slog.Error("failed to list categories", "error", err)
		handlers.InternalError(w)
		return
	}
	handlers.WriteJSON(w, http.StatusOK, map[string][]string{"categories": names})
}

// HandleReasons lists report reason names
// GET /api/v1/reasons
func (h *Handler) HandleReasons(w http.ResponseWriter, r *http.Request) {
	names, err := h.reports.ListReasons(r.Context())
	if err != nil {
		slog.Error("failed to list reasons", "error", err)
		handlers.InternalError(w)
		return
	}
	handlers.WriteJSON(w, http.StatusOK, map[string][]string{"reasons": names})
}
