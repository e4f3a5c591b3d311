package report

import (
	"errors"
	"log/slog"
	"net/http"

	"Dealio/internal/api/handlers"
	"Dealio/internal/api/middleware"
	"Dealio/internal/core/reports"
)

// CreateHandler files moderation reports
type CreateHandler struct {
	service reports.Service
}

// NewCreateHandler creates a new report handler
func NewCreateHandler(service reports.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

// HandleCreate reports exactly one post or comment
// POST /api/v1/reports
//
// Request body: { "post_id" | "comment_id": N, "reason": "...", "description": "..." }
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req reports.CreateReportRequest
	if !handlers.DecodeJSON(w, r, &req) {
		return
	}

	report, err := h.service.CreateReport(r.Context(), middleware.GetUsername(r), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, report)
}

func handleServiceError(w http.ResponseWriter, err error) {
	var valErr *reports.ValidationError
	switch {
	case errors.Is(err, reports.ErrMissingReporter):
		handlers.BadRequest(w, "Missing username header")
	case errors.As(err, &valErr):
		handlers.BadRequest(w, valErr.Field+": "+valErr.Message)
	case reports.IsValidationError(err):
		handlers.BadRequest(w, err.Error())
	default:
		slog.Error("report handler error", "error", err)
		handlers.InternalError(w)
	}
}
