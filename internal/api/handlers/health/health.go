package health

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"Dealio/internal/api/handlers"
)

// Pinger is satisfied by *sql.DB
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler reports liveness
type Handler struct {
	db Pinger
}

// NewHandler creates a health handler. db may be nil.
func NewHandler(db Pinger) *Handler {
	return &Handler{db: db}
}

// HandleHealth responds {"status":"Healthy"}, or 503 when the database is unreachable
// GET /healthcheck and GET /
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			slog.Warn("health check failed", "error", err)
			handlers.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "Unhealthy"})
			return
		}
	}
	handlers.WriteJSON(w, http.StatusOK, map[string]string{"status": "Healthy"})
}
