package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"Dealio/internal/api/handlers"
	"Dealio/internal/api/handlers/health"
	"Dealio/internal/api/middleware"
	"Dealio/internal/core/categories"
	"Dealio/internal/core/comments"
	"Dealio/internal/core/images"
	"Dealio/internal/core/posts"
	"Dealio/internal/core/reports"
	"Dealio/internal/core/users"
	"Dealio/internal/core/votes"
)

// Services bundles everything the HTTP surface calls into
type Services struct {
	Posts      posts.Service
	Votes      votes.Service
	Comments   comments.Service
	Categories categories.Service
	Reports    reports.Service
	Images     images.Service
	Users      users.UserService
}

// RouterOptions configures the ambient middleware stack
type RouterOptions struct {
	Logger               *slog.Logger
	DB                   health.Pinger
	CORSAllowedOrigins   []string
	SlowRequestThreshold time.Duration
	RateLimitRPS         float64
	RateLimitBurst       int
}

// NewRouter assembles the full HTTP surface: health checks at the root and
// every resource under /api/v1.
func NewRouter(svc Services, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.RequestLogger(opts.Logger, opts.SlowRequestThreshold))
	r.Use(chiMiddleware.Recoverer)

	origins := opts.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.UsernameHeader, "userId"},
		ExposedHeaders: []string{"Location"},
		MaxAge:         300,
	}))

	if opts.RateLimitRPS > 0 {
		r.Use(middleware.NewRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst).Middleware)
	}

	healthHandler := health.NewHandler(opts.DB)
	r.Get("/", healthHandler.HandleHealth)
	r.Get("/healthcheck", healthHandler.HandleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		RegisterPostRoutes(r, svc.Posts)
		RegisterVoteRoutes(r, svc.Votes)
		RegisterCommentRoutes(r, svc.Comments)
		RegisterLookupRoutes(r, svc.Categories, svc.Reports)
		RegisterUserRoutes(r, svc.Posts, svc.Images, svc.Users)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handlers.NotFound(w, "Resource is not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, http.StatusMethodNotAllowed, "method not allowed", "Method not allowed")
	})

	return r
}
