package routes

import (
	"github.com/go-chi/chi/v5"

	"Dealio/internal/api/handlers/lookup"
	"Dealio/internal/api/handlers/report"
	"Dealio/internal/api/middleware"
	"Dealio/internal/core/categories"
	"Dealio/internal/core/reports"
)

// RegisterLookupRoutes registers the category and reason lists and report filing
func RegisterLookupRoutes(r chi.Router, categoryService categories.Service, reportService reports.Service) {
	lookupHandler := lookup.NewHandler(categoryService, reportService)
	reportHandler := report.NewCreateHandler(reportService)

	r.Get("/categories", lookupHandler.HandleCategories)
	r.Get("/reasons", lookupHandler.HandleReasons)

	r.With(middleware.RequireIdentity).Post("/reports", reportHandler.HandleCreate)
}
