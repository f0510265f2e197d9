package web

import (
	"net/http"

	"taxi-timesheet/internal/report"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter wires the form pages, the print views and the JSON API.
func NewRouter(h *Handler, reports *report.Handler, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Get("/", h.Index)
	r.Route("/sheets/{id}", func(rt chi.Router) {
		rt.Get("/", h.ShowSheet)
		rt.Post("/", h.SubmitSheet)
		rt.Get("/print", reports.Print)
		rt.Get("/export.xlsx", reports.ExportXLSX)
	})

	r.Route("/api", func(api chi.Router) {
		api.Use(cors.Handler(cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
			MaxAge:         300,
		}))
		api.Post("/duration", h.Duration)
		api.Route("/sheets", func(rt chi.Router) {
			rt.Post("/", h.CreateSheet)
			rt.Route("/{id}", func(rt chi.Router) {
				rt.Get("/", h.GetSheet)
				rt.Delete("/", h.DeleteSheet)
				rt.Put("/cells", h.SetCell)
				rt.Post("/rows", h.AppendRow)
				rt.Put("/month", h.SetMonth)
				rt.Get("/totals", reports.Totals)
			})
		})
	})
	return r
}
