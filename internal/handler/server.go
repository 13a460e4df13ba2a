// Package handler implements the HTTP handlers for the VisaMarker API.
// All handlers are methods on Server. Methods are split into resource files
// (health.go, plan.go, document.go, etc.) but share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/visamarker/internal/domain"
)

// PlanServicer defines the plan operations the handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the service layer.
type PlanServicer interface {
	Submit(ctx context.Context, req domain.TripRequest) (domain.Plan, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Plan, error)
	Reset(ctx context.Context, id uuid.UUID) error
	Generate(ctx context.Context, id uuid.UUID, kind domain.SlotKind) (domain.Slot, error)
	ShareLink(ctx context.Context, id uuid.UUID) (string, error)
}

// Exporter prepares a plan document for download.
type Exporter interface {
	Export(ctx context.Context, id uuid.UUID, name string, format domain.ExportFormat) (domain.Export, error)
}

// Server serves every API endpoint. Wire it in main.go via Routes.
type Server struct {
	plans  PlanServicer
	export Exporter
	log    *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil log discards handler-level error logs.
func NewServer(plans PlanServicer, export Exporter, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Server{plans: plans, export: export, log: log}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil)
}

// Routes returns a chi router with every endpoint registered. Unknown paths
// and methods get the JSON error body used by the rest of the API.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, notFoundBody("route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, requestBody("method not allowed"))
	})

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)
	r.Get("/options", s.GetOptions)

	r.Route("/plans", func(r chi.Router) {
		r.Post("/", s.CreatePlan)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.GetPlan)
			r.Delete("/", s.DeletePlan)
			r.Post("/documents/{kind}", s.GenerateDocument)
			r.Get("/share", s.GetShareLink)
			r.Get("/export", s.GetExport)
		})
	})
	return r
}
