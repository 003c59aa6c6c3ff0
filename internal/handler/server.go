// Package handler implements the HTTP handlers for the Sushi API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into resource-specific files (health.go, region.go) but
// share the same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/sushi-api/backend/internal/domain"
	"github.com/pkordes/sushi-api/backend/internal/handler/gen"
)

// RegionServicer defines the business operations the region handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type RegionServicer interface {
	List(ctx context.Context, filter string) ([]domain.Region, error)
	GetBySlug(ctx context.Context, slug string) (domain.Region, error)
	Create(ctx context.Context, in domain.RegionInput) (domain.Region, error)
	Update(ctx context.Context, slug string, patch domain.RegionPatch) (domain.Region, error)
	Delete(ctx context.Context, slug string) error
}

// Server implements gen.StrictServerInterface for all API endpoints.
type Server struct {
	regions RegionServicer
	log     *slog.Logger
}

var _ gen.StrictServerInterface = (*Server)(nil)

// NewServer constructs the Server with all its dependencies.
// A nil logger falls back to slog.Default().
func NewServer(regions RegionServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{regions: regions, log: log}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil)
}

// Routes registers every operation from openapi.yaml on base and returns it.
// A nil base gets a fresh chi router.
//
// gen.NewStrictHandlerWithOptions adapts Server to the lower-level
// ServerInterface the generated chi wrapper expects. Bodies that fail to
// decode and parameters that fail to bind go through requestError; errors
// returned by a handler go through responseError.
func (s *Server) Routes(base chi.Router) http.Handler {
	strict := gen.NewStrictHandlerWithOptions(s, nil, gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  s.requestError,
		ResponseErrorHandlerFunc: s.responseError,
	})
	return gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		BaseRouter:       base,
		ErrorHandlerFunc: s.requestError,
	})
}
