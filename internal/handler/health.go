package handler

import (
	"context"

	"github.com/pkordes/sushi-api/backend/internal/handler/gen"
)

// GetHealth handles GET /health.
// It returns HTTP 200 with the plain-text body "OK" while the process is up.
func (s *Server) GetHealth(_ context.Context, _ gen.GetHealthRequestObject) (gen.GetHealthResponseObject, error) {
	return gen.GetHealth200TextResponse("OK"), nil
}
