package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pkordes/sushi-api/backend/internal/domain"
	"github.com/pkordes/sushi-api/backend/internal/handler/gen"
)

// ListRegions handles GET /api/regions.
// The optional ?filter= query parameter keeps regions whose slug, english or
// katakana contains the value.
func (s *Server) ListRegions(ctx context.Context, req gen.ListRegionsRequestObject) (gen.ListRegionsResponseObject, error) {
	regions, err := s.regions.List(ctx, derefString(req.Params.Filter))
	if err != nil {
		return nil, err
	}

	resp := make(gen.ListRegions200JSONResponse, len(regions))
	for i, r := range regions {
		resp[i] = regionToResponse(r)
	}
	return resp, nil
}

// GetRegion handles GET /api/regions/{slug}.
func (s *Server) GetRegion(ctx context.Context, req gen.GetRegionRequestObject) (gen.GetRegionResponseObject, error) {
	region, err := s.regions.GetBySlug(ctx, req.Slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetRegion404JSONResponse(notFoundBody()), nil
		}
		return nil, err
	}
	return gen.GetRegion200JSONResponse(regionToResponse(region)), nil
}

// CreateRegion handles POST /api/regions. Success is 200, not 201.
func (s *Server) CreateRegion(ctx context.Context, req gen.CreateRegionRequestObject) (gen.CreateRegionResponseObject, error) {
	in, err := requestToInput(req.Body)
	if err != nil {
		return gen.CreateRegion400JSONResponse(validationBody(err, domain.ErrValidation)), nil
	}

	created, err := s.regions.Create(ctx, in)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return gen.CreateRegion400JSONResponse(conflictBody(err, domain.ErrConflict)), nil
		}
		return nil, err
	}
	return gen.CreateRegion200JSONResponse(regionToResponse(created)), nil
}

// UpdateRegion handles PUT /api/regions/{slug}. Absent fields are not changed.
func (s *Server) UpdateRegion(ctx context.Context, req gen.UpdateRegionRequestObject) (gen.UpdateRegionResponseObject, error) {
	var patch domain.RegionPatch
	if req.Body != nil {
		patch = domain.RegionPatch{Katakana: req.Body.Katakana, English: req.Body.English}
	}

	updated, err := s.regions.Update(ctx, req.Slug, patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.UpdateRegion404JSONResponse(notFoundBody()), nil
		}
		return nil, err
	}
	return gen.UpdateRegion200JSONResponse(regionToResponse(updated)), nil
}

// DeleteRegion handles DELETE /api/regions/{slug}. Success is 200 with no body.
func (s *Server) DeleteRegion(ctx context.Context, req gen.DeleteRegionRequestObject) (gen.DeleteRegionResponseObject, error) {
	if err := s.regions.Delete(ctx, req.Slug); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DeleteRegion404JSONResponse(notFoundBody()), nil
		}
		return nil, err
	}
	return gen.DeleteRegion200Response{}, nil
}

// requestToInput checks that all three create fields are present.
func requestToInput(body *gen.CreateRegionRequest) (domain.RegionInput, error) {
	if body == nil {
		body = &gen.CreateRegionRequest{}
	}

	var missing []string
	if body.Slug == nil {
		missing = append(missing, "slug")
	}
	if body.Katakana == nil {
		missing = append(missing, "katakana")
	}
	if body.English == nil {
		missing = append(missing, "english")
	}
	if len(missing) > 0 {
		return domain.RegionInput{}, fmt.Errorf("%w: missing field(s): %s", domain.ErrValidation, strings.Join(missing, ", "))
	}
	return domain.RegionInput{Slug: *body.Slug, Katakana: *body.Katakana, English: *body.English}, nil
}

// regionToResponse converts a domain.Region to the generated API response type.
func regionToResponse(r domain.Region) gen.Region {
	return gen.Region{
		Id:       r.ID,
		Slug:     r.Slug,
		Katakana: r.Katakana,
		English:  r.English,
	}
}

// derefString returns the empty string for a nil pointer.
func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
