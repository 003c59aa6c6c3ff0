// Package service contains the business logic for the Sushi API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pkordes/sushi-api/backend/internal/domain"
	"github.com/pkordes/sushi-api/backend/internal/repo"
)

// RegionService implements the slug-keyed region operations on top of RegionRepo.
//
// Slug uniqueness is checked with a lookup before the insert. The check and
// the insert are separate statements and the table has no unique index, so two
// concurrent creates with the same slug can both succeed. Update and Delete
// resolve the slug once and then act on that row's ID.
type RegionService struct {
	regions repo.RegionRepo
}

// NewRegionService constructs a RegionService backed by the provided RegionRepo.
func NewRegionService(regions repo.RegionRepo) *RegionService {
	return &RegionService{regions: regions}
}

// List returns all regions, narrowed by filter when it is non-empty.
func (s *RegionService) List(ctx context.Context, filter string) ([]domain.Region, error) {
	regions, err := s.regions.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service.RegionService.List: %w", err)
	}
	if regions == nil {
		regions = []domain.Region{}
	}
	return regions, nil
}

// GetBySlug returns the region with this slug or domain.ErrNotFound.
func (s *RegionService) GetBySlug(ctx context.Context, slug string) (domain.Region, error) {
	region, err := s.regions.GetBySlug(ctx, slug)
	if err != nil {
		return domain.Region{}, fmt.Errorf("service.RegionService.GetBySlug: %w", err)
	}
	return region, nil
}

// Create inserts a region unless one with the same slug already exists,
// in which case it returns domain.ErrConflict. Any string is a valid slug,
// the empty string included.
func (s *RegionService) Create(ctx context.Context, in domain.RegionInput) (domain.Region, error) {
	exists, err := s.exists(ctx, in.Slug)
	if err != nil {
		return domain.Region{}, fmt.Errorf("service.RegionService.Create: %w", err)
	}
	if exists {
		return domain.Region{}, fmt.Errorf("service.RegionService.Create: %w: Region with slug '%s' already exists",
			domain.ErrConflict, in.Slug)
	}

	created, err := s.regions.Create(ctx, in)
	if err != nil {
		return domain.Region{}, fmt.Errorf("service.RegionService.Create: %w", err)
	}
	return created, nil
}

// Update applies patch to the region with this slug. Omitted fields keep
// their current value; an empty patch returns the region unchanged.
func (s *RegionService) Update(ctx context.Context, slug string, patch domain.RegionPatch) (domain.Region, error) {
	current, err := s.regions.GetBySlug(ctx, slug)
	if err != nil {
		return domain.Region{}, fmt.Errorf("service.RegionService.Update: %w", err)
	}
	if patch.IsEmpty() {
		return current, nil
	}

	updated, err := s.regions.Update(ctx, current.ID, patch)
	if err != nil {
		return domain.Region{}, fmt.Errorf("service.RegionService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes the region with this slug or returns domain.ErrNotFound.
func (s *RegionService) Delete(ctx context.Context, slug string) error {
	current, err := s.regions.GetBySlug(ctx, slug)
	if err != nil {
		return fmt.Errorf("service.RegionService.Delete: %w", err)
	}
	if err := s.regions.Delete(ctx, current.ID); err != nil {
		return fmt.Errorf("service.RegionService.Delete: %w", err)
	}
	return nil
}

// exists reports whether any region already uses slug.
func (s *RegionService) exists(ctx context.Context, slug string) (bool, error) {
	_, err := s.regions.GetBySlug(ctx, slug)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, domain.ErrNotFound):
		return false, nil
	}
	return false, err
}
