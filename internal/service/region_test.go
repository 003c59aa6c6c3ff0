package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/sushi-api/backend/internal/domain"
	"github.com/pkordes/sushi-api/backend/internal/repo"
	"github.com/pkordes/sushi-api/backend/internal/service"
)

// ---- mock RegionRepo -------------------------------------------------------

type mockRegionRepo struct {
	list      func(ctx context.Context, filter string) ([]domain.Region, error)
	getBySlug func(ctx context.Context, slug string) (domain.Region, error)
	create    func(ctx context.Context, in domain.RegionInput) (domain.Region, error)
	update    func(ctx context.Context, id int64, patch domain.RegionPatch) (domain.Region, error)
	delete    func(ctx context.Context, id int64) error
}

func (m *mockRegionRepo) List(ctx context.Context, filter string) ([]domain.Region, error) {
	return m.list(ctx, filter)
}
func (m *mockRegionRepo) GetBySlug(ctx context.Context, slug string) (domain.Region, error) {
	return m.getBySlug(ctx, slug)
}
func (m *mockRegionRepo) Create(ctx context.Context, in domain.RegionInput) (domain.Region, error) {
	return m.create(ctx, in)
}
func (m *mockRegionRepo) Update(ctx context.Context, id int64, patch domain.RegionPatch) (domain.Region, error) {
	return m.update(ctx, id, patch)
}
func (m *mockRegionRepo) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

// compile-time check
var _ repo.RegionRepo = (*mockRegionRepo)(nil)

var errDB = errors.New("database is locked")

func chicago() domain.Region {
	return domain.Region{ID: 1, Slug: "chicago", Katakana: "シカゴ", English: "Chicago"}
}

func notFound(_ context.Context, _ string) (domain.Region, error) {
	return domain.Region{}, domain.ErrNotFound
}

func strPtr(s string) *string { return &s }

// ---- List ------------------------------------------------------------------

func TestRegionService_List_PassesFilter(t *testing.T) {
	var captured string
	svc := service.NewRegionService(&mockRegionRepo{
		list: func(_ context.Context, filter string) ([]domain.Region, error) {
			captured = filter
			return []domain.Region{chicago()}, nil
		},
	})

	got, err := svc.List(context.Background(), "chi")

	require.NoError(t, err)
	assert.Equal(t, "chi", captured)
	assert.Len(t, got, 1)
}

func TestRegionService_List_ReturnsEmptySlice(t *testing.T) {
	svc := service.NewRegionService(&mockRegionRepo{
		list: func(_ context.Context, _ string) ([]domain.Region, error) {
			return nil, nil
		},
	})

	got, err := svc.List(context.Background(), "")

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRegionService_List_RepoError(t *testing.T) {
	svc := service.NewRegionService(&mockRegionRepo{
		list: func(_ context.Context, _ string) ([]domain.Region, error) {
			return nil, errDB
		},
	})

	_, err := svc.List(context.Background(), "")

	assert.ErrorIs(t, err, errDB)
}

// ---- GetBySlug -------------------------------------------------------------

func TestRegionService_GetBySlug_NotFound(t *testing.T) {
	svc := service.NewRegionService(&mockRegionRepo{getBySlug: notFound})

	_, err := svc.GetBySlug(context.Background(), "tokyo")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- Create ----------------------------------------------------------------

func TestRegionService_Create_OK(t *testing.T) {
	var inserted domain.RegionInput
	svc := service.NewRegionService(&mockRegionRepo{
		getBySlug: notFound,
		create: func(_ context.Context, in domain.RegionInput) (domain.Region, error) {
			inserted = in
			return domain.Region{ID: 8, Slug: in.Slug, Katakana: in.Katakana, English: in.English}, nil
		},
	})

	in := domain.RegionInput{Slug: "tokyo", Katakana: "トウキョウ", English: "Tokyo"}
	got, err := svc.Create(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, in, inserted)
	assert.Equal(t, int64(8), got.ID)
}

func TestRegionService_Create_Conflict(t *testing.T) {
	svc := service.NewRegionService(&mockRegionRepo{
		getBySlug: func(_ context.Context, _ string) (domain.Region, error) {
			return chicago(), nil
		},
		create: func(_ context.Context, _ domain.RegionInput) (domain.Region, error) {
			t.Fatal("create must not be called when the slug exists")
			return domain.Region{}, nil
		},
	})

	_, err := svc.Create(context.Background(), domain.RegionInput{Slug: "chicago", Katakana: "シカゴ", English: "Chicago"})

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.ErrorContains(t, err, "Region with slug 'chicago' already exists")
}

func TestRegionService_Create_BlankSlugIsStored(t *testing.T) {
	var inserted domain.RegionInput
	svc := service.NewRegionService(&mockRegionRepo{
		getBySlug: notFound,
		create: func(_ context.Context, in domain.RegionInput) (domain.Region, error) {
			inserted = in
			return domain.Region{ID: 9, Slug: in.Slug, Katakana: in.Katakana, English: in.English}, nil
		},
	})

	got, err := svc.Create(context.Background(), domain.RegionInput{Slug: "  ", Katakana: "x", English: "x"})

	require.NoError(t, err)
	assert.Equal(t, "  ", inserted.Slug)
	assert.Equal(t, "  ", got.Slug)
}

func TestRegionService_Create_LookupError(t *testing.T) {
	svc := service.NewRegionService(&mockRegionRepo{
		getBySlug: func(_ context.Context, _ string) (domain.Region, error) {
			return domain.Region{}, errDB
		},
	})

	_, err := svc.Create(context.Background(), domain.RegionInput{Slug: "tokyo"})

	assert.ErrorIs(t, err, errDB)
	assert.NotErrorIs(t, err, domain.ErrConflict)
}

// ---- Update ----------------------------------------------------------------

func TestRegionService_Update_UsesLookedUpID(t *testing.T) {
	var gotID int64
	var gotPatch domain.RegionPatch
	svc := service.NewRegionService(&mockRegionRepo{
		getBySlug: func(_ context.Context, slug string) (domain.Region, error) {
			assert.Equal(t, "chicago", slug)
			return chicago(), nil
		},
		update: func(_ context.Context, id int64, patch domain.RegionPatch) (domain.Region, error) {
			gotID, gotPatch = id, patch
			return patch.Apply(chicago()), nil
		},
	})

	patch := domain.RegionPatch{English: strPtr("Chicago Metro")}
	got, err := svc.Update(context.Background(), "chicago", patch)

	require.NoError(t, err)
	assert.Equal(t, int64(1), gotID)
	assert.Equal(t, patch, gotPatch)
	assert.Equal(t, "Chicago Metro", got.English)
	assert.Equal(t, "シカゴ", got.Katakana)
}

func TestRegionService_Update_EmptyPatchSkipsWrite(t *testing.T) {
	svc := service.NewRegionService(&mockRegionRepo{
		getBySlug: func(_ context.Context, _ string) (domain.Region, error) {
			return chicago(), nil
		},
	})

	got, err := svc.Update(context.Background(), "chicago", domain.RegionPatch{})

	require.NoError(t, err)
	assert.Equal(t, chicago(), got)
}

func TestRegionService_Update_NotFound(t *testing.T) {
	svc := service.NewRegionService(&mockRegionRepo{getBySlug: notFound})

	_, err := svc.Update(context.Background(), "tokyo", domain.RegionPatch{English: strPtr("Tokyo")})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- Delete ----------------------------------------------------------------

func TestRegionService_Delete_OK(t *testing.T) {
	var deleted int64
	svc := service.NewRegionService(&mockRegionRepo{
		getBySlug: func(_ context.Context, _ string) (domain.Region, error) {
			return chicago(), nil
		},
		delete: func(_ context.Context, id int64) error {
			deleted = id
			return nil
		},
	})

	require.NoError(t, svc.Delete(context.Background(), "chicago"))
	assert.Equal(t, int64(1), deleted)
}

func TestRegionService_Delete_NotFound(t *testing.T) {
	svc := service.NewRegionService(&mockRegionRepo{
		getBySlug: notFound,
		delete: func(_ context.Context, _ int64) error {
			t.Fatal("delete must not be called for a missing slug")
			return nil
		},
	})

	err := svc.Delete(context.Background(), "tokyo")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
