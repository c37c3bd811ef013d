package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weblive_server/internal/types"
)

func sampleProject(ttl time.Duration) *Project {
	now := time.Now().UTC()
	return &Project{
		ID:        "p1",
		Input:     types.WizardInput{BusinessName: "Smile Dental"},
		SiteSpec: &types.SiteSpec{
			Business: types.Business{Name: "Smile Dental"},
			Pages:    []types.Page{{Slug: "/", NavLabel: "Home"}},
		},
		Seed:      42,
		Status:    "ready",
		ShareSlug: "smile-dental-abc123",
		EditToken: "token-1",
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Create(ctx, sampleProject(time.Hour)))

	byToken, err := store.GetByEditToken(ctx, "token-1")
	require.NoError(t, err)
	assert.Equal(t, "p1", byToken.ID)
	assert.Equal(t, int64(42), byToken.Seed)

	bySlug, err := store.GetByShareSlug(ctx, "smile-dental-abc123")
	require.NoError(t, err)
	assert.Equal(t, "p1", bySlug.ID)
}

func TestMemoryStoreNotFound(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.GetByEditToken(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.GetByShareSlug(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	err = store.UpdateSite(ctx, sampleProject(time.Hour))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreExpired(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Create(ctx, sampleProject(-time.Minute)))

	_, err := store.GetByEditToken(ctx, "token-1")
	assert.ErrorIs(t, err, ErrExpired, "expired must be distinguishable from missing")

	_, err = store.GetByShareSlug(ctx, "smile-dental-abc123")
	assert.ErrorIs(t, err, ErrExpired)
}

func TestMemoryStoreUpdateSite(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Create(ctx, sampleProject(time.Hour)))

	updated := sampleProject(time.Hour)
	updated.Seed = 99
	updated.SiteSpec = &types.SiteSpec{Business: types.Business{Name: "Smile Dental"}, RecipeID: "info-bold-launch"}
	updated.UpdatedAt = time.Now().UTC().Add(time.Minute)
	require.NoError(t, store.UpdateSite(ctx, updated))

	got, err := store.GetByEditToken(ctx, "token-1")
	require.NoError(t, err)
	assert.Equal(t, int64(99), got.Seed)
	assert.Equal(t, "info-bold-launch", got.SiteSpec.RecipeID)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Create(ctx, sampleProject(time.Hour)))

	got, err := store.GetByEditToken(ctx, "token-1")
	require.NoError(t, err)
	got.Status = "mangled"
	got.SiteSpec.Business.Name = "mangled"
	got.SiteSpec.Pages[0].NavLabel = "mangled"
	got.SiteSpec.Pages = append(got.SiteSpec.Pages, types.Page{Slug: "/about"})

	again, err := store.GetByEditToken(ctx, "token-1")
	require.NoError(t, err)
	assert.Equal(t, "ready", again.Status)
	assert.Equal(t, "Smile Dental", again.SiteSpec.Business.Name)
	require.Len(t, again.SiteSpec.Pages, 1)
	assert.Equal(t, "Home", again.SiteSpec.Pages[0].NavLabel)
}

func TestMemoryStoreDetachesCallerRecords(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	original := sampleProject(time.Hour)
	require.NoError(t, store.Create(ctx, original))

	original.SiteSpec.Business.Name = "mangled"

	got, err := store.GetByEditToken(ctx, "token-1")
	require.NoError(t, err)
	assert.Equal(t, "Smile Dental", got.SiteSpec.Business.Name)
}
