package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armazena/listing-service/internal/listing/domain"
	"github.com/armazena/listing-service/internal/platform/logger"
)

func validTestDraft() domain.ListingDraft {
	return domain.ListingDraft{
		Title:      "Galpão no Cais",
		PricePerM3: "15",
		Type:       "general",
		City:       "Recife",
		State:      "PE",
	}
}

func TestCreateListingPersistsAndPublishes(t *testing.T) {
	ctx := context.Background()
	repo := newFakeListingRepo()
	events := &fakePublisher{}
	uc := NewListingUsecase(repo, nil, events, logger.NewNop())

	listing, err := uc.CreateListing(ctx, "owner@example.com", validTestDraft())
	require.NoError(t, err)

	assert.NotEmpty(t, listing.ID)
	assert.Equal(t, "owner@example.com", listing.CreatedBy)
	assert.True(t, listing.IsActive)
	assert.Equal(t, []string{SubjectListingCreated}, events.subjects)
}

func TestCreateListingRejectsInvalidDraftWithoutWriting(t *testing.T) {
	ctx := context.Background()
	repo := newFakeListingRepo()
	uc := NewListingUsecase(repo, nil, nil, logger.NewNop())

	draft := validTestDraft()
	draft.PricePerM3 = "abc"

	listing, err := uc.CreateListing(ctx, "owner@example.com", draft)
	assert.Nil(t, listing)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, repo.listings)
}

func TestSearchActiveAppliesCriteria(t *testing.T) {
	ctx := context.Background()
	repo := newFakeListingRepo()
	uc := NewListingUsecase(repo, nil, nil, logger.NewNop())

	cheap := seedListing(t, repo, "Galpão Barato", true)
	cheap.PricePerM3 = 5
	require.NoError(t, repo.Update(ctx, cheap))
	expensive := seedListing(t, repo, "Galpão Caro", true)
	expensive.PricePerM3 = 50
	require.NoError(t, repo.Update(ctx, expensive))
	seedListing(t, repo, "Galpão Fechado", false)

	result, err := uc.SearchActive(ctx, domain.Criteria{MaxPrice: "10"}, domain.SortPriceAsc)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, cheap.ID, result[0].ID)
}

func TestDeactivateRequiresOwnership(t *testing.T) {
	ctx := context.Background()
	repo := newFakeListingRepo()
	uc := NewListingUsecase(repo, nil, nil, logger.NewNop())

	listing := seedListing(t, repo, "Galpão A", true)

	err := uc.Deactivate(ctx, listing.ID, "intruder@example.com")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	stored, err := uc.GetByID(ctx, listing.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsActive)
}

func TestDeactivateHidesListingFromDiscovery(t *testing.T) {
	ctx := context.Background()
	repo := newFakeListingRepo()
	events := &fakePublisher{}
	uc := NewListingUsecase(repo, nil, events, logger.NewNop())

	listing := seedListing(t, repo, "Galpão A", true)

	require.NoError(t, uc.Deactivate(ctx, listing.ID, "owner@example.com"))

	result, err := uc.SearchActive(ctx, domain.Criteria{}, domain.SortMostRecent)
	require.NoError(t, err)
	assert.Empty(t, result)

	// The record survives, only discovery drops it.
	stored, err := uc.GetByID(ctx, listing.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)
	assert.Contains(t, events.subjects, SubjectListingDeactivated)
}

func TestGetByIDUnknownListing(t *testing.T) {
	uc := NewListingUsecase(newFakeListingRepo(), nil, nil, logger.NewNop())
	_, err := uc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestFacets(t *testing.T) {
	ctx := context.Background()
	repo := newFakeListingRepo()
	uc := NewListingUsecase(repo, nil, nil, logger.NewNop())

	first := seedListing(t, repo, "Galpão A", true)
	second := seedListing(t, repo, "Galpão B", true)
	second.Address.City = "Olinda"
	require.NoError(t, repo.Update(ctx, second))
	_ = first

	cities, states, err := uc.Facets(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Recife", "Olinda"}, cities)
	assert.Equal(t, []string{"PE"}, states)
}
