package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armazena/listing-service/internal/listing/domain"
	"github.com/armazena/listing-service/internal/platform/logger"
)

func TestAttachImageAppendsURL(t *testing.T) {
	ctx := context.Background()
	repo := newFakeListingRepo()
	storage := &fakeStorage{}
	uc := NewPhotoUsecase(storage, repo, nil, logger.NewNop())

	listing := seedListing(t, repo, "Galpão A", true)

	url, err := uc.AttachImage(ctx, listing.ID, "owner@example.com", "front.jpg", []byte("img"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/front.jpg", url)

	stored, err := repo.FindByID(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{url}, stored.Images)
}

func TestAttachImageRejectsFourthBeforeUpload(t *testing.T) {
	ctx := context.Background()
	repo := newFakeListingRepo()
	storage := &fakeStorage{}
	uc := NewPhotoUsecase(storage, repo, nil, logger.NewNop())

	listing := seedListing(t, repo, "Galpão A", true)
	listing.Images = []string{"1.jpg", "2.jpg", "3.jpg"}
	require.NoError(t, repo.Update(ctx, listing))

	_, err := uc.AttachImage(ctx, listing.ID, "owner@example.com", "4.jpg", []byte("img"))
	assert.ErrorIs(t, err, domain.ErrTooManyImages)

	// The cap fires before any upload happens.
	assert.Zero(t, storage.uploads)

	stored, err := repo.FindByID(ctx, listing.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Images, 3)
}

func TestAttachImageRequiresOwnership(t *testing.T) {
	ctx := context.Background()
	repo := newFakeListingRepo()
	storage := &fakeStorage{}
	uc := NewPhotoUsecase(storage, repo, nil, logger.NewNop())

	listing := seedListing(t, repo, "Galpão A", true)

	_, err := uc.AttachImage(ctx, listing.ID, "intruder@example.com", "x.jpg", []byte("img"))
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Zero(t, storage.uploads)
}

func TestAttachImageUnknownListing(t *testing.T) {
	uc := NewPhotoUsecase(&fakeStorage{}, newFakeListingRepo(), nil, logger.NewNop())
	_, err := uc.AttachImage(context.Background(), "missing", "owner@example.com", "x.jpg", nil)
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}
