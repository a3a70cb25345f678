package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armazena/listing-service/internal/listing/domain"
	"github.com/armazena/listing-service/internal/platform/logger"
)

func TestSendContactRequest(t *testing.T) {
	ctx := context.Background()
	listings := newFakeListingRepo()
	contacts := &fakeContactRepo{}
	mail := &fakeMailer{}
	events := &fakePublisher{}
	uc := NewContactUsecase(listings, contacts, mail, events, logger.NewNop())

	listing := seedListing(t, listings, "Galpão A", true)

	request, err := uc.Send(ctx, listing.ID, "Maria", "maria@example.com", "Tenho interesse.")
	require.NoError(t, err)

	assert.Equal(t, listing.ID, request.ListingID)
	require.Len(t, contacts.stored, 1)
	assert.Equal(t, []string{"owner@example.com"}, mail.sentTo)
	assert.Equal(t, []string{SubjectContactCreated}, events.subjects)
}

func TestSendContactRequestUnknownListing(t *testing.T) {
	uc := NewContactUsecase(newFakeListingRepo(), &fakeContactRepo{}, &fakeMailer{}, nil, logger.NewNop())

	_, err := uc.Send(context.Background(), "missing", "Maria", "maria@example.com", "Olá")
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestSendContactRequestValidationWritesNothing(t *testing.T) {
	ctx := context.Background()
	listings := newFakeListingRepo()
	contacts := &fakeContactRepo{}
	mail := &fakeMailer{}
	uc := NewContactUsecase(listings, contacts, mail, nil, logger.NewNop())

	listing := seedListing(t, listings, "Galpão A", true)

	_, err := uc.Send(ctx, listing.ID, "Maria", "maria@example.com", "   ")
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "message", verr.Field)

	assert.Empty(t, contacts.stored)
	assert.Empty(t, mail.sentTo)
}

func TestSendContactRequestSurvivesMailFailure(t *testing.T) {
	ctx := context.Background()
	listings := newFakeListingRepo()
	contacts := &fakeContactRepo{}
	mail := &fakeMailer{err: errors.New("smtp down")}
	uc := NewContactUsecase(listings, contacts, mail, nil, logger.NewNop())

	listing := seedListing(t, listings, "Galpão A", true)

	request, err := uc.Send(ctx, listing.ID, "Maria", "maria@example.com", "Olá")
	require.NoError(t, err)
	assert.NotNil(t, request)
	assert.Len(t, contacts.stored, 1)
}
