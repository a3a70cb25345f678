package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/armazena/listing-service/internal/listing/domain"
	"github.com/armazena/listing-service/internal/platform/logger"
)

// Mailer delivers a contact request to the listing owner. Retry and backoff
// policy lives behind this interface, not here.
type Mailer interface {
	SendContactRequest(ownerEmail string, listing *domain.Listing, request *domain.ContactRequest) error
}

type ContactUsecase struct {
	listings domain.ListingRepository
	contacts domain.ContactRepository
	mailer   Mailer
	events   EventPublisher
	logger   *logger.Logger
}

func NewContactUsecase(listings domain.ListingRepository, contacts domain.ContactRepository, mailer Mailer, events EventPublisher, log *logger.Logger) *ContactUsecase {
	return &ContactUsecase{
		listings: listings,
		contacts: contacts,
		mailer:   mailer,
		events:   events,
		logger:   log,
	}
}

// Send assembles an inquiry for the listing, stores it, and hands it to the
// mail transport. Validation failures store and send nothing.
func (uc *ContactUsecase) Send(ctx context.Context, listingID, senderName, senderEmail, message string) (*domain.ContactRequest, error) {
	listing, err := uc.listings.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	request, err := domain.BuildContactRequest(listing.ID, senderName, senderEmail, message)
	if err != nil {
		return nil, err
	}

	if err := uc.contacts.Create(ctx, request); err != nil {
		uc.logger.Error("failed to store contact request",
			zap.String("listing_id", listingID), zap.Error(err))
		return nil, err
	}

	// Delivery failures are the transport's concern; the request is already
	// accepted and stored at this point.
	if uc.mailer != nil && listing.CreatedBy != "" {
		if err := uc.mailer.SendContactRequest(listing.CreatedBy, listing, request); err != nil {
			uc.logger.Warn("contact mail delivery failed",
				zap.String("listing_id", listingID), zap.Error(err))
		}
	}

	if uc.events != nil {
		if err := uc.events.Publish(ctx, SubjectContactCreated, request); err != nil {
			uc.logger.Warn("event publish failed", zap.String("subject", SubjectContactCreated), zap.Error(err))
		}
	}

	return request, nil
}
