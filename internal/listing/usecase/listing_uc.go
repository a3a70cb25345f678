package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/armazena/listing-service/internal/listing/domain"
	"github.com/armazena/listing-service/internal/platform/logger"
)

// CatalogCache keeps the active catalog close to the service. A nil,nil
// GetActive result means a miss.
type CatalogCache interface {
	GetActive(ctx context.Context) ([]*domain.Listing, error)
	SetActive(ctx context.Context, listings []*domain.Listing) error
	Invalidate(ctx context.Context) error
}

// EventPublisher fans service events out to sibling services.
type EventPublisher interface {
	Publish(ctx context.Context, subject string, payload interface{}) error
}

const (
	SubjectListingCreated     = "listing.created"
	SubjectListingDeactivated = "listing.deactivated"
	SubjectContactCreated     = "contact.created"
)

type ListingUsecase struct {
	repo   domain.ListingRepository
	cache  CatalogCache
	events EventPublisher
	logger *logger.Logger
}

func NewListingUsecase(repo domain.ListingRepository, cache CatalogCache, events EventPublisher, log *logger.Logger) *ListingUsecase {
	return &ListingUsecase{
		repo:   repo,
		cache:  cache,
		events: events,
		logger: log,
	}
}

// CreateListing validates a draft and, on success, persists it on behalf of
// the owner. A failed validation writes nothing.
func (uc *ListingUsecase) CreateListing(ctx context.Context, ownerEmail string, draft domain.ListingDraft) (*domain.Listing, error) {
	uc.logger.Info("creating listing",
		zap.String("owner", ownerEmail), zap.String("title", draft.Title))

	listing, err := domain.ValidateDraft(draft)
	if err != nil {
		uc.logger.Warn("listing draft rejected", zap.String("owner", ownerEmail), zap.Error(err))
		return nil, err
	}
	listing.CreatedBy = ownerEmail

	if err := uc.repo.Create(ctx, listing); err != nil {
		uc.logger.Error("failed to create listing", zap.String("owner", ownerEmail), zap.Error(err))
		return nil, err
	}

	uc.invalidateCatalog(ctx)
	uc.publish(ctx, SubjectListingCreated, listing)
	return listing, nil
}

// SearchActive runs the catalog query engine over the active listing set.
func (uc *ListingUsecase) SearchActive(ctx context.Context, criteria domain.Criteria, mode domain.SortMode) ([]*domain.Listing, error) {
	listings, err := uc.activeCatalog(ctx)
	if err != nil {
		uc.logger.Error("failed to load active catalog", zap.Error(err))
		return nil, err
	}
	return domain.Search(listings, criteria, mode), nil
}

func (uc *ListingUsecase) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	listing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			return nil, domain.ErrListingNotFound
		}
		uc.logger.Error("failed to find listing", zap.String("listing_id", id), zap.Error(err))
		return nil, err
	}
	return listing, nil
}

// Deactivate takes a listing off the market. Only the owner may do it;
// the record is kept, never hard-deleted.
func (uc *ListingUsecase) Deactivate(ctx context.Context, id, requesterEmail string) error {
	listing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if listing.CreatedBy != requesterEmail {
		uc.logger.Warn("deactivation forbidden",
			zap.String("listing_id", id),
			zap.String("owner", listing.CreatedBy),
			zap.String("requester", requesterEmail))
		return domain.ErrForbidden
	}
	if !listing.IsActive {
		return nil
	}

	listing.IsActive = false
	if err := uc.repo.Update(ctx, listing); err != nil {
		uc.logger.Error("failed to deactivate listing", zap.String("listing_id", id), zap.Error(err))
		return err
	}

	uc.invalidateCatalog(ctx)
	uc.publish(ctx, SubjectListingDeactivated, listing)
	return nil
}

// Facets returns the distinct cities and states of the active catalog for
// the filter pickers.
func (uc *ListingUsecase) Facets(ctx context.Context) (cities, states []string, err error) {
	listings, err := uc.activeCatalog(ctx)
	if err != nil {
		return nil, nil, err
	}
	cities = domain.DistinctValues(listings, func(l *domain.Listing) string { return l.Address.City })
	states = domain.DistinctValues(listings, func(l *domain.Listing) string { return l.Address.State })
	return cities, states, nil
}

// activeCatalog reads through the cache. Cache failures degrade to the
// repository, they never fail the request.
func (uc *ListingUsecase) activeCatalog(ctx context.Context) ([]*domain.Listing, error) {
	if uc.cache != nil {
		cached, err := uc.cache.GetActive(ctx)
		if err != nil {
			uc.logger.Warn("catalog cache read failed", zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	listings, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if uc.cache != nil {
		if err := uc.cache.SetActive(ctx, listings); err != nil {
			uc.logger.Warn("catalog cache write failed", zap.Error(err))
		}
	}
	return listings, nil
}

func (uc *ListingUsecase) invalidateCatalog(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.logger.Warn("catalog cache invalidation failed", zap.Error(err))
	}
}

func (uc *ListingUsecase) publish(ctx context.Context, subject string, payload interface{}) {
	if uc.events == nil {
		return
	}
	if err := uc.events.Publish(ctx, subject, payload); err != nil {
		uc.logger.Warn("event publish failed", zap.String("subject", subject), zap.Error(err))
	}
}
