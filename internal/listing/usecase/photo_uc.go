package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/armazena/listing-service/internal/listing/domain"
	"github.com/armazena/listing-service/internal/platform/logger"
)

// Storage uploads an image and returns its public URL.
type Storage interface {
	Upload(ctx context.Context, fileName string, data []byte) (string, error)
}

type PhotoUsecase struct {
	storage Storage
	repo    domain.ListingRepository
	cache   CatalogCache
	logger  *logger.Logger
}

func NewPhotoUsecase(storage Storage, repo domain.ListingRepository, cache CatalogCache, log *logger.Logger) *PhotoUsecase {
	return &PhotoUsecase{storage: storage, repo: repo, cache: cache, logger: log}
}

// AttachImage uploads an image and appends its URL to the listing. The image
// cap is enforced before the upload so a rejected attach costs nothing.
func (uc *PhotoUsecase) AttachImage(ctx context.Context, listingID, requesterEmail, fileName string, data []byte) (string, error) {
	listing, err := uc.repo.FindByID(ctx, listingID)
	if err != nil {
		return "", err
	}
	if listing.CreatedBy != requesterEmail {
		uc.logger.Warn("image attach forbidden",
			zap.String("listing_id", listingID), zap.String("requester", requesterEmail))
		return "", domain.ErrForbidden
	}
	if len(listing.Images) >= domain.MaxListingImages {
		return "", domain.ErrTooManyImages
	}

	url, err := uc.storage.Upload(ctx, fileName, data)
	if err != nil {
		uc.logger.Error("image upload failed", zap.String("listing_id", listingID), zap.Error(err))
		return "", err
	}

	listing.Images = append(listing.Images, url)
	if err := uc.repo.Update(ctx, listing); err != nil {
		uc.logger.Error("failed to persist attached image", zap.String("listing_id", listingID), zap.Error(err))
		return "", err
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx); err != nil {
			uc.logger.Warn("catalog cache invalidation failed", zap.Error(err))
		}
	}
	return url, nil
}
