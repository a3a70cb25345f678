package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/armazena/listing-service/internal/listing/domain"
	"github.com/armazena/listing-service/internal/platform/logger"
)

type FavoriteUsecase struct {
	favorites domain.FavoriteRepository
	listings  domain.ListingRepository
	logger    *logger.Logger
}

func NewFavoriteUsecase(favorites domain.FavoriteRepository, listings domain.ListingRepository, log *logger.Logger) *FavoriteUsecase {
	return &FavoriteUsecase{favorites: favorites, listings: listings, logger: log}
}

// Add creates the (user, listing) link. A second add for the same pair
// returns ErrAlreadyFavorited and leaves exactly one link behind.
func (uc *FavoriteUsecase) Add(ctx context.Context, userEmail, listingID string) (*domain.Favorite, error) {
	favorite := &domain.Favorite{
		UserEmail: userEmail,
		ListingID: listingID,
	}
	if err := uc.favorites.Insert(ctx, favorite); err != nil {
		if !errors.Is(err, domain.ErrAlreadyFavorited) {
			uc.logger.Error("failed to add favorite",
				zap.String("user", userEmail), zap.String("listing_id", listingID), zap.Error(err))
		}
		return nil, err
	}
	return favorite, nil
}

// Remove deletes the link. Removing a pair that was never favorited returns
// ErrNotFavorited and changes nothing.
func (uc *FavoriteUsecase) Remove(ctx context.Context, userEmail, listingID string) error {
	err := uc.favorites.Delete(ctx, userEmail, listingID)
	if err != nil && !errors.Is(err, domain.ErrNotFavorited) {
		uc.logger.Error("failed to remove favorite",
			zap.String("user", userEmail), zap.String("listing_id", listingID), zap.Error(err))
	}
	return err
}

func (uc *FavoriteUsecase) IsFavorited(ctx context.Context, userEmail, listingID string) (bool, error) {
	return uc.favorites.Exists(ctx, userEmail, listingID)
}

// ListingIDs returns the ids of everything the user has favorited, whether
// or not those listings are still on the market.
func (uc *FavoriteUsecase) ListingIDs(ctx context.Context, userEmail string) ([]string, error) {
	return uc.favorites.ListingIDsByUser(ctx, userEmail)
}

// FavoritedListings intersects the user's favorite links with the current
// active catalog. Links to listings that went inactive or disappeared are
// not shown, but they persist until explicitly removed — favoriting and
// catalog activity are independent lifecycles.
func (uc *FavoriteUsecase) FavoritedListings(ctx context.Context, userEmail string) ([]*domain.Listing, error) {
	ids, err := uc.favorites.ListingIDsByUser(ctx, userEmail)
	if err != nil {
		uc.logger.Error("failed to list favorites", zap.String("user", userEmail), zap.Error(err))
		return nil, err
	}
	favorited := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		favorited[id] = struct{}{}
	}

	active, err := uc.listings.ListActive(ctx)
	if err != nil {
		uc.logger.Error("failed to load active catalog", zap.Error(err))
		return nil, err
	}

	result := make([]*domain.Listing, 0, len(ids))
	for _, listing := range active {
		if _, ok := favorited[listing.ID]; ok {
			result = append(result, listing)
		}
	}
	return result, nil
}
