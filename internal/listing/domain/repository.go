package domain

import "context"

type ListingRepository interface {
	Create(ctx context.Context, listing *Listing) error
	Update(ctx context.Context, listing *Listing) error
	FindByID(ctx context.Context, id string) (*Listing, error)
	// ListActive returns only listings with IsActive set, newest first.
	ListActive(ctx context.Context) ([]*Listing, error)
}

type FavoriteRepository interface {
	// Insert returns ErrAlreadyFavorited when the (user, listing) pair
	// already holds a link.
	Insert(ctx context.Context, favorite *Favorite) error
	// Delete returns ErrNotFavorited when there is nothing to remove.
	Delete(ctx context.Context, userEmail, listingID string) error
	ListingIDsByUser(ctx context.Context, userEmail string) ([]string, error)
	Exists(ctx context.Context, userEmail, listingID string) (bool, error)
}

type ContactRepository interface {
	Create(ctx context.Context, request *ContactRequest) error
}
