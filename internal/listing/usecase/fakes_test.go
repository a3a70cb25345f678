package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/armazena/listing-service/internal/listing/domain"
)

// In-memory stand-ins for the external stores. They mirror the error
// contracts of the real Mongo repositories.

type fakeListingRepo struct {
	listings map[string]*domain.Listing
	order    []string
	nextID   int
	createErr error
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{listings: make(map[string]*domain.Listing)}
}

func (r *fakeListingRepo) Create(_ context.Context, listing *domain.Listing) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	listing.ID = fmt.Sprintf("listing-%d", r.nextID)
	listing.CreatedAt = time.Now().UTC()
	listing.UpdatedAt = listing.CreatedAt
	clone := *listing
	r.listings[listing.ID] = &clone
	r.order = append(r.order, listing.ID)
	return nil
}

func (r *fakeListingRepo) Update(_ context.Context, listing *domain.Listing) error {
	if _, ok := r.listings[listing.ID]; !ok {
		return domain.ErrListingNotFound
	}
	listing.UpdatedAt = time.Now().UTC()
	clone := *listing
	r.listings[listing.ID] = &clone
	return nil
}

func (r *fakeListingRepo) FindByID(_ context.Context, id string) (*domain.Listing, error) {
	listing, ok := r.listings[id]
	if !ok {
		return nil, domain.ErrListingNotFound
	}
	clone := *listing
	return &clone, nil
}

func (r *fakeListingRepo) ListActive(_ context.Context) ([]*domain.Listing, error) {
	var active []*domain.Listing
	for _, id := range r.order {
		if l := r.listings[id]; l.IsActive {
			clone := *l
			active = append(active, &clone)
		}
	}
	return active, nil
}

type fakeFavoriteRepo struct {
	links map[string]*domain.Favorite // keyed by userEmail + "|" + listingID
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{links: make(map[string]*domain.Favorite)}
}

func favKey(userEmail, listingID string) string {
	return userEmail + "|" + listingID
}

func (r *fakeFavoriteRepo) Insert(_ context.Context, favorite *domain.Favorite) error {
	key := favKey(favorite.UserEmail, favorite.ListingID)
	if _, ok := r.links[key]; ok {
		return domain.ErrAlreadyFavorited
	}
	favorite.ID = key
	favorite.CreatedAt = time.Now().UTC()
	clone := *favorite
	r.links[key] = &clone
	return nil
}

func (r *fakeFavoriteRepo) Delete(_ context.Context, userEmail, listingID string) error {
	key := favKey(userEmail, listingID)
	if _, ok := r.links[key]; !ok {
		return domain.ErrNotFavorited
	}
	delete(r.links, key)
	return nil
}

func (r *fakeFavoriteRepo) ListingIDsByUser(_ context.Context, userEmail string) ([]string, error) {
	var ids []string
	for _, link := range r.links {
		if link.UserEmail == userEmail {
			ids = append(ids, link.ListingID)
		}
	}
	return ids, nil
}

func (r *fakeFavoriteRepo) Exists(_ context.Context, userEmail, listingID string) (bool, error) {
	_, ok := r.links[favKey(userEmail, listingID)]
	return ok, nil
}

type fakeContactRepo struct {
	stored []*domain.ContactRequest
	err    error
}

func (r *fakeContactRepo) Create(_ context.Context, request *domain.ContactRequest) error {
	if r.err != nil {
		return r.err
	}
	r.stored = append(r.stored, request)
	return nil
}

type fakeStorage struct {
	uploads int
	err     error
}

func (s *fakeStorage) Upload(_ context.Context, fileName string, _ []byte) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.uploads++
	return "https://cdn.example.com/" + fileName, nil
}

type fakeMailer struct {
	sentTo []string
	err    error
}

func (m *fakeMailer) SendContactRequest(ownerEmail string, _ *domain.Listing, _ *domain.ContactRequest) error {
	m.sentTo = append(m.sentTo, ownerEmail)
	return m.err
}

type fakePublisher struct {
	subjects []string
}

func (p *fakePublisher) Publish(_ context.Context, subject string, _ interface{}) error {
	p.subjects = append(p.subjects, subject)
	return nil
}
