package mongodb

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/armazena/listing-service/internal/listing/domain"
)

type addressDocument struct {
	Country      string `bson:"country,omitempty"`
	State        string `bson:"state"`
	City         string `bson:"city"`
	Neighborhood string `bson:"neighborhood,omitempty"`
	Street       string `bson:"street,omitempty"`
	ZipCode      string `bson:"zip_code,omitempty"`
}

type listingDocument struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	CreatedBy   string               `bson:"created_by"`
	Title       string               `bson:"title"`
	Description string               `bson:"description,omitempty"`
	PricePerM3  float64              `bson:"price_per_m3"`
	Type        domain.WarehouseType `bson:"warehouse_type"`
	Address     addressDocument      `bson:"address"`
	OwnerTaxID  string               `bson:"owner_tax_id,omitempty"`
	Images      []string             `bson:"images,omitempty"`
	IsActive    bool                 `bson:"is_active"`
	CreatedAt   time.Time            `bson:"created_at"`
	UpdatedAt   time.Time            `bson:"updated_at"`
}

type favoriteDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserEmail string             `bson:"user_email"`
	ListingID string             `bson:"listing_id"`
	CreatedAt time.Time          `bson:"created_at"`
}

type contactDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	ListingID   string             `bson:"listing_id"`
	SenderName  string             `bson:"sender_name"`
	SenderEmail string             `bson:"sender_email"`
	Message     string             `bson:"message"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func toListingDocument(l *domain.Listing) (*listingDocument, error) {
	if l == nil {
		return nil, nil
	}

	var docID primitive.ObjectID
	if l.ID != "" {
		var err error
		docID, err = primitive.ObjectIDFromHex(l.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid listing id %q: %w", l.ID, err)
		}
	}

	return &listingDocument{
		ID:          docID,
		CreatedBy:   l.CreatedBy,
		Title:       l.Title,
		Description: l.Description,
		PricePerM3:  l.PricePerM3,
		Type:        l.Type,
		Address: addressDocument{
			Country:      l.Address.Country,
			State:        l.Address.State,
			City:         l.Address.City,
			Neighborhood: l.Address.Neighborhood,
			Street:       l.Address.Street,
			ZipCode:      l.Address.ZipCode,
		},
		OwnerTaxID: l.OwnerTaxID,
		Images:     l.Images,
		IsActive:   l.IsActive,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}, nil
}

func toDomainListing(d *listingDocument) *domain.Listing {
	if d == nil {
		return nil
	}
	return &domain.Listing{
		ID:          d.ID.Hex(),
		CreatedBy:   d.CreatedBy,
		Title:       d.Title,
		Description: d.Description,
		PricePerM3:  d.PricePerM3,
		Type:        d.Type,
		Address: domain.Address{
			Country:      d.Address.Country,
			State:        d.Address.State,
			City:         d.Address.City,
			Neighborhood: d.Address.Neighborhood,
			Street:       d.Address.Street,
			ZipCode:      d.Address.ZipCode,
		},
		OwnerTaxID: d.OwnerTaxID,
		Images:     d.Images,
		IsActive:   d.IsActive,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func toDomainListings(docs []*listingDocument) []*domain.Listing {
	listings := make([]*domain.Listing, 0, len(docs))
	for _, doc := range docs {
		listings = append(listings, toDomainListing(doc))
	}
	return listings
}

func toDomainFavorite(d *favoriteDocument) *domain.Favorite {
	if d == nil {
		return nil
	}
	return &domain.Favorite{
		ID:        d.ID.Hex(),
		UserEmail: d.UserEmail,
		ListingID: d.ListingID,
		CreatedAt: d.CreatedAt,
	}
}
