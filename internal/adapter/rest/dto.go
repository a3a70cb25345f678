package rest

import (
	"encoding/json"
	"time"

	"github.com/armazena/listing-service/internal/listing/domain"
)

type createListingRequest struct {
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	PricePerM3   json.Number `json:"price_per_m3"`
	Type         string      `json:"warehouse_type"`
	Country      string      `json:"country"`
	State        string      `json:"state"`
	City         string      `json:"city"`
	Neighborhood string      `json:"neighborhood"`
	Street       string      `json:"street"`
	ZipCode      string      `json:"zip_code"`
	OwnerTaxID   string      `json:"owner_tax_id"`
	Images       []string    `json:"images"`
}

func (r createListingRequest) toDraft() domain.ListingDraft {
	return domain.ListingDraft{
		Title:        r.Title,
		Description:  r.Description,
		PricePerM3:   r.PricePerM3.String(),
		Type:         r.Type,
		Country:      r.Country,
		State:        r.State,
		City:         r.City,
		Neighborhood: r.Neighborhood,
		Street:       r.Street,
		ZipCode:      r.ZipCode,
		OwnerTaxID:   r.OwnerTaxID,
		Images:       r.Images,
	}
}

type addressResponse struct {
	Country      string `json:"country,omitempty"`
	State        string `json:"state"`
	City         string `json:"city"`
	Neighborhood string `json:"neighborhood,omitempty"`
	Street       string `json:"street,omitempty"`
	ZipCode      string `json:"zip_code,omitempty"`
}

type listingResponse struct {
	ID          string          `json:"id"`
	CreatedBy   string          `json:"created_by"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	PricePerM3  float64         `json:"price_per_m3"`
	Type        string          `json:"warehouse_type"`
	Address     addressResponse `json:"address"`
	OwnerTaxID  string          `json:"owner_tax_id,omitempty"`
	Images      []string        `json:"images"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func toListingResponse(l *domain.Listing) listingResponse {
	images := l.Images
	if images == nil {
		images = []string{}
	}
	return listingResponse{
		ID:          l.ID,
		CreatedBy:   l.CreatedBy,
		Title:       l.Title,
		Description: l.Description,
		PricePerM3:  l.PricePerM3,
		Type:        string(l.Type),
		Address: addressResponse{
			Country:      l.Address.Country,
			State:        l.Address.State,
			City:         l.Address.City,
			Neighborhood: l.Address.Neighborhood,
			Street:       l.Address.Street,
			ZipCode:      l.Address.ZipCode,
		},
		OwnerTaxID: l.OwnerTaxID,
		Images:     images,
		IsActive:   l.IsActive,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}

func toListingResponses(listings []*domain.Listing) []listingResponse {
	out := make([]listingResponse, 0, len(listings))
	for _, l := range listings {
		out = append(out, toListingResponse(l))
	}
	return out
}

type searchResponse struct {
	Total    int               `json:"total"`
	Listings []listingResponse `json:"listings"`
}

type facetsResponse struct {
	Cities []string `json:"cities"`
	States []string `json:"states"`
}

type contactBody struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type favoriteResponse struct {
	ListingID string    `json:"listing_id"`
	UserEmail string    `json:"user_email"`
	CreatedAt time.Time `json:"created_at"`
}

type identityResponse struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type imageResponse struct {
	URL string `json:"url"`
}

type errorResponse struct {
	Error string `json:"error"`
}
