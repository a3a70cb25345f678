package domain

import "time"

type WarehouseType string

const (
	TypeRefrigerated WarehouseType = "refrigerated"
	TypeDry          WarehouseType = "dry"
	TypeSpecial      WarehouseType = "special"
	TypeGeneral      WarehouseType = "general"
)

func (t WarehouseType) Valid() bool {
	switch t {
	case TypeRefrigerated, TypeDry, TypeSpecial, TypeGeneral:
		return true
	}
	return false
}

// MaxListingImages is the hard cap on images per listing. A fourth image is
// rejected at the point of addition, never silently truncated.
const MaxListingImages = 3

// Address locates a warehouse. State and city are required, the rest is
// optional free text.
type Address struct {
	Country      string
	State        string
	City         string
	Neighborhood string
	Street       string
	ZipCode      string
}

type Listing struct {
	ID          string
	CreatedBy   string // owner's email
	Title       string
	Description string
	PricePerM3  float64 // currency per cubic meter, > 0 once validated
	Type        WarehouseType
	Address     Address
	OwnerTaxID  string
	Images      []string // display order, at most MaxListingImages entries
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ListingDraft is a raw submission as it arrives from a form. The price stays
// text until validation; ValidateDraft turns a draft into a Listing.
type ListingDraft struct {
	Title        string
	Description  string
	PricePerM3   string
	Type         string
	Country      string
	State        string
	City         string
	Neighborhood string
	Street       string
	ZipCode      string
	OwnerTaxID   string
	Images       []string
}

// Favorite links one user to one listing. The (UserEmail, ListingID) pair is
// unique; the relation is a set, not a multiset.
type Favorite struct {
	ID        string
	UserEmail string
	ListingID string
	CreatedAt time.Time
}

// ContactRequest is a buyer-to-seller inquiry tied to a single listing.
// Immutable once built.
type ContactRequest struct {
	ListingID   string
	SenderName  string
	SenderEmail string
	Message     string
	CreatedAt   time.Time
}

type SortMode string

const (
	SortMostRecent SortMode = "recent"
	SortPriceAsc   SortMode = "price_low"
	SortPriceDesc  SortMode = "price_high"
)

// Criteria narrows a catalog query. Every field is optional; an empty field
// matches everything. Price bounds stay as raw form text because a malformed
// bound is ignored rather than failing the whole query.
type Criteria struct {
	Search   string
	City     string
	State    string
	Type     WarehouseType
	MinPrice string
	MaxPrice string
}

// Identity is the authenticated user as supplied by the identity provider.
// The service treats it as an opaque input and never mutates it.
type Identity struct {
	Email    string
	FullName string
	Role     string
}
