package domain

import (
	"math"
	"strconv"
	"strings"
)

// ValidateDraft checks a submission against the catalog's structural rules
// and returns the normalized listing ready for storage. It is a pure check:
// nothing is written anywhere, and a failed validation yields no listing.
func ValidateDraft(draft ListingDraft) (*Listing, error) {
	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return nil, missingField("title")
	}

	rawType := strings.TrimSpace(draft.Type)
	if rawType == "" {
		return nil, missingField("warehouse_type")
	}
	warehouseType := WarehouseType(rawType)
	if !warehouseType.Valid() {
		return nil, &ValidationError{Field: "warehouse_type", Reason: "unknown warehouse type"}
	}

	city := strings.TrimSpace(draft.City)
	if city == "" {
		return nil, missingField("city")
	}
	state := strings.TrimSpace(draft.State)
	if state == "" {
		return nil, missingField("state")
	}

	price, err := parsePrice(draft.PricePerM3)
	if err != nil {
		return nil, err
	}

	if len(draft.Images) > MaxListingImages {
		return nil, ErrTooManyImages
	}

	return &Listing{
		Title:       title,
		Description: strings.TrimSpace(draft.Description),
		PricePerM3:  price,
		Type:        warehouseType,
		Address: Address{
			Country:      strings.TrimSpace(draft.Country),
			State:        state,
			City:         city,
			Neighborhood: strings.TrimSpace(draft.Neighborhood),
			Street:       strings.TrimSpace(draft.Street),
			ZipCode:      strings.TrimSpace(draft.ZipCode),
		},
		OwnerTaxID: strings.TrimSpace(draft.OwnerTaxID),
		Images:     append([]string(nil), draft.Images...),
		IsActive:   true,
	}, nil
}

func parsePrice(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, missingField("price_per_m3")
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, &ValidationError{Field: "price_per_m3", Reason: "must be a number"}
	}
	if price <= 0 {
		return 0, &ValidationError{Field: "price_per_m3", Reason: "must be greater than zero"}
	}
	return price, nil
}
