package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() ListingDraft {
	return ListingDraft{
		Title:      "  Galpão no Cais do Porto ",
		PricePerM3: "12.50",
		Type:       "dry",
		City:       "Recife",
		State:      "PE",
	}
}

func TestValidateDraftNormalizes(t *testing.T) {
	draft := validDraft()
	draft.Description = "  500m² com doca  "
	draft.Neighborhood = " Boa Vista "
	draft.Images = []string{"https://cdn.example.com/1.jpg"}

	listing, err := ValidateDraft(draft)
	require.NoError(t, err)

	assert.Equal(t, "Galpão no Cais do Porto", listing.Title)
	assert.Equal(t, "500m² com doca", listing.Description)
	assert.Equal(t, 12.5, listing.PricePerM3)
	assert.Equal(t, TypeDry, listing.Type)
	assert.Equal(t, "Boa Vista", listing.Address.Neighborhood)
	assert.True(t, listing.IsActive)
	assert.Len(t, listing.Images, 1)
}

func TestValidateDraftRequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ListingDraft)
		field  string
	}{
		{"missing title", func(d *ListingDraft) { d.Title = "   " }, "title"},
		{"missing type", func(d *ListingDraft) { d.Type = "" }, "warehouse_type"},
		{"missing city", func(d *ListingDraft) { d.City = "" }, "city"},
		{"missing state", func(d *ListingDraft) { d.State = " " }, "state"},
		{"missing price", func(d *ListingDraft) { d.PricePerM3 = "" }, "price_per_m3"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			draft := validDraft()
			tc.mutate(&draft)

			listing, err := ValidateDraft(draft)
			assert.Nil(t, listing)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestValidateDraftRejectsBadPrices(t *testing.T) {
	for _, price := range []string{"abc", "-5", "0", "NaN", "+Inf"} {
		draft := validDraft()
		draft.PricePerM3 = price

		_, err := ValidateDraft(draft)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "price %q", price)
		assert.Equal(t, "price_per_m3", verr.Field)
	}
}

func TestValidateDraftRejectsUnknownType(t *testing.T) {
	draft := validDraft()
	draft.Type = "underwater"

	_, err := ValidateDraft(draft)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "warehouse_type", verr.Field)
}

func TestValidateDraftRejectsFourthImage(t *testing.T) {
	draft := validDraft()
	draft.Images = []string{"a.jpg", "b.jpg", "c.jpg", "d.jpg"}

	listing, err := ValidateDraft(draft)
	assert.Nil(t, listing)
	assert.ErrorIs(t, err, ErrTooManyImages)
}

func TestValidateDraftAllowsMissingOptionalFields(t *testing.T) {
	listing, err := ValidateDraft(validDraft())
	require.NoError(t, err)
	assert.Empty(t, listing.Description)
	assert.Empty(t, listing.Address.Street)
	assert.Empty(t, listing.OwnerTaxID)
}

func TestValidateDraftCopiesImages(t *testing.T) {
	draft := validDraft()
	draft.Images = []string{"a.jpg"}

	listing, err := ValidateDraft(draft)
	require.NoError(t, err)

	draft.Images[0] = "mutated.jpg"
	assert.Equal(t, "a.jpg", listing.Images[0])
}
