package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"

	"github.com/armazena/listing-service/internal/adapter/rest/middleware"
)

// AddFavorite creates the (user, listing) link. The response is the
// definitive outcome: a duplicate add comes back 409 so clients can
// reconcile optimistic state instead of silently diverging.
func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "Handler.AddFavorite")
	defer span.End()

	identity, _ := middleware.IdentityFrom(ctx)
	listingID := chi.URLParam(r, "listingID")
	span.SetAttributes(attribute.String("listing_id", listingID))

	favorite, err := h.favorites.Add(ctx, identity.Email, listingID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.metrics.FavoritesAddedTotal.Inc()
	writeJSON(w, http.StatusCreated, favoriteResponse{
		ListingID: favorite.ListingID,
		UserEmail: favorite.UserEmail,
		CreatedAt: favorite.CreatedAt,
	})
}

func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "Handler.RemoveFavorite")
	defer span.End()

	identity, _ := middleware.IdentityFrom(ctx)

	if err := h.favorites.Remove(ctx, identity.Email, chi.URLParam(r, "listingID")); err != nil {
		h.writeError(w, err)
		return
	}
	h.metrics.FavoritesRemovedTotal.Inc()
	w.WriteHeader(http.StatusNoContent)
}

// ListFavorites serves the "my favorites" view: the user's links intersected
// with the active catalog.
func (h *Handler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "Handler.ListFavorites")
	defer span.End()

	identity, _ := middleware.IdentityFrom(ctx)

	listings, err := h.favorites.FavoritedListings(ctx, identity.Email)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, searchResponse{
		Total:    len(listings),
		Listings: toListingResponses(listings),
	})
}
