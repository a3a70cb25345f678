package rest

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
)

// SendContactRequest accepts a buyer inquiry for one listing and hands it to
// the delivery transport.
func (h *Handler) SendContactRequest(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "Handler.SendContactRequest")
	defer span.End()

	listingID := chi.URLParam(r, "id")
	span.SetAttributes(attribute.String("listing_id", listingID))

	var body contactBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	request, err := h.contacts.Send(ctx, listingID, body.Name, body.Email, body.Message)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.metrics.ContactRequestsTotal.Inc()
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"listing_id": request.ListingID,
		"created_at": request.CreatedAt,
	})
}
