package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/armazena/listing-service/internal/adapter/rest/middleware"
	"github.com/armazena/listing-service/internal/listing/domain"
	"github.com/armazena/listing-service/internal/listing/usecase"
	"github.com/armazena/listing-service/internal/platform/logger"
	"github.com/armazena/listing-service/internal/platform/metrics"
)

var tracer = otel.Tracer("listing-service/rest")

// maxImageUploadBytes caps a single multipart image upload.
const maxImageUploadBytes = 10 << 20

type Handler struct {
	listings  *usecase.ListingUsecase
	photos    *usecase.PhotoUsecase
	favorites *usecase.FavoriteUsecase
	contacts  *usecase.ContactUsecase
	metrics   *metrics.Manager
	logger    *logger.Logger
}

func NewHandler(
	listings *usecase.ListingUsecase,
	photos *usecase.PhotoUsecase,
	favorites *usecase.FavoriteUsecase,
	contacts *usecase.ContactUsecase,
	m *metrics.Manager,
	log *logger.Logger,
) *Handler {
	return &Handler{
		listings:  listings,
		photos:    photos,
		favorites: favorites,
		contacts:  contacts,
		metrics:   m,
		logger:    log,
	}
}

// SearchListings is the dashboard query: filters, sort mode and the engine's
// guarantees (conjunctive matching, stable ordering) all live in the domain.
func (h *Handler) SearchListings(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "Handler.SearchListings")
	defer span.End()

	q := r.URL.Query()
	criteria := domain.Criteria{
		Search:   q.Get("search"),
		City:     q.Get("city"),
		State:    q.Get("state"),
		Type:     domain.WarehouseType(q.Get("type")),
		MinPrice: q.Get("min_price"),
		MaxPrice: q.Get("max_price"),
	}
	mode := domain.SortMode(q.Get("sort"))
	span.SetAttributes(
		attribute.String("search", criteria.Search),
		attribute.String("sort", string(mode)),
	)

	listings, err := h.listings.SearchActive(ctx, criteria, mode)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, searchResponse{
		Total:    len(listings),
		Listings: toListingResponses(listings),
	})
}

func (h *Handler) GetListing(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "Handler.GetListing")
	defer span.End()

	listing, err := h.listings.GetByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toListingResponse(listing))
}

func (h *Handler) CreateListing(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "Handler.CreateListing")
	defer span.End()

	identity, _ := middleware.IdentityFrom(ctx)

	var body createListingRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	listing, err := h.listings.CreateListing(ctx, identity.Email, body.toDraft())
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.metrics.ListingsCreatedTotal.Inc()
	writeJSON(w, http.StatusCreated, toListingResponse(listing))
}

func (h *Handler) DeactivateListing(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "Handler.DeactivateListing")
	defer span.End()

	identity, _ := middleware.IdentityFrom(ctx)

	if err := h.listings.Deactivate(ctx, chi.URLParam(r, "id"), identity.Email); err != nil {
		h.writeError(w, err)
		return
	}
	h.metrics.ListingsDeactivated.Inc()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AttachImage(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "Handler.AttachImage")
	defer span.End()

	identity, _ := middleware.IdentityFrom(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, maxImageUploadBytes)
	file, header, err := r.FormFile("image")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "image file is required"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "failed to read image"})
		return
	}

	url, err := h.photos.AttachImage(ctx, chi.URLParam(r, "id"), identity.Email, header.Filename, data)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, imageResponse{URL: url})
}

func (h *Handler) FilterOptions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "Handler.FilterOptions")
	defer span.End()

	cities, states, err := h.listings.Facets(ctx)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if cities == nil {
		cities = []string{}
	}
	if states == nil {
		states = []string{}
	}
	writeJSON(w, http.StatusOK, facetsResponse{Cities: cities, States: states})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFrom(r.Context())
	writeJSON(w, http.StatusOK, identityResponse{
		Email:    identity.Email,
		FullName: identity.FullName,
		Role:     identity.Role,
	})
}

// writeError maps domain errors to HTTP statuses in one place.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &verr), errors.Is(err, domain.ErrTooManyImages):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrListingNotFound), errors.Is(err, domain.ErrNotFavorited):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyFavorited):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
	}
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Error(err))
		writeJSON(w, status, errorResponse{Error: "internal error"})
		return
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
