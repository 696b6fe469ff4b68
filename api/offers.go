package api

import (
	"errors"
	"net/http"

	"github.com/avdeev/workboard/pkg/models"
	"github.com/avdeev/workboard/pkg/repository"
)

type OffersHandler struct {
	offerRepo repository.OfferRepo
}

func NewOffersHandler(or repository.OfferRepo) *OffersHandler {
	return &OffersHandler{offerRepo: or}
}

// An offer is a bare link between an order and a prospective executor.
type offerPayload struct {
	ID         *int64 `json:"id" validate:"required"`
	OrderID    *int64 `json:"order_id" validate:"required"`
	ExecutorID *int64 `json:"executor_id" validate:"required"`
}

func (p *offerPayload) model() *models.Offer {
	return &models.Offer{ID: *p.ID, OrderID: *p.OrderID, ExecutorID: *p.ExecutorID}
}

func (h *OffersHandler) ListOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := h.offerRepo.ListOffers(r.Context())
	if err != nil {
		writeError(w, "failed to list offers", http.StatusInternalServerError)
		return
	}

	if offers == nil {
		offers = []models.Offer{}
	}

	writeJSON(w, offers, http.StatusOK)
}

func (h *OffersHandler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	var req offerPayload
	if err := decodeBody(r, &req); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.offerRepo.CreateOffer(r.Context(), req.model()); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			writeError(w, "offer id already exists", http.StatusConflict)
			return
		}

		writeError(w, "failed to store offer", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *OffersHandler) GetOffer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, "invalid id", http.StatusBadRequest)
		return
	}

	offer, err := h.offerRepo.GetOfferByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			notFound(w)
			return
		}

		writeError(w, "failed to load offer", http.StatusInternalServerError)
		return
	}

	writeJSON(w, offer, http.StatusOK)
}

func (h *OffersHandler) UpdateOffer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req offerPayload
	if err := decodeBody(r, &req); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.offerRepo.UpdateOffer(r.Context(), id, req.model()); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			notFound(w)
		case errors.Is(err, repository.ErrConflict):
			writeError(w, "offer id already exists", http.StatusConflict)
		default:
			writeError(w, "failed to update offer", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *OffersHandler) DeleteOffer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.offerRepo.DeleteOffer(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			notFound(w)
			return
		}

		writeError(w, "failed to delete offer", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
