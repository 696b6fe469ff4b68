package api

import (
	"errors"
	"net/http"

	"github.com/avdeev/workboard/pkg/models"
	"github.com/avdeev/workboard/pkg/repository"
)

type OrdersHandler struct {
	orderRepo repository.OrderRepo
	userRepo  repository.UserRepo
}

func NewOrdersHandler(or repository.OrderRepo, ur repository.UserRepo) *OrdersHandler {
	return &OrdersHandler{orderRepo: or, userRepo: ur}
}

// orderPayload: id is optional (the store assigns one when absent),
// executor_id is nullable, dates come in as MM/DD/YYYY strings.
type orderPayload struct {
	ID          *int64       `json:"id"`
	Name        *string      `json:"name" validate:"required"`
	Description *string      `json:"description" validate:"required"`
	StartDate   *models.Date `json:"start_date" validate:"required"`
	EndDate     *models.Date `json:"end_date" validate:"required"`
	Address     *string      `json:"address" validate:"required"`
	Price       *int64       `json:"price" validate:"required"`
	CustomerID  *int64       `json:"customer_id" validate:"required"`
	ExecutorID  *int64       `json:"executor_id"`
}

func (p *orderPayload) model() *models.Order {
	o := &models.Order{
		Name:        *p.Name,
		Description: *p.Description,
		StartDate:   *p.StartDate,
		EndDate:     *p.EndDate,
		Address:     *p.Address,
		Price:       *p.Price,
		CustomerID:  *p.CustomerID,
		ExecutorID:  p.ExecutorID,
	}
	if p.ID != nil {
		o.ID = *p.ID
	}

	return o
}

// orderView is the list projection: customer_id and executor_id carry the
// referenced user's first name when that user exists, the raw id
// otherwise. Single-item reads return stored values unchanged.
type orderView struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	StartDate   models.Date `json:"start_date"`
	EndDate     models.Date `json:"end_date"`
	Address     string      `json:"address"`
	Price       int64       `json:"price"`
	CustomerID  any         `json:"customer_id"`
	ExecutorID  any         `json:"executor_id"`
}

func (h *OrdersHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orders, err := h.orderRepo.ListOrders(ctx)
	if err != nil {
		writeError(w, "failed to list orders", http.StatusInternalServerError)
		return
	}

	users, err := h.userRepo.ListUsers(ctx)
	if err != nil {
		writeError(w, "failed to resolve user names", http.StatusInternalServerError)
		return
	}

	names := make(map[int64]string, len(users))
	for _, u := range users {
		names[u.ID] = u.FirstName
	}

	views := make([]orderView, 0, len(orders))
	for _, o := range orders {
		v := orderView{
			ID:          o.ID,
			Name:        o.Name,
			Description: o.Description,
			StartDate:   o.StartDate,
			EndDate:     o.EndDate,
			Address:     o.Address,
			Price:       o.Price,
			CustomerID:  displayName(names, o.CustomerID),
		}
		if o.ExecutorID != nil {
			v.ExecutorID = displayName(names, *o.ExecutorID)
		}

		views = append(views, v)
	}

	writeJSON(w, views, http.StatusOK)
}

func displayName(names map[int64]string, id int64) any {
	if name, ok := names[id]; ok {
		return name
	}

	return id
}

func (h *OrdersHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req orderPayload
	if err := decodeBody(r, &req); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.orderRepo.CreateOrder(r.Context(), req.model()); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			writeError(w, "order id already exists", http.StatusConflict)
			return
		}

		writeError(w, "failed to store order", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *OrdersHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, "invalid id", http.StatusBadRequest)
		return
	}

	order, err := h.orderRepo.GetOrderByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			notFound(w)
			return
		}

		writeError(w, "failed to load order", http.StatusInternalServerError)
		return
	}

	writeJSON(w, order, http.StatusOK)
}

func (h *OrdersHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req orderPayload
	if err := decodeBody(r, &req); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}

	order := req.model()
	if req.ID == nil {
		// an update without an id in the body keeps the current key
		order.ID = id
	}

	if err := h.orderRepo.UpdateOrder(r.Context(), id, order); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			notFound(w)
		case errors.Is(err, repository.ErrConflict):
			writeError(w, "order id already exists", http.StatusConflict)
		default:
			writeError(w, "failed to update order", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *OrdersHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.orderRepo.DeleteOrder(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			notFound(w)
			return
		}

		writeError(w, "failed to delete order", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
