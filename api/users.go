package api

import (
	"errors"
	"net/http"

	"github.com/avdeev/workboard/pkg/models"
	"github.com/avdeev/workboard/pkg/repository"
)

type UsersHandler struct {
	userRepo repository.UserRepo
}

func NewUsersHandler(ur repository.UserRepo) *UsersHandler {
	return &UsersHandler{userRepo: ur}
}

// userPayload carries all seven fields; the caller supplies the id, it is
// never auto-assigned.
type userPayload struct {
	ID        *int64  `json:"id" validate:"required"`
	FirstName *string `json:"first_name" validate:"required"`
	LastName  *string `json:"last_name" validate:"required"`
	Age       *int64  `json:"age" validate:"required"`
	Email     *string `json:"email" validate:"required"`
	Role      *string `json:"role" validate:"required"`
	Phone     *string `json:"phone" validate:"required"`
}

func (p *userPayload) model() *models.User {
	return &models.User{
		ID:        *p.ID,
		FirstName: *p.FirstName,
		LastName:  *p.LastName,
		Age:       *p.Age,
		Email:     *p.Email,
		Role:      *p.Role,
		Phone:     *p.Phone,
	}
}

func (h *UsersHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userRepo.ListUsers(r.Context())
	if err != nil {
		writeError(w, "failed to list users", http.StatusInternalServerError)
		return
	}

	if users == nil {
		users = []models.User{}
	}

	writeJSON(w, users, http.StatusOK)
}

func (h *UsersHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req userPayload
	if err := decodeBody(r, &req); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.userRepo.CreateUser(r.Context(), req.model()); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			writeError(w, "user id already exists", http.StatusConflict)
			return
		}

		writeError(w, "failed to store user", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *UsersHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, "invalid id", http.StatusBadRequest)
		return
	}

	user, err := h.userRepo.GetUserByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			notFound(w)
			return
		}

		writeError(w, "failed to load user", http.StatusInternalServerError)
		return
	}

	writeJSON(w, user, http.StatusOK)
}

// UpdateUser replaces every field of the row, including the primary key
// when the body carries a different id.
func (h *UsersHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req userPayload
	if err := decodeBody(r, &req); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.userRepo.UpdateUser(r.Context(), id, req.model()); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			notFound(w)
		case errors.Is(err, repository.ErrConflict):
			writeError(w, "user id already exists", http.StatusConflict)
		default:
			writeError(w, "failed to update user", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *UsersHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.userRepo.DeleteUser(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			notFound(w)
			return
		}

		writeError(w, "failed to delete user", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
