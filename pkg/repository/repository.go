package repository

import (
	"context"
	"errors"

	"github.com/avdeev/workboard/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.

// Sentinel errors surfaced by implementations. Absent rows and key
// collisions must be distinguishable from plain query failures.
var (
	ErrNotFound = errors.New("resource not found")
	ErrConflict = errors.New("constraint violation")
)

type UserRepo interface {
	CreateUser(ctx context.Context, u *models.User) error
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, id int64, u *models.User) error
	DeleteUser(ctx context.Context, id int64) error
}

type OrderRepo interface {
	// CreateOrder assigns o.ID from the store when o.ID is zero.
	CreateOrder(ctx context.Context, o *models.Order) error
	GetOrderByID(ctx context.Context, id int64) (*models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	UpdateOrder(ctx context.Context, id int64, o *models.Order) error
	DeleteOrder(ctx context.Context, id int64) error
}

type OfferRepo interface {
	CreateOffer(ctx context.Context, o *models.Offer) error
	GetOfferByID(ctx context.Context, id int64) (*models.Offer, error)
	ListOffers(ctx context.Context) ([]models.Offer, error)
	UpdateOffer(ctx context.Context, id int64, o *models.Offer) error
	DeleteOffer(ctx context.Context, id int64) error
}
