package models

// Domain models matching the database schema in db/schema.sql

type User struct {
	ID        int64  `json:"id" db:"id"`
	FirstName string `json:"first_name" db:"first_name" validate:"required"`
	LastName  string `json:"last_name" db:"last_name"`
	Age       int64  `json:"age" db:"age"`
	Email     string `json:"email" db:"email" validate:"required,email"`
	Role      string `json:"role" db:"role"`
	Phone     string `json:"phone" db:"phone"`
}

type Order struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name" validate:"required"`
	Description string `json:"description" db:"description"`
	StartDate   Date   `json:"start_date" db:"start_date"`
	EndDate     Date   `json:"end_date" db:"end_date"`
	Address     string `json:"address" db:"address"`
	Price       int64  `json:"price" db:"price"`
	CustomerID  int64  `json:"customer_id" db:"customer_id"`
	// ExecutorID stays nil while no executor has been assigned.
	ExecutorID *int64 `json:"executor_id" db:"executor_id"`
}

type Offer struct {
	ID         int64 `json:"id" db:"id"`
	OrderID    int64 `json:"order_id" db:"order_id"`
	ExecutorID int64 `json:"executor_id" db:"executor_id"`
}
