package api

import (
	"github.com/avdeev/workboard/internal/db"
	"github.com/avdeev/workboard/internal/repository/sqlite"
	"github.com/gorilla/mux"
)

func SetupRoutes(version, buildTime string, database *db.DB) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// Repository
	repo := sqlite.New(database)

	// Create handlers
	systemHandler := &SystemHandler{}
	usersHandler := NewUsersHandler(repo)
	ordersHandler := NewOrdersHandler(repo, repo)
	offersHandler := NewOffersHandler(repo)

	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")

	// Users endpoints
	r.HandleFunc("/users", usersHandler.ListUsers).Methods("GET")
	r.HandleFunc("/users", usersHandler.CreateUser).Methods("POST")
	r.HandleFunc("/users/{id:[0-9]+}", usersHandler.GetUser).Methods("GET")
	r.HandleFunc("/users/{id:[0-9]+}", usersHandler.UpdateUser).Methods("PUT")
	r.HandleFunc("/users/{id:[0-9]+}", usersHandler.DeleteUser).Methods("DELETE")

	// Orders endpoints
	r.HandleFunc("/orders", ordersHandler.ListOrders).Methods("GET")
	r.HandleFunc("/orders", ordersHandler.CreateOrder).Methods("POST")
	r.HandleFunc("/orders/{id:[0-9]+}", ordersHandler.GetOrder).Methods("GET")
	r.HandleFunc("/orders/{id:[0-9]+}", ordersHandler.UpdateOrder).Methods("PUT")
	r.HandleFunc("/orders/{id:[0-9]+}", ordersHandler.DeleteOrder).Methods("DELETE")

	// Offers endpoints
	r.HandleFunc("/offers", offersHandler.ListOffers).Methods("GET")
	r.HandleFunc("/offers", offersHandler.CreateOffer).Methods("POST")
	r.HandleFunc("/offers/{id:[0-9]+}", offersHandler.GetOffer).Methods("GET")
	r.HandleFunc("/offers/{id:[0-9]+}", offersHandler.UpdateOffer).Methods("PUT")
	r.HandleFunc("/offers/{id:[0-9]+}", offersHandler.DeleteOffer).Methods("DELETE")

	return r
}
