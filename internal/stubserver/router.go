package stubserver

import (
	"github.com/gorilla/mux"
)

// NewRouter wires every endpoint of the API contract onto a mux router. The
// same router backs the dev server binary and the connector's tests.
func NewRouter(store *Store, auth *AuthManager) *mux.Router {
	healthHandler := NewHealthHandler()
	productHandler := NewProductHandler(store)
	customerHandler := NewCustomerHandler(store)
	orderHandler := NewOrderHandler(store)
	authHandler := NewAuthHandler(store, auth)

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	// Connectivity probes (no auth required)
	api.HandleFunc("/db_connectivity", healthHandler.DatabaseConnectivity).Methods("GET")
	api.HandleFunc("/server_connectivity", healthHandler.ServerConnectivity).Methods("GET")

	// Product queries
	api.HandleFunc("/all-products", productHandler.AllProducts).Methods("GET")
	api.HandleFunc("/search-products-by-name", productHandler.SearchByName).Methods("GET")
	api.HandleFunc("/find-products-within-price-range", productHandler.WithinPriceRange).Methods("GET")
	api.HandleFunc("/find-products-by-multiple-categories", productHandler.ByCategories).Methods("GET")
	api.HandleFunc("/products-sorted-by-price", productHandler.SortedByPrice).Methods("GET")
	api.HandleFunc("/find-products-by-product-ids", productHandler.ByIDs).Methods("GET")

	// Customer queries
	api.HandleFunc("/all-customers", customerHandler.AllCustomers).Methods("GET")
	api.HandleFunc("/search-customers-by-name", customerHandler.SearchByName).Methods("GET")
	api.HandleFunc("/find-customers-by-membership-status", customerHandler.ByMembershipStatus).Methods("GET")
	api.HandleFunc("/find-customer-by-email", customerHandler.ByEmail).Methods("GET")
	api.HandleFunc("/get-customer-by-customer-id", customerHandler.ByID).Methods("GET")
	api.HandleFunc("/find-customer-by-previous-orders", customerHandler.ByPreviousOrders).Methods("GET")
	api.HandleFunc("/total-sales-per-customer", customerHandler.TotalSales).Methods("GET")
	api.HandleFunc("/total-orders-per-customer", customerHandler.TotalOrders).Methods("GET")

	// Order queries and mutations
	api.HandleFunc("/all-orders", orderHandler.AllOrders).Methods("GET")
	api.HandleFunc("/find-orders-by-order-ids", orderHandler.ByIDs).Methods("GET")
	api.HandleFunc("/search-orders-by-customer-name", orderHandler.ByCustomerName).Methods("GET")
	api.HandleFunc("/update-order-status", orderHandler.UpdateStatus).Methods("PUT")
	api.HandleFunc("/get-total-price-of-all-orders", orderHandler.TotalPrice).Methods("GET")
	api.HandleFunc("/fetch-orders-with-details", orderHandler.WithDetails).Methods("GET")
	api.HandleFunc("/orders-with-number-of-products", orderHandler.WithProductCount).Methods("GET")

	// Authentication
	api.HandleFunc("/signup", authHandler.Signup).Methods("POST")
	api.HandleFunc("/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/logout", auth.RequireToken(authHandler.Logout)).Methods("GET")
	api.HandleFunc("/logged-in-admin", auth.RequireToken(authHandler.LoggedInAdmin)).Methods("GET")

	return r
}
