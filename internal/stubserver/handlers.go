package stubserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"inventory-dashboard-connector/internal/models"
)

// writeJSONResponse is a helper function to write JSON responses
func writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// parseIntList reads every occurrence of key from the query string. The API
// contract uses repeated keys for array parameters, which is exactly what
// url.Query() collects.
func parseIntList(r *http.Request, key string) ([]int, error) {
	raw := r.URL.Query()[key]
	ids := make([]int, 0, len(raw))
	for _, v := range raw {
		id, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q", key, v)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func wireProducts(products []models.Product) []models.WireProduct {
	wire := make([]models.WireProduct, len(products))
	for i, p := range products {
		wire[i] = models.FromProduct(p)
	}
	return wire
}

func wireCustomers(customers []models.Customer) []models.WireCustomer {
	wire := make([]models.WireCustomer, len(customers))
	for i, c := range customers {
		wire[i] = models.FromCustomer(c)
	}
	return wire
}

func wireOrders(orders []models.Order) []models.WireOrder {
	wire := make([]models.WireOrder, len(orders))
	for i, o := range orders {
		wire[i] = models.FromOrder(o)
	}
	return wire
}

// HealthHandler serves the connectivity probes.
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// DatabaseConnectivity handles GET /api/db_connectivity. The in-memory store
// is always reachable, so this only signals the process is up.
func (h *HealthHandler) DatabaseConnectivity(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, map[string]float64{"ok": 1})
}

// ServerConnectivity handles GET /api/server_connectivity.
func (h *HealthHandler) ServerConnectivity(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, map[string]string{"message": "Stub API is working!"})
}

// ProductHandler serves the product query endpoints.
type ProductHandler struct {
	store *Store
}

// NewProductHandler creates a new product handler
func NewProductHandler(store *Store) *ProductHandler {
	return &ProductHandler{store: store}
}

// AllProducts handles GET /api/all-products
func (h *ProductHandler) AllProducts(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, wireProducts(h.store.AllProducts()))
}

// SearchByName handles GET /api/search-products-by-name
func (h *ProductHandler) SearchByName(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	writeJSONResponse(w, http.StatusOK, wireProducts(h.store.SearchProductsByName(query)))
}

// WithinPriceRange handles GET /api/find-products-within-price-range
func (h *ProductHandler) WithinPriceRange(w http.ResponseWriter, r *http.Request) {
	min, errMin := strconv.ParseFloat(r.URL.Query().Get("min_price"), 64)
	max, errMax := strconv.ParseFloat(r.URL.Query().Get("max_price"), 64)
	if errMin != nil || errMax != nil {
		writeJSONResponse(w, http.StatusInternalServerError, map[string]string{"error": "min_price and max_price must be numbers"})
		return
	}
	writeJSONResponse(w, http.StatusOK, wireProducts(h.store.ProductsWithinPriceRange(min, max)))
}

// ByCategories handles GET /api/find-products-by-multiple-categories
func (h *ProductHandler) ByCategories(w http.ResponseWriter, r *http.Request) {
	categories := r.URL.Query()["category"]
	products := h.store.ProductsByCategories(categories)
	if len(products) == 0 {
		writeJSONResponse(w, http.StatusNotFound, map[string]string{"error": "No products found for the specified category."})
		return
	}
	writeJSONResponse(w, http.StatusOK, wireProducts(products))
}

// SortedByPrice handles GET /api/products-sorted-by-price
func (h *ProductHandler) SortedByPrice(w http.ResponseWriter, r *http.Request) {
	// Anything other than desc sorts ascending, as the production API does.
	ascending := r.URL.Query().Get("sort_order") != "desc"
	writeJSONResponse(w, http.StatusOK, wireProducts(h.store.ProductsSortedByPrice(ascending)))
}

// ByIDs handles GET /api/find-products-by-product-ids
func (h *ProductHandler) ByIDs(w http.ResponseWriter, r *http.Request) {
	ids, err := parseIntList(r, "product_ids")
	if err != nil {
		writeJSONResponse(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	products := h.store.ProductsByIDs(ids)
	if len(products) == 0 {
		writeJSONResponse(w, http.StatusNotFound, map[string]string{"error": "No products found."})
		return
	}
	writeJSONResponse(w, http.StatusOK, wireProducts(products))
}

// CustomerHandler serves the customer query endpoints.
type CustomerHandler struct {
	store *Store
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(store *Store) *CustomerHandler {
	return &CustomerHandler{store: store}
}

// AllCustomers handles GET /api/all-customers
func (h *CustomerHandler) AllCustomers(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, wireCustomers(h.store.AllCustomers()))
}

// SearchByName handles GET /api/search-customers-by-name
func (h *CustomerHandler) SearchByName(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	writeJSONResponse(w, http.StatusOK, wireCustomers(h.store.SearchCustomersByName(query)))
}

// ByMembershipStatus handles GET /api/find-customers-by-membership-status
func (h *CustomerHandler) ByMembershipStatus(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("membership_status")
	if status == "" {
		writeJSONResponse(w, http.StatusBadRequest, map[string]string{"error": "Missing membership_status parameter"})
		return
	}
	customers := h.store.CustomersByMembershipStatus(models.MembershipStatus(status))
	if len(customers) == 0 {
		writeJSONResponse(w, http.StatusNotFound, map[string]string{"error": "No customers found with the provided membership status"})
		return
	}
	writeJSONResponse(w, http.StatusOK, wireCustomers(customers))
}

// ByEmail handles GET /api/find-customer-by-email
func (h *CustomerHandler) ByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeJSONResponse(w, http.StatusBadRequest, map[string]string{"error": "Missing email parameter"})
		return
	}
	writeJSONResponse(w, http.StatusOK, wireCustomers(h.store.CustomersByEmail(email)))
}

// ByID handles GET /api/get-customer-by-customer-id
func (h *CustomerHandler) ByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get("customer_id"))
	if err != nil {
		writeJSONResponse(w, http.StatusBadRequest, map[string]string{"error": "customer_id must be an integer"})
		return
	}
	customer, ok := h.store.CustomerByID(id)
	if !ok {
		writeJSONResponse(w, http.StatusNotFound, map[string]string{"error": "No customer found."})
		return
	}
	writeJSONResponse(w, http.StatusOK, models.FromCustomer(customer))
}

// ByPreviousOrders handles GET /api/find-customer-by-previous-orders
func (h *CustomerHandler) ByPreviousOrders(w http.ResponseWriter, r *http.Request) {
	ids, err := parseIntList(r, "previous_orders")
	if err != nil {
		writeJSONResponse(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSONResponse(w, http.StatusOK, wireCustomers(h.store.CustomersByPreviousOrders(ids)))
}

// TotalSales handles GET /api/total-sales-per-customer
func (h *CustomerHandler) TotalSales(w http.ResponseWriter, r *http.Request) {
	rows := h.store.TotalSalesPerCustomer()
	if len(rows) == 0 {
		writeJSONResponse(w, http.StatusNotFound, map[string]string{"error": "No orders found"})
		return
	}
	writeJSONResponse(w, http.StatusOK, rows)
}

// TotalOrders handles GET /api/total-orders-per-customer
func (h *CustomerHandler) TotalOrders(w http.ResponseWriter, r *http.Request) {
	rows := h.store.TotalOrdersPerCustomer()
	if len(rows) == 0 {
		writeJSONResponse(w, http.StatusNotFound, map[string]string{"error": "No customers found"})
		return
	}
	writeJSONResponse(w, http.StatusOK, rows)
}

// OrderHandler serves the order query and mutation endpoints.
type OrderHandler struct {
	store *Store
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(store *Store) *OrderHandler {
	return &OrderHandler{store: store}
}

// AllOrders handles GET /api/all-orders
func (h *OrderHandler) AllOrders(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, wireOrders(h.store.AllOrders()))
}

// ByIDs handles GET /api/find-orders-by-order-ids
func (h *OrderHandler) ByIDs(w http.ResponseWriter, r *http.Request) {
	ids, err := parseIntList(r, "order_ids")
	if err != nil {
		writeJSONResponse(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	orders := h.store.OrdersByIDs(ids)
	if len(orders) == 0 {
		writeJSONResponse(w, http.StatusNotFound, map[string]interface{}{"error": ids})
		return
	}
	writeJSONResponse(w, http.StatusOK, wireOrders(orders))
}

// ByCustomerName handles GET /api/search-orders-by-customer-name
func (h *OrderHandler) ByCustomerName(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	writeJSONResponse(w, http.StatusOK, wireOrders(h.store.OrdersByCustomerName(query)))
}

// UpdateStatus handles PUT /api/update-order-status
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req models.WireUpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONResponse(w, http.StatusBadRequest, map[string]string{"message": "Invalid JSON"})
		return
	}

	if h.store.UpdateOrderStatus(req.OrderID, req.OrderStatus) {
		writeJSONResponse(w, http.StatusOK, map[string]string{
			"message": fmt.Sprintf("Order %d marked as %s successfully !", req.OrderID, req.OrderStatus),
		})
		return
	}
	writeJSONResponse(w, http.StatusNotFound, map[string]string{
		"message": "Failed to update the status for this order. Please try again!",
	})
}

// TotalPrice handles GET /api/get-total-price-of-all-orders
func (h *OrderHandler) TotalPrice(w http.ResponseWriter, r *http.Request) {
	ids, err := parseIntList(r, "orders")
	if err != nil {
		writeJSONResponse(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSONResponse(w, http.StatusOK, h.store.TotalPriceOfOrders(ids))
}

// WithDetails handles GET /api/fetch-orders-with-details
func (h *OrderHandler) WithDetails(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, h.store.OrderDetails())
}

// WithProductCount handles GET /api/orders-with-number-of-products
func (h *OrderHandler) WithProductCount(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(r.URL.Query().Get("num_products"))
	if err != nil {
		writeJSONResponse(w, http.StatusInternalServerError, map[string]string{"error": "num_products must be an integer"})
		return
	}
	writeJSONResponse(w, http.StatusOK, h.store.OrdersWithProductCount(n))
}

// AuthHandler serves signup, login, logout and the logged-in-admin lookup.
type AuthHandler struct {
	store *Store
	auth  *AuthManager
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(store *Store, auth *AuthManager) *AuthHandler {
	return &AuthHandler{store: store, auth: auth}
}

// Signup handles POST /api/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.WireSignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONResponse(w, http.StatusBadRequest, map[string]string{"message": "Invalid JSON"})
		return
	}
	if req.Password == "" {
		writeJSONResponse(w, http.StatusBadRequest, map[string]string{"message": "Password is required."})
		return
	}

	account := AdminAccount{
		ID:           uuid.NewString(),
		FullName:     req.FullName,
		Username:     req.Username,
		PasswordHash: HashPassword(req.Password),
		Email:        req.Email,
		ProfilePhoto: req.ProfilePhoto,
	}
	if err := h.store.CreateAdmin(account); err != nil {
		writeJSONResponse(w, http.StatusBadRequest, map[string]string{
			"message": "An account is already registered with this email. Please log in instead.",
		})
		return
	}

	writeJSONResponse(w, http.StatusCreated, map[string]string{
		"message":  "Admin created successfully!",
		"admin_id": account.ID,
	})
}

// Login handles POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.WireLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONResponse(w, http.StatusBadRequest, map[string]string{"message": "Invalid JSON"})
		return
	}

	account, ok := h.store.AdminByUsernameOrEmail(req.Username)
	if !ok {
		writeJSONResponse(w, http.StatusUnauthorized, map[string]string{
			"message": "Username or email not found. Please check your credentials or sign up to create a new account.",
		})
		return
	}
	if account.PasswordHash != HashPassword(req.Password) {
		writeJSONResponse(w, http.StatusUnauthorized, map[string]string{"message": "Password is incorrect"})
		return
	}

	token, err := h.auth.Issue(account.ID, account.Username)
	if err != nil {
		writeJSONResponse(w, http.StatusInternalServerError, map[string]string{"message": "Failed to issue token"})
		return
	}

	writeJSONResponse(w, http.StatusOK, models.WireLoginResponse{
		AdminID:      account.ID,
		FullName:     account.FullName,
		Username:     account.Username,
		Password:     account.PasswordHash,
		Email:        account.Email,
		ProfilePhoto: account.ProfilePhoto,
		Token:        token,
	})
}

// Logout handles GET /api/logout (token required).
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.auth.Revoke(r.Header.Get(tokenHeader))
	writeJSONResponse(w, http.StatusOK, map[string]string{"message": "Logout successful"})
}

// LoggedInAdmin handles GET /api/logged-in-admin (token required).
func (h *AuthHandler) LoggedInAdmin(w http.ResponseWriter, r *http.Request) {
	account, ok := h.store.AdminByID(adminIDFromContext(r.Context()))
	if !ok {
		writeJSONResponse(w, http.StatusNotFound, map[string]string{"message": "Admin not found"})
		return
	}

	writeJSONResponse(w, http.StatusOK, models.WireAdmin{
		ID:           account.ID,
		FullName:     account.FullName,
		Username:     account.Username,
		Email:        account.Email,
		ProfilePhoto: account.ProfilePhoto,
	})
}
