package models

// Wire types mirror the raw JSON the API serves: snake_case keys and `_id`
// identifiers. Each wire type owns exactly one Domain conversion, shared by
// every operation that returns the entity, so the field mapping lives in one
// place. The From* constructors produce wire payloads for serving the same
// contract (used by the bundled stub server).

// WireProduct is a product as serialized by the API.
type WireProduct struct {
	ID            int     `json:"_id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
	Description   string  `json:"description"`
}

// Domain converts the wire product into its normalized form.
func (w WireProduct) Domain() Product {
	return Product{
		ID:            w.ID,
		Name:          w.Name,
		Category:      w.Category,
		Price:         w.Price,
		StockQuantity: w.StockQuantity,
		Description:   w.Description,
	}
}

// FromProduct builds the wire form of a product.
func FromProduct(p Product) WireProduct {
	return WireProduct{
		ID:            p.ID,
		Name:          p.Name,
		Category:      p.Category,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		Description:   p.Description,
	}
}

// WireCustomer is a customer as serialized by the API. Contact keys are
// identical on both sides, so the domain struct is embedded directly.
type WireCustomer struct {
	ID               int            `json:"_id"`
	Name             string         `json:"name"`
	Contact          ContactDetails `json:"contact"`
	MembershipStatus string         `json:"membership_status"`
	PreviousOrders   []int          `json:"previous_orders"`
}

// Domain converts the wire customer into its normalized form.
func (w WireCustomer) Domain() Customer {
	return Customer{
		ID:               w.ID,
		Name:             w.Name,
		Contact:          w.Contact,
		MembershipStatus: MembershipStatus(w.MembershipStatus),
		PreviousOrders:   w.PreviousOrders,
	}
}

// FromCustomer builds the wire form of a customer.
func FromCustomer(c Customer) WireCustomer {
	return WireCustomer{
		ID:               c.ID,
		Name:             c.Name,
		Contact:          c.Contact,
		MembershipStatus: string(c.MembershipStatus),
		PreviousOrders:   c.PreviousOrders,
	}
}

// WireOrderLine is one product/quantity pair as serialized by the API.
type WireOrderLine struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// WireOrder is an order as serialized by the API.
type WireOrder struct {
	ID             int             `json:"_id"`
	CustomerID     int             `json:"customer_id"`
	Products       []WireOrderLine `json:"products"`
	OrderDate      string          `json:"order_date"`
	TotalPrice     float64         `json:"total_price"`
	DeliveryStatus string          `json:"delivery_status"`
	OrderStatus    string          `json:"order_status"`
}

// Domain converts the wire order into its normalized form.
func (w WireOrder) Domain() Order {
	lines := make([]OrderLine, len(w.Products))
	for i, p := range w.Products {
		lines[i] = OrderLine{ProductID: p.ProductID, Quantity: p.Quantity}
	}
	return Order{
		ID:             w.ID,
		CustomerID:     w.CustomerID,
		Products:       lines,
		OrderDate:      w.OrderDate,
		TotalPrice:     w.TotalPrice,
		DeliveryStatus: w.DeliveryStatus,
		OrderStatus:    w.OrderStatus,
	}
}

// FromOrder builds the wire form of an order.
func FromOrder(o Order) WireOrder {
	lines := make([]WireOrderLine, len(o.Products))
	for i, p := range o.Products {
		lines[i] = WireOrderLine{ProductID: p.ProductID, Quantity: p.Quantity}
	}
	return WireOrder{
		ID:             o.ID,
		CustomerID:     o.CustomerID,
		Products:       lines,
		OrderDate:      o.OrderDate,
		TotalPrice:     o.TotalPrice,
		DeliveryStatus: o.DeliveryStatus,
		OrderStatus:    o.OrderStatus,
	}
}

// WireLoginResponse is the login endpoint's payload. The admin fields use a
// different key set here (admin_id, full_name) than on the logged-in-admin
// endpoint; both converge on the same Admin type.
type WireLoginResponse struct {
	AdminID      string `json:"admin_id"`
	FullName     string `json:"full_name"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	Email        string `json:"email"`
	ProfilePhoto string `json:"profile_photo"`
	Token        string `json:"token"`
}

// Domain converts the login payload into a normalized Admin.
func (w WireLoginResponse) Domain() Admin {
	return Admin{
		ID:           w.AdminID,
		FullName:     w.FullName,
		Username:     w.Username,
		Password:     w.Password,
		Email:        w.Email,
		ProfilePhoto: w.ProfilePhoto,
	}
}

// WireAdmin is an admin as serialized by the logged-in-admin endpoint.
type WireAdmin struct {
	ID           string `json:"id"`
	FullName     string `json:"fullname"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	ProfilePhoto string `json:"profile_photo"`
}

// Domain converts the wire admin into its normalized form.
func (w WireAdmin) Domain() Admin {
	return Admin{
		ID:           w.ID,
		FullName:     w.FullName,
		Username:     w.Username,
		Email:        w.Email,
		ProfilePhoto: w.ProfilePhoto,
	}
}

// WireSignupRequest is the signup endpoint's request body.
type WireSignupRequest struct {
	FullName     string `json:"fullname"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	Email        string `json:"email"`
	ProfilePhoto string `json:"profile_photo"`
}

// FromAdmin builds the signup body for an admin account.
func FromAdmin(a Admin) WireSignupRequest {
	return WireSignupRequest{
		FullName:     a.FullName,
		Username:     a.Username,
		Password:     a.Password,
		Email:        a.Email,
		ProfilePhoto: a.ProfilePhoto,
	}
}

// WireCustomerSales is one total-sales-per-customer row as serialized by
// the API.
type WireCustomerSales struct {
	CustomerID int     `json:"customer_id"`
	TotalSale  float64 `json:"total_sale"`
}

// Domain converts the sales row into its normalized form.
func (w WireCustomerSales) Domain() CustomerSales {
	return CustomerSales{CustomerID: w.CustomerID, TotalSale: w.TotalSale}
}

// WireCustomerOrderCount is one total-orders-per-customer row as serialized
// by the API.
type WireCustomerOrderCount struct {
	CustomerID  int `json:"customer_id"`
	TotalOrders int `json:"total_orders"`
}

// Domain converts the order-count row into its normalized form.
func (w WireCustomerOrderCount) Domain() CustomerOrderCount {
	return CustomerOrderCount{CustomerID: w.CustomerID, TotalOrders: w.TotalOrders}
}

// WireUpdateOrderStatusRequest is the update-order-status request body.
type WireUpdateOrderStatusRequest struct {
	OrderID     int    `json:"order_id"`
	OrderStatus string `json:"order_status"`
}

// WireLoginRequest is the login endpoint's request body. The username field
// also accepts the account email.
type WireLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// WireMessage is the generic `{message}` payload the API returns for writes
// and auth confirmations.
type WireMessage struct {
	Message string `json:"message"`
}
