package models

// Product is the normalized product record consumed by dashboard code.
type Product struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stockQuantity"`
	Description   string  `json:"description"`
}

// ContactDetails holds a customer's contact information.
type ContactDetails struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Customer is the normalized customer record. PreviousOrders carries raw
// order identifiers; resolving them to display data is the caller's job.
type Customer struct {
	ID               int              `json:"id"`
	Name             string           `json:"name"`
	Contact          ContactDetails   `json:"contact"`
	MembershipStatus MembershipStatus `json:"membershipStatus"`
	PreviousOrders   []int            `json:"previousOrders"`
}

// OrderLine is one product/quantity pair inside an order.
type OrderLine struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// Order is the normalized order record.
type Order struct {
	ID             int         `json:"id"`
	CustomerID     int         `json:"customerId"`
	Products       []OrderLine `json:"products"`
	OrderDate      string      `json:"orderDate"`
	TotalPrice     float64     `json:"totalPrice"`
	DeliveryStatus string      `json:"deliveryStatus"`
	OrderStatus    string      `json:"orderStatus"`
}

// Admin is a dashboard administrator account. The ID is a string because the
// server issues ObjectId/UUID identifiers for admins, unlike every other
// entity. Password is only populated on write paths (signup) and on the
// login response.
type Admin struct {
	ID           string `json:"id,omitempty"`
	FullName     string `json:"fullName"`
	Username     string `json:"username"`
	Password     string `json:"password,omitempty"`
	Email        string `json:"email"`
	ProfilePhoto string `json:"profilePhoto,omitempty"`
	Gender       Gender `json:"gender,omitempty"`
}

// Gender options offered on the signup form.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// ProfilePhoto filenames the server accepts.
const (
	ProfilePhotoMale    = "male.png"
	ProfilePhotoFemale  = "female.png"
	ProfilePhotoDefault = "avatar_placeholder.png"
)

// MembershipStatus classifies customers.
type MembershipStatus string

const (
	Member    MembershipStatus = "Member"
	NonMember MembershipStatus = "Non-member"
)

// Order status progression. The API accepts any value at any time; the
// sequence below is the expected linear flow, not an enforced state machine.
const (
	OrderReceived        = "Order Received"
	PreparingForDispatch = "Preparing for Dispatch"
	Dispatched           = "Dispatched"
	InTransit            = "In Transit"
	Delivered            = "Delivered"
)

// SortOrder selects the direction of a sorted query.
type SortOrder int

const (
	SortAscending SortOrder = iota
	SortDescending
)

// Wire returns the query-parameter value for the sort order. The mapping is
// an explicit lookup so that no third value can ever reach the wire.
func (s SortOrder) Wire() (string, bool) {
	switch s {
	case SortAscending:
		return "asc", true
	case SortDescending:
		return "desc", true
	default:
		return "", false
	}
}

// OrderDetailLine is one product row inside a joined order summary. The
// server pre-formats the monetary totals as strings.
type OrderDetailLine struct {
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	TotalPrice string  `json:"totalPrice"`
}

// OrderDetails is a joined order/customer/product summary row as served by
// the fetch-orders-with-details endpoint. Unlike the entity endpoints, the
// server emits this shape in camelCase already, so it decodes directly.
type OrderDetails struct {
	ID             int               `json:"id"`
	CustomerID     int               `json:"customerId"`
	CustomerName   string            `json:"customerName"`
	OrderDate      string            `json:"orderDate"`
	Products       []OrderDetailLine `json:"products"`
	TotalPrice     string            `json:"totalPrice"`
	TotalQuantity  int               `json:"totalQuantity"`
	TotalSales     string            `json:"totalSales"`
	DeliveryStatus string            `json:"deliveryStatus"`
	OrderStatus    string            `json:"orderStatus"`
}

// CustomerSales is one row of the total-sales-per-customer aggregate.
type CustomerSales struct {
	CustomerID int     `json:"customerId"`
	TotalSale  float64 `json:"totalSale"`
}

// CustomerOrderCount is one row of the total-orders-per-customer aggregate.
type CustomerOrderCount struct {
	CustomerID  int `json:"customerId"`
	TotalOrders int `json:"totalOrders"`
}
