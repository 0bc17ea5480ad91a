package stubserver

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"inventory-dashboard-connector/internal/models"
)

// AdminAccount is an admin record as the store keeps it: the public fields
// plus the password hash.
type AdminAccount struct {
	ID           string
	FullName     string
	Username     string
	PasswordHash string
	Email        string
	ProfilePhoto string
}

// Store is the stub server's in-memory dataset. It serves the same query
// surface the production database does, so the connector can be exercised
// end to end without the real API.
type Store struct {
	mu        sync.RWMutex
	products  map[int]models.Product
	customers map[int]models.Customer
	orders    map[int]models.Order
	admins    map[string]AdminAccount
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		products:  make(map[int]models.Product),
		customers: make(map[int]models.Customer),
		orders:    make(map[int]models.Order),
		admins:    make(map[string]AdminAccount),
	}
}

// PutProduct inserts or replaces a product.
func (s *Store) PutProduct(p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = p
}

// PutCustomer inserts or replaces a customer.
func (s *Store) PutCustomer(c models.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers[c.ID] = c
}

// PutOrder inserts or replaces an order.
func (s *Store) PutOrder(o models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID] = o
}

// AllProducts returns every product ordered by id.
func (s *Store) AllProducts() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products
}

// SearchProductsByName returns products whose name contains query,
// case-insensitive, ordered by name.
func (s *Store) SearchProductsByName(query string) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query = strings.ToLower(query)
	var matches []models.Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), query) {
			matches = append(matches, p)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Name < matches[j].Name })
	return matches
}

// ProductsWithinPriceRange returns products priced in [min, max], ordered by
// id.
func (s *Store) ProductsWithinPriceRange(min, max float64) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []models.Product
	for _, p := range s.products {
		if p.Price >= min && p.Price <= max {
			matches = append(matches, p)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches
}

// ProductsByCategories returns products belonging to any of the given
// categories, ordered by id.
func (s *Store) ProductsByCategories(categories []string) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[string]bool, len(categories))
	for _, c := range categories {
		wanted[c] = true
	}

	var matches []models.Product
	for _, p := range s.products {
		if wanted[p.Category] {
			matches = append(matches, p)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches
}

// ProductsSortedByPrice returns every product ordered by price.
func (s *Store) ProductsSortedByPrice(ascending bool) []models.Product {
	products := s.AllProducts()
	sort.SliceStable(products, func(i, j int) bool {
		if ascending {
			return products[i].Price < products[j].Price
		}
		return products[i].Price > products[j].Price
	})
	return products
}

// ProductsByIDs returns the products with the given ids, ordered by id.
func (s *Store) ProductsByIDs(ids []int) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []models.Product
	for _, id := range ids {
		if p, ok := s.products[id]; ok {
			matches = append(matches, p)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches
}

// AllCustomers returns every customer ordered by id.
func (s *Store) AllCustomers() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	customers := make([]models.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		customers = append(customers, c)
	}
	sort.Slice(customers, func(i, j int) bool { return customers[i].ID < customers[j].ID })
	return customers
}

// SearchCustomersByName returns customers whose name contains query,
// case-insensitive, ordered by name.
func (s *Store) SearchCustomersByName(query string) []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query = strings.ToLower(query)
	var matches []models.Customer
	for _, c := range s.customers {
		if strings.Contains(strings.ToLower(c.Name), query) {
			matches = append(matches, c)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Name < matches[j].Name })
	return matches
}

// CustomersByMembershipStatus returns customers with the given status,
// ordered by id.
func (s *Store) CustomersByMembershipStatus(status models.MembershipStatus) []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []models.Customer
	for _, c := range s.customers {
		if c.MembershipStatus == status {
			matches = append(matches, c)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches
}

// CustomersByEmail returns customers with exactly the given email address.
// The comparison is case-sensitive, matching the production lookup.
func (s *Store) CustomersByEmail(email string) []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []models.Customer
	for _, c := range s.customers {
		if c.Contact.Email == email {
			matches = append(matches, c)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches
}

// CustomerByID returns the customer with the given id.
func (s *Store) CustomerByID(id int) (models.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.customers[id]
	return c, ok
}

// CustomersByPreviousOrders returns customers whose order history contains
// any of the given order ids, ordered by id.
func (s *Store) CustomersByPreviousOrders(orderIDs []int) []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[int]bool, len(orderIDs))
	for _, id := range orderIDs {
		wanted[id] = true
	}

	var matches []models.Customer
	for _, c := range s.customers {
		for _, orderID := range c.PreviousOrders {
			if wanted[orderID] {
				matches = append(matches, c)
				break
			}
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches
}

// AllOrders returns every order ordered by id.
func (s *Store) AllOrders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		orders = append(orders, o)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders
}

// OrdersByIDs returns the orders with the given ids, ordered by id.
func (s *Store) OrdersByIDs(ids []int) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []models.Order
	for _, id := range ids {
		if o, ok := s.orders[id]; ok {
			matches = append(matches, o)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches
}

// OrdersByCustomerName returns orders placed by customers whose name
// contains query, ordered by id.
func (s *Store) OrdersByCustomerName(query string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query = strings.ToLower(query)
	matching := make(map[int]bool)
	for _, c := range s.customers {
		if strings.Contains(strings.ToLower(c.Name), query) {
			matching[c.ID] = true
		}
	}

	var matches []models.Order
	for _, o := range s.orders {
		if matching[o.CustomerID] {
			matches = append(matches, o)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches
}

// UpdateOrderStatus sets the status of the given order. It reports whether
// the order exists.
func (s *Store) UpdateOrderStatus(orderID int, status string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[orderID]
	if !ok {
		return false
	}
	o.OrderStatus = status
	s.orders[orderID] = o
	return true
}

// TotalPriceOfOrders sums the stored total price of the given orders.
// Unknown ids contribute nothing.
func (s *Store) TotalPriceOfOrders(ids []int) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, id := range ids {
		if o, ok := s.orders[id]; ok {
			total += o.TotalPrice
		}
	}
	return math.Round(total*100) / 100
}

// OrderDetails joins every order with its customer and product records the
// way the production aggregation pipeline does: per-line totals from product
// price times quantity, monetary fields pre-formatted, order dates rendered
// day-first.
func (s *Store) OrderDetails() []models.OrderDetails {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sales := s.totalSalesLocked()

	details := make([]models.OrderDetails, 0, len(s.orders))
	for _, o := range s.orders {
		var customerName string
		if c, ok := s.customers[o.CustomerID]; ok {
			customerName = c.Name
		}

		var lines []models.OrderDetailLine
		var orderTotal float64
		var totalQuantity int
		for _, line := range o.Products {
			p, ok := s.products[line.ProductID]
			if !ok {
				continue
			}
			lineTotal := p.Price * float64(line.Quantity)
			lines = append(lines, models.OrderDetailLine{
				Name:       p.Name,
				Quantity:   line.Quantity,
				Price:      p.Price,
				TotalPrice: fmt.Sprintf("%.2f", lineTotal),
			})
			orderTotal += lineTotal
			totalQuantity += line.Quantity
		}

		details = append(details, models.OrderDetails{
			ID:             o.ID,
			CustomerID:     o.CustomerID,
			CustomerName:   customerName,
			OrderDate:      dayFirstDate(o.OrderDate),
			Products:       lines,
			TotalPrice:     fmt.Sprintf("%.2f", orderTotal),
			TotalQuantity:  totalQuantity,
			TotalSales:     fmt.Sprintf("%.2f", sales[o.CustomerID]),
			DeliveryStatus: o.DeliveryStatus,
			OrderStatus:    o.OrderStatus,
		})
	}
	sort.Slice(details, func(i, j int) bool { return details[i].ID < details[j].ID })
	return details
}

// OrdersWithProductCount returns the joined summaries of orders holding
// exactly numProducts distinct product lines.
func (s *Store) OrdersWithProductCount(numProducts int) []models.OrderDetails {
	all := s.OrderDetails()
	var matches []models.OrderDetails
	for _, d := range all {
		if len(d.Products) == numProducts {
			matches = append(matches, d)
		}
	}
	return matches
}

// TotalSalesPerCustomer returns the summed sales value per customer, ordered
// by customer id, rounded to cents.
func (s *Store) TotalSalesPerCustomer() []models.WireCustomerSales {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sales := s.totalSalesLocked()

	rows := make([]models.WireCustomerSales, 0, len(sales))
	for customerID, total := range sales {
		rows = append(rows, models.WireCustomerSales{
			CustomerID: customerID,
			TotalSale:  math.Round(total*100) / 100,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].CustomerID < rows[j].CustomerID })
	return rows
}

// totalSalesLocked computes per-customer sales from order lines and product
// prices. Callers must hold at least a read lock.
func (s *Store) totalSalesLocked() map[int]float64 {
	sales := make(map[int]float64)
	for _, o := range s.orders {
		for _, line := range o.Products {
			if p, ok := s.products[line.ProductID]; ok {
				sales[o.CustomerID] += p.Price * float64(line.Quantity)
			}
		}
	}
	return sales
}

// TotalOrdersPerCustomer returns the number of orders per customer, ordered
// by customer id. Customers with no orders are omitted.
func (s *Store) TotalOrdersPerCustomer() []models.WireCustomerOrderCount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[int]int)
	for _, o := range s.orders {
		counts[o.CustomerID]++
	}

	rows := make([]models.WireCustomerOrderCount, 0, len(counts))
	for customerID, n := range counts {
		rows = append(rows, models.WireCustomerOrderCount{
			CustomerID:  customerID,
			TotalOrders: n,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].CustomerID < rows[j].CustomerID })
	return rows
}

// CreateAdmin stores a new admin account. It fails when the email is already
// registered.
func (s *Store) CreateAdmin(account AdminAccount) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.admins {
		if a.Email == account.Email {
			return fmt.Errorf("an account is already registered with email %s", account.Email)
		}
	}
	s.admins[account.ID] = account
	return nil
}

// AdminByUsernameOrEmail looks an admin up by username first, then by email,
// the way the login endpoint resolves credentials.
func (s *Store) AdminByUsernameOrEmail(identifier string) (AdminAccount, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.admins {
		if a.Username == identifier {
			return a, true
		}
	}
	for _, a := range s.admins {
		if a.Email == identifier {
			return a, true
		}
	}
	return AdminAccount{}, false
}

// AdminByID returns the admin with the given id.
func (s *Store) AdminByID(id string) (AdminAccount, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.admins[id]
	return a, ok
}

// dayFirstDate re-renders an ISO date as day-first, the format the joined
// order summaries use. Unparseable values pass through untouched.
func dayFirstDate(isoDate string) string {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	return t.Format("02-01-2006")
}
