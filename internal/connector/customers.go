package connector

import (
	"context"
	"net/url"
	"strconv"

	"inventory-dashboard-connector/internal/models"
)

// AllCustomers retrieves every customer.
func (c *Connector) AllCustomers(ctx context.Context) ([]models.Customer, error) {
	var wire []models.WireCustomer
	if err := c.get(ctx, "all-customers", "/api/all-customers", nil, false, &wire); err != nil {
		return nil, err
	}
	return normalizeCustomers(wire), nil
}

// SearchCustomersByName finds customers whose name contains query,
// case-insensitive.
func (c *Connector) SearchCustomersByName(ctx context.Context, query string) ([]models.Customer, error) {
	q := url.Values{}
	q.Set("query", query)

	var wire []models.WireCustomer
	if err := c.get(ctx, "search-customers-by-name", "/api/search-customers-by-name", q, false, &wire); err != nil {
		return nil, err
	}
	return normalizeCustomers(wire), nil
}

// CustomersByMembershipStatus finds customers with the given membership
// status.
func (c *Connector) CustomersByMembershipStatus(ctx context.Context, status models.MembershipStatus) ([]models.Customer, error) {
	q := url.Values{}
	q.Set("membership_status", string(status))

	var wire []models.WireCustomer
	if err := c.get(ctx, "find-customers-by-membership-status", "/api/find-customers-by-membership-status", q, false, &wire); err != nil {
		return nil, err
	}
	return normalizeCustomers(wire), nil
}

// CustomerByEmail finds customers with the given email address. The lookup
// is case-sensitive and may match more than one record.
func (c *Connector) CustomerByEmail(ctx context.Context, email string) ([]models.Customer, error) {
	q := url.Values{}
	q.Set("email", email)

	var wire []models.WireCustomer
	if err := c.get(ctx, "find-customer-by-email", "/api/find-customer-by-email", q, false, &wire); err != nil {
		return nil, err
	}
	return normalizeCustomers(wire), nil
}

// CustomerByID retrieves a single customer by identifier.
func (c *Connector) CustomerByID(ctx context.Context, customerID int) (models.Customer, error) {
	q := url.Values{}
	q.Set("customer_id", strconv.Itoa(customerID))

	var wire models.WireCustomer
	if err := c.get(ctx, "get-customer-by-customer-id", "/api/get-customer-by-customer-id", q, false, &wire); err != nil {
		return models.Customer{}, err
	}
	return wire.Domain(), nil
}

// CustomersByPreviousOrders finds the customers whose order history contains
// any of the given order ids.
func (c *Connector) CustomersByPreviousOrders(ctx context.Context, orderIDs []int) ([]models.Customer, error) {
	q := intValues("previous_orders", orderIDs)

	var wire []models.WireCustomer
	if err := c.get(ctx, "find-customer-by-previous-orders", "/api/find-customer-by-previous-orders", q, false, &wire); err != nil {
		return nil, err
	}
	return normalizeCustomers(wire), nil
}

func normalizeCustomers(wire []models.WireCustomer) []models.Customer {
	customers := make([]models.Customer, len(wire))
	for i, w := range wire {
		customers[i] = w.Domain()
	}
	return customers
}
