package connector

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"inventory-dashboard-connector/internal/models"
)

// AllOrders retrieves every order.
func (c *Connector) AllOrders(ctx context.Context) ([]models.Order, error) {
	var wire []models.WireOrder
	if err := c.get(ctx, "all-orders", "/api/all-orders", nil, false, &wire); err != nil {
		return nil, err
	}
	return normalizeOrders(wire), nil
}

// SearchOrdersByCustomerName finds orders placed by customers whose name
// contains query.
func (c *Connector) SearchOrdersByCustomerName(ctx context.Context, query string) ([]models.Order, error) {
	q := url.Values{}
	q.Set("query", query)

	var wire []models.WireOrder
	if err := c.get(ctx, "search-orders-by-customer-name", "/api/search-orders-by-customer-name", q, false, &wire); err != nil {
		return nil, err
	}
	return normalizeOrders(wire), nil
}

// OrdersByIDs finds orders by their identifiers.
func (c *Connector) OrdersByIDs(ctx context.Context, orderIDs []int) ([]models.Order, error) {
	q := intValues("order_ids", orderIDs)

	var wire []models.WireOrder
	if err := c.get(ctx, "find-orders-by-order-ids", "/api/find-orders-by-order-ids", q, false, &wire); err != nil {
		return nil, err
	}
	return normalizeOrders(wire), nil
}

// UpdateOrderStatus sets the order status of the given order and returns the
// server's confirmation message. The API accepts any status value; callers
// wanting the standard progression use the OrderStatus constants.
func (c *Connector) UpdateOrderStatus(ctx context.Context, orderID int, status string) (string, error) {
	body := models.WireUpdateOrderStatusRequest{
		OrderID:     orderID,
		OrderStatus: status,
	}

	var msg models.WireMessage
	if err := c.send(ctx, "update-order-status", http.MethodPut, "/api/update-order-status", nil, body, false, &msg); err != nil {
		return "", err
	}
	return msg.Message, nil
}

// TotalPriceOfOrders returns the summed total price of the given orders.
func (c *Connector) TotalPriceOfOrders(ctx context.Context, orderIDs []int) (float64, error) {
	q := intValues("orders", orderIDs)

	var total float64
	if err := c.get(ctx, "get-total-price-of-all-orders", "/api/get-total-price-of-all-orders", q, false, &total); err != nil {
		return 0, err
	}
	return total, nil
}

// OrdersWithDetails retrieves every order joined with its customer and
// product details, as pre-aggregated by the server.
func (c *Connector) OrdersWithDetails(ctx context.Context) ([]models.OrderDetails, error) {
	var details []models.OrderDetails
	if err := c.get(ctx, "fetch-orders-with-details", "/api/fetch-orders-with-details", nil, false, &details); err != nil {
		return nil, err
	}
	return details, nil
}

// OrdersWithProductCount retrieves the joined order summaries for orders
// containing exactly numProducts distinct products.
func (c *Connector) OrdersWithProductCount(ctx context.Context, numProducts int) ([]models.OrderDetails, error) {
	q := url.Values{}
	q.Set("num_products", strconv.Itoa(numProducts))

	var details []models.OrderDetails
	if err := c.get(ctx, "orders-with-number-of-products", "/api/orders-with-number-of-products", q, false, &details); err != nil {
		return nil, err
	}
	return details, nil
}

// TotalSalesPerCustomer returns the summed sales value per customer.
func (c *Connector) TotalSalesPerCustomer(ctx context.Context) ([]models.CustomerSales, error) {
	var wire []models.WireCustomerSales
	if err := c.get(ctx, "total-sales-per-customer", "/api/total-sales-per-customer", nil, false, &wire); err != nil {
		return nil, err
	}

	sales := make([]models.CustomerSales, len(wire))
	for i, w := range wire {
		sales[i] = w.Domain()
	}
	return sales, nil
}

// TotalOrdersPerCustomer returns the number of orders placed per customer.
func (c *Connector) TotalOrdersPerCustomer(ctx context.Context) ([]models.CustomerOrderCount, error) {
	var wire []models.WireCustomerOrderCount
	if err := c.get(ctx, "total-orders-per-customer", "/api/total-orders-per-customer", nil, false, &wire); err != nil {
		return nil, err
	}

	counts := make([]models.CustomerOrderCount, len(wire))
	for i, w := range wire {
		counts[i] = w.Domain()
	}
	return counts, nil
}

func normalizeOrders(wire []models.WireOrder) []models.Order {
	orders := make([]models.Order, len(wire))
	for i, w := range wire {
		orders[i] = w.Domain()
	}
	return orders
}
