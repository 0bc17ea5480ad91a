package connector_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-dashboard-connector/internal/connector"
	"inventory-dashboard-connector/internal/models"
	"inventory-dashboard-connector/internal/stubserver"
)

// newTestConnector stands up the stub API and a connector pointed at it.
func newTestConnector(t *testing.T, store *stubserver.Store) *connector.Connector {
	t.Helper()

	auth := stubserver.NewAuthManager("test-secret", time.Hour)
	t.Cleanup(auth.Stop)

	server := httptest.NewServer(stubserver.NewRouter(store, auth))
	t.Cleanup(server.Close)

	return connector.New(server.URL, connector.NewMemoryTokenStore())
}

// newCaptureConnector records every request the connector sends and answers
// with a fixed body.
func newCaptureConnector(t *testing.T, responseBody string) (*connector.Connector, *capturedRequest) {
	t.Helper()

	captured := &capturedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.Method = r.Method
		captured.Path = r.URL.Path
		captured.RawQuery = r.URL.RawQuery
		captured.Count++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(responseBody))
	}))
	t.Cleanup(server.Close)

	return connector.New(server.URL, connector.NewMemoryTokenStore()), captured
}

type capturedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Count    int
}

func TestProbesAcceptAny2xx(t *testing.T) {
	conn := newTestConnector(t, stubserver.SeedStore())

	assert.NoError(t, conn.ProbeServer(context.Background()))
	assert.NoError(t, conn.ProbeDatabase(context.Background()))
}

func TestAllProductsNormalized(t *testing.T) {
	conn := newTestConnector(t, stubserver.SeedStore())

	products, err := conn.AllProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 6)

	for _, p := range products {
		assert.Greater(t, p.ID, 0, "Identifier should be populated from _id")
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Category)
		assert.NotEmpty(t, p.Description)
		assert.GreaterOrEqual(t, p.Price, 0.0)
		assert.GreaterOrEqual(t, p.StockQuantity, 0)
	}
}

func TestCategoryQueryUsesRepeatedKeys(t *testing.T) {
	conn, captured := newCaptureConnector(t, `[]`)

	_, err := conn.ProductsByCategories(context.Background(), []string{"Tables", "Chairs"})
	require.NoError(t, err)

	// One occurrence of the key per value; a comma-joined request would be a
	// different, wrong query.
	assert.Equal(t, "category=Tables&category=Chairs", captured.RawQuery)
	assert.NotEqual(t, "category=Tables%2CChairs", captured.RawQuery)
}

func TestOrderIDQueryUsesRepeatedKeys(t *testing.T) {
	conn, captured := newCaptureConnector(t, `[]`)

	_, err := conn.OrdersByIDs(context.Background(), []int{3, 1, 2})
	require.NoError(t, err)

	assert.Equal(t, "order_ids=3&order_ids=1&order_ids=2", captured.RawQuery)
}

func TestSortOrderMappingIsExact(t *testing.T) {
	conn, captured := newCaptureConnector(t, `[]`)

	_, err := conn.ProductsSortedByPrice(context.Background(), models.SortAscending)
	require.NoError(t, err)
	assert.Equal(t, "sort_order=asc", captured.RawQuery)

	_, err = conn.ProductsSortedByPrice(context.Background(), models.SortDescending)
	require.NoError(t, err)
	assert.Equal(t, "sort_order=desc", captured.RawQuery)

	requests := captured.Count
	_, err = conn.ProductsSortedByPrice(context.Background(), models.SortOrder(42))
	assert.Error(t, err)
	assert.Equal(t, requests, captured.Count, "An invalid sort order must never reach the wire")
}

func TestPriceRangeEndToEnd(t *testing.T) {
	store := stubserver.NewStore()
	store.PutProduct(models.Product{ID: 1, Name: "LACK Side Table", Category: "Tables", Price: 20, StockQuantity: 12, Description: "side table"})
	store.PutProduct(models.Product{ID: 2, Name: "POANG Armchair", Category: "Chairs", Price: 45, StockQuantity: 7, Description: "armchair"})
	store.PutProduct(models.Product{ID: 3, Name: "MARKUS Office Chair", Category: "Chairs", Price: 229, StockQuantity: 3, Description: "office chair"})
	conn := newTestConnector(t, store)

	products, err := conn.ProductsWithinPriceRange(context.Background(), 10, 50)
	require.NoError(t, err)
	require.Len(t, products, 2)

	// Server order is preserved, never re-sorted client-side.
	assert.Equal(t, 20.0, products[0].Price)
	assert.Equal(t, 12, products[0].StockQuantity)
	assert.Equal(t, 45.0, products[1].Price)
	assert.Equal(t, 7, products[1].StockQuantity)
}

func TestCustomerByID(t *testing.T) {
	conn := newTestConnector(t, stubserver.SeedStore())

	customer, err := conn.CustomerByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, customer.ID)
	assert.Equal(t, "Alice Johnson", customer.Name)
	assert.Equal(t, models.Member, customer.MembershipStatus)
	assert.Equal(t, []int{1, 3}, customer.PreviousOrders)
	assert.Equal(t, "alice.johnson@example.com", customer.Contact.Email)
}

func TestCustomersByPreviousOrders(t *testing.T) {
	conn := newTestConnector(t, stubserver.SeedStore())

	customers, err := conn.CustomersByPreviousOrders(context.Background(), []int{2, 4})
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "Bhavin Patel", customers[0].Name)
	assert.Equal(t, "Carla Mendes", customers[1].Name)
}

func TestUpdateOrderStatusUsesPut(t *testing.T) {
	conn, captured := newCaptureConnector(t, `{"message": "Order 2 marked as Dispatched successfully !"}`)

	msg, err := conn.UpdateOrderStatus(context.Background(), 2, models.Dispatched)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, captured.Method)
	assert.Equal(t, "/api/update-order-status", captured.Path)
	assert.Equal(t, "Order 2 marked as Dispatched successfully !", msg)
}

func TestUpdateOrderStatusEndToEnd(t *testing.T) {
	store := stubserver.SeedStore()
	conn := newTestConnector(t, store)

	_, err := conn.UpdateOrderStatus(context.Background(), 2, models.Delivered)
	require.NoError(t, err)

	orders, err := conn.OrdersByIDs(context.Background(), []int{2})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, models.Delivered, orders[0].OrderStatus)
}

func TestTotalPriceOfOrders(t *testing.T) {
	conn := newTestConnector(t, stubserver.SeedStore())

	total, err := conn.TotalPriceOfOrders(context.Background(), []int{1, 2})
	require.NoError(t, err)
	assert.InDelta(t, 307.98, total, 0.001)
}

func TestOrdersWithDetails(t *testing.T) {
	conn := newTestConnector(t, stubserver.SeedStore())

	details, err := conn.OrdersWithDetails(context.Background())
	require.NoError(t, err)
	require.Len(t, details, 4)

	first := details[0]
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, "Alice Johnson", first.CustomerName)
	assert.Equal(t, "02-03-2024", first.OrderDate, "Joined summaries render dates day-first")
	require.Len(t, first.Products, 2)
	assert.Equal(t, "19.98", first.Products[0].TotalPrice)
	assert.Equal(t, 3, first.TotalQuantity)
}

func TestOrdersWithProductCount(t *testing.T) {
	conn := newTestConnector(t, stubserver.SeedStore())

	details, err := conn.OrdersWithProductCount(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, details, 2)
	for _, d := range details {
		assert.Len(t, d.Products, 2)
	}
}

func TestTotalSalesPerCustomer(t *testing.T) {
	conn := newTestConnector(t, stubserver.SeedStore())

	sales, err := conn.TotalSalesPerCustomer(context.Background())
	require.NoError(t, err)
	require.Len(t, sales, 3)
	assert.Equal(t, 1, sales[0].CustomerID)
	// Orders 1 and 3: 2*9.99 + 59 + 199 + 2*129 = 535.98
	assert.InDelta(t, 535.98, sales[0].TotalSale, 0.001)
}

func TestRemoteErrorCarriesServerPayload(t *testing.T) {
	conn := newTestConnector(t, stubserver.SeedStore())

	_, err := conn.ProductsByCategories(context.Background(), []string{"Nonexistent"})
	require.Error(t, err)

	var remoteErr *connector.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusNotFound, remoteErr.StatusCode)
	assert.Equal(t, "No products found for the specified category.", remoteErr.Message)
	assert.NotEmpty(t, remoteErr.Body, "The raw server payload must pass through")
	assert.NotErrorIs(t, err, connector.ErrUnauthenticated)
}

func TestTransportErrorWhenServerUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // nothing is listening anymore

	conn := connector.New(server.URL, connector.NewMemoryTokenStore())

	_, err := conn.AllOrders(context.Background())
	require.Error(t, err)

	var transportErr *connector.TransportError
	assert.ErrorAs(t, err, &transportErr)
	var remoteErr *connector.RemoteError
	assert.False(t, errors.As(err, &remoteErr), "No response means no RemoteError")
}

func TestContextCancellationSurfacesAsTransportError(t *testing.T) {
	conn := newTestConnector(t, stubserver.SeedStore())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := conn.AllProducts(ctx)
	require.Error(t, err)

	var transportErr *connector.TransportError
	assert.ErrorAs(t, err, &transportErr)
	assert.ErrorIs(t, err, context.Canceled)
}
