package stubserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-dashboard-connector/internal/models"
)

func TestSearchProductsByNameIsCaseInsensitive(t *testing.T) {
	store := SeedStore()

	matches := store.SearchProductsByName("table")
	require.Len(t, matches, 2)
	assert.Equal(t, "LACK Side Table", matches[0].Name)
	assert.Equal(t, "LISABO Table", matches[1].Name)

	assert.Empty(t, store.SearchProductsByName("wardrobe"))
}

func TestProductsSortedByPrice(t *testing.T) {
	store := SeedStore()

	ascending := store.ProductsSortedByPrice(true)
	require.Len(t, ascending, 6)
	for i := 1; i < len(ascending); i++ {
		assert.LessOrEqual(t, ascending[i-1].Price, ascending[i].Price)
	}

	descending := store.ProductsSortedByPrice(false)
	assert.Equal(t, ascending[0].ID, descending[len(descending)-1].ID)
	assert.Equal(t, ascending[len(ascending)-1].ID, descending[0].ID)
}

func TestProductsByIDsSkipsUnknown(t *testing.T) {
	store := SeedStore()

	matches := store.ProductsByIDs([]int{6, 99, 1})
	require.Len(t, matches, 2)
	assert.Equal(t, 1, matches[0].ID)
	assert.Equal(t, 6, matches[1].ID)
}

func TestCustomersByPreviousOrders(t *testing.T) {
	store := SeedStore()

	matches := store.CustomersByPreviousOrders([]int{3})
	require.Len(t, matches, 1)
	assert.Equal(t, "Alice Johnson", matches[0].Name)

	// A customer matching several order ids still appears once.
	matches = store.CustomersByPreviousOrders([]int{1, 3})
	assert.Len(t, matches, 1)
}

func TestOrdersByCustomerName(t *testing.T) {
	store := SeedStore()

	orders := store.OrdersByCustomerName("alice")
	require.Len(t, orders, 2)
	assert.Equal(t, 1, orders[0].ID)
	assert.Equal(t, 3, orders[1].ID)

	assert.Empty(t, store.OrdersByCustomerName("zelda"))
}

func TestUpdateOrderStatus(t *testing.T) {
	store := SeedStore()

	require.True(t, store.UpdateOrderStatus(4, models.Dispatched))
	orders := store.OrdersByIDs([]int{4})
	require.Len(t, orders, 1)
	assert.Equal(t, models.Dispatched, orders[0].OrderStatus)

	assert.False(t, store.UpdateOrderStatus(99, models.Dispatched))
}

func TestTotalPriceOfOrdersRoundsToCents(t *testing.T) {
	store := NewStore()
	store.PutOrder(models.Order{ID: 1, TotalPrice: 0.1})
	store.PutOrder(models.Order{ID: 2, TotalPrice: 0.2})

	assert.Equal(t, 0.3, store.TotalPriceOfOrders([]int{1, 2}))
	assert.Equal(t, 0.0, store.TotalPriceOfOrders([]int{99}))
}

func TestOrderDetailsJoin(t *testing.T) {
	store := SeedStore()

	details := store.OrderDetails()
	require.Len(t, details, 4)

	first := details[0]
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 1, first.CustomerID)
	assert.Equal(t, "Alice Johnson", first.CustomerName)
	assert.Equal(t, "02-03-2024", first.OrderDate)
	require.Len(t, first.Products, 2)
	assert.Equal(t, "LACK Side Table", first.Products[0].Name)
	assert.Equal(t, "19.98", first.Products[0].TotalPrice)
	assert.Equal(t, "78.98", first.TotalPrice)
	assert.Equal(t, 3, first.TotalQuantity)
	// TotalSales spans every order the customer placed, not just this one.
	assert.Equal(t, "535.98", first.TotalSales)
	assert.Equal(t, models.Delivered, first.OrderStatus)
}

func TestOrderDetailsSkipsUnknownProducts(t *testing.T) {
	store := NewStore()
	store.PutCustomer(models.Customer{ID: 1, Name: "Alice Johnson"})
	store.PutOrder(models.Order{
		ID:         1,
		CustomerID: 1,
		Products: []models.OrderLine{
			{ProductID: 42, Quantity: 1},
		},
		OrderDate: "2024-05-01",
	})

	details := store.OrderDetails()
	require.Len(t, details, 1)
	assert.Empty(t, details[0].Products)
	assert.Equal(t, "0.00", details[0].TotalPrice)
}

func TestDayFirstDate(t *testing.T) {
	assert.Equal(t, "02-03-2024", dayFirstDate("2024-03-02"))
	assert.Equal(t, "31-12-2023", dayFirstDate("2023-12-31"))
	// Unparseable values pass through.
	assert.Equal(t, "not-a-date", dayFirstDate("not-a-date"))
}

func TestTotalSalesPerCustomer(t *testing.T) {
	store := SeedStore()

	rows := store.TotalSalesPerCustomer()
	require.Len(t, rows, 3)
	assert.Equal(t, 1, rows[0].CustomerID)
	assert.InDelta(t, 535.98, rows[0].TotalSale, 0.001)
	assert.Equal(t, 2, rows[1].CustomerID)
	assert.InDelta(t, 229.00, rows[1].TotalSale, 0.001)
	assert.Equal(t, 3, rows[2].CustomerID)
	assert.InDelta(t, 269.97, rows[2].TotalSale, 0.001)
}

func TestTotalOrdersPerCustomer(t *testing.T) {
	store := SeedStore()

	rows := store.TotalOrdersPerCustomer()
	require.Len(t, rows, 3)
	assert.Equal(t, 2, rows[0].TotalOrders)
	assert.Equal(t, 1, rows[1].TotalOrders)
	assert.Equal(t, 1, rows[2].TotalOrders)
}

func TestCreateAdminRejectsDuplicateEmail(t *testing.T) {
	store := NewStore()

	require.NoError(t, store.CreateAdmin(AdminAccount{ID: "a1", Username: "dana", Email: "dana@example.com"}))
	err := store.CreateAdmin(AdminAccount{ID: "a2", Username: "other", Email: "dana@example.com"})
	assert.Error(t, err)
}

func TestAdminByUsernameOrEmail(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.CreateAdmin(AdminAccount{ID: "a1", Username: "dana", Email: "dana@example.com"}))

	byUsername, ok := store.AdminByUsernameOrEmail("dana")
	require.True(t, ok)
	assert.Equal(t, "a1", byUsername.ID)

	byEmail, ok := store.AdminByUsernameOrEmail("dana@example.com")
	require.True(t, ok)
	assert.Equal(t, "a1", byEmail.ID)

	_, ok = store.AdminByUsernameOrEmail("nobody")
	assert.False(t, ok)
}
