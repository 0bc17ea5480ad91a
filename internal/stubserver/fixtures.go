package stubserver

import "inventory-dashboard-connector/internal/models"

// SeedStore returns a store pre-loaded with a small furniture dataset, enough
// to exercise every query shape the API serves.
func SeedStore() *Store {
	s := NewStore()

	for _, p := range []models.Product{
		{ID: 1, Name: "LACK Side Table", Category: "Tables", Price: 9.99, StockQuantity: 120, Description: "Lightweight side table, easy to move"},
		{ID: 2, Name: "MARKUS Office Chair", Category: "Chairs", Price: 229.00, StockQuantity: 35, Description: "High-back office chair with mesh fabric"},
		{ID: 3, Name: "BILLY Bookcase", Category: "Storage", Price: 59.00, StockQuantity: 80, Description: "Adjustable-shelf bookcase in white"},
		{ID: 4, Name: "POANG Armchair", Category: "Chairs", Price: 129.00, StockQuantity: 48, Description: "Layer-glued bentwood armchair"},
		{ID: 5, Name: "LISABO Table", Category: "Tables", Price: 199.00, StockQuantity: 22, Description: "Ash veneer dining table seating four"},
		{ID: 6, Name: "KALLAX Shelf Unit", Category: "Storage", Price: 89.99, StockQuantity: 64, Description: "Cube shelf unit, stands or hangs"},
	} {
		s.PutProduct(p)
	}

	for _, c := range []models.Customer{
		{
			ID:   1,
			Name: "Alice Johnson",
			Contact: models.ContactDetails{
				Email:   "alice.johnson@example.com",
				Phone:   "0131 496 0001",
				Address: "14 Maple Row, Edinburgh",
			},
			MembershipStatus: models.Member,
			PreviousOrders:   []int{1, 3},
		},
		{
			ID:   2,
			Name: "Bhavin Patel",
			Contact: models.ContactDetails{
				Email:   "bhavin.patel@example.com",
				Phone:   "0131 496 0002",
				Address: "3 Birch Lane, Glasgow",
			},
			MembershipStatus: models.NonMember,
			PreviousOrders:   []int{2},
		},
		{
			ID:   3,
			Name: "Carla Mendes",
			Contact: models.ContactDetails{
				Email:   "carla.mendes@example.com",
				Phone:   "0131 496 0003",
				Address: "77 Cedar Court, Aberdeen",
			},
			MembershipStatus: models.Member,
			PreviousOrders:   []int{4},
		},
	} {
		s.PutCustomer(c)
	}

	for _, o := range []models.Order{
		{
			ID:         1,
			CustomerID: 1,
			Products: []models.OrderLine{
				{ProductID: 1, Quantity: 2},
				{ProductID: 3, Quantity: 1},
			},
			OrderDate:      "2024-03-02",
			TotalPrice:     78.98,
			DeliveryStatus: "Delivered",
			OrderStatus:    models.Delivered,
		},
		{
			ID:         2,
			CustomerID: 2,
			Products: []models.OrderLine{
				{ProductID: 2, Quantity: 1},
			},
			OrderDate:      "2024-03-15",
			TotalPrice:     229.00,
			DeliveryStatus: "In Transit",
			OrderStatus:    models.InTransit,
		},
		{
			ID:         3,
			CustomerID: 1,
			Products: []models.OrderLine{
				{ProductID: 5, Quantity: 1},
				{ProductID: 4, Quantity: 2},
			},
			OrderDate:      "2024-04-01",
			TotalPrice:     457.00,
			DeliveryStatus: "Pending",
			OrderStatus:    models.PreparingForDispatch,
		},
		{
			ID:         4,
			CustomerID: 3,
			Products: []models.OrderLine{
				{ProductID: 6, Quantity: 3},
			},
			OrderDate:      "2024-04-10",
			TotalPrice:     269.97,
			DeliveryStatus: "Pending",
			OrderStatus:    models.OrderReceived,
		},
	} {
		s.PutOrder(o)
	}

	return s
}
