package connector

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"inventory-dashboard-connector/internal/models"
)

// AllProducts retrieves every product.
func (c *Connector) AllProducts(ctx context.Context) ([]models.Product, error) {
	var wire []models.WireProduct
	if err := c.get(ctx, "all-products", "/api/all-products", nil, false, &wire); err != nil {
		return nil, err
	}
	return normalizeProducts(wire), nil
}

// SearchProductsByName finds products whose name contains query,
// case-insensitive. An empty query conventionally returns everything.
func (c *Connector) SearchProductsByName(ctx context.Context, query string) ([]models.Product, error) {
	q := url.Values{}
	q.Set("query", query)

	var wire []models.WireProduct
	if err := c.get(ctx, "search-products-by-name", "/api/search-products-by-name", q, false, &wire); err != nil {
		return nil, err
	}
	return normalizeProducts(wire), nil
}

// ProductsWithinPriceRange finds products priced between min and max
// inclusive. Range validity (min <= max, both non-negative) is the caller's
// responsibility; results keep the server's order.
func (c *Connector) ProductsWithinPriceRange(ctx context.Context, min, max float64) ([]models.Product, error) {
	q := url.Values{}
	q.Set("min_price", strconv.FormatFloat(min, 'f', -1, 64))
	q.Set("max_price", strconv.FormatFloat(max, 'f', -1, 64))

	var wire []models.WireProduct
	if err := c.get(ctx, "find-products-within-price-range", "/api/find-products-within-price-range", q, false, &wire); err != nil {
		return nil, err
	}
	return normalizeProducts(wire), nil
}

// ProductsByCategories finds products in any of the given categories. Each
// category is sent as its own `category` parameter; the server does not
// understand joined values.
func (c *Connector) ProductsByCategories(ctx context.Context, categories []string) ([]models.Product, error) {
	q := stringValues("category", categories)

	var wire []models.WireProduct
	if err := c.get(ctx, "find-products-by-multiple-categories", "/api/find-products-by-multiple-categories", q, false, &wire); err != nil {
		return nil, err
	}
	return normalizeProducts(wire), nil
}

// ProductsSortedByPrice retrieves all products sorted by price in the given
// direction.
func (c *Connector) ProductsSortedByPrice(ctx context.Context, order models.SortOrder) ([]models.Product, error) {
	sort, ok := order.Wire()
	if !ok {
		return nil, fmt.Errorf("products-sorted-by-price: invalid sort order %d", order)
	}
	q := url.Values{}
	q.Set("sort_order", sort)

	var wire []models.WireProduct
	if err := c.get(ctx, "products-sorted-by-price", "/api/products-sorted-by-price", q, false, &wire); err != nil {
		return nil, err
	}
	return normalizeProducts(wire), nil
}

// ProductsByIDs finds products by their identifiers.
func (c *Connector) ProductsByIDs(ctx context.Context, productIDs []int) ([]models.Product, error) {
	q := intValues("product_ids", productIDs)

	var wire []models.WireProduct
	if err := c.get(ctx, "find-products-by-product-ids", "/api/find-products-by-product-ids", q, false, &wire); err != nil {
		return nil, err
	}
	return normalizeProducts(wire), nil
}

func normalizeProducts(wire []models.WireProduct) []models.Product {
	products := make([]models.Product, len(wire))
	for i, w := range wire {
		products[i] = w.Domain()
	}
	return products
}
