package clients

import (
	"context"
	"fmt"
	"net/http"

	"storefront/internal/domain"
)

// CatalogClient reads the product and category collections. All listing
// endpoints return the full collection; the backend does not paginate.
type CatalogClient interface {
	GetAllProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, productID int) (*domain.Product, error)
	GetProductsByCategory(ctx context.Context, categoryID int) ([]domain.Product, error)
	GetAllCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, categoryID int) (*domain.Category, error)
}

func (c *storeHTTPClient) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.call(ctx, http.MethodGet, "/products/all", nil, &products); err != nil {
		return nil, err
	}
	c.log.Infof("CatalogClient: fetched %d products", len(products))
	return products, nil
}

func (c *storeHTTPClient) GetProduct(ctx context.Context, productID int) (*domain.Product, error) {
	var product domain.Product
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/products/%d", productID), nil, &product); err != nil {
		return nil, err
	}
	if product.ID != productID {
		c.log.Warnf("CatalogClient: mismatched product ID in response. Requested %d, got %d", productID, product.ID)
	}
	return &product, nil
}

func (c *storeHTTPClient) GetProductsByCategory(ctx context.Context, categoryID int) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/products/category/%d", categoryID), nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *storeHTTPClient) GetAllCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := c.call(ctx, http.MethodGet, "/categories/all", nil, &categories); err != nil {
		return nil, err
	}
	c.log.Infof("CatalogClient: fetched %d categories", len(categories))
	return categories, nil
}

func (c *storeHTTPClient) GetCategory(ctx context.Context, categoryID int) (*domain.Category, error) {
	var category domain.Category
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/category/%d", categoryID), nil, &category); err != nil {
		return nil, err
	}
	return &category, nil
}
