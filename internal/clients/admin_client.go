package clients

import (
	"context"
	"fmt"
	"net/http"

	"storefront/internal/domain"
)

// AdminClient covers the console's product and category management. The
// backend keys product creation and update by category, so the category
// id travels in the path rather than the body.
type AdminClient interface {
	CreateProduct(ctx context.Context, categoryID int, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, productID, categoryID int, product *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID int) error

	CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID int, category *domain.Category) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID int) error
}

func (c *storeHTTPClient) CreateProduct(ctx context.Context, categoryID int, product *domain.Product) (*domain.Product, error) {
	var created domain.Product
	path := fmt.Sprintf("/product/category/%d", categoryID)
	if err := c.call(ctx, http.MethodPost, path, product, &created); err != nil {
		return nil, err
	}
	c.log.Infof("AdminClient: created product '%s' (ID %d) in category %d", created.Name, created.ID, categoryID)
	return &created, nil
}

func (c *storeHTTPClient) UpdateProduct(ctx context.Context, productID, categoryID int, product *domain.Product) (*domain.Product, error) {
	var updated domain.Product
	path := fmt.Sprintf("/product/%d/category/%d", productID, categoryID)
	if err := c.call(ctx, http.MethodPut, path, product, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *storeHTTPClient) DeleteProduct(ctx context.Context, productID int) error {
	return c.call(ctx, http.MethodDelete, fmt.Sprintf("/product/delete/%d", productID), nil, nil)
}

func (c *storeHTTPClient) CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	var created domain.Category
	if err := c.call(ctx, http.MethodPost, "/category/add", category, &created); err != nil {
		return nil, err
	}
	c.log.Infof("AdminClient: created category '%s' (ID %d)", created.Name, created.ID)
	return &created, nil
}

func (c *storeHTTPClient) UpdateCategory(ctx context.Context, categoryID int, category *domain.Category) (*domain.Category, error) {
	var updated domain.Category
	if err := c.call(ctx, http.MethodPut, fmt.Sprintf("/category/update/%d", categoryID), category, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *storeHTTPClient) DeleteCategory(ctx context.Context, categoryID int) error {
	return c.call(ctx, http.MethodDelete, fmt.Sprintf("/category/delete/%d", categoryID), nil, nil)
}
