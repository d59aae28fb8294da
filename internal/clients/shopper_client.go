package clients

import (
	"context"
	"fmt"
	"net/http"

	"storefront/internal/domain"
)

// ShopperClient covers the per-user wishlist and cart resources.
//
// The wishlist wire shape is a flat list of product objects; AddCartItem
// is the one mutation whose response carries state (the full cart after
// the add).
type ShopperClient interface {
	GetWishlist(ctx context.Context, userID string) ([]domain.Product, error)
	AddWishlistItem(ctx context.Context, userID string, productID int) error
	RemoveWishlistItem(ctx context.Context, userID string, productID int) error

	GetCart(ctx context.Context, userID string) ([]domain.CartItem, error)
	AddCartItem(ctx context.Context, userID string, productID, quantity int) ([]domain.CartItem, error)
	UpdateCartItem(ctx context.Context, userID string, productID, quantity int) error
	RemoveCartItem(ctx context.Context, userID string, productID int) error
}

func (c *storeHTTPClient) GetWishlist(ctx context.Context, userID string) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/wishlist/%s", userID), nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *storeHTTPClient) AddWishlistItem(ctx context.Context, userID string, productID int) error {
	return c.call(ctx, http.MethodPost, fmt.Sprintf("/wishlist/%s/%d", userID, productID), nil, nil)
}

func (c *storeHTTPClient) RemoveWishlistItem(ctx context.Context, userID string, productID int) error {
	return c.call(ctx, http.MethodDelete, fmt.Sprintf("/wishlist/%s/%d", userID, productID), nil, nil)
}

func (c *storeHTTPClient) GetCart(ctx context.Context, userID string) ([]domain.CartItem, error) {
	var items []domain.CartItem
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/cart/%s", userID), nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *storeHTTPClient) AddCartItem(ctx context.Context, userID string, productID, quantity int) ([]domain.CartItem, error) {
	var items []domain.CartItem
	if err := c.call(ctx, http.MethodPost, fmt.Sprintf("/cart/%s/%d/%d", userID, productID, quantity), nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *storeHTTPClient) UpdateCartItem(ctx context.Context, userID string, productID, quantity int) error {
	return c.call(ctx, http.MethodPut, fmt.Sprintf("/cart/%s/%d/%d", userID, productID, quantity), nil, nil)
}

func (c *storeHTTPClient) RemoveCartItem(ctx context.Context, userID string, productID int) error {
	return c.call(ctx, http.MethodDelete, fmt.Sprintf("/cart/%s/%d", userID, productID), nil, nil)
}
