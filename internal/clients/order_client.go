package clients

import (
	"context"
	"fmt"
	"net/http"

	"storefront/internal/domain"
)

type OrderClient interface {
	GetUserOrders(ctx context.Context, userID string) ([]domain.Order, error)
	GetAllOrders(ctx context.Context) ([]domain.Order, error)
	GetOrderCartProducts(ctx context.Context, orderID int) ([]domain.CartItem, error)
	UpdateOrderStatus(ctx context.Context, orderID int, status domain.OrderStatus) error
	DeleteOrder(ctx context.Context, orderID int) error
}

func (c *storeHTTPClient) GetUserOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/orders/user/%s", userID), nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *storeHTTPClient) GetAllOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.call(ctx, http.MethodGet, "/orders/all", nil, &orders); err != nil {
		return nil, err
	}
	c.log.Infof("OrderClient: fetched %d orders", len(orders))
	return orders, nil
}

func (c *storeHTTPClient) GetOrderCartProducts(ctx context.Context, orderID int) ([]domain.CartItem, error) {
	var items []domain.CartItem
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/orders/%d/cart-products", orderID), nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *storeHTTPClient) UpdateOrderStatus(ctx context.Context, orderID int, status domain.OrderStatus) error {
	body := map[string]domain.OrderStatus{"status": status}
	return c.call(ctx, http.MethodPut, fmt.Sprintf("/order/status/update/%d", orderID), body, nil)
}

func (c *storeHTTPClient) DeleteOrder(ctx context.Context, orderID int) error {
	return c.call(ctx, http.MethodDelete, fmt.Sprintf("/order/%d", orderID), nil, nil)
}
