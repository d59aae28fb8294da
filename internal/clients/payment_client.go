package clients

import (
	"context"
	"fmt"
	"net/http"

	"storefront/internal/domain"
)

// PaymentClient talks to the payment gateway integration on the backend.
// These endpoints are a pass-through to the external checkout widget and
// do not use the response envelope.
type PaymentClient interface {
	CreatePaymentOrder(ctx context.Context, amount float64) (*domain.PaymentOrder, error)
	VerifyPayment(ctx context.Context, verification domain.PaymentVerification) error
	PlaceDirectOrder(ctx context.Context, userID string, productID int) error
}

func (c *storeHTTPClient) CreatePaymentOrder(ctx context.Context, amount float64) (*domain.PaymentOrder, error) {
	body := map[string]float64{"amount": amount}
	var order domain.PaymentOrder
	if err := c.callRaw(ctx, http.MethodPost, "/api/payment/create-order", body, &order); err != nil {
		return nil, err
	}
	c.log.Infof("PaymentClient: created payment order %s for amount %.2f %s", order.ID, order.Amount, order.Currency)
	return &order, nil
}

func (c *storeHTTPClient) VerifyPayment(ctx context.Context, verification domain.PaymentVerification) error {
	return c.callRaw(ctx, http.MethodPost, "/api/payment/verify", verification, nil)
}

// PlaceDirectOrder is the buy-now path from the product detail page:
// after a verified payment it places an order for a single product,
// bypassing the cart.
func (c *storeHTTPClient) PlaceDirectOrder(ctx context.Context, userID string, productID int) error {
	path := fmt.Sprintf("/api/orders/place?userId=%s&productId=%d", userID, productID)
	return c.callRaw(ctx, http.MethodPost, path, nil, nil)
}
