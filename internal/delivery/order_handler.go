package delivery

import (
	"net/http"

	"storefront/internal/clients"
	"storefront/internal/domain"
	"storefront/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// OrderHandler serves order history and the checkout flow: an in-stock
// cart total is turned into a payment-gateway order, the external widget
// collects the payment, and the verify callback confirms it server-side.
type OrderHandler struct {
	orders     clients.OrderClient
	payments   clients.PaymentClient
	sessions   *usecase.SessionManager
	paymentKey string
	log        *logrus.Logger
}

func NewOrderHandler(orders clients.OrderClient, payments clients.PaymentClient, sessions *usecase.SessionManager, paymentKey string, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{
		orders:     orders,
		payments:   payments,
		sessions:   sessions,
		paymentKey: paymentKey,
		log:        logger,
	}
}

func (h *OrderHandler) RegisterRoutes(router gin.IRouter) {
	me := router.Group("/me/:userId")
	{
		me.GET("/orders", h.ListOrders)
		me.POST("/checkout", h.Checkout)
		me.POST("/checkout/verify", h.VerifyCheckout)
	}
}

// checkoutSession is what the page hands to the external checkout widget.
type checkoutSession struct {
	Key      string  `json:"key"`
	OrderID  string  `json:"orderId"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	userID := c.Param("userId")
	orders, err := h.orders.GetUserOrders(c.Request.Context(), userID)
	if err != nil {
		h.log.Warnf("Failed to list orders for user %s: %v", userID, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to retrieve orders")
		return
	}
	SuccessResponse(c, http.StatusOK, "Orders retrieved successfully", orders)
}

func (h *OrderHandler) Checkout(c *gin.Context) {
	userID := c.Param("userId")
	s := h.sessions.Get(c.Request.Context(), userID)

	if err := s.FetchCart(c.Request.Context()); err != nil {
		ErrorResponse(c, mapErrorToStatus(err), "Failed to fetch cart")
		return
	}
	total := s.CartTotal()
	if total <= 0 {
		ErrorResponse(c, http.StatusBadRequest, "Cart has no in-stock items to check out")
		return
	}

	order, err := h.payments.CreatePaymentOrder(c.Request.Context(), total)
	if err != nil {
		h.log.Errorf("Checkout: payment order creation failed for user %s: %v", userID, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to initialize payment")
		return
	}

	h.log.Infof("Checkout: payment order %s created for user %s (%.2f %s)", order.ID, userID, order.Amount, order.Currency)
	SuccessResponse(c, http.StatusOK, "Payment order created", checkoutSession{
		Key:      h.paymentKey,
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
	})
}

func (h *OrderHandler) VerifyCheckout(c *gin.Context) {
	userID := c.Param("userId")

	var req struct {
		domain.PaymentVerification
		// Set by the buy-now path on the product detail page; the order
		// is placed for this single product instead of the cart.
		ProductID int `json:"productId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for payment verification (user %s): %v", userID, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	req.UserID = userID

	if err := h.payments.VerifyPayment(c.Request.Context(), req.PaymentVerification); err != nil {
		h.log.Warnf("Payment verification failed for user %s: %v", userID, err)
		ErrorResponse(c, mapErrorToStatus(err), "Payment verification failed")
		return
	}

	if req.ProductID > 0 {
		if err := h.payments.PlaceDirectOrder(c.Request.Context(), userID, req.ProductID); err != nil {
			h.log.Errorf("Payment verified but order placement failed for user %s, product %d: %v", userID, req.ProductID, err)
			ErrorResponse(c, mapErrorToStatus(err), "Payment succeeded but order placement failed")
			return
		}
	}

	// The backend empties the cart when the order is placed; refresh the
	// mirror so the page sees it.
	s := h.sessions.Get(c.Request.Context(), userID)
	if err := s.FetchCart(c.Request.Context()); err != nil {
		h.log.Warnf("Cart refresh after checkout failed for user %s: %v", userID, err)
	}

	SuccessResponse(c, http.StatusOK, "Payment verified and order placed", s.Cart())
}
