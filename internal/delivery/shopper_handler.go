package delivery

import (
	"net/http"
	"strconv"

	"storefront/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ShopperHandler exposes the per-user cart and wishlist mirrors. Each
// user gets one synchronizer from the session registry; the handler is a
// thin shim over its operations.
type ShopperHandler struct {
	sessions *usecase.SessionManager
	log      *logrus.Logger
}

func NewShopperHandler(sessions *usecase.SessionManager, logger *logrus.Logger) *ShopperHandler {
	return &ShopperHandler{
		sessions: sessions,
		log:      logger,
	}
}

func (h *ShopperHandler) RegisterRoutes(router gin.IRouter) {
	me := router.Group("/me/:userId")
	{
		me.GET("/cart", h.GetCart)
		me.POST("/cart/:productId/:quantity", h.AddToCart)
		me.PUT("/cart/:productId/:quantity", h.UpdateCartQuantity)
		me.DELETE("/cart/:productId", h.RemoveFromCart)

		me.GET("/wishlist", h.GetWishlist)
		me.POST("/wishlist/:productId/toggle", h.ToggleWishlist)
		me.DELETE("/wishlist/:productId", h.RemoveWishlist)
	}
}

func (h *ShopperHandler) productID(c *gin.Context) (int, bool) {
	idStr := c.Param("productId")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		h.log.Warnf("Invalid product ID parameter: %s", idStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return 0, false
	}
	return id, true
}

func (h *ShopperHandler) GetCart(c *gin.Context) {
	s := h.sessions.Get(c.Request.Context(), c.Param("userId"))
	if err := s.FetchCart(c.Request.Context()); err != nil {
		ErrorResponse(c, mapErrorToStatus(err), "Failed to fetch cart")
		return
	}
	SuccessResponse(c, http.StatusOK, "Cart retrieved successfully", s.Cart())
}

func (h *ShopperHandler) AddToCart(c *gin.Context) {
	productID, ok := h.productID(c)
	if !ok {
		return
	}
	quantity, err := strconv.Atoi(c.Param("quantity"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid quantity format")
		return
	}

	s := h.sessions.Get(c.Request.Context(), c.Param("userId"))
	if err := s.AddToCart(c.Request.Context(), productID, quantity); err != nil {
		ErrorResponse(c, mapErrorToStatus(err), "Failed to add to cart")
		return
	}
	SuccessResponse(c, http.StatusOK, "Added to cart", s.Cart())
}

func (h *ShopperHandler) UpdateCartQuantity(c *gin.Context) {
	productID, ok := h.productID(c)
	if !ok {
		return
	}
	quantity, err := strconv.Atoi(c.Param("quantity"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid quantity format")
		return
	}

	s := h.sessions.Get(c.Request.Context(), c.Param("userId"))
	if err := s.UpdateCartQuantity(c.Request.Context(), productID, quantity); err != nil {
		ErrorResponse(c, mapErrorToStatus(err), "Failed to update cart")
		return
	}
	SuccessResponse(c, http.StatusOK, "Cart updated", s.Cart())
}

func (h *ShopperHandler) RemoveFromCart(c *gin.Context) {
	productID, ok := h.productID(c)
	if !ok {
		return
	}

	s := h.sessions.Get(c.Request.Context(), c.Param("userId"))
	if err := s.RemoveFromCart(c.Request.Context(), productID); err != nil {
		ErrorResponse(c, mapErrorToStatus(err), "Failed to remove from cart")
		return
	}
	SuccessResponse(c, http.StatusOK, "Removed from cart", s.Cart())
}

func (h *ShopperHandler) GetWishlist(c *gin.Context) {
	s := h.sessions.Get(c.Request.Context(), c.Param("userId"))
	if err := s.FetchWishlist(c.Request.Context()); err != nil {
		ErrorResponse(c, mapErrorToStatus(err), "Failed to fetch wishlist")
		return
	}
	SuccessResponse(c, http.StatusOK, "Wishlist retrieved successfully", s.Wishlist())
}

func (h *ShopperHandler) ToggleWishlist(c *gin.Context) {
	productID, ok := h.productID(c)
	if !ok {
		return
	}

	s := h.sessions.Get(c.Request.Context(), c.Param("userId"))
	if err := s.ToggleWishlist(c.Request.Context(), productID); err != nil {
		ErrorResponse(c, mapErrorToStatus(err), "Failed to update wishlist")
		return
	}
	SuccessResponse(c, http.StatusOK, "Wishlist updated", s.Wishlist())
}

func (h *ShopperHandler) RemoveWishlist(c *gin.Context) {
	productID, ok := h.productID(c)
	if !ok {
		return
	}

	s := h.sessions.Get(c.Request.Context(), c.Param("userId"))
	if err := s.RemoveWishlist(c.Request.Context(), productID); err != nil {
		ErrorResponse(c, mapErrorToStatus(err), "Failed to remove wishlist item")
		return
	}
	SuccessResponse(c, http.StatusOK, "Wishlist item removed", s.Wishlist())
}
