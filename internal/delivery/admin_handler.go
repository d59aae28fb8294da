package delivery

import (
	"net/http"
	"strconv"
	"strings"

	"storefront/internal/clients"
	"storefront/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AdminHandler is the management console surface: product and category
// CRUD plus order administration. Listings here are unfiltered, the
// console sees out-of-stock products too.
type AdminHandler struct {
	admin   clients.AdminClient
	catalog clients.CatalogClient
	orders  clients.OrderClient
	log     *logrus.Logger
}

func NewAdminHandler(admin clients.AdminClient, catalog clients.CatalogClient, orders clients.OrderClient, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{
		admin:   admin,
		catalog: catalog,
		orders:  orders,
		log:     logger,
	}
}

func (h *AdminHandler) RegisterRoutes(router gin.IRouter) {
	admin := router.Group("/admin")
	{
		admin.GET("/products", h.ListProducts)
		admin.POST("/products/category/:categoryId", h.CreateProduct)
		admin.PUT("/products/:id/category/:categoryId", h.UpdateProduct)
		admin.DELETE("/products/:id", h.DeleteProduct)

		admin.GET("/categories", h.ListCategories)
		admin.POST("/categories", h.CreateCategory)
		admin.PUT("/categories/:id", h.UpdateCategory)
		admin.DELETE("/categories/:id", h.DeleteCategory)

		admin.GET("/orders", h.ListOrders)
		admin.GET("/orders/:id/cart-products", h.OrderCartProducts)
		admin.PUT("/orders/:id/status", h.UpdateOrderStatus)
		admin.DELETE("/orders/:id", h.DeleteOrder)
	}
}

func pathID(c *gin.Context, name string) (int, bool) {
	idStr := c.Param(name)
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		ErrorResponse(c, http.StatusBadRequest, "Invalid "+name+" format")
		return 0, false
	}
	return id, true
}

func (h *AdminHandler) ListProducts(c *gin.Context) {
	products, err := h.catalog.GetAllProducts(c.Request.Context())
	if err != nil {
		ErrorResponse(c, mapErrorToStatus(err), "Failed to retrieve products")
		return
	}
	// The console search box matches on product name.
	if search := c.Query("search"); search != "" {
		needle := strings.ToLower(search)
		matched := make([]domain.Product, 0, len(products))
		for _, p := range products {
			if strings.Contains(strings.ToLower(p.Name), needle) {
				matched = append(matched, p)
			}
		}
		products = matched
	}
	SuccessResponse(c, http.StatusOK, "Products retrieved successfully", products)
}

func (h *AdminHandler) CreateProduct(c *gin.Context) {
	categoryID, ok := pathID(c, "categoryId")
	if !ok {
		return
	}

	var product domain.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		h.log.Errorf("Failed to bind JSON for create product: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if product.Name == "" {
		ErrorResponse(c, http.StatusBadRequest, "Product name cannot be empty")
		return
	}
	if product.Price <= 0 {
		ErrorResponse(c, http.StatusBadRequest, "Product price must be positive")
		return
	}

	created, err := h.admin.CreateProduct(c.Request.Context(), categoryID, &product)
	if err != nil {
		h.log.Errorf("Failed to create product '%s': %v", product.Name, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to create product")
		return
	}
	SuccessResponse(c, http.StatusCreated, "Product added successfully", created)
}

func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}
	categoryID, ok := pathID(c, "categoryId")
	if !ok {
		return
	}

	var product domain.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		h.log.Errorf("Failed to bind JSON for update product ID %d: %v", productID, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	updated, err := h.admin.UpdateProduct(c.Request.Context(), productID, categoryID, &product)
	if err != nil {
		h.log.Errorf("Failed to update product ID %d: %v", productID, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to update product")
		return
	}
	SuccessResponse(c, http.StatusOK, "Product updated successfully", updated)
}

func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.admin.DeleteProduct(c.Request.Context(), productID); err != nil {
		h.log.Errorf("Failed to delete product ID %d: %v", productID, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to delete product")
		return
	}
	SuccessResponse(c, http.StatusOK, "Product deleted successfully", nil)
}

func (h *AdminHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalog.GetAllCategories(c.Request.Context())
	if err != nil {
		ErrorResponse(c, mapErrorToStatus(err), "Failed to retrieve categories")
		return
	}
	SuccessResponse(c, http.StatusOK, "Categories retrieved successfully", categories)
}

func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var category domain.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(category.Name) == "" {
		ErrorResponse(c, http.StatusBadRequest, "Category name is required")
		return
	}

	created, err := h.admin.CreateCategory(c.Request.Context(), &category)
	if err != nil {
		h.log.Errorf("Failed to create category '%s': %v", category.Name, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to create category")
		return
	}
	SuccessResponse(c, http.StatusCreated, "Category added successfully", created)
}

func (h *AdminHandler) UpdateCategory(c *gin.Context) {
	categoryID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var category domain.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(category.Name) == "" {
		ErrorResponse(c, http.StatusBadRequest, "Category name is required")
		return
	}

	updated, err := h.admin.UpdateCategory(c.Request.Context(), categoryID, &category)
	if err != nil {
		h.log.Errorf("Failed to update category ID %d: %v", categoryID, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to update category")
		return
	}
	SuccessResponse(c, http.StatusOK, "Category updated successfully", updated)
}

func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	categoryID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.admin.DeleteCategory(c.Request.Context(), categoryID); err != nil {
		h.log.Errorf("Failed to delete category ID %d: %v", categoryID, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to delete category")
		return
	}
	SuccessResponse(c, http.StatusOK, "Category deleted successfully", nil)
}

// ListOrders returns every order, optionally narrowed by the console's
// search box, which matches the order id or the customer name.
func (h *AdminHandler) ListOrders(c *gin.Context) {
	orders, err := h.orders.GetAllOrders(c.Request.Context())
	if err != nil {
		ErrorResponse(c, mapErrorToStatus(err), "Failed to retrieve orders")
		return
	}

	if search := c.Query("search"); search != "" {
		needle := strings.ToLower(search)
		matched := make([]domain.Order, 0, len(orders))
		for _, o := range orders {
			customer := "Unknown"
			if o.User != nil && o.User.Username != "" {
				customer = o.User.Username
			}
			if strings.Contains(strings.ToLower(customer), needle) || strings.Contains(strconv.Itoa(o.ID), search) {
				matched = append(matched, o)
			}
		}
		orders = matched
	}
	SuccessResponse(c, http.StatusOK, "Orders retrieved successfully", orders)
}

func (h *AdminHandler) OrderCartProducts(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	items, err := h.orders.GetOrderCartProducts(c.Request.Context(), orderID)
	if err != nil {
		ErrorResponse(c, mapErrorToStatus(err), "Failed to retrieve order items")
		return
	}
	SuccessResponse(c, http.StatusOK, "Order items retrieved successfully", items)
}

func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Status domain.OrderStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if !domain.IsValidOrderStatus(req.Status) {
		ErrorResponse(c, http.StatusBadRequest, "Invalid order status: "+string(req.Status))
		return
	}

	if err := h.orders.UpdateOrderStatus(c.Request.Context(), orderID, req.Status); err != nil {
		h.log.Errorf("Failed to update status of order %d: %v", orderID, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to update order status")
		return
	}
	SuccessResponse(c, http.StatusOK, "Order status updated successfully", nil)
}

func (h *AdminHandler) DeleteOrder(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.orders.DeleteOrder(c.Request.Context(), orderID); err != nil {
		h.log.Errorf("Failed to delete order %d: %v", orderID, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to delete order")
		return
	}
	SuccessResponse(c, http.StatusOK, "Order deleted successfully", nil)
}
