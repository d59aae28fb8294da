package delivery

import (
	"net/http"
	"strconv"

	"storefront/internal/clients"
	"storefront/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CatalogHandler struct {
	catalog *usecase.Catalog
	client  clients.CatalogClient
	log     *logrus.Logger
}

func NewCatalogHandler(catalog *usecase.Catalog, client clients.CatalogClient, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		client:  client,
		log:     logger,
	}
}

func (h *CatalogHandler) RegisterRoutes(router gin.IRouter) {
	storefront := router.Group("/storefront")
	{
		storefront.GET("/products", h.ListProducts)
		storefront.GET("/products/:id", h.GetProduct)
		storefront.GET("/search", h.SearchProducts)
		storefront.POST("/sort", h.SortProducts)
		storefront.GET("/categories", h.ListCategories)
	}
}

// ListProducts serves the listing page: the current view narrowed by the
// sidebar filters. Filters are applied fresh on every request and never
// stored.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	filters := usecase.Filters{
		Category: c.Query("category"),
		Gender:   c.Query("gender"),
		Color:    c.Query("color"),
		Size:     c.Query("size"),
	}
	products := usecase.ApplyFilters(h.catalog.View(), filters)
	SuccessResponse(c, http.StatusOK, "Products retrieved successfully", products)
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		h.log.Warnf("Invalid product ID parameter: %s", idStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	product, err := h.client.GetProduct(c.Request.Context(), id)
	if err != nil {
		h.log.Warnf("Failed to get product by ID %d: %v", id, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to retrieve product")
		return
	}
	SuccessResponse(c, http.StatusOK, "Product retrieved successfully", product)
}

// SearchProducts rebuilds the view from the raw list by title match. An
// empty title resets the view.
func (h *CatalogHandler) SearchProducts(c *gin.Context) {
	title := c.Query("title")
	h.catalog.SearchByTitle(title)
	SuccessResponse(c, http.StatusOK, "Products retrieved successfully", h.catalog.View())
}

func (h *CatalogHandler) SortProducts(c *gin.Context) {
	direction := c.Query("direction")
	if direction != usecase.SortAscending && direction != usecase.SortDescending {
		ErrorResponse(c, http.StatusBadRequest, "Invalid sort direction: must be 'asc' or 'desc'")
		return
	}
	h.catalog.SortByPrice(direction)
	SuccessResponse(c, http.StatusOK, "Products sorted successfully", h.catalog.View())
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	SuccessResponse(c, http.StatusOK, "Categories retrieved successfully", h.catalog.Categories())
}
