package delivery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/clients"
	"storefront/internal/domain"
	"storefront/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

var storefrontProducts = []domain.Product{
	{ID: 1, Name: "Linen Shirt", Price: 10, Status: domain.StatusInStock, Category: domain.CategoryRef{ID: 2}, Gender: "MEN", Color: "Blue", Size: "M"},
	{ID: 2, Name: "Denim Jacket", Price: 5, Status: domain.StatusOutOfStock, Category: domain.CategoryRef{ID: 3}, Gender: "WOMEN", Color: "Blue", Size: "S"},
	{ID: 3, Name: "Wool Scarf", Price: 3, Status: domain.StatusInStock, Category: domain.CategoryRef{ID: 4}, Gender: "WOMEN", Color: "Red", Size: "One"},
}

func newCatalogRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/products/all":
			json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": storefrontProducts})
		case "/categories/all":
			json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": []domain.Category{{ID: 2, Name: "Shirts"}}})
		case "/products/3":
			json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": storefrontProducts[2]})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(backend.Close)

	store := clients.NewStoreHTTPClient(backend.URL, time.Second, testLogger())
	catalog := usecase.NewCatalog(store, testLogger())
	require.NoError(t, catalog.Load(context.Background()))

	router := gin.New()
	NewCatalogHandler(catalog, store, testLogger()).RegisterRoutes(router)
	return router
}

func decodeProducts(t *testing.T, rec *httptest.ResponseRecorder) []domain.Product {
	t.Helper()
	var resp struct {
		Success bool             `json:"success"`
		Data    []domain.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	return resp.Data
}

func TestListProductsAppliesFilters(t *testing.T) {
	router := newCatalogRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/storefront/products?gender=women", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	products := decodeProducts(t, rec)
	// The out-of-stock jacket never reaches a customer listing.
	require.Len(t, products, 1)
	assert.Equal(t, 3, products[0].ID)
}

func TestListProductsNoFiltersHidesOutOfStock(t *testing.T) {
	router := newCatalogRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/storefront/products", nil))

	products := decodeProducts(t, rec)
	assert.Len(t, products, 2)
}

func TestGetProduct(t *testing.T) {
	router := newCatalogRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/storefront/products/3", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/storefront/products/abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSortProductsValidatesDirection(t *testing.T) {
	router := newCatalogRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/storefront/sort?direction=sideways", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/storefront/sort?direction=asc", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	products := decodeProducts(t, rec)
	require.Len(t, products, 3)
	assert.Equal(t, 3.0, products[0].Price)
	assert.Equal(t, 10.0, products[2].Price)
}

func TestSearchRebuildsView(t *testing.T) {
	router := newCatalogRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/storefront/search?title=scarf", nil))
	products := decodeProducts(t, rec)
	require.Len(t, products, 1)
	assert.Equal(t, "Wool Scarf", products[0].Name)

	// An empty title resets the view to the full raw list.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/storefront/search", nil))
	assert.Len(t, decodeProducts(t, rec), 3)
}

func TestListCategories(t *testing.T) {
	router := newCatalogRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/storefront/categories", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []domain.Category `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Shirts", resp.Data[0].Name)
}
