package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/clients"
	"storefront/internal/domain"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func catalogWith(products []domain.Product) *Catalog {
	c := NewCatalog(nil, testLogger())
	c.products = append([]domain.Product(nil), products...)
	c.view = append([]domain.Product(nil), products...)
	c.loaded = true
	return c
}

var sampleProducts = []domain.Product{
	{ID: 1, Name: "Linen Shirt", Price: 10, Status: domain.StatusInStock, Category: domain.CategoryRef{ID: 2, Name: "Shirts"}, Gender: "MEN", Color: "Sky Blue", Size: "M"},
	{ID: 2, Name: "Denim Jacket", Price: 5, Status: domain.StatusOutOfStock, Category: domain.CategoryRef{ID: 3, Name: "Jackets"}, Gender: "WOMEN", Color: "Blue", Size: "S"},
	{ID: 3, Name: "Wool Scarf", Price: 3, Status: domain.StatusInStock, Category: domain.CategoryRef{ID: 4, Name: "Accessories"}, Gender: "WOMEN", Color: "Red", Size: "One"},
	{ID: 4, Name: "Linen Trousers", Price: 10, Status: "in_stock", Category: domain.CategoryRef{ID: 2, Name: "Shirts"}, Gender: "men", Color: "navy blue", Size: "L"},
}

func TestApplyFiltersInStockOnly(t *testing.T) {
	got := ApplyFilters(sampleProducts, Filters{})
	require.Len(t, got, 3)
	for _, p := range got {
		assert.True(t, p.InStock())
		assert.NotEqual(t, 2, p.ID)
	}
}

func TestApplyFiltersConjunctive(t *testing.T) {
	tests := []struct {
		name    string
		filters Filters
		wantIDs []int
	}{
		{"no constraints", Filters{}, []int{1, 3, 4}},
		{"category all", Filters{Category: "all"}, []int{1, 3, 4}},
		{"by category id", Filters{Category: "2"}, []int{1, 4}},
		{"gender case-insensitive", Filters{Gender: "men"}, []int{1, 4}},
		{"color substring case-insensitive", Filters{Color: "blue"}, []int{1, 4}},
		{"size exact", Filters{Size: "M"}, []int{1}},
		{"all together", Filters{Category: "2", Gender: "MEN", Color: "sky", Size: "M"}, []int{1}},
		{"conjunction excludes", Filters{Category: "2", Size: "One"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyFilters(sampleProducts, tt.filters)
			var ids []int
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestApplyFiltersScenario(t *testing.T) {
	raw := []domain.Product{
		{ID: 1, Price: 10, Status: domain.StatusInStock},
		{ID: 2, Price: 5, Status: domain.StatusOutOfStock},
	}
	got := ApplyFilters(raw, Filters{})
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)
}

func TestSortByPrice(t *testing.T) {
	c := catalogWith([]domain.Product{
		{ID: 1, Price: 10, Status: domain.StatusInStock},
		{ID: 3, Price: 3, Status: domain.StatusInStock},
	})

	c.SortByPrice(SortAscending)
	view := c.View()
	require.Len(t, view, 2)
	assert.Equal(t, 3, view[0].ID)
	assert.Equal(t, 1, view[1].ID)

	c.SortByPrice(SortDescending)
	view = c.View()
	assert.Equal(t, 1, view[0].ID)
	assert.Equal(t, 3, view[1].ID)
}

func TestSortAscThenDescReverses(t *testing.T) {
	c := catalogWith(sampleProducts)
	c.SortByPrice(SortAscending)
	asc := c.View()
	c.SortByPrice(SortDescending)
	desc := c.View()

	require.Len(t, desc, len(asc))
	for i := range asc {
		assert.Equal(t, asc[i].Price, desc[len(desc)-1-i].Price)
	}
}

func TestSearchByTitle(t *testing.T) {
	c := catalogWith(sampleProducts)

	c.SearchByTitle("linen")
	view := c.View()
	require.Len(t, view, 2)
	assert.Equal(t, 1, view[0].ID)
	assert.Equal(t, 4, view[1].ID)

	c.SearchByTitle("")
	assert.Len(t, c.View(), len(sampleProducts))
}

func TestSearchDiscardsSortOrder(t *testing.T) {
	c := catalogWith(sampleProducts)
	c.SortByPrice(SortDescending)

	// Search rebuilds from the raw list, so the sort order is gone.
	c.SearchByTitle("linen")
	view := c.View()
	require.Len(t, view, 2)
	assert.Equal(t, 1, view[0].ID)
	assert.Equal(t, 4, view[1].ID)
}

func TestSortOnlyReordersCurrentView(t *testing.T) {
	c := catalogWith(sampleProducts)
	c.SearchByTitle("linen")
	c.SortByPrice(SortAscending)

	// Sorting after a search only ever reorders what survived the search.
	view := c.View()
	require.Len(t, view, 2)
	for _, p := range view {
		assert.Contains(t, []int{1, 4}, p.ID)
	}
}

func TestCatalogLoad(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products/all":
			json.NewEncoder(w).Encode(map[string]interface{}{"data": sampleProducts, "success": true})
		case "/categories/all":
			json.NewEncoder(w).Encode(map[string]interface{}{"data": []domain.Category{{ID: 2, Name: "Shirts"}}, "success": true})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := clients.NewStoreHTTPClient(srv.URL, time.Second, testLogger())
	c := NewCatalog(client, testLogger())

	require.NoError(t, c.Load(context.Background()))
	assert.True(t, c.Loaded())
	assert.Len(t, c.Products(), len(sampleProducts))
	assert.Len(t, c.Categories(), 1)
	// The filtered view starts equal to the raw list.
	assert.Equal(t, c.Products(), c.View())
}

func TestCatalogLoadFailureKeepsState(t *testing.T) {
	c := catalogWith(sampleProducts)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "boom"})
	}))
	defer srv.Close()

	c.client = clients.NewStoreHTTPClient(srv.URL, time.Second, testLogger())
	require.Error(t, c.Load(context.Background()))
	assert.Len(t, c.Products(), len(sampleProducts))
}
