package usecase

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"

	"storefront/internal/clients"
	"storefront/internal/domain"

	"github.com/sirupsen/logrus"
)

const (
	SortAscending  = "asc"
	SortDescending = "desc"
)

// Filters are the sidebar criteria. Empty values (and "all" for the
// category) mean no constraint on that dimension; non-empty predicates
// are conjunctive.
type Filters struct {
	Category string
	Gender   string
	Color    string
	Size     string
}

// Catalog holds the full product and category collections, fetched once
// per process, plus an independently maintained filtered view. Sorting
// reorders the current view in place; searching rebuilds it from the raw
// list, so a search discards any prior sort order.
type Catalog struct {
	client clients.CatalogClient
	log    *logrus.Logger

	mu         sync.RWMutex
	products   []domain.Product
	categories []domain.Category
	view       []domain.Product
	loaded     bool
}

func NewCatalog(client clients.CatalogClient, logger *logrus.Logger) *Catalog {
	return &Catalog{
		client: client,
		log:    logger,
	}
}

// Load fetches both collections. On failure previous state is left
// untouched; there is no invalidation or refetch on mutation.
func (c *Catalog) Load(ctx context.Context) error {
	products, err := c.client.GetAllProducts(ctx)
	if err != nil {
		c.log.Errorf("Catalog: failed to load products: %v", err)
		return err
	}
	categories, err := c.client.GetAllCategories(ctx)
	if err != nil {
		c.log.Errorf("Catalog: failed to load categories: %v", err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = products
	c.categories = categories
	c.view = append([]domain.Product(nil), products...)
	c.loaded = true
	c.log.Infof("Catalog: loaded %d products and %d categories", len(products), len(categories))
	return nil
}

func (c *Catalog) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

func (c *Catalog) Products() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.Product(nil), c.products...)
}

func (c *Catalog) Categories() []domain.Category {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.Category(nil), c.categories...)
}

// View returns the current filtered view.
func (c *Catalog) View() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.Product(nil), c.view...)
}

// SortByPrice reorders the current view, not the raw list: sorting after
// a search only reorders whatever survived the search. Equal prices keep
// no particular order.
func (c *Catalog) SortByPrice(direction string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	sort.Slice(c.view, func(i, j int) bool {
		if direction == SortAscending {
			return c.view[i].Price < c.view[j].Price
		}
		return c.view[i].Price > c.view[j].Price
	})
}

// SearchByTitle replaces the view with the raw products whose name
// contains the query, case-insensitively. An empty query resets the view
// to the full raw list.
func (c *Catalog) SearchByTitle(title string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if title == "" {
		c.view = append([]domain.Product(nil), c.products...)
		return
	}
	needle := strings.ToLower(title)
	matched := make([]domain.Product, 0, len(c.products))
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			matched = append(matched, p)
		}
	}
	c.view = matched
}

// ApplyFilters keeps only in-stock products satisfying every non-empty
// criterion. It is computed fresh per request and never persisted into
// the stored view.
func ApplyFilters(products []domain.Product, f Filters) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if !p.InStock() {
			continue
		}
		if f.Category != "" && f.Category != "all" && strconv.Itoa(p.Category.ID) != f.Category {
			continue
		}
		if f.Gender != "" && !strings.EqualFold(p.Gender, f.Gender) {
			continue
		}
		if f.Color != "" && !strings.Contains(strings.ToLower(p.Color), strings.ToLower(f.Color)) {
			continue
		}
		if f.Size != "" && p.Size != f.Size {
			continue
		}
		out = append(out, p)
	}
	return out
}
