package services

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/junaidrashid-git/storefront-api/models"
)

// AllCategories is the synthetic wildcard facet that matches every category.
const AllCategories = "All"

// ProductFetcher is the upstream catalog contract the view depends on.
type ProductFetcher interface {
	FetchAll(ctx context.Context) ([]models.Product, error)
}

// AnnotatedProduct is a catalog product with its live cart and favorite
// state attached at read time. The annotations are never persisted.
type AnnotatedProduct struct {
	models.Product
	InCart     bool `json:"inCart"`
	IsFavorite bool `json:"isFavorite"`
}

// CatalogService holds the fetched product list and its derived category
// facets, and answers filtered views over it. A failed fetch leaves the
// catalog empty with the error retained, never a partial list.
type CatalogService struct {
	mu         sync.RWMutex
	fetcher    ProductFetcher
	cart       *CartService
	favorites  *FavoritesService
	products   []models.Product
	categories []string
	fetchErr   error
}

func NewCatalogService(fetcher ProductFetcher, cart *CartService, favorites *FavoritesService) *CatalogService {
	return &CatalogService{
		fetcher:    fetcher,
		cart:       cart,
		favorites:  favorites,
		categories: []string{AllCategories},
	}
}

// Reload fetches the catalog, replacing the held list and rebuilding the
// category facets. On failure the list is emptied and the error retained.
func (s *CatalogService) Reload(ctx context.Context) error {
	products, err := s.fetcher.FetchAll(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.products = nil
		s.categories = []string{AllCategories}
		s.fetchErr = err
		return err
	}
	s.products = products
	s.categories = buildFacets(products)
	s.fetchErr = nil
	return nil
}

// buildFacets extracts distinct categories in fetch order, "All" first.
func buildFacets(products []models.Product) []string {
	categories := []string{AllCategories}
	seen := make(map[string]struct{})
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories
}

// Filter returns the products matching the search query and category, in the
// requested order. The empty category and "All" are wildcards; the query
// matches title, description or brand case-insensitively; "default" (or any
// unknown sort) keeps fetch order. Results carry live annotations.
func (s *CatalogService) Filter(query, category, sortBy string) []AnnotatedProduct {
	s.mu.RLock()
	filtered := make([]models.Product, 0, len(s.products))
	q := strings.ToLower(strings.TrimSpace(query))
	for _, p := range s.products {
		if category != "" && category != AllCategories && p.Category != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) &&
			!strings.Contains(strings.ToLower(p.Brand), q) {
			continue
		}
		filtered = append(filtered, p)
	}
	s.mu.RUnlock()

	switch sortBy {
	case SortPriceLow:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price < filtered[j].Price })
	case SortPriceHigh:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price > filtered[j].Price })
	case SortRating:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Rating > filtered[j].Rating })
	case SortName:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Title < filtered[j].Title })
	}

	return s.annotate(filtered)
}

// Get returns the annotated product with the given ID.
func (s *CatalogService) Get(productID int) (AnnotatedProduct, error) {
	s.mu.RLock()
	var found *models.Product
	for i := range s.products {
		if s.products[i].ID == productID {
			found = &s.products[i]
			break
		}
	}
	s.mu.RUnlock()

	if found == nil {
		return AnnotatedProduct{}, &models.NotFoundError{Resource: "catalog", ProductID: productID}
	}
	return s.annotate([]models.Product{*found})[0], nil
}

// Categories returns the facet list, "All" first.
func (s *CatalogService) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]string, len(s.categories))
	copy(categories, s.categories)
	return categories
}

// Count returns the number of fetched products.
func (s *CatalogService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.products)
}

// Err returns the error from the last fetch, or nil if it succeeded.
func (s *CatalogService) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.fetchErr
}

// annotate attaches live cart/favorite state to each product.
func (s *CatalogService) annotate(products []models.Product) []AnnotatedProduct {
	result := make([]AnnotatedProduct, len(products))
	for i, p := range products {
		result[i] = AnnotatedProduct{
			Product:    p,
			InCart:     s.cart.Contains(p.ID),
			IsFavorite: s.favorites.Contains(p.ID),
		}
	}
	return result
}
