package services

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/storage"
)

// Sort orders accepted by FilterSorted and the catalog filter.
const (
	SortDefault   = "default"
	SortNewest    = "newest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortName      = "name"
)

// FavoritesService owns the favorites collection: at most one entry per
// product, mirrored in memory from the stored "favorites" key with the same
// persist-then-commit rule as the cart.
type FavoritesService struct {
	mu      sync.RWMutex
	store   storage.Store
	entries []models.FavoriteEntry
	index   map[int]struct{}
}

func NewFavoritesService(store storage.Store) *FavoritesService {
	return &FavoritesService{store: store, index: make(map[int]struct{})}
}

// Load reads the stored favorites into memory. An absent key means an empty
// collection.
func (fs *FavoritesService) Load(ctx context.Context) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	return fs.reload(ctx)
}

// Refresh re-reads the stored favorites, dropping in-memory state.
func (fs *FavoritesService) Refresh(ctx context.Context) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	return fs.reload(ctx)
}

// reload must be called with fs.mu held for writing.
func (fs *FavoritesService) reload(ctx context.Context) error {
	raw, err := fs.store.Get(ctx, storage.FavoritesKey)
	if err == storage.ErrKeyNotFound {
		fs.commit(nil)
		return nil
	}
	if err != nil {
		return &models.StorageError{Op: "get", Key: storage.FavoritesKey, Err: err}
	}

	var entries []models.FavoriteEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return &models.StorageError{Op: "decode", Key: storage.FavoritesKey, Err: err}
	}
	fs.commit(entries)
	return nil
}

// persist writes the candidate entry set to storage. Must be called with
// fs.mu held; the caller commits only when this succeeds.
func (fs *FavoritesService) persist(ctx context.Context, entries []models.FavoriteEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return &models.StorageError{Op: "encode", Key: storage.FavoritesKey, Err: err}
	}
	if err := fs.store.Set(ctx, storage.FavoritesKey, string(data)); err != nil {
		return &models.StorageError{Op: "set", Key: storage.FavoritesKey, Err: err}
	}
	return nil
}

// commit replaces the in-memory entries and rebuilds the membership index.
// Must be called with fs.mu held for writing.
func (fs *FavoritesService) commit(entries []models.FavoriteEntry) {
	fs.entries = entries
	fs.index = make(map[int]struct{}, len(entries))
	for _, entry := range entries {
		fs.index[entry.ID] = struct{}{}
	}
}

// Toggle flips membership for the product and returns the resulting state:
// true when the product was just favorited, false when it was removed. On a
// storage failure membership is unchanged.
func (fs *FavoritesService) Toggle(ctx context.Context, product models.Product) (bool, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if _, ok := fs.index[product.ID]; ok {
		next := withoutEntry(fs.entries, product.ID)
		if err := fs.persist(ctx, next); err != nil {
			return true, err
		}
		fs.commit(next)
		return false, nil
	}

	next := make([]models.FavoriteEntry, len(fs.entries), len(fs.entries)+1)
	copy(next, fs.entries)
	next = append(next, models.FavoriteEntry{Product: product, AddedAt: time.Now()})
	if err := fs.persist(ctx, next); err != nil {
		return false, err
	}
	fs.commit(next)
	return true, nil
}

// Add inserts a favorite for the product unless one already exists, in which
// case the existing entry is kept as-is.
func (fs *FavoritesService) Add(ctx context.Context, product models.Product) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if _, ok := fs.index[product.ID]; ok {
		return nil
	}

	next := make([]models.FavoriteEntry, len(fs.entries), len(fs.entries)+1)
	copy(next, fs.entries)
	next = append(next, models.FavoriteEntry{Product: product, AddedAt: time.Now()})
	if err := fs.persist(ctx, next); err != nil {
		return err
	}
	fs.commit(next)
	return nil
}

// Remove deletes the entry for productID. Removing an absent product is a
// no-op.
func (fs *FavoritesService) Remove(ctx context.Context, productID int) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if _, ok := fs.index[productID]; !ok {
		return nil
	}

	next := withoutEntry(fs.entries, productID)
	if err := fs.persist(ctx, next); err != nil {
		return err
	}
	fs.commit(next)
	return nil
}

// Contains reports membership for productID.
func (fs *FavoritesService) Contains(productID int) bool {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	_, ok := fs.index[productID]
	return ok
}

// Get returns the favorite entry for productID.
func (fs *FavoritesService) Get(productID int) (models.FavoriteEntry, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	for _, entry := range fs.entries {
		if entry.ID == productID {
			return entry, nil
		}
	}
	return models.FavoriteEntry{}, &models.NotFoundError{Resource: "favorites", ProductID: productID}
}

// Count returns the number of favorites.
func (fs *FavoritesService) Count() int {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	return len(fs.entries)
}

// FilterSorted returns the favorites whose title or description contains
// query (case-insensitive), ordered per the sort key: newest (descending
// addedAt, ties keep insertion order), price-low, price-high or rating. It
// never mutates the collection.
func (fs *FavoritesService) FilterSorted(query, order string) []models.FavoriteEntry {
	fs.mu.RLock()
	result := make([]models.FavoriteEntry, 0, len(fs.entries))
	q := strings.ToLower(strings.TrimSpace(query))
	for _, entry := range fs.entries {
		if q == "" ||
			strings.Contains(strings.ToLower(entry.Title), q) ||
			strings.Contains(strings.ToLower(entry.Description), q) {
			result = append(result, entry)
		}
	}
	fs.mu.RUnlock()

	switch order {
	case SortPriceLow:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case SortPriceHigh:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	case SortRating:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Rating > result[j].Rating })
	case SortNewest:
		sort.SliceStable(result, func(i, j int) bool { return result[i].AddedAt.After(result[j].AddedAt) })
	}
	return result
}

func withoutEntry(entries []models.FavoriteEntry, productID int) []models.FavoriteEntry {
	next := make([]models.FavoriteEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.ID != productID {
			next = append(next, entry)
		}
	}
	return next
}
