// Package services holds the storefront domain logic: the cart ledger, the
// favorites set, the catalog view and the checkout calculator.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/storage"
)

// CartService owns the cart lines. It mirrors the stored "cart" key in
// memory; every mutation is written to storage first and applied to memory
// only after the write succeeds, so the two cannot be observed to diverge.
type CartService struct {
	mu    sync.RWMutex
	store storage.Store
	lines []models.CartLine
}

func NewCartService(store storage.Store) *CartService {
	return &CartService{store: store}
}

// Load reads the stored cart into memory. An absent key means an empty cart.
func (cs *CartService) Load(ctx context.Context) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	return cs.reload(ctx)
}

// Refresh re-reads the stored cart, dropping in-memory state. Called when a
// consumer regains focus on the cart so writes made elsewhere are picked up.
func (cs *CartService) Refresh(ctx context.Context) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	return cs.reload(ctx)
}

// reload must be called with cs.mu held for writing.
func (cs *CartService) reload(ctx context.Context) error {
	raw, err := cs.store.Get(ctx, storage.CartKey)
	if err == storage.ErrKeyNotFound {
		cs.lines = nil
		return nil
	}
	if err != nil {
		return &models.StorageError{Op: "get", Key: storage.CartKey, Err: err}
	}

	var lines []models.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return &models.StorageError{Op: "decode", Key: storage.CartKey, Err: err}
	}
	cs.lines = lines
	return nil
}

// persist writes the candidate line set to storage. Must be called with
// cs.mu held; the caller commits the set to memory only when this succeeds.
func (cs *CartService) persist(ctx context.Context, lines []models.CartLine) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return &models.StorageError{Op: "encode", Key: storage.CartKey, Err: err}
	}
	if err := cs.store.Set(ctx, storage.CartKey, string(data)); err != nil {
		return &models.StorageError{Op: "set", Key: storage.CartKey, Err: err}
	}
	return nil
}

// AddItem adds quantity units of product, folding into an existing line for
// the same product instead of duplicating it.
func (cs *CartService) AddItem(ctx context.Context, product models.Product, quantity int) error {
	if quantity < 1 {
		return &models.ValidationError{Reason: fmt.Sprintf("quantity must be at least 1, got %d", quantity)}
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	next := make([]models.CartLine, len(cs.lines))
	copy(next, cs.lines)

	found := false
	for i := range next {
		if next[i].ID == product.ID {
			next[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		next = append(next, models.NewCartLine(product, quantity))
	}

	if err := cs.persist(ctx, next); err != nil {
		return err
	}
	cs.lines = next
	return nil
}

// SetQuantity overwrites a line's quantity. A quantity below 1 removes the
// line, exactly like RemoveItem.
func (cs *CartService) SetQuantity(ctx context.Context, productID, quantity int) error {
	if quantity < 1 {
		return cs.RemoveItem(ctx, productID)
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	idx := cs.indexOf(productID)
	if idx < 0 {
		return &models.NotFoundError{Resource: "cart", ProductID: productID}
	}

	next := make([]models.CartLine, len(cs.lines))
	copy(next, cs.lines)
	next[idx].Quantity = quantity

	if err := cs.persist(ctx, next); err != nil {
		return err
	}
	cs.lines = next
	return nil
}

// RemoveItem deletes the line for productID. Removing an absent product is a
// no-op.
func (cs *CartService) RemoveItem(ctx context.Context, productID int) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	_, err := cs.removeLocked(ctx, productID)
	return err
}

// removeLocked removes the line and reports whether it existed, plus its
// snapshot. Must be called with cs.mu held for writing.
func (cs *CartService) removeLocked(ctx context.Context, productID int) (models.CartLine, error) {
	idx := cs.indexOf(productID)
	if idx < 0 {
		return models.CartLine{}, nil
	}

	line := cs.lines[idx]
	next := make([]models.CartLine, 0, len(cs.lines)-1)
	next = append(next, cs.lines[:idx]...)
	next = append(next, cs.lines[idx+1:]...)

	if err := cs.persist(ctx, next); err != nil {
		return models.CartLine{}, err
	}
	cs.lines = next
	return line, nil
}

// Clear empties the cart by removing its key. Clearing an already empty cart
// is a no-op.
func (cs *CartService) Clear(ctx context.Context) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if err := cs.store.Remove(ctx, storage.CartKey); err != nil {
		return &models.StorageError{Op: "remove", Key: storage.CartKey, Err: err}
	}
	cs.lines = nil
	return nil
}

// MoveToFavorites removes the cart line for productID and saves the product
// into favorites, keeping any existing favorite entry untouched. The cart
// and favorites keys are written sequentially with no rollback across them;
// keeping both writes behind this one method leaves room to harden that
// later. An absent cart line fails with NotFoundError before favorites are
// touched.
func (cs *CartService) MoveToFavorites(ctx context.Context, productID int, favorites *FavoritesService) error {
	cs.mu.Lock()

	if cs.indexOf(productID) < 0 {
		cs.mu.Unlock()
		return &models.NotFoundError{Resource: "cart", ProductID: productID}
	}

	line, err := cs.removeLocked(ctx, productID)
	cs.mu.Unlock()
	if err != nil {
		return err
	}

	return favorites.Add(ctx, line.Product)
}

// Totals sums quantities and discounted line totals across the cart.
func (cs *CartService) Totals() models.CartTotals {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	var totals models.CartTotals
	for _, line := range cs.lines {
		totals.ItemCount += line.Quantity
		totals.Subtotal += line.LineTotal()
	}
	return totals
}

// Contains reports whether the cart holds a line for productID.
func (cs *CartService) Contains(productID int) bool {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	return cs.indexOf(productID) >= 0
}

// Items returns a copy of the cart lines in insertion order.
func (cs *CartService) Items() []models.CartLine {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	items := make([]models.CartLine, len(cs.lines))
	copy(items, cs.lines)
	return items
}

// indexOf must be called with cs.mu held.
func (cs *CartService) indexOf(productID int) int {
	for i := range cs.lines {
		if cs.lines[i].ID == productID {
			return i
		}
	}
	return -1
}
