// Package storage provides the key-value persistence layer for the cart and
// favorites collections. Values are JSON blobs stored under fixed keys.
package storage

import (
	"context"
	"errors"
)

// Keys owned by the storefront services. No other component writes them.
const (
	CartKey      = "cart"
	FavoritesKey = "favorites"
)

// ErrKeyNotFound is returned by Get when the key has never been written or
// has been removed.
var ErrKeyNotFound = errors.New("storage: key not found")

// Store is the key-value contract the cart and favorites services persist
// through: string keys, JSON string values, no transactions.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
