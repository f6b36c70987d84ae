package models

import "time"

// FavoriteEntry is a saved product in the favorites collection: a full
// product snapshot plus the time it was favorited. At most one entry exists
// per product ID.
type FavoriteEntry struct {
	Product
	AddedAt time.Time `json:"addedAt"`
}
