package models

import "time"

// CartLine is one product's quantity entry in the cart. The whole product is
// snapshotted at add time and is not refreshed from the catalog afterwards,
// so moving a line to favorites keeps the entry fully searchable and
// sortable. At most one line exists per product ID.
type CartLine struct {
	Product
	Quantity int       `json:"quantity"`
	AddedAt  time.Time `json:"addedAt"`
}

// NewCartLine snapshots a product into a cart line with the given quantity.
func NewCartLine(p Product, quantity int) CartLine {
	return CartLine{
		Product:  p,
		Quantity: quantity,
		AddedAt:  time.Now(),
	}
}

// UnitDiscountedPrice is the per-unit price after discount.
func (l CartLine) UnitDiscountedPrice() float64 {
	return l.DiscountedPrice()
}

// LineTotal is the discounted unit price times quantity.
func (l CartLine) LineTotal() float64 {
	return l.UnitDiscountedPrice() * float64(l.Quantity)
}

// CartTotals summarises the whole cart.
type CartTotals struct {
	ItemCount int     `json:"itemCount"`
	Subtotal  float64 `json:"subtotal"`
}
