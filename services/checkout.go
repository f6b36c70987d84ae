package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/junaidrashid-git/storefront-api/models"
)

// taxRate is the flat sales tax applied at checkout.
const taxRate = 0.10

// CheckoutSummary is the derived order total for the current cart.
type CheckoutSummary struct {
	ItemCount int     `json:"itemCount"`
	Subtotal  float64 `json:"subtotal"`
	Tax       float64 `json:"tax"`
	Total     float64 `json:"total"`
}

// Order is the receipt for a confirmed checkout.
type Order struct {
	Reference string          `json:"reference"`
	Summary   CheckoutSummary `json:"summary"`
	PlacedAt  time.Time       `json:"placedAt"`
}

// CheckoutService derives totals from the cart. Checkout is simulated: no
// payment is taken and no order is stored; confirmation clears the cart.
type CheckoutService struct {
	cart *CartService
}

func NewCheckoutService(cart *CartService) *CheckoutService {
	return &CheckoutService{cart: cart}
}

// Summary prices the current cart with tax.
func (s *CheckoutService) Summary() CheckoutSummary {
	totals := s.cart.Totals()
	tax := totals.Subtotal * taxRate
	return CheckoutSummary{
		ItemCount: totals.ItemCount,
		Subtotal:  totals.Subtotal,
		Tax:       tax,
		Total:     totals.Subtotal + tax,
	}
}

// Confirm places the simulated order and empties the cart. Confirming an
// empty cart is rejected.
func (s *CheckoutService) Confirm(ctx context.Context) (Order, error) {
	summary := s.Summary()
	if summary.ItemCount == 0 {
		return Order{}, &models.ValidationError{Reason: "cart is empty"}
	}

	if err := s.cart.Clear(ctx); err != nil {
		return Order{}, err
	}

	return Order{
		Reference: uuid.New().String(),
		Summary:   summary,
		PlacedAt:  time.Now(),
	}, nil
}
