package service

import (
	"context"
	"fmt"

	"github.com/teammerch/merch-store/internal/core/domain"
	"github.com/teammerch/merch-store/internal/port"
)

// CartService mediates every cart mutation and derives the line-item
// view of a session's cart.
type CartService struct {
	catalog *domain.Catalog
	carts   port.CartRepository
}

func NewCartService(catalog *domain.Catalog, carts port.CartRepository) *CartService {
	return &CartService{catalog: catalog, carts: carts}
}

// CartView is the derived checkout summary for a session.
type CartView struct {
	Items         []domain.LineItem `json:"items"`
	TotalQuantity int               `json:"totalQuantity"`
	Subtotal      float64           `json:"subtotal"`
	Fee           float64           `json:"fee"`
	Total         float64           `json:"total"`
}

// AddOne increments the quantity for itemID. The id is not checked
// against the catalog; unknown ids stay in the cart but never surface
// through the line-item join.
func (s *CartService) AddOne(ctx context.Context, session, itemID string) error {
	if err := s.carts.AddOne(ctx, session, itemID); err != nil {
		return fmt.Errorf("add to cart: %w", err)
	}
	return nil
}

// SetQuantity sets the quantity for itemID, removing the entry at zero.
// Negative input is clamped to zero.
func (s *CartService) SetQuantity(ctx context.Context, session, itemID string, quantity int) error {
	if quantity < 0 {
		quantity = 0
	}
	if err := s.carts.SetQuantity(ctx, session, itemID, quantity); err != nil {
		return fmt.Errorf("set cart quantity: %w", err)
	}
	return nil
}

// LineItems joins the session's cart against the catalog.
func (s *CartService) LineItems(ctx context.Context, session string) ([]domain.LineItem, error) {
	cart, err := s.carts.Get(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("read cart: %w", err)
	}
	return domain.DeriveLineItems(s.catalog, cart), nil
}

// View derives the full cart summary: line items, badge count and totals.
// The fee applies only when the cart is non-empty.
func (s *CartService) View(ctx context.Context, session string) (CartView, error) {
	items, err := s.LineItems(ctx, session)
	if err != nil {
		return CartView{}, err
	}

	view := CartView{
		Items:         items,
		TotalQuantity: domain.TotalQuantity(items),
	}
	for _, item := range items {
		view.Subtotal += item.UnitPrice * float64(item.Quantity)
	}
	if len(items) > 0 {
		view.Fee = domain.ScreenSetupFee
	}
	view.Total = view.Subtotal + view.Fee
	return view, nil
}
