package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/teammerch/merch-store/internal/core/domain"
	"github.com/teammerch/merch-store/internal/port"
)

var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrNameRequired = errors.New("customer name required")
	ErrSizeRequired = errors.New("size required")
)

// CheckoutService turns a session's cart into an immutable order record.
type CheckoutService struct {
	catalog *domain.Catalog
	carts   port.CartRepository
	orders  port.OrderRepository
}

func NewCheckoutService(catalog *domain.Catalog, carts port.CartRepository, orders port.OrderRepository) *CheckoutService {
	return &CheckoutService{catalog: catalog, carts: carts, orders: orders}
}

// Checkout builds an order from the session's cart, appends it to the
// order store and clears the cart. The order is created Pending.
func (s *CheckoutService) Checkout(ctx context.Context, session, customerName, size string) (domain.Order, error) {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return domain.Order{}, ErrNameRequired
	}

	orderSize, ok := domain.ParseSize(size)
	if !ok {
		return domain.Order{}, ErrSizeRequired
	}

	cart, err := s.carts.Get(ctx, session)
	if err != nil {
		return domain.Order{}, fmt.Errorf("read cart: %w", err)
	}

	items := domain.DeriveLineItems(s.catalog, cart)
	if len(items) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	order := domain.Order{
		OrderNumber:  newOrderNumber(),
		Items:        items,
		CustomerName: customerName,
		Size:         orderSize,
		Status:       domain.OrderStatusPending,
		Timestamp:    time.Now(),
	}

	if err := s.orders.Append(ctx, order); err != nil {
		return domain.Order{}, fmt.Errorf("append order: %w", err)
	}

	// The order is placed at this point; a failed cart clear must not
	// undo it.
	if err := s.carts.Clear(ctx, session); err != nil {
		log.Warn().Err(err).
			Str("order_number", order.OrderNumber).
			Msg("failed to clear cart after checkout")
	}

	log.Info().
		Str("order_number", order.OrderNumber).
		Str("customer", order.CustomerName).
		Int("items", len(order.Items)).
		Float64("total", order.Total()).
		Msg("order placed")

	return order, nil
}

// newOrderNumber derives a best-effort unique id from the last six
// digits of the current Unix time in milliseconds.
func newOrderNumber() string {
	return fmt.Sprintf("ORD-%06d", time.Now().UnixMilli()%1_000_000)
}
