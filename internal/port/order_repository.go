package port

import (
	"context"
	"errors"

	"github.com/teammerch/merch-store/internal/core/domain"
)

// ErrOrderNotFound is returned by mutations addressing an order number
// that is not in the store. Callers can tell "nothing to change" apart
// from "changed nothing".
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository is the order collection: append-only from the
// storefront side, full read/update/delete from the admin side.
type OrderRepository interface {
	// Append adds a new order to the collection.
	Append(ctx context.Context, order domain.Order) error

	// List returns every order in insertion order, newest last.
	List(ctx context.Context) ([]domain.Order, error)

	// UpdateStatus replaces the status of the order with the given
	// number. Returns ErrOrderNotFound if no such order exists.
	UpdateStatus(ctx context.Context, orderNumber string, status domain.OrderStatus) error

	// Delete removes the order with the given number. Returns
	// ErrOrderNotFound if no such order exists.
	Delete(ctx context.Context, orderNumber string) error
}
