package port

import "context"

// CartRepository holds per-session cart contents: a mapping from item id
// to quantity. Implementations must never store a zero or negative
// quantity; removing an item means removing the entry.
type CartRepository interface {
	// AddOne increments the quantity for itemID, creating the entry at 1.
	AddOne(ctx context.Context, session, itemID string) error

	// SetQuantity sets the quantity for itemID. A quantity of 0 removes
	// the entry.
	SetQuantity(ctx context.Context, session, itemID string, quantity int) error

	// Get returns the full cart contents for a session. A missing cart is
	// an empty map, not an error.
	Get(ctx context.Context, session string) (map[string]int, error)

	// Clear removes the session's cart wholesale.
	Clear(ctx context.Context, session string) error
}
