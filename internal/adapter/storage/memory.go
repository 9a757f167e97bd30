package storage

import (
	"context"
	"sync"

	"github.com/teammerch/merch-store/internal/core/domain"
	"github.com/teammerch/merch-store/internal/port"
)

// In-memory adapters honoring the same contracts as the Redis and MySQL
// ones. Used as test doubles and for running the server without backing
// services.

type MemoryCartAdapter struct {
	mu    sync.Mutex
	carts map[string]map[string]int
}

func NewMemoryCartAdapter() *MemoryCartAdapter {
	return &MemoryCartAdapter{carts: make(map[string]map[string]int)}
}

func (m *MemoryCartAdapter) AddOne(ctx context.Context, session, itemID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cart, ok := m.carts[session]
	if !ok {
		cart = make(map[string]int)
		m.carts[session] = cart
	}
	cart[itemID]++
	return nil
}

func (m *MemoryCartAdapter) SetQuantity(ctx context.Context, session, itemID string, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cart, ok := m.carts[session]
	if !ok {
		if quantity <= 0 {
			return nil
		}
		cart = make(map[string]int)
		m.carts[session] = cart
	}
	if quantity <= 0 {
		delete(cart, itemID)
		return nil
	}
	cart[itemID] = quantity
	return nil
}

func (m *MemoryCartAdapter) Get(ctx context.Context, session string) (map[string]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string]int, len(m.carts[session]))
	for itemID, qty := range m.carts[session] {
		out[itemID] = qty
	}
	return out, nil
}

func (m *MemoryCartAdapter) Clear(ctx context.Context, session string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.carts, session)
	return nil
}

type MemorySessionAdapter struct {
	mu     sync.Mutex
	tokens map[string]bool
}

func NewMemorySessionAdapter() *MemorySessionAdapter {
	return &MemorySessionAdapter{tokens: make(map[string]bool)}
}

func (m *MemorySessionAdapter) Put(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tokens[token] = true
	return nil
}

func (m *MemorySessionAdapter) Check(ctx context.Context, token string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.tokens[token], nil
}

func (m *MemorySessionAdapter) Delete(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.tokens, token)
	return nil
}

type MemoryOrderAdapter struct {
	mu     sync.Mutex
	orders []domain.Order
}

func NewMemoryOrderAdapter() *MemoryOrderAdapter {
	return &MemoryOrderAdapter{}
}

func (m *MemoryOrderAdapter) Append(ctx context.Context, order domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.orders = append(m.orders, order)
	return nil
}

func (m *MemoryOrderAdapter) List(ctx context.Context) ([]domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.Order, len(m.orders))
	copy(out, m.orders)
	return out, nil
}

func (m *MemoryOrderAdapter) UpdateStatus(ctx context.Context, orderNumber string, status domain.OrderStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.orders {
		if m.orders[i].OrderNumber == orderNumber {
			m.orders[i].Status = status
			return nil
		}
	}
	return port.ErrOrderNotFound
}

func (m *MemoryOrderAdapter) Delete(ctx context.Context, orderNumber string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.orders {
		if m.orders[i].OrderNumber == orderNumber {
			m.orders = append(m.orders[:i], m.orders[i+1:]...)
			return nil
		}
	}
	return port.ErrOrderNotFound
}
