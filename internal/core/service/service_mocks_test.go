package service

import (
	"context"
	"errors"
	"sync"

	"github.com/teammerch/merch-store/internal/core/domain"
	"github.com/teammerch/merch-store/internal/port"
)

// Hand-rolled port mocks shared by the service tests.

var (
	errReadFailed  = errors.New("read failed")
	errWriteFailed = errors.New("write failed")
)

type mockCartRepo struct {
	mu    sync.Mutex
	carts map[string]map[string]int

	failGet bool
}

func newMockCartRepo() *mockCartRepo {
	return &mockCartRepo{carts: make(map[string]map[string]int)}
}

func (m *mockCartRepo) AddOne(ctx context.Context, session, itemID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.carts[session] == nil {
		m.carts[session] = make(map[string]int)
	}
	m.carts[session][itemID]++
	return nil
}

func (m *mockCartRepo) SetQuantity(ctx context.Context, session, itemID string, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.carts[session] == nil {
		m.carts[session] = make(map[string]int)
	}
	if quantity <= 0 {
		delete(m.carts[session], itemID)
		return nil
	}
	m.carts[session][itemID] = quantity
	return nil
}

func (m *mockCartRepo) Get(ctx context.Context, session string) (map[string]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failGet {
		return nil, errReadFailed
	}
	out := make(map[string]int, len(m.carts[session]))
	for id, qty := range m.carts[session] {
		out[id] = qty
	}
	return out, nil
}

func (m *mockCartRepo) Clear(ctx context.Context, session string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.carts, session)
	return nil
}

type mockOrderRepo struct {
	mu         sync.Mutex
	orders     []domain.Order
	failAppend bool
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{}
}

func (m *mockOrderRepo) Append(ctx context.Context, order domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failAppend {
		return errWriteFailed
	}
	m.orders = append(m.orders, order)
	return nil
}

func (m *mockOrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.Order, len(m.orders))
	copy(out, m.orders)
	return out, nil
}

func (m *mockOrderRepo) UpdateStatus(ctx context.Context, orderNumber string, status domain.OrderStatus) error {
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

func (m *mockOrderRepo) Delete(ctx context.Context, orderNumber string) error {
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

type mockSessionRepo struct {
	mu     sync.Mutex
	tokens map[string]bool
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{tokens: make(map[string]bool)}
}

func (m *mockSessionRepo) Put(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[token] = true
	return nil
}

func (m *mockSessionRepo) Check(ctx context.Context, token string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tokens[token], nil
}

func (m *mockSessionRepo) Delete(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, token)
	return nil
}

func testCatalog() *domain.Catalog {
	return domain.NewCatalog([]domain.Product{
		{ID: "hoodies", Name: "Hoodies", UnitPrice: 35.23},
		{ID: "quarter-zips", Name: "Quarter Zips", UnitPrice: 31.37},
		{ID: "tshirts", Name: "T-Shirts", UnitPrice: 8.44},
		{ID: "polo-shirts", Name: "Polo Shirts", UnitPrice: 17.23},
		{ID: "stickers", Name: "Stickers", UnitPrice: 0},
	})
}
