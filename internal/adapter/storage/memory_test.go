package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/teammerch/merch-store/internal/core/domain"
	"github.com/teammerch/merch-store/internal/port"
)

func TestMemoryCart_NeverStoresZeroQuantity(t *testing.T) {
	ctx := context.Background()
	adapter := NewMemoryCartAdapter()
	session := "s1"

	// Arbitrary add/set sequence; no step may leave a zero entry behind.
	steps := []func() error{
		func() error { return adapter.AddOne(ctx, session, "tshirts") },
		func() error { return adapter.SetQuantity(ctx, session, "hoodies", 4) },
		func() error { return adapter.SetQuantity(ctx, session, "tshirts", 0) },
		func() error { return adapter.SetQuantity(ctx, session, "stickers", 0) },
		func() error { return adapter.AddOne(ctx, session, "tshirts") },
		func() error { return adapter.SetQuantity(ctx, session, "hoodies", -2) },
	}

	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("step %d failed: %v", i, err)
		}
		cart, err := adapter.Get(ctx, session)
		if err != nil {
			t.Fatalf("step %d get failed: %v", i, err)
		}
		for itemID, qty := range cart {
			if qty <= 0 {
				t.Fatalf("step %d: cart holds non-positive quantity %d for %s", i, qty, itemID)
			}
		}
	}

	cart, _ := adapter.Get(ctx, session)
	if cart["tshirts"] != 1 {
		t.Errorf("expected tshirts quantity 1, got %d", cart["tshirts"])
	}
	if _, ok := cart["hoodies"]; ok {
		t.Error("expected hoodies entry to be removed")
	}
}

func TestMemoryCart_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	adapter := NewMemoryCartAdapter()

	adapter.AddOne(ctx, "s1", "tshirts")
	adapter.AddOne(ctx, "s2", "hoodies")
	adapter.Clear(ctx, "s1")

	cart, _ := adapter.Get(ctx, "s2")
	if cart["hoodies"] != 1 {
		t.Errorf("expected s2 cart untouched, got %v", cart)
	}
}

func TestMemorySession_Lifecycle(t *testing.T) {
	ctx := context.Background()
	adapter := NewMemorySessionAdapter()

	ok, _ := adapter.Check(ctx, "tok")
	if ok {
		t.Error("expected unknown token to be unauthenticated")
	}

	adapter.Put(ctx, "tok")
	ok, _ = adapter.Check(ctx, "tok")
	if !ok {
		t.Error("expected token to be authenticated")
	}

	adapter.Delete(ctx, "tok")
	ok, _ = adapter.Check(ctx, "tok")
	if ok {
		t.Error("expected token to be unauthenticated after delete")
	}
}

func TestMemoryOrder_UpdateStatusOnlyTouchesTarget(t *testing.T) {
	ctx := context.Background()
	adapter := NewMemoryOrderAdapter()

	for _, num := range []string{"ORD-000001", "ORD-000002", "ORD-000003"} {
		adapter.Append(ctx, domain.Order{
			OrderNumber:  num,
			CustomerName: "Alex",
			Size:         domain.SizeL,
			Status:       domain.OrderStatusPending,
			Timestamp:    time.Now(),
		})
	}

	if err := adapter.UpdateStatus(ctx, "ORD-000002", domain.OrderStatusCompleted); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	orders, _ := adapter.List(ctx)
	if orders[0].Status != domain.OrderStatusPending || orders[2].Status != domain.OrderStatusPending {
		t.Error("expected other orders to keep their status")
	}
	if orders[1].Status != domain.OrderStatusCompleted {
		t.Errorf("expected target order Completed, got %s", orders[1].Status)
	}
}

func TestMemoryOrder_NotFound(t *testing.T) {
	ctx := context.Background()
	adapter := NewMemoryOrderAdapter()

	adapter.Append(ctx, domain.Order{OrderNumber: "ORD-000001", Status: domain.OrderStatusPending})

	if err := adapter.UpdateStatus(ctx, "ORD-999999", domain.OrderStatusCompleted); !errors.Is(err, port.ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound, got %v", err)
	}
	if err := adapter.Delete(ctx, "ORD-999999"); !errors.Is(err, port.ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound, got %v", err)
	}

	// Store unchanged after failed mutations.
	orders, _ := adapter.List(ctx)
	if len(orders) != 1 || orders[0].Status != domain.OrderStatusPending {
		t.Errorf("expected store unchanged, got %v", orders)
	}
}

func TestMemoryOrder_DeleteRemovesOnlyTarget(t *testing.T) {
	ctx := context.Background()
	adapter := NewMemoryOrderAdapter()

	adapter.Append(ctx, domain.Order{OrderNumber: "ORD-000001"})
	adapter.Append(ctx, domain.Order{OrderNumber: "ORD-000002"})

	if err := adapter.Delete(ctx, "ORD-000001"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	orders, _ := adapter.List(ctx)
	if len(orders) != 1 || orders[0].OrderNumber != "ORD-000002" {
		t.Errorf("expected only ORD-000002 to remain, got %v", orders)
	}
}
