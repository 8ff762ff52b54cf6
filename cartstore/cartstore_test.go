package cartstore

import (
	"context"
	"testing"

	"puntogo/kv"
	"puntogo/models"
)

func testProduct(id string, price float64) models.Product {
	return models.Product{ID: id, Title: "Product " + id, Price: price, Stock: 10}
}

func TestAddMergesSameProduct(t *testing.T) {
	ctx := context.Background()
	store := New(kv.NewMemory())

	if _, err := store.Add(ctx, "s1", testProduct("p1", 10), 1); err != nil {
		t.Fatal(err)
	}
	lines, err := store.Add(ctx, "s1", testProduct("p1", 10), 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Quantity != 3 {
		t.Errorf("quantity = %d, want 3", lines[0].Quantity)
	}
}

func TestAddRejectsNonPositiveQuantity(t *testing.T) {
	ctx := context.Background()
	store := New(kv.NewMemory())

	if _, err := store.Add(ctx, "s1", testProduct("p1", 10), 0); err == nil {
		t.Fatal("expected error for quantity 0")
	}
	if _, err := store.Add(ctx, "s1", testProduct("p1", 10), -2); err == nil {
		t.Fatal("expected error for negative quantity")
	}
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	ctx := context.Background()
	store := New(kv.NewMemory())

	store.Add(ctx, "s1", testProduct("p1", 10), 2)
	store.Add(ctx, "s1", testProduct("p2", 20), 1)

	lines, err := store.SetQuantity(ctx, "s1", "p1", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 1 || lines[0].Product.ID != "p2" {
		t.Fatalf("expected only p2 to remain, got %+v", lines)
	}
}

func TestRemoveAndClear(t *testing.T) {
	ctx := context.Background()
	store := New(kv.NewMemory())

	store.Add(ctx, "s1", testProduct("p1", 10), 2)
	store.Add(ctx, "s1", testProduct("p2", 20), 1)

	lines, err := store.Remove(ctx, "s1", "p2")
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected 1 line after remove, got %d", len(lines))
	}

	if err := store.Clear(ctx, "s1"); err != nil {
		t.Fatal(err)
	}
	lines, err = store.Lines(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected empty cart after clear, got %d lines", len(lines))
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := New(kv.NewMemory())

	store.Add(ctx, "s1", testProduct("p1", 10), 1)
	lines, err := store.Lines(ctx, "s2")
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected s2 cart to be empty, got %d lines", len(lines))
	}
}

func TestSubtotal(t *testing.T) {
	lines := []models.CartLine{
		{Product: testProduct("p1", 119.90), Quantity: 1},
		{Product: testProduct("p2", 54.90), Quantity: 2},
	}
	want := 119.90 + 2*54.90
	if got := Subtotal(lines); got != want {
		t.Errorf("Subtotal = %v, want %v", got, want)
	}
	if got := Subtotal(nil); got != 0 {
		t.Errorf("Subtotal(nil) = %v, want 0", got)
	}
}
