package repository

import (
	"context"
	"testing"
	"time"

	"produceMarketplace/internal/testutil"
	"produceMarketplace/models"
)

func TestCartRepository_AddAccumulatesQuantity(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "cart_add")
	repo := NewCartRepository(d)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	item := &models.CartItem{UserID: "vendor1", ProductID: "prod1", Name: "Tomatoes", Emoji: "🍅", UnitPrice: 36, Quantity: 2}
	if err := repo.Add(ctx, item); err != nil {
		t.Fatalf("add: %v", err)
	}
	// Re-adding the same product keeps the first captured price and adds up
	// quantity, even if the caller now quotes a different price.
	again := &models.CartItem{UserID: "vendor1", ProductID: "prod1", Name: "Tomatoes", Emoji: "🍅", UnitPrice: 40, Quantity: 3}
	if err := repo.Add(ctx, again); err != nil {
		t.Fatalf("add again: %v", err)
	}

	items, err := repo.List(ctx, "vendor1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(items))
	}
	if items[0].Quantity != 5 {
		t.Errorf("expected accumulated quantity 5, got %d", items[0].Quantity)
	}
	if items[0].UnitPrice != 36 {
		t.Errorf("expected first captured price 36, got %v", items[0].UnitPrice)
	}
	if got := Total(items); got != 5*36 {
		t.Errorf("expected total %v, got %v", 5*36, got)
	}
}

func TestCartRepository_UpdateQuantity(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "cart_update")
	repo := NewCartRepository(d)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	item := &models.CartItem{UserID: "vendor1", ProductID: "prod2", Name: "Onions", UnitPrice: 35, Quantity: 4}
	if err := repo.Add(ctx, item); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := repo.UpdateQuantity(ctx, "vendor1", "prod2", 9); err != nil {
		t.Fatalf("update quantity: %v", err)
	}
	items, _ := repo.List(ctx, "vendor1")
	if len(items) != 1 || items[0].Quantity != 9 {
		t.Fatalf("expected quantity 9, got %+v", items)
	}

	// Zero or negative quantity removes the line.
	if err := repo.UpdateQuantity(ctx, "vendor1", "prod2", 0); err != nil {
		t.Fatalf("update to zero: %v", err)
	}
	items, _ = repo.List(ctx, "vendor1")
	if len(items) != 0 {
		t.Fatalf("expected empty cart, got %+v", items)
	}

	if err := repo.UpdateQuantity(ctx, "vendor1", "prod-none", 2); err == nil {
		t.Error("expected error updating a line that is not carted")
	}
}

func TestCartRepository_ClearIsPerUser(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "cart_clear")
	repo := NewCartRepository(d)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	lines := []models.CartItem{
		{UserID: "vendor1", ProductID: "prod1", Name: "Tomatoes", UnitPrice: 40, Quantity: 1},
		{UserID: "vendor1", ProductID: "prod2", Name: "Onions", UnitPrice: 35, Quantity: 2},
		{UserID: "vendor2", ProductID: "prod1", Name: "Tomatoes", UnitPrice: 40, Quantity: 3},
	}
	for i := range lines {
		if err := repo.Add(ctx, &lines[i]); err != nil {
			t.Fatalf("add line %d: %v", i, err)
		}
	}

	if err := repo.Clear(ctx, "vendor1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if items, _ := repo.List(ctx, "vendor1"); len(items) != 0 {
		t.Errorf("vendor1 cart should be empty, got %+v", items)
	}
	if items, _ := repo.List(ctx, "vendor2"); len(items) != 1 {
		t.Errorf("vendor2 cart should be untouched, got %+v", items)
	}
}
