package repository

import (
	"context"
	"testing"
	"time"

	"produceMarketplace/internal/testutil"
	"produceMarketplace/models"
)

func TestProductRepository_SeedAndGet(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "products_seed")
	repo := NewProductRepository(d)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	p, err := repo.GetByID(ctx, "prod1")
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if p == nil {
		t.Fatal("expected seeded product prod1")
	}
	if p.Name != "Tomatoes" || p.SupplierID != "supplier1" || p.StockKg != 200 {
		t.Errorf("unexpected product: %+v", p)
	}

	missing, err := repo.GetByID(ctx, "prod-none")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing product, got %+v", missing)
	}
}

func TestProductRepository_CreateAndListBySupplier(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "products_create")
	repo := NewProductRepository(d)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	p := &models.Product{
		ID:               "p-new",
		Name:             "Spinach",
		Category:         "Vegetables",
		PricePerKg:       20,
		StockKg:          50,
		Emoji:            "🥬",
		SupplierID:       "supplier1",
		SupplierName:     "Saravana Farms",
		DeliveryRadiusKm: 10,
		CreatedAt:        1756000000000,
	}
	if _, err := repo.Create(ctx, p); err != nil {
		t.Fatalf("create product: %v", err)
	}

	list, err := repo.ListBySupplier(ctx, "supplier1")
	if err != nil {
		t.Fatalf("list by supplier: %v", err)
	}
	if len(list) == 0 {
		t.Fatal("expected supplier1 listings")
	}
	// Newest first: the fresh listing has the largest created_at.
	if list[0].ID != "p-new" {
		t.Errorf("expected p-new first, got %s", list[0].ID)
	}
	for _, got := range list {
		if got.SupplierID != "supplier1" {
			t.Errorf("foreign listing in supplier view: %+v", got)
		}
	}
}

func TestProductRepository_UpdateListing(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "products_update")
	repo := NewProductRepository(d)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := repo.UpdateListing(ctx, "prod2", 38, 90); err != nil {
		t.Fatalf("update listing: %v", err)
	}
	p, err := repo.GetByID(ctx, "prod2")
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if p.PricePerKg != 38 || p.StockKg != 90 {
		t.Errorf("update not applied: %+v", p)
	}

	if err := repo.UpdateListing(ctx, "prod-none", 1, 1); err == nil {
		t.Error("expected error updating missing product")
	}

	// The schema refuses negative stock at rest.
	if err := repo.UpdateListing(ctx, "prod2", 38, -5); err == nil {
		t.Error("expected check constraint error for negative stock")
	}
}
