package repository

import (
	"context"
	"testing"
	"time"

	"produceMarketplace/internal/testutil"
	"produceMarketplace/models"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "users_create")
	repo := NewUserRepository(d)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	u := &models.User{
		ID:        "u-test-1",
		Name:      "Test Vendor",
		Email:     "test.vendor@example.com",
		Phone:     "9000000000",
		Role:      models.RoleVendor,
		Location:  "Chennai",
		Verified:  true,
		CreatedAt: 1755000000000,
	}
	if _, err := repo.Create(ctx, u); err != nil {
		t.Fatalf("create user: %v", err)
	}

	got, err := repo.GetByEmail(ctx, "test.vendor@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if got == nil {
		t.Fatal("expected user, got nil")
	}
	if got.ID != u.ID || got.Role != models.RoleVendor || !got.Verified {
		t.Errorf("unexpected user: %+v", got)
	}

	got, err = repo.GetByID(ctx, "u-test-1")
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got == nil || got.Email != u.Email {
		t.Errorf("get by id returned %+v", got)
	}
}

func TestUserRepository_GetMissingReturnsNil(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "users_missing")
	repo := NewUserRepository(d)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	got, err := repo.GetByEmail(ctx, "nobody@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing user, got %+v", got)
	}
}

func TestUserRepository_DuplicateEmailRejected(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "users_dup")
	repo := NewUserRepository(d)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// kumar@example.com is seeded.
	u := &models.User{
		ID:        "u-dup",
		Name:      "Copycat",
		Email:     "kumar@example.com",
		Role:      models.RoleVendor,
		CreatedAt: 1755000000000,
	}
	if _, err := repo.Create(ctx, u); err == nil {
		t.Fatal("expected unique constraint error for duplicate email")
	}
}

func TestUserRepository_ListIncludesSeed(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "users_list")
	repo := NewUserRepository(d)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	list, err := repo.List(ctx, 100, 0)
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(list) < 4 {
		t.Fatalf("expected seeded demo users, got %d", len(list))
	}
	var vendors, suppliers int
	for _, u := range list {
		switch u.Role {
		case models.RoleVendor:
			vendors++
		case models.RoleSupplier:
			suppliers++
		}
	}
	if vendors == 0 || suppliers == 0 {
		t.Errorf("expected both roles in seed, got vendors=%d suppliers=%d", vendors, suppliers)
	}
}
