package repository

import (
	"context"

	"produceMarketplace/models"
)

// UserRepositoryI defines operations on User entities.
type UserRepositoryI interface {
	Create(ctx context.Context, u *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, limit, offset int) ([]models.User, error)
}

// ProductRepositoryI defines operations on Product entities.
// Stock mutation is owned by the order engine, not exposed here.
type ProductRepositoryI interface {
	Create(ctx context.Context, p *models.Product) (*models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
	ListBySupplier(ctx context.Context, supplierID string) ([]models.Product, error)
	UpdateListing(ctx context.Context, id string, pricePerKg, stockKg float64) error
}

// OrderRepositoryI defines read operations on Order entities.
// All writes go through the order engine so status transitions and their
// paired stock effects stay in one place.
type OrderRepositoryI interface {
	GetByID(ctx context.Context, id string) (*models.Order, error)
	ListByVendor(ctx context.Context, vendorID string) ([]models.Order, error)
	ListBySupplier(ctx context.Context, supplierID string) ([]models.Order, error)
}

// CartRepositoryI defines operations on a vendor's cart lines.
type CartRepositoryI interface {
	Add(ctx context.Context, item *models.CartItem) error
	UpdateQuantity(ctx context.Context, userID, productID string, quantity int64) error
	Remove(ctx context.Context, userID, productID string) error
	Clear(ctx context.Context, userID string) error
	List(ctx context.Context, userID string) ([]models.CartItem, error)
}
