package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"produceMarketplace/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user. ID and CreatedAt must be set by the caller.
func (r *UserRepository) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if u == nil {
		return nil, errors.New("user is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, name, email, phone, role, location, verified, created_at) VALUES (?,?,?,?,?,?,?,?)`,
		u.ID, u.Name, u.Email, u.Phone, string(u.Role), u.Location, boolToInt(u.Verified), u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return r.scanOne(r.db.QueryRowContext(ctx,
		`SELECT id, name, email, phone, role, location, verified, created_at FROM users WHERE id = ?`, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return r.scanOne(r.db.QueryRowContext(ctx,
		`SELECT id, name, email, phone, role, location, verified, created_at FROM users WHERE email = ?`, email))
}

func (r *UserRepository) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, email, phone, role, location, verified, created_at FROM users ORDER BY created_at, id LIMIT ? OFFSET ?`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.User
	for rows.Next() {
		var u models.User
		var role string
		var verified int
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &role, &u.Location, &verified, &u.CreatedAt); err != nil {
			return nil, err
		}
		u.Role = models.UserRole(role)
		u.Verified = verified != 0
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *UserRepository) scanOne(row *sql.Row) (*models.User, error) {
	var u models.User
	var role string
	var verified int
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &role, &u.Location, &verified, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	u.Role = models.UserRole(role)
	u.Verified = verified != 0
	return &u, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
