package models

// UserRole distinguishes buyers from sellers.
type UserRole string

const (
	RoleVendor   UserRole = "vendor"
	RoleSupplier UserRole = "supplier"
)

// User represents a marketplace account.
// It maps to the `users` table in SQLite.
type User struct {
	ID        string   `db:"id" json:"id"`
	Name      string   `db:"name" json:"name"`
	Email     string   `db:"email" json:"email"`
	Phone     string   `db:"phone" json:"phone"`
	Role      UserRole `db:"role" json:"role"`
	Location  string   `db:"location" json:"location"`
	Verified  bool     `db:"verified" json:"verified"`
	CreatedAt int64    `db:"created_at" json:"created_at"` // unix milliseconds
}

// IsVendor reports whether the user buys produce.
func (u *User) IsVendor() bool { return u.Role == RoleVendor }

// IsSupplier reports whether the user sells produce.
func (u *User) IsSupplier() bool { return u.Role == RoleSupplier }
