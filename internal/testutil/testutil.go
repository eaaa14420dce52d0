package testutil

import (
	"database/sql"
	"testing"
	"time"

	"produceMarketplace/internal/auth"
	"produceMarketplace/internal/db"
	"produceMarketplace/models"
)

// OpenInMemoryDB opens an in-memory SQLite database and applies migrations
// (schema plus the demo seed). Caller cleanup is registered automatically.
// Use a distinct name per test: shared-cache in-memory databases with the
// same name are the same database.
func OpenInMemoryDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	d, err := db.Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}

// IssueToken returns a signed JWT for the given user id and role.
func IssueToken(t *testing.T, secret, userID string, role models.UserRole) string {
	t.Helper()
	u := &models.User{ID: userID, Role: role}
	token, err := auth.Issue(secret, u, time.Hour, time.Now())
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}
