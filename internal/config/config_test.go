package config

import (
	"os"
	"strings"
	"testing"
)

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when JWT_SECRET is unset")
	}

	t.Setenv("JWT_SECRET", "test-secret")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Auth.JWTSecret != "test-secret" {
		t.Errorf("expected JWT secret from env, got %q", cfg.Auth.JWTSecret)
	}
}

func TestLoadWithDefaults(t *testing.T) {
	for _, key := range []string{"JWT_SECRET", "APP_ENV", "DB_PATH", "HTTP_ADDRESS"} {
		t.Setenv(key, "") // register restore
		os.Unsetenv(key)
	}

	cfg, err := LoadWithDefaults()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Auth.JWTSecret == "" {
		t.Error("expected a development JWT secret default")
	}
	if cfg.App.Env == "" || cfg.Database.Path == "" || cfg.HTTP.Address == "" {
		t.Errorf("expected defaults to fill every field: %+v", cfg)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_PATH", "/var/lib/market.db")
	t.Setenv("HTTP_ADDRESS", ":9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Env != "production" {
		t.Errorf("APP_ENV not honored: %q", cfg.App.Env)
	}
	if cfg.Database.Path != "/var/lib/market.db" {
		t.Errorf("DB_PATH not honored: %q", cfg.Database.Path)
	}
	if cfg.HTTP.Address != ":9090" {
		t.Errorf("HTTP_ADDRESS not honored: %q", cfg.HTTP.Address)
	}
}

func TestString_MasksSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "super-secret-value")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s := cfg.String(); strings.Contains(s, "super-secret-value") {
		t.Errorf("String() leaks the JWT secret: %s", s)
	}
}
