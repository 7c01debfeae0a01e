package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Addr != ":8080" {
		t.Fatalf("default addr %q", cfg.Addr)
	}
	if cfg.WordPress.Enabled {
		t.Fatalf("wordpress must default to disabled")
	}
	if cfg.WordPress.CacheTTL != 5*time.Minute {
		t.Fatalf("default cache ttl %v", cfg.WordPress.CacheTTL)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ADDR", ":9000")
	t.Setenv("WP_ENABLED", "true")
	t.Setenv("WP_BASE_URL", "https://ramen.example.com")
	t.Setenv("WP_CACHE_TTL", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Addr != ":9000" {
		t.Fatalf("addr %q", cfg.Addr)
	}
	if !cfg.WordPress.Enabled || cfg.WordPress.BaseURL != "https://ramen.example.com" {
		t.Fatalf("wordpress config not read: %+v", cfg.WordPress)
	}
	if cfg.WordPress.CacheTTL != 30*time.Second {
		t.Fatalf("cache ttl %v", cfg.WordPress.CacheTTL)
	}
}
