package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.SearchDebounce != 300*time.Millisecond {
		t.Errorf("expected 300ms debounce, got %v", cfg.SearchDebounce)
	}
	if cfg.NotificationTTL != 5*time.Second {
		t.Errorf("expected 5s notification ttl, got %v", cfg.NotificationTTL)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Errorf("expected default CORS origins, got %v", cfg.CORSAllowedOrigins)
	}
	if !cfg.SeedSampleData {
		t.Error("expected sample data seeding on by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("BACKEND_URL", "http://cards.internal:5000")
	t.Setenv("SEARCH_DEBOUNCE", "150ms")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("SEED_SAMPLE_DATA", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "9090" || cfg.BackendURL != "http://cards.internal:5000" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.SearchDebounce != 150*time.Millisecond {
		t.Errorf("expected 150ms debounce, got %v", cfg.SearchDebounce)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Errorf("unexpected CORS origins %v", cfg.CORSAllowedOrigins)
	}
	if cfg.SeedSampleData {
		t.Error("expected seeding disabled")
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("BACKEND_TIMEOUT", "soon")

	if _, err := Load(); err == nil {
		t.Error("expected error for invalid duration")
	}
}
