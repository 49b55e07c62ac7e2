package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	os.Setenv("MONGODB_URI", "mongodb://localhost:27017/testdb")
	os.Setenv("MONGODB_DATABASE", "gosec_test")
	os.Setenv("JWT_SECRET", "testsecret123456789012345678901234")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.MongoDB.URI == "" || cfg.JWT.Secret == "" {
		t.Fatalf("unexpected empty config values: %+v", cfg)
	}
	if cfg.JWT.AccessTokenTTL != 8*time.Hour {
		t.Fatalf("expected 8h default access token TTL, got %v", cfg.JWT.AccessTokenTTL)
	}
	if cfg.Admin.Username != "admin" {
		t.Fatalf("expected default admin username, got %q", cfg.Admin.Username)
	}
	if cfg.Uploads.Backend != "disk" {
		t.Fatalf("expected disk uploads backend default, got %q", cfg.Uploads.Backend)
	}
}
