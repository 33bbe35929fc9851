package config

import (
	"os"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port == "" || cfg.Server.Host == "" {
		t.Fatalf("unexpected empty server config: %+v", cfg.Server)
	}
	if cfg.RateLimit.RPS <= 0 || cfg.RateLimit.WindowSeconds <= 0 {
		t.Fatalf("unexpected rate limit defaults: %+v", cfg.RateLimit)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("REDIS_HOST", "localhost")
	os.Setenv("REDIS_PORT", "6379")
	os.Setenv("RATE_LIMIT_ENABLED", "true")
	os.Setenv("POSTS_SEED_SAMPLES", "true")
	defer func() {
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("REDIS_HOST")
		os.Unsetenv("REDIS_PORT")
		os.Unsetenv("RATE_LIMIT_ENABLED")
		os.Unsetenv("POSTS_SEED_SAMPLES")
	}()

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Fatalf("Server.Port = %q, want %q", cfg.Server.Port, "9090")
	}
	if cfg.Redis.Host != "localhost" || cfg.Redis.Port != "6379" {
		t.Fatalf("unexpected redis config: %+v", cfg.Redis)
	}
	if !cfg.RateLimit.Enabled {
		t.Fatalf("RateLimit.Enabled = false, want true")
	}
	if !cfg.Posts.SeedSamples {
		t.Fatalf("Posts.SeedSamples = false, want true")
	}
}
