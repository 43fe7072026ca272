package config

import "testing"

func TestDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.toml")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.App.Port != 3000 {
		t.Errorf("expected default port 3000, got %d", cfg.App.Port)
	}
	if cfg.App.Env != "development" {
		t.Errorf("expected default env development, got %q", cfg.App.Env)
	}
	if cfg.Database.SearchLimit != 5 {
		t.Errorf("expected default search limit 5, got %d", cfg.Database.SearchLimit)
	}
	if cfg.RabbitMQ.QueryLogQueue != "jiji.query.log" {
		t.Errorf("unexpected default queue name: %q", cfg.RabbitMQ.QueryLogQueue)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.toml")
	t.Setenv("PORT", "8081")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_URL", "postgres://anon@db/jiji")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.App.Port != 8081 {
		t.Errorf("expected port 8081, got %d", cfg.App.Port)
	}
	if !cfg.Production() {
		t.Error("expected production mode")
	}
	if cfg.Database.URL != "postgres://anon@db/jiji" {
		t.Errorf("unexpected database url: %q", cfg.Database.URL)
	}
	if cfg.Auth.JWTSecret != "secret" {
		t.Errorf("unexpected jwt secret: %q", cfg.Auth.JWTSecret)
	}
}

func TestAvailabilityFlags(t *testing.T) {
	cfg := defaultConfig()

	avail := cfg.Availability()
	if avail.Database || avail.ServiceDatabase || avail.Auth || avail.Cache || avail.Queue {
		t.Errorf("expected everything unconfigured, got %+v", avail)
	}

	cfg.Database.URL = "postgres://anon@db/jiji"
	cfg.Database.ServiceURL = "postgres://service@db/jiji"
	cfg.Auth.JWTSecret = "secret"

	avail = cfg.Availability()
	if !avail.Database || !avail.ServiceDatabase || !avail.Auth {
		t.Errorf("expected database and auth configured, got %+v", avail)
	}
	if avail.Cache || avail.Queue {
		t.Errorf("expected cache and queue unconfigured, got %+v", avail)
	}
}

func TestInvalidIntEnvFallsBack(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.toml")
	t.Setenv("PORT", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.App.Port != 3000 {
		t.Errorf("expected fallback port 3000, got %d", cfg.App.Port)
	}
}
