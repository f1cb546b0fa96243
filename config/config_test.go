package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_DefaultsAndFile(t *testing.T) {
	path := writeConfig(t, "auth:\n  jwt_secret: \"0123456789abcdef-secret\"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("expected default port 8000, got %d", cfg.Server.Port)
	}
	if cfg.Auth.AccessTokenTTL != 12*time.Hour {
		t.Errorf("expected 12h token ttl, got %v", cfg.Auth.AccessTokenTTL)
	}
	if cfg.Server.RateLimit.Window != time.Minute {
		t.Errorf("expected 1m rate limit window, got %v", cfg.Server.RateLimit.Window)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9000\nauth:\n  jwt_secret: \"0123456789abcdef-secret\"\n")
	t.Setenv("ESCOLAR_SERVER_PORT", "9100")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9100 {
		t.Errorf("expected env port 9100, got %d", cfg.Server.Port)
	}
}

func TestValidate(t *testing.T) {
	base := Config{
		Server: ServerConfig{Port: 8000},
		Auth:   AuthConfig{JWTSecret: "0123456789abcdef", AccessTokenTTL: time.Hour},
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"empty secret", func(c *Config) { c.Auth.JWTSecret = "" }, true},
		{"short secret", func(c *Config) { c.Auth.JWTSecret = "short" }, true},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, true},
		{"zero ttl", func(c *Config) { c.Auth.AccessTokenTTL = 0 }, true},
		{"weak bootstrap password", func(c *Config) {
			c.Bootstrap.AdminEmail = "admin@escuela.mx"
			c.Bootstrap.AdminPassword = "123"
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
