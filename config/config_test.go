package config

import (
	"errors"
	"testing"
	"time"
)

func TestDurationsFallBackToDefaults(t *testing.T) {
	old := AppConfig
	t.Cleanup(func() { AppConfig = old })

	AppConfig = Config{}
	if got := KitchenCacheTTL(); got != 5*time.Minute {
		t.Fatalf("expected 5m kitchen cache ttl, got %v", got)
	}
	if got := SessionIdleTimeout(); got != 30*time.Minute {
		t.Fatalf("expected 30m session idle timeout, got %v", got)
	}

	AppConfig = Config{KitchenCacheTTLSeconds: 10, SessionIdleMinutes: 2}
	if got := KitchenCacheTTL(); got != 10*time.Second {
		t.Fatalf("expected 10s, got %v", got)
	}
	if got := SessionIdleTimeout(); got != 2*time.Minute {
		t.Fatalf("expected 2m, got %v", got)
	}
}

func TestValidateRequiresSecretInProduction(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"production without secret", Config{Env: "production"}, ErrMissingJWTSecret},
		{"production with secret", Config{Env: "production", JWTSecret: "s3cret"}, nil},
		{"development without secret", Config{Env: "development"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
