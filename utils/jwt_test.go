package utils

import (
	"testing"
	"time"

	"kitchenrent/models"
)

func TestParseCredentials(t *testing.T) {
	t.Run("round trips subject and role", func(t *testing.T) {
		token, err := GenerateToken("user-1", models.RoleConsumer, time.Hour)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		creds, err := ParseCredentials(token)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if creds.UserID != "user-1" {
			t.Fatalf("expected user-1, got %s", creds.UserID)
		}
		if creds.Role != models.RoleConsumer {
			t.Fatalf("expected consumer role, got %s", creds.Role)
		}
		if !creds.IsConsumer(time.Now()) {
			t.Fatalf("expected credentials to be a valid consumer")
		}
	})

	t.Run("rejects expired token", func(t *testing.T) {
		token, err := GenerateToken("user-1", models.RoleConsumer, -time.Minute)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if _, err := ParseCredentials(token); err == nil {
			t.Fatalf("expected error for expired token")
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		if _, err := ParseCredentials("not-a-token"); err == nil {
			t.Fatalf("expected error for malformed token")
		}
	})
}
