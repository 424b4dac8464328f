package user

import (
	"context"
	"errors"
	"testing"

	"kitchenrent/models"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return f.GetByIDWithProjection(ctx, id, nil)
}

func (f *fakeUserRepo) GetByIDWithProjection(ctx context.Context, id string, projection bson.M) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, errors.New("user not found")
	}
	return u, nil
}

func TestGetDisplayName(t *testing.T) {
	svc := &DefaultUserService{Repo: &fakeUserRepo{users: map[string]*models.User{
		"named":   {ID: "named", DisplayName: "  Jamie  ", Email: "jamie@example.com"},
		"emailed": {ID: "emailed", Email: "sam@example.com"},
		"blank":   {ID: "blank"},
	}}}

	tests := []struct {
		name    string
		userID  string
		want    string
		wantErr bool
	}{
		{"display name", "named", "Jamie", false},
		{"email fallback", "emailed", "sam", false},
		{"nothing to show", "blank", "", true},
		{"unknown user", "ghost", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.GetDisplayName(context.Background(), tt.userID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
