package models

import "time"

const (
	RoleConsumer = "consumer"
	RoleHost     = "host"
	RoleAdmin    = "admin"
)

// User is an account as seen by the booking engine.
type User struct {
	ID             string    `bson:"id" json:"id"`
	DisplayName    string    `bson:"displayName" json:"displayName"`
	Email          string    `bson:"email" json:"email"`
	Role           string    `bson:"role" json:"role"`
	FCMToken       string    `bson:"fcmToken,omitempty" json:"-"`
	TelegramChatID int64     `bson:"telegramChatId,omitempty" json:"-"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Credentials is the identity decoded from a bearer token.
type Credentials struct {
	UserID    string
	Role      string
	ExpiresAt time.Time
}

// Valid reports whether the credentials identify someone and have not expired.
func (c *Credentials) Valid(now time.Time) bool {
	if c == nil || c.UserID == "" {
		return false
	}
	return c.ExpiresAt.IsZero() || now.Before(c.ExpiresAt)
}

// IsConsumer reports whether the credentials may book kitchens.
func (c *Credentials) IsConsumer(now time.Time) bool {
	return c.Valid(now) && c.Role == RoleConsumer
}
