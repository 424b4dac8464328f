package utils

import (
	"errors"
	"os"
	"time"

	"kitchenrent/config"
	"kitchenrent/models"

	"github.com/golang-jwt/jwt"
)

var ErrInvalidToken = errors.New("invalid token")

// secretKey prefers the configured secret and falls back to the environment.
// The development key is never used in production; LoadConfig refuses to
// start there without JWT_SECRET.
func secretKey() []byte {
	if config.AppConfig.JWTSecret != "" {
		return []byte(config.AppConfig.JWTSecret)
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "kitchenrent-dev"
	}
	return []byte(secret)
}

// GenerateToken creates a signed JWT token for the given subject and role.
// Issuing tokens belongs to the account service; this is kept for tooling and tests.
func GenerateToken(subject, role string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ParseCredentials validates a token and decodes its subject, role and expiry.
func ParseCredentials(tokenString string) (*models.Credentials, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, errors.New("token does not contain a valid 'sub' claim")
	}
	role, _ := claims["role"].(string)

	creds := &models.Credentials{UserID: sub, Role: role}
	if exp, ok := claims["exp"].(float64); ok {
		creds.ExpiresAt = time.Unix(int64(exp), 0)
	}
	return creds, nil
}
