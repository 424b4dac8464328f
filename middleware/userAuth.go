package middleware

import (
	"net/http"
	"strings"
	"time"

	"kitchenrent/models"
	"kitchenrent/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LoginPath is where clients are sent when a request needs a signed-in guest.
const LoginPath = "/login"

// JWTAuthUserMiddleware decodes the bearer token into credentials. With
// optional set, anonymous requests pass through without credentials while a
// malformed or expired token is still rejected.
func JWTAuthUserMiddleware(optional bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			if optional {
				c.Next()
				return
			}
			abortUnauthorized(c, "Insufficient authorization")
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenString == "" {
			abortUnauthorized(c, "Insufficient authorization")
			return
		}

		creds, err := utils.ParseCredentials(tokenString)
		if err != nil || !creds.Valid(time.Now()) {
			utils.GetLogger().Debug("rejected bearer token", zap.Error(err))
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(utils.ContextUserID, creds.UserID)
		c.Set(utils.ContextCredentials, creds)
		c.Next()
	}
}

// RequireRole rejects requests whose credentials do not carry one of roles.
// It must run after JWTAuthUserMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		creds := CredentialsFrom(c)
		if creds == nil {
			abortUnauthorized(c, "Insufficient authorization")
			return
		}
		for _, role := range roles {
			if creds.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error":   "forbidden",
			"message": "This account cannot perform the requested action",
		})
	}
}

// CredentialsFrom returns the credentials set by JWTAuthUserMiddleware, or nil.
func CredentialsFrom(c *gin.Context) *models.Credentials {
	v, ok := c.Get(utils.ContextCredentials)
	if !ok {
		return nil
	}
	creds, _ := v.(*models.Credentials)
	return creds
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":    "unauthorized",
		"message":  message,
		"loginUrl": LoginPath,
	})
}
