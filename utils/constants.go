// File: utils/constants.go
package utils

// KitchenCachePrefix is the prefix used for Redis kitchen metadata keys.
const KitchenCachePrefix = "kitchen:"

// DateLayout is the ISO calendar date format used on the wire and in storage.
const DateLayout = "2006-01-02"

// Context keys set by the auth middleware.
const (
	ContextUserID      = "userID"
	ContextCredentials = "credentials"
)
