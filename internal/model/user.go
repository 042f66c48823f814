package model

import "fmt"

// User represents an account that can log into the API.
// Shopkeepers are tied to a single store through StoreID; admins have none.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
	StoreID      *int64 `json:"storeId"`
}

// Roles.
const (
	RoleAdmin      = "admin"
	RoleShopkeeper = "shopkeeper"
)

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleShopkeeper
}

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

// ValidatePassword checks password strength requirements.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	}
	return nil
}
