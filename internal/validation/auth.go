// Package validation provides input validation utilities.
package validation

import (
	"fmt"
	"strings"
)

const (
	maxUsernameLength = 64
	maxPasswordLength = 128
)

// ValidateUsername checks that a username is present and within bounds.
// The contract intentionally accepts any non-empty string; stricter
// character rules would reject accounts the service already promises
// to register.
func ValidateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("username is required")
	}
	if len(username) > maxUsernameLength {
		return fmt.Errorf("username must not exceed %d characters", maxUsernameLength)
	}
	return nil
}

// ValidatePassword checks that a password is present and within bounds.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password is required")
	}
	if len(password) > maxPasswordLength {
		return fmt.Errorf("password must not exceed %d characters", maxPasswordLength)
	}
	return nil
}
