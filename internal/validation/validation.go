// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
)

// emailRegex intentionally mirrors the loose local@domain.tld check used by
// the API contract: at least one character before the @, and a dot somewhere
// in the domain part.
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateEmail checks that an email address matches the local@domain.tld shape.
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// ValidatePassword checks if a password meets security requirements
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	// Cap length to prevent unreasonable inputs (bcrypt truncates past 72 bytes anyway)
	if len(password) > 128 {
		return fmt.Errorf("password must not exceed 128 characters")
	}
	return nil
}

// ValidateUsername checks username length constraints.
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username is required")
	}
	if len(username) > 50 {
		return fmt.Errorf("username must not exceed 50 characters")
	}
	return nil
}
