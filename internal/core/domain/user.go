package domain

import (
	"strings"
	"time"
)

const MinPasswordLength = 6

type User struct {
	ID           uint64
	Email        string
	PasswordHash string
	Name         *string
	CreatedAt    time.Time
}

type RegisterInput struct {
	Email    string
	Password string
	Name     *string
}

type Credentials struct {
	Email    string
	Password string
}

// NormalizeEmail is the canonical form used for storage and lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72
