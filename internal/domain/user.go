package domain

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")

// User is the credential record. Token mirrors the last issued session
// token so logout can revoke it; nil means no live session.
type User struct {
	Username     string
	PasswordHash string
	Token        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
