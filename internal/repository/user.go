package repository

import (
	"context"

	"github.com/StudenikinNikolay/filecloud/internal/domain"
)

// UserRepository is the credential store boundary. Lookup is exact and
// case-sensitive on username; users are provisioned out-of-band.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// UpdateToken overwrites the stored session token. nil clears it.
	UpdateToken(ctx context.Context, username string, token *string) error
	// ListWithToken returns every user currently holding a persisted token.
	ListWithToken(ctx context.Context) ([]domain.User, error)
}
