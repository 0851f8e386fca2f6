package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/StudenikinNikolay/filecloud/internal/auth"
	"github.com/StudenikinNikolay/filecloud/internal/domain"
	"github.com/StudenikinNikolay/filecloud/internal/repository"
)

type AuthUsecase struct {
	users  repository.UserRepository
	tokens *auth.TokenService
	logger *slog.Logger
}

func NewAuthUsecase(users repository.UserRepository, tokens *auth.TokenService, logger *slog.Logger) *AuthUsecase {
	return &AuthUsecase{
		users:  users,
		tokens: tokens,
		logger: logger.With("component", "auth_usecase"),
	}
}

// Login runs the credential checks in strict order and reports only the
// first failure, as a *domain.CredentialsError. On success the issued
// token is persisted on the user row before it is returned, so the stored
// copy and the caller's copy never diverge.
func (u *AuthUsecase) Login(ctx context.Context, login, password string) (string, error) {
	if strings.TrimSpace(login) == "" {
		return "", domain.ErrLoginRequired
	}
	if strings.TrimSpace(password) == "" {
		return "", domain.ErrPasswordRequired
	}

	user, err := u.users.FindByUsername(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrUnknownLogin
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	// Password is verified against the hash only, never matched in the
	// lookup query.
	if !auth.Matches(password, user.PasswordHash) {
		return "", domain.ErrWrongPassword
	}

	token, err := u.tokens.Issue(user.Username, nil)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	if err := u.users.UpdateToken(ctx, user.Username, &token); err != nil {
		return "", fmt.Errorf("persist token: %w", err)
	}

	return token, nil
}

// Logout clears the stored token for whoever the header's token names.
// The claims are decoded without signature verification; every failure is
// swallowed so logout never fails the surrounding response, and repeating
// it is a no-op.
func (u *AuthUsecase) Logout(ctx context.Context, header string) {
	pieces := strings.Fields(header)
	if len(pieces) == 0 {
		return
	}

	username, err := u.tokens.ExtractUsername(pieces[len(pieces)-1])
	if err != nil {
		u.logger.DebugContext(ctx, "logout token decode", "error", err)
		return
	}

	user, err := u.users.FindByUsername(ctx, username)
	if err != nil {
		u.logger.DebugContext(ctx, "logout user lookup", "username", username, "error", err)
		return
	}
	if user.Token == nil {
		return
	}

	if err := u.users.UpdateToken(ctx, user.Username, nil); err != nil {
		u.logger.ErrorContext(ctx, "logout clear token", "username", username, "error", err)
	}
}
