package sweeper_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/StudenikinNikolay/filecloud/internal/auth"
	"github.com/StudenikinNikolay/filecloud/internal/domain"
	"github.com/StudenikinNikolay/filecloud/internal/sweeper"
)

type fakeUserRepo struct {
	users   []domain.User
	cleared []string
	listErr error
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) UpdateToken(_ context.Context, username string, token *string) error {
	if token == nil {
		r.cleared = append(r.cleared, username)
	}
	return nil
}

func (r *fakeUserRepo) ListWithToken(_ context.Context) ([]domain.User, error) {
	return r.users, r.listErr
}

const testSecret = "sweeper-test-secret-at-least-32chars"

func issue(t *testing.T, ttl time.Duration, username string) string {
	t.Helper()
	tok, err := auth.NewTokenService([]byte(testSecret), ttl).Issue(username, nil)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	return tok
}

func newSweeper(repo *fakeUserRepo) *sweeper.Sweeper {
	tokens := auth.NewTokenService([]byte(testSecret), time.Hour)
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return sweeper.New(repo, tokens, logger, "@every 10m")
}

func TestSweep_ClearsOnlyDeadTokens(t *testing.T) {
	live := issue(t, time.Hour, "alive")
	expired := issue(t, -time.Minute, "expired")
	garbage := "not.a.jwt"

	repo := &fakeUserRepo{users: []domain.User{
		{Username: "alive", Token: &live},
		{Username: "expired", Token: &expired},
		{Username: "broken", Token: &garbage},
	}}

	newSweeper(repo).Sweep(context.Background())

	if len(repo.cleared) != 2 {
		t.Fatalf("cleared = %v, want exactly [expired broken]", repo.cleared)
	}
	for _, username := range repo.cleared {
		if username == "alive" {
			t.Error("live token was cleared")
		}
	}
}

func TestSweep_ListFailureIsNonFatal(t *testing.T) {
	repo := &fakeUserRepo{listErr: errors.New("db down")}
	newSweeper(repo).Sweep(context.Background())

	if len(repo.cleared) != 0 {
		t.Errorf("cleared = %v, want none", repo.cleared)
	}
}
