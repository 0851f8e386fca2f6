// Package sweeper clears persisted session tokens that have expired.
// Logout already nils the stored token; the sweeper handles sessions that
// were simply abandoned, so the bookkeeping column does not accumulate
// dead tokens.
package sweeper

import (
	"context"
	"errors"
	"log/slog"

	"github.com/StudenikinNikolay/filecloud/internal/domain"
	"github.com/StudenikinNikolay/filecloud/internal/metrics"
	"github.com/StudenikinNikolay/filecloud/internal/repository"
	"github.com/robfig/cron/v3"
)

// tokenValidator is the slice of auth.TokenService the sweeper needs.
type tokenValidator interface {
	Validate(raw string) (string, error)
}

type Sweeper struct {
	users    repository.UserRepository
	tokens   tokenValidator
	logger   *slog.Logger
	cron     *cron.Cron
	schedule string
}

func New(users repository.UserRepository, tokens tokenValidator, logger *slog.Logger, schedule string) *Sweeper {
	return &Sweeper{
		users:    users,
		tokens:   tokens,
		logger:   logger.With("component", "sweeper"),
		cron:     cron.New(),
		schedule: schedule,
	}
}

// Start registers the sweep on the configured cron schedule and starts
// the cron runner.
func (s *Sweeper) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, func() {
		s.Sweep(context.Background())
	}); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop halts the cron runner; the returned context is done once any
// in-flight sweep has finished.
func (s *Sweeper) Stop() context.Context {
	return s.cron.Stop()
}

// Sweep clears the stored token of every user whose token is expired or
// no longer parses. Per-user failures are logged and skipped so one bad
// row cannot stall the rest.
func (s *Sweeper) Sweep(ctx context.Context) {
	users, err := s.users.ListWithToken(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "list users with token", "error", err)
		return
	}

	var swept int
	for _, u := range users {
		if u.Token == nil {
			continue
		}
		if _, err := s.tokens.Validate(*u.Token); err == nil {
			continue
		} else if !errors.Is(err, domain.ErrTokenExpired) && !errors.Is(err, domain.ErrTokenInvalid) {
			continue
		}

		if err := s.users.UpdateToken(ctx, u.Username, nil); err != nil {
			s.logger.ErrorContext(ctx, "clear expired token", "username", u.Username, "error", err)
			continue
		}
		metrics.TokensSweptTotal.Inc()
		swept++
	}

	if swept > 0 {
		s.logger.InfoContext(ctx, "sweep complete", "swept", swept, "checked", len(users))
	}
}
