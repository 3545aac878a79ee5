// Package domain contains application services orchestrating domain logic.
package domain

import (
	"context"
	"time"

	"github.com/MaximallyHack/Maximally-Hack-sub000/config"
	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/repository"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx     context.Context
	log     *zap.SugaredLogger
	repo    repository.Repository
	drafts  repository.DraftInterface
	timeout time.Duration
	auth    config.AuthConfig
	now     func() time.Time
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	drafts repository.DraftInterface,
	timeout time.Duration,
	auth config.AuthConfig,
) *Usecase {
	return &Usecase{
		ctx:     ctx,
		log:     log.Named("usecase"),
		repo:    repo,
		drafts:  drafts,
		timeout: timeout,
		auth:    auth,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
