package domain

import (
	"context"
	"time"

	"github.com/mamamamad/backend-domjudge/internal/mailer"
	"github.com/mamamamad/backend-domjudge/internal/platform"
	"github.com/mamamamad/backend-domjudge/internal/repository"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx      context.Context
	log      *zap.SugaredLogger
	repo     repository.Repository
	platform platform.API
	sender   mailer.Sender
	timeout  time.Duration
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	client platform.API,
	sender mailer.Sender,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		ctx:      ctx,
		log:      log,
		repo:     repo,
		platform: client,
		sender:   sender,
		timeout:  timeout,
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
