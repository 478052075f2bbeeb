package usecase

import (
	"context"
	"time"

	"github.com/mamamamad/backend-domjudge/internal/mailer"
	"github.com/mamamamad/backend-domjudge/internal/platform"
	"github.com/mamamamad/backend-domjudge/internal/repository"
	"github.com/mamamamad/backend-domjudge/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	TeamUsecaseInterface
	EmailUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	client platform.API,
	sender mailer.Sender,
	timeout time.Duration,
) InterfaceUsecase {
	return domain.New(log, ctx, repo, client, sender, timeout)
}
