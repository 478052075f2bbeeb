package usecase

import (
	"context"

	"github.com/mamamamad/backend-domjudge/internal/entities"
)

// TeamUsecaseInterface abstracts team provisioning for the delivery layer.
type TeamUsecaseInterface interface {
	RegisterTeam(ctx context.Context, req entities.RegistrationRequest) (*entities.RegistrationResult, error)
}

// EmailUsecaseInterface abstracts the failed-email retry sweep.
type EmailUsecaseInterface interface {
	ResendFailedEmails(ctx context.Context) (entities.ResendReport, error)
}
