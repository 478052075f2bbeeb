// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/mamamamad/backend-domjudge/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// AuditInterface exposes the append-only audit logs written during
// provisioning and consumed by the email retry sweep. Implementations assume a
// single writer; concurrent appends may lose records.
type AuditInterface interface {
	AppendRegistration(ctx context.Context, req entities.RegistrationRequest) error
	AppendCredential(ctx context.Context, rec entities.CredentialRecord) error
	AppendEmailOutcome(ctx context.Context, out entities.EmailOutcome) error
	Credentials(ctx context.Context) ([]entities.CredentialRecord, error)
	EmailOutcomes(ctx context.Context) ([]entities.EmailOutcome, error)
	ReplaceEmailOutcomes(ctx context.Context, outs []entities.EmailOutcome) error
}
