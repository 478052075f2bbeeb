// Package jsonfile implements the audit repository as whole-file JSON arrays on
// local disk. Each operation reads the full array, modifies it in memory and
// rewrites the file atomically. The files are small (one entry per
// registration) so the rewrite cost is irrelevant; the contract is strictly
// single-writer.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mamamamad/backend-domjudge/config"
	"github.com/mamamamad/backend-domjudge/internal/entities"

	"github.com/google/renameio"
	"go.uber.org/zap"
)

// Store keeps the three audit logs: registration inputs, credential records and
// email outcomes.
type Store struct {
	baseCtx       context.Context
	log           *zap.SugaredLogger
	dir           string
	registrations string
	credentials   string
	outcomes      string
}

// New creates a file-backed audit store from configuration.
func New(ctx context.Context, log *zap.SugaredLogger, cfg *config.Config) *Store {
	return &Store{
		baseCtx:       ctx,
		log:           log.Named("repo.jsonfile"),
		dir:           cfg.Audit.Dir,
		registrations: filepath.Join(cfg.Audit.Dir, cfg.Audit.RegistrationsFile),
		credentials:   filepath.Join(cfg.Audit.Dir, cfg.Audit.CredentialsFile),
		outcomes:      filepath.Join(cfg.Audit.Dir, cfg.Audit.OutcomesFile),
	}
}

// OnStart creates the data directory and empty log files when absent.
func (s *Store) OnStart(_ context.Context) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create audit dir %s: %w", s.dir, err)
	}
	for _, path := range []string{s.registrations, s.credentials, s.outcomes} {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			if err := renameio.WriteFile(path, []byte("[]\n"), 0o644); err != nil {
				return fmt.Errorf("init audit log %s: %w", path, err)
			}
		} else if err != nil {
			return fmt.Errorf("stat audit log %s: %w", path, err)
		}
	}
	s.log.Infow("audit store ready", "dir", s.dir)
	return nil
}

// OnStop is a no-op; every operation leaves the files closed.
func (s *Store) OnStop(_ context.Context) error { return nil }

// AppendRegistration appends the raw registration input.
func (s *Store) AppendRegistration(_ context.Context, req entities.RegistrationRequest) error {
	return appendRecord(s.registrations, req)
}

// AppendCredential appends one provisioning outcome.
func (s *Store) AppendCredential(_ context.Context, rec entities.CredentialRecord) error {
	return appendRecord(s.credentials, rec)
}

// AppendEmailOutcome appends one email delivery outcome.
func (s *Store) AppendEmailOutcome(_ context.Context, out entities.EmailOutcome) error {
	return appendRecord(s.outcomes, out)
}

// Credentials reads the full credential log.
func (s *Store) Credentials(_ context.Context) ([]entities.CredentialRecord, error) {
	return readRecords[entities.CredentialRecord](s.credentials)
}

// EmailOutcomes reads the full email outcome log.
func (s *Store) EmailOutcomes(_ context.Context) ([]entities.EmailOutcome, error) {
	return readRecords[entities.EmailOutcome](s.outcomes)
}

// ReplaceEmailOutcomes rewrites the whole outcome log, used by the retry sweep
// to flip success flags in place.
func (s *Store) ReplaceEmailOutcomes(_ context.Context, outs []entities.EmailOutcome) error {
	return writeRecords(s.outcomes, outs)
}

func readRecords[T any](path string) ([]T, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return nil, nil
	}
	var out []T
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return out, nil
}

func writeRecords[T any](path string, records []T) error {
	if records == nil {
		records = []T{}
	}
	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := renameio.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func appendRecord[T any](path string, record T) error {
	records, err := readRecords[T](path)
	if err != nil {
		return err
	}
	return writeRecords(path, append(records, record))
}
