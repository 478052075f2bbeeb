package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mamamamad/backend-domjudge/config"
	"github.com/mamamamad/backend-domjudge/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	cfg := &config.Config{
		Audit: config.AuditConfig{
			Dir:               t.TempDir(),
			RegistrationsFile: "registerUser.json",
			CredentialsFile:   "userPass.json",
			OutcomesFile:      "sendemail.json",
		},
	}
	s := New(context.Background(), zap.NewNop().Sugar(), cfg)
	require.NoError(t, s.OnStart(context.Background()))
	return s
}

func TestOnStartCreatesEmptyLogs(t *testing.T) {
	s := newTestStore(t)

	for _, path := range []string{s.registrations, s.credentials, s.outcomes} {
		b, err := os.ReadFile(path)
		require.NoError(t, err)
		require.JSONEq(t, "[]", string(b))
	}
}

func TestAppendAndReadCredentials(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := entities.CredentialRecord{
		Success: true, TeamName: "Falcons", Email: "team@x.com",
		TeamID: "10001", UserID: "7", Username: "T10001", Password: "abcDEF1234",
	}
	second := entities.CredentialRecord{Success: false, TeamName: "Hawks", Email: "hawks@x.com", TeamID: "10002"}

	require.NoError(t, s.AppendCredential(ctx, first))
	require.NoError(t, s.AppendCredential(ctx, second))

	got, err := s.Credentials(ctx)
	require.NoError(t, err)
	require.Equal(t, []entities.CredentialRecord{first, second}, got)
}

func TestAppendRegistrationRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	req := entities.RegistrationRequest{
		TeamName:         "Falcons",
		OrganizationName: "Birjand Univ",
		Description:      "x",
		Email:            "team@x.com",
		Users:            []string{"Ali"},
	}
	require.NoError(t, s.AppendRegistration(ctx, req))

	b, err := os.ReadFile(s.registrations)
	require.NoError(t, err)
	require.Contains(t, string(b), `"teamname": "Falcons"`)
	require.Contains(t, string(b), `"organization_id": "Birjand Univ"`)
}

func TestReplaceEmailOutcomes(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AppendEmailOutcome(ctx, entities.EmailOutcome{Success: false, Email: "a@b.com"}))
	require.NoError(t, s.AppendEmailOutcome(ctx, entities.EmailOutcome{Success: true, Email: "c@d.com"}))

	outs, err := s.EmailOutcomes(ctx)
	require.NoError(t, err)
	require.Len(t, outs, 2)

	outs[0].Success = true
	require.NoError(t, s.ReplaceEmailOutcomes(ctx, outs))

	got, err := s.EmailOutcomes(ctx)
	require.NoError(t, err)
	require.Equal(t, []entities.EmailOutcome{
		{Success: true, Email: "a@b.com"},
		{Success: true, Email: "c@d.com"},
	}, got)
}

func TestMissingFileReadsEmpty(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, os.Remove(s.outcomes))
	got, err := s.EmailOutcomes(context.Background())
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestCorruptFileFailsLoudly(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, os.WriteFile(filepath.Join(s.dir, "userPass.json"), []byte("{not json"), 0o644))
	_, err := s.Credentials(context.Background())
	require.Error(t, err)
}
