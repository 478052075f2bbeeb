package mailer

import (
	"context"
	"testing"

	"github.com/mamamamad/backend-domjudge/config"
	"github.com/mamamamad/backend-domjudge/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSendSkipsFailedRecord(t *testing.T) {
	// host is unroutable on purpose: a failed record must short-circuit before
	// any transport work.
	m := New(zap.NewNop().Sugar(), config.MailConfig{Host: "smtp.invalid", Port: 587})

	out := m.Send(context.Background(), entities.CredentialRecord{
		Success: false,
		Email:   "a@b.com",
	})
	require.Equal(t, entities.EmailOutcome{Success: false, Email: "a@b.com"}, out)
}

func TestSendSkipsMissingRecipient(t *testing.T) {
	m := New(zap.NewNop().Sugar(), config.MailConfig{Host: "smtp.invalid", Port: 587})

	out := m.Send(context.Background(), entities.CredentialRecord{
		Success:  true,
		Username: "T10001",
		Password: "abcDEF1234",
	})
	require.False(t, out.Success)
	require.Empty(t, out.Email)
}

func TestBuildCredentialsEmail(t *testing.T) {
	email := BuildCredentialsEmail("T10001", "abcDEF1234")

	require.Equal(t, "BCPC", email.Subject)
	require.Contains(t, email.TextBody, "T10001")
	require.Contains(t, email.TextBody, "abcDEF1234")
	require.Contains(t, email.HTMLBody, "<pre>")
	require.Contains(t, email.HTMLBody, "T10001")
}

func TestSenderFromFallsBackToAccount(t *testing.T) {
	cfg := config.MailConfig{Username: "contest@example.com"}
	require.Equal(t, "contest@example.com", cfg.Sender())

	cfg.From = "noreply@example.com"
	require.Equal(t, "noreply@example.com", cfg.Sender())
}
