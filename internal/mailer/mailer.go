// Package mailer delivers credential emails to registered teams.
package mailer

import (
	"context"

	"github.com/mamamamad/backend-domjudge/config"
	"github.com/mamamamad/backend-domjudge/internal/entities"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// Sender delivers the credentials email for one provisioning attempt. The
// returned outcome is recorded in the audit log whether or not delivery worked.
type Sender interface {
	Send(ctx context.Context, rec entities.CredentialRecord) entities.EmailOutcome
}

// Mailer sends credential emails over SMTP.
type Mailer struct {
	log *zap.SugaredLogger
	cfg config.MailConfig
}

var _ Sender = (*Mailer)(nil)

// New creates a Mailer from configuration.
func New(log *zap.SugaredLogger, cfg config.MailConfig) *Mailer {
	return &Mailer{
		log: log.Named("mailer"),
		cfg: cfg,
	}
}

// Send composes and submits the credentials email. A record from a failed
// provisioning attempt (or one without a recipient) is reported as a failed
// outcome without touching the transport.
func (m *Mailer) Send(ctx context.Context, rec entities.CredentialRecord) entities.EmailOutcome {
	if !rec.Success || rec.Email == "" {
		return entities.EmailOutcome{Success: false, Email: rec.Email}
	}

	email := BuildCredentialsEmail(rec.Username, rec.Password)

	msg := mail.NewMsg()
	if err := msg.FromFormat(m.cfg.FromName, m.cfg.Sender()); err != nil {
		m.log.Errorw("invalid from address", "from", m.cfg.Sender(), "error", err)
		return entities.EmailOutcome{Success: false, Email: rec.Email}
	}
	if err := msg.To(rec.Email); err != nil {
		m.log.Errorw("invalid recipient address", "email", rec.Email, "error", err)
		return entities.EmailOutcome{Success: false, Email: rec.Email}
	}
	msg.Subject(email.Subject)
	msg.SetBodyString(mail.TypeTextPlain, email.TextBody)
	msg.AddAlternativeString(mail.TypeTextHTML, email.HTMLBody)

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		m.log.Errorw("smtp client setup failed", "host", m.cfg.Host, "error", err)
		return entities.EmailOutcome{Success: false, Email: rec.Email}
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		m.log.Errorw("credentials email delivery failed", "email", rec.Email, "error", err)
		return entities.EmailOutcome{Success: false, Email: rec.Email}
	}

	m.log.Infow("credentials email sent", "email", rec.Email, "username", rec.Username)
	return entities.EmailOutcome{Success: true, Email: rec.Email}
}
