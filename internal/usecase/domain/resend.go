package domain

import (
	"context"

	"github.com/mamamamad/backend-domjudge/internal/entities"
)

// ResendFailedEmails scans the email outcome log for failed deliveries, looks
// up the matching credential record by recipient address and retries delivery.
// A successful re-send flips the outcome's success flag. The full outcome log
// is rewritten after every attempt so progress survives a sweep that dies
// midway; the file is small enough that the repeated rewrite does not matter.
func (u *Usecase) ResendFailedEmails(ctx context.Context) (entities.ResendReport, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	outcomes, err := u.repo.EmailOutcomes(ctx)
	if err != nil {
		return entities.ResendReport{}, err
	}
	creds, err := u.repo.Credentials(ctx)
	if err != nil {
		return entities.ResendReport{}, err
	}

	byEmail := make(map[string]entities.CredentialRecord, len(creds))
	for _, c := range creds {
		if _, ok := byEmail[c.Email]; !ok {
			byEmail[c.Email] = c
		}
	}

	var report entities.ResendReport
	for i := range outcomes {
		if outcomes[i].Success {
			continue
		}
		report.Attempted++

		cred, ok := byEmail[outcomes[i].Email]
		if !ok {
			u.log.Warnw("no credential record for failed email, skipping", "email", outcomes[i].Email)
			report.Skipped++
			continue
		}

		result := u.sender.Send(ctx, cred)
		if result.Success {
			outcomes[i].Success = true
			report.Sent++
		} else {
			report.Failed++
		}

		if err := u.repo.ReplaceEmailOutcomes(ctx, outcomes); err != nil {
			u.log.Errorw("failed to rewrite email outcome log", "error", err)
		}
	}

	u.log.Infow("email retry sweep finished",
		"attempted", report.Attempted, "sent", report.Sent,
		"skipped", report.Skipped, "failed", report.Failed)
	return report, nil
}
