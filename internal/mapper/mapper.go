// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"github.com/mamamamad/backend-domjudge/internal/api"
	"github.com/mamamamad/backend-domjudge/internal/entities"
)

// FromAPIRegistration builds an entities.RegistrationRequest from the wire model.
func FromAPIRegistration(src api.TeamRegistration) entities.RegistrationRequest {
	users := make([]string, len(src.Users))
	copy(users, src.Users)

	return entities.RegistrationRequest{
		TeamName:         src.TeamName,
		OrganizationName: src.OrganizationID,
		Description:      src.Descriptions,
		DisplayName:      src.DisplayName,
		Email:            src.Email,
		PhoneNumber:      src.PhoneNumber,
		Username:         src.Username,
		Users:            users,
	}
}

// ToAPIRegistrationResponse maps a provisioning result to the 201 body.
func ToAPIRegistrationResponse(res entities.RegistrationResult) api.RegistrationResponse {
	return api.RegistrationResponse{
		Success:     res.Success,
		Email:       res.Email,
		EmailStatus: res.EmailSent,
		Username:    res.Username,
		Password:    res.Password,
	}
}

// ToAPIResendReport maps a retry sweep report to the transport model.
func ToAPIResendReport(rep entities.ResendReport) api.ResendReport {
	return api.ResendReport{
		Success:   true,
		Attempted: rep.Attempted,
		Sent:      rep.Sent,
		Skipped:   rep.Skipped,
		Failed:    rep.Failed,
	}
}
