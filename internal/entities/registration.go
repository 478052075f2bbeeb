// Package entities contains core business entities.
package entities

// RegistrationRequest is one team signup as received over the wire and as
// persisted verbatim in the registrations audit log.
type RegistrationRequest struct {
	TeamName         string   `json:"teamname"`
	OrganizationName string   `json:"organization_id"`
	Description      string   `json:"descriptions"`
	DisplayName      string   `json:"display_name,omitempty"`
	Email            string   `json:"email,omitempty"`
	PhoneNumber      string   `json:"phoneNumber,omitempty"`
	Username         string   `json:"username,omitempty"`
	Users            []string `json:"users,omitempty"`
}

// RegistrationResult is what a successful provisioning run reports back.
type RegistrationResult struct {
	Success   bool
	Email     string
	EmailSent bool
	Username  string
	Password  string
}

// ResendReport summarizes one retry sweep over the email outcome log.
type ResendReport struct {
	Attempted int `json:"attempted"`
	Sent      int `json:"sent"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}
