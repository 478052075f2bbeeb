// Package api holds the HTTP wire models for the registration service.
package api

// TeamRegistration is the POST /teams request body.
type TeamRegistration struct {
	TeamName       string   `json:"teamname"`
	OrganizationID string   `json:"organization_id"`
	Descriptions   string   `json:"descriptions"`
	DisplayName    string   `json:"display_name,omitempty"`
	Email          string   `json:"email,omitempty"`
	PhoneNumber    string   `json:"phoneNumber,omitempty"`
	Username       string   `json:"username,omitempty"`
	Users          []string `json:"users,omitempty"`
}

// RegistrationResponse is the 201 answer for a provisioned team.
type RegistrationResponse struct {
	Success     bool   `json:"success"`
	Email       string `json:"email"`
	EmailStatus bool   `json:"emailstatus"`
	Username    string `json:"username"`
	Password    string `json:"password"`
}

// ErrorResponse is the uniform failure body.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ResendReport is the GET /sendEmail answer.
type ResendReport struct {
	Success   bool `json:"success"`
	Attempted int  `json:"attempted"`
	Sent      int  `json:"sent"`
	Skipped   int  `json:"skipped"`
	Failed    int  `json:"failed"`
}
