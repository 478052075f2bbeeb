package entities

// CredentialRecord is the outcome of one provisioning attempt, persisted to the
// credentials audit log regardless of how far the attempt got. On a partial
// failure (team created, user creation failed) Success is false and UserID is
// empty while TeamID still points at the orphaned team.
type CredentialRecord struct {
	Success  bool   `json:"success"`
	TeamName string `json:"teamname"`
	Email    string `json:"email"`
	TeamID   string `json:"teamId"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// EmailOutcome is the result of one credentials-email delivery attempt. The
// retry sweep flips Success from false to true after a successful re-send.
type EmailOutcome struct {
	Success bool   `json:"success"`
	Email   string `json:"email"`
}
