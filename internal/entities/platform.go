package entities

import (
	"encoding/json"
	"fmt"
)

// FlexID decodes a platform identifier that may arrive as a JSON string or
// number. DOMjudge returns numeric ids for teams and users but string ids for
// organizations.
type FlexID string

// UnmarshalJSON accepts string, number or null.
func (f *FlexID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*f = FlexID(n.String())
		return nil
	}
	return fmt.Errorf("id: cannot decode %s", string(b))
}

func (f FlexID) String() string { return string(f) }

// OrganizationPayload is the create-organization request body. Shortname,
// FormalName and Country are fixed for every organization this service creates.
type OrganizationPayload struct {
	Shortname  string `json:"shortname"`
	Name       string `json:"name"`
	FormalName string `json:"formal_name"`
	Country    string `json:"country"`
}

// OrganizationRecord is a created or listed organization.
type OrganizationRecord struct {
	ID   FlexID `json:"id"`
	Name string `json:"name"`
}

// TeamPayload is the create-team request body.
type TeamPayload struct {
	ICPCID            string   `json:"icpc_id"`
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	OrganizationID    string   `json:"organization_id"`
	DisplayName       string   `json:"display_name"`
	Description       string   `json:"description"`
	Label             string   `json:"label"`
	PublicDescription string   `json:"public_description"`
	Location          string   `json:"location"`
	Members           string   `json:"members"`
	GroupIDs          []string `json:"group_ids"`
}

// TeamRecord is a created or listed team.
type TeamRecord struct {
	ID   FlexID `json:"id"`
	Name string `json:"name"`
}

// UserPayload is the create-user request body.
type UserPayload struct {
	Username string   `json:"username"`
	Name     string   `json:"name"`
	Email    string   `json:"email,omitempty"`
	Password string   `json:"password"`
	Enabled  bool     `json:"enabled"`
	TeamID   int      `json:"team_id"`
	Roles    []string `json:"roles"`
}

// UserRecord is a created or listed user.
type UserRecord struct {
	ID       FlexID `json:"id"`
	Username string `json:"username"`
}
