// Package domain contains the provisioning workflow orchestrating the contest
// platform, credential generation, audit logging and notification.
package domain

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mamamamad/backend-domjudge/internal/entities"
	"github.com/mamamamad/backend-domjudge/internal/idgen"

	"golang.org/x/sync/errgroup"
)

// RegisterTeam provisions one team on the contest platform: it snapshots
// existing state, rejects duplicate team names, generates a unique id, username
// and password, creates the organization (when absent), team and user, writes
// the audit logs and emails the credentials.
//
// The duplicate check and the creation are separate platform calls, so two
// concurrent registrations of the same name can both pass the check; the loser
// then fails on the platform's own uniqueness error. This is a known,
// deliberate gap.
func (u *Usecase) RegisterTeam(ctx context.Context, req entities.RegistrationRequest) (*entities.RegistrationResult, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if strings.TrimSpace(req.TeamName) == "" || strings.TrimSpace(req.OrganizationName) == "" {
		u.log.Errorw("failed to register team: missing required fields", "teamname", req.TeamName)
		return nil, fmt.Errorf("%w: teamname and organization_id are required", entities.ErrInvalidArgument)
	}

	var orgs, teams, users map[string]string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orgs, err = u.platform.Organizations(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		teams, err = u.platform.Teams(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = u.platform.Users(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if _, ok := teams[req.TeamName]; ok {
		return nil, fmt.Errorf("%w: team %q already exists", entities.ErrTeamExists, req.TeamName)
	}

	// Union of team and user ids: the generated id must collide with neither.
	ids := idgen.NewCollisionSet()
	for _, id := range teams {
		ids.Reserve(id)
	}
	usernames := idgen.NewCollisionSet()
	for username, id := range users {
		ids.Reserve(id)
		usernames.Reserve(username)
	}

	orgID, err := u.platform.CreateOrGetOrganization(ctx, req.OrganizationName, orgs)
	if err != nil {
		return nil, err
	}

	id, err := idgen.UniqueID(ids, idgen.DefaultLowerID, idgen.DefaultUpperID)
	if err != nil {
		return nil, err
	}

	base := strings.TrimSpace(req.Username)
	if base == "" {
		base = idgen.Username(id)
	}
	username, err := idgen.UniqueUsername(base, usernames)
	if err != nil {
		return nil, err
	}

	password := idgen.Password(10)

	teamName := strings.TrimSpace(req.TeamName)
	teamPayload := entities.TeamPayload{
		ICPCID:            strconv.Itoa(id),
		ID:                strconv.Itoa(id),
		Name:              teamName,
		OrganizationID:    orgID,
		DisplayName:       strings.TrimSpace(req.DisplayName),
		Description:       strings.TrimSpace(req.Description),
		Label:             teamName,
		PublicDescription: teamName,
		Location:          "null",
		Members:           "null",
		GroupIDs:          []string{"3"},
	}

	createdTeam, err := u.platform.CreateTeam(ctx, teamPayload)
	if err != nil {
		return nil, err
	}

	cred := entities.CredentialRecord{
		Success:  true,
		TeamName: teamName,
		Email:    req.Email,
		TeamID:   createdTeam.ID.String(),
		Username: username,
		Password: password,
	}

	leadName := username
	if len(req.Users) > 0 {
		leadName = req.Users[0]
	}
	userPayload := entities.UserPayload{
		Username: username,
		Name:     leadName,
		Email:    req.Email,
		Password: password,
		Enabled:  true,
		TeamID:   id,
		Roles:    []string{"team"},
	}

	createdUser, userErr := u.platform.CreateUser(ctx, userPayload)
	if userErr != nil {
		// The team exists with no user. Nothing is rolled back; the partial
		// credential record keeps the orphaned team id for reconciliation.
		u.log.Errorw("user creation failed after team creation",
			"teamname", teamName, "team_id", cred.TeamID, "error", userErr)
		cred.Success = false
	} else {
		cred.UserID = createdUser.ID.String()
	}

	// Audit logs are written no matter how far provisioning got.
	if err := u.repo.AppendRegistration(ctx, req); err != nil {
		u.log.Errorw("failed to persist registration record", "teamname", teamName, "error", err)
	}
	if err := u.repo.AppendCredential(ctx, cred); err != nil {
		u.log.Errorw("failed to persist credential record", "teamname", teamName, "error", err)
	}

	outcome := u.sender.Send(ctx, cred)
	if err := u.repo.AppendEmailOutcome(ctx, outcome); err != nil {
		u.log.Errorw("failed to persist email outcome", "email", outcome.Email, "error", err)
	}

	if userErr != nil {
		return nil, userErr
	}

	return &entities.RegistrationResult{
		Success:   true,
		Email:     req.Email,
		EmailSent: outcome.Success,
		Username:  username,
		Password:  password,
	}, nil
}
