// Package platform wraps the DOMjudge contest API used for provisioning
// organizations, teams and users.
package platform

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/mamamamad/backend-domjudge/config"
	"github.com/mamamamad/backend-domjudge/internal/entities"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const apiPrefix = "/api/v4"

// API is the contest platform surface the provisioning workflow depends on.
type API interface {
	Organizations(ctx context.Context) (map[string]string, error)
	Teams(ctx context.Context) (map[string]string, error)
	Users(ctx context.Context) (map[string]string, error)
	CreateOrganization(ctx context.Context, payload entities.OrganizationPayload) (*entities.OrganizationRecord, error)
	CreateTeam(ctx context.Context, payload entities.TeamPayload) (*entities.TeamRecord, error)
	CreateUser(ctx context.Context, payload entities.UserPayload) (*entities.UserRecord, error)
	CreateOrGetOrganization(ctx context.Context, name string, known map[string]string) (string, error)
}

// StatusError is a non-2xx answer from the platform API.
type StatusError struct {
	Op     string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: platform answered %d: %s", e.Op, e.Status, e.Body)
}

// Unwrap maps every status error onto the create sentinel so callers can match
// with errors.Is without knowing the operation.
func (e *StatusError) Unwrap() error { return entities.ErrPlatformCreate }

// Client talks to the DOMjudge REST API with fixed basic-auth credentials.
type Client struct {
	log  *zap.SugaredLogger
	http *resty.Client
}

var _ API = (*Client)(nil)

// New creates a platform client from configuration.
func New(log *zap.SugaredLogger, cfg config.DOMjudgeConfig) *Client {
	hc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetBasicAuth(cfg.Username, cfg.Password).
		SetHeader("Content-Type", "application/json")

	return &Client{
		log:  log.Named("platform"),
		http: hc,
	}
}

// Organizations returns a name→id map of all organizations. The result must be
// discarded entirely on error.
func (c *Client) Organizations(ctx context.Context) (map[string]string, error) {
	var records []entities.OrganizationRecord
	if err := c.list(ctx, "/organizations", &records); err != nil {
		return nil, err
	}
	m := make(map[string]string, len(records))
	for _, r := range records {
		m[r.Name] = r.ID.String()
	}
	c.log.Infow("fetched organizations", "count", len(m))
	return m, nil
}

// Teams returns a name→id map of all teams.
func (c *Client) Teams(ctx context.Context) (map[string]string, error) {
	var records []entities.TeamRecord
	if err := c.list(ctx, "/teams", &records); err != nil {
		return nil, err
	}
	m := make(map[string]string, len(records))
	for _, r := range records {
		m[r.Name] = r.ID.String()
	}
	c.log.Infow("fetched teams", "count", len(m))
	return m, nil
}

// Users returns a username→id map of all users.
func (c *Client) Users(ctx context.Context) (map[string]string, error) {
	var records []entities.UserRecord
	if err := c.list(ctx, "/users", &records); err != nil {
		return nil, err
	}
	m := make(map[string]string, len(records))
	for _, r := range records {
		m[r.Username] = r.ID.String()
	}
	c.log.Infow("fetched users", "count", len(m))
	return m, nil
}

func (c *Client) list(ctx context.Context, path string, out any) error {
	resp, err := c.http.R().SetContext(ctx).SetResult(out).Get(apiPrefix + path)
	if err != nil {
		c.log.Errorw("platform request failed", "path", path, "error", err)
		return fmt.Errorf("%w: list %s: %v", entities.ErrPlatformFetch, path, err)
	}
	if resp.IsError() {
		c.log.Errorw("platform answered error", "path", path, "status", resp.StatusCode())
		return fmt.Errorf("%w: list %s: status %d", entities.ErrPlatformFetch, path, resp.StatusCode())
	}
	return nil
}

// CreateOrganization creates one organization. A 400 is logged as a probable
// duplicate but still returned to the caller.
func (c *Client) CreateOrganization(ctx context.Context, payload entities.OrganizationPayload) (*entities.OrganizationRecord, error) {
	var created entities.OrganizationRecord
	if err := c.create(ctx, "/organizations", payload, &created); err != nil {
		if isStatus(err, http.StatusBadRequest) {
			c.log.Warnw("organization might already exist", "name", payload.Name)
		}
		return nil, err
	}
	c.log.Infow("created organization", "name", payload.Name, "id", created.ID.String())
	return &created, nil
}

// CreateTeam creates one team.
func (c *Client) CreateTeam(ctx context.Context, payload entities.TeamPayload) (*entities.TeamRecord, error) {
	var created entities.TeamRecord
	if err := c.create(ctx, "/teams", payload, &created); err != nil {
		if isStatus(err, http.StatusBadRequest) {
			c.log.Warnw("team might already exist", "name", payload.Name)
		}
		return nil, err
	}
	c.log.Infow("created team", "name", payload.Name, "id", created.ID.String())
	return &created, nil
}

// CreateUser creates one user account.
func (c *Client) CreateUser(ctx context.Context, payload entities.UserPayload) (*entities.UserRecord, error) {
	var created entities.UserRecord
	if err := c.create(ctx, "/users", payload, &created); err != nil {
		if isStatus(err, http.StatusBadRequest) {
			c.log.Warnw("user might already exist", "username", payload.Username)
		}
		return nil, err
	}
	c.log.Infow("created user", "username", payload.Username, "id", created.ID.String())
	return &created, nil
}

func (c *Client) create(ctx context.Context, path string, payload, out any) error {
	resp, err := c.http.R().SetContext(ctx).SetBody(payload).SetResult(out).Post(apiPrefix + path)
	if err != nil {
		c.log.Errorw("platform request failed", "path", path, "error", err)
		return fmt.Errorf("%w: create %s: %v", entities.ErrPlatformCreate, path, err)
	}
	if resp.IsError() {
		return &StatusError{Op: "create " + path, Status: resp.StatusCode(), Body: resp.String()}
	}
	return nil
}

// CreateOrGetOrganization resolves an organization name to its platform id. A
// hit in the known map answers without a network call; otherwise the
// organization is created with fixed country attributes and the map is updated.
// When creation fails with 400 or 409 the full list is re-fetched in case a
// concurrent registration created it first; this recovery is best-effort, not
// atomic.
func (c *Client) CreateOrGetOrganization(ctx context.Context, name string, known map[string]string) (string, error) {
	if id, ok := known[name]; ok {
		return id, nil
	}

	payload := entities.OrganizationPayload{
		Shortname:  "IR",
		Name:       name,
		FormalName: "Islamic Republic of Iran",
		Country:    "IRN",
	}

	created, err := c.CreateOrganization(ctx, payload)
	if err == nil {
		id := created.ID.String()
		if id == "" {
			id = name
		}
		known[name] = id
		return id, nil
	}

	if isStatus(err, http.StatusBadRequest) || isStatus(err, http.StatusConflict) {
		orgs, fetchErr := c.Organizations(ctx)
		if fetchErr == nil {
			if id, ok := orgs[name]; ok {
				known[name] = id
				return id, nil
			}
		}
	}
	return "", err
}

func isStatus(err error, status int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == status
}
