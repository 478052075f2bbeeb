package platform

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/mamamamad/backend-domjudge/config"
	"github.com/mamamamad/backend-domjudge/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := New(zap.NewNop().Sugar(), config.DOMjudgeConfig{
		BaseURL:  srv.URL,
		Username: "admin",
		Password: "secret",
	})
	return c, srv
}

func TestOrganizationsMixedIDTypes(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v4/organizations", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "admin", user)
		require.Equal(t, "secret", pass)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"Birjand Univ","name":"Birjand Univ"},{"id":42,"name":"Other Univ"}]`))
	}))

	orgs, err := c.Organizations(context.Background())
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		"Birjand Univ": "Birjand Univ",
		"Other Univ":   "42",
	}, orgs)
}

func TestTeamsFetchError(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := c.Teams(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, entities.ErrPlatformFetch)
}

func TestCreateTeamPropagates400(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v4/teams", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"team already exists"}`))
	}))

	_, err := c.CreateTeam(context.Background(), entities.TeamPayload{Name: "Falcons"})
	require.Error(t, err)
	require.ErrorIs(t, err, entities.ErrPlatformCreate)
	require.True(t, isStatus(err, http.StatusBadRequest))
}

func TestCreateUser(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v4/users", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":777,"username":"T12345"}`))
	}))

	created, err := c.CreateUser(context.Background(), entities.UserPayload{Username: "T12345"})
	require.NoError(t, err)
	require.Equal(t, "777", created.ID.String())
}

func TestCreateOrGetOrganizationCachedHit(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))

	known := map[string]string{"Birjand Univ": "Birjand Univ"}
	id, err := c.CreateOrGetOrganization(context.Background(), "Birjand Univ", known)
	require.NoError(t, err)
	require.Equal(t, "Birjand Univ", id)
	require.Zero(t, calls.Load(), "cached hit must not touch the network")
}

func TestCreateOrGetOrganizationCreates(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"New Univ","name":"New Univ"}`))
	}))

	known := map[string]string{}
	id, err := c.CreateOrGetOrganization(context.Background(), "New Univ", known)
	require.NoError(t, err)
	require.Equal(t, "New Univ", id)
	require.Equal(t, "New Univ", known["New Univ"], "map adopts the created id")
}

func TestCreateOrGetOrganizationRecoversFromConflict(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusConflict)
			return
		}
		// re-fetch after the conflict finds the concurrently created org
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"raced-id","name":"Raced Univ"}]`))
	}))

	known := map[string]string{}
	id, err := c.CreateOrGetOrganization(context.Background(), "Raced Univ", known)
	require.NoError(t, err)
	require.Equal(t, "raced-id", id)
	require.Equal(t, "raced-id", known["Raced Univ"])
}

func TestCreateOrGetOrganizationPropagatesOtherErrors(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := c.CreateOrGetOrganization(context.Background(), "Down Univ", map[string]string{})
	require.Error(t, err)
	require.ErrorIs(t, err, entities.ErrPlatformCreate)
}
