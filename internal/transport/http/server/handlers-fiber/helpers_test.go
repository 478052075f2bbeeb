package handlers_fiber

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mamamamad/backend-domjudge/internal/api"
	"github.com/mamamamad/backend-domjudge/internal/entities"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{
			name:   "validation",
			err:    fmt.Errorf("%w: teamname and organization_id are required", entities.ErrInvalidArgument),
			status: http.StatusBadRequest,
		},
		{
			name:   "conflict",
			err:    fmt.Errorf("%w: team \"Falcons\" already exists", entities.ErrTeamExists),
			status: http.StatusConflict,
		},
		{
			name:   "platform fetch",
			err:    entities.ErrPlatformFetch,
			status: http.StatusInternalServerError,
		},
		{
			name:   "id exhaustion",
			err:    entities.ErrIDSpaceExhausted,
			status: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return writeError(c, tc.err)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tc.status, resp.StatusCode)

			var body api.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.False(t, body.Success)
			require.Equal(t, tc.err.Error(), body.Error)
		})
	}
}
