package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/mamamamad/backend-domjudge/internal/api"
	"github.com/mamamamad/backend-domjudge/internal/entities"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, entities.ErrTeamExists):
		status = http.StatusConflict
	}

	return c.Status(status).JSON(errorResponse(err.Error()))
}

func errorResponse(msg string) api.ErrorResponse {
	return api.ErrorResponse{Success: false, Error: msg}
}
