package handlers_fiber

import (
	"net/http"
	"net/mail"
	"strings"

	"github.com/mamamamad/backend-domjudge/internal/api"
	"github.com/mamamamad/backend-domjudge/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostTeams registers one team: it provisions the organization, team and user
// on the contest platform and emails the generated credentials.
func (h *Handler) PostTeams(c *fiber.Ctx) error {
	var body api.TeamRegistration
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse("invalid body"))
	}

	if msg := validateRegistration(body); msg != "" {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(msg))
	}

	res, err := h.uc.RegisterTeam(c.Context(), mapper.FromAPIRegistration(body))
	if err != nil {
		h.log.Infow(err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToAPIRegistrationResponse(*res))
}

// validateRegistration mirrors the request contract: team name, organization
// and description are required, the email must parse when present.
func validateRegistration(body api.TeamRegistration) string {
	if strings.TrimSpace(body.TeamName) == "" || strings.TrimSpace(body.OrganizationID) == "" {
		return "Team name and university name are required or university name is not true."
	}
	if strings.TrimSpace(body.Descriptions) == "" {
		return "descriptions is required"
	}
	if body.Email != "" {
		if _, err := mail.ParseAddress(body.Email); err != nil {
			return "Invalid email format"
		}
	}
	return ""
}
