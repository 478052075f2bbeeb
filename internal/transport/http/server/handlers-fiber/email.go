package handlers_fiber

import (
	"net/http"

	"github.com/mamamamad/backend-domjudge/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetSendEmail runs the retry sweep over failed credential emails and reports
// how many were re-sent. The route is guarded by basic auth in main.
func (h *Handler) GetSendEmail(c *fiber.Ctx) error {
	report, err := h.uc.ResendFailedEmails(c.Context())
	if err != nil {
		h.log.Errorw("email retry sweep failed", "error", err)
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPIResendReport(report))
}
