package server

import (
	"motorpool/internal/middleware"
	"motorpool/internal/models"

	"github.com/gofiber/fiber/v2"
)

// parseBody decodes a JSON request body into out, converting parse failures
// into a 422 so malformed payloads are distinguishable from rule violations.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(out); err != nil {
		return models.NewUnprocessableError("invalid request body: " + err.Error())
	}
	return nil
}

// handleError logs server-side failures and writes the typed error response.
func handleError(c *fiber.Ctx, err error) error {
	if models.IsCode(err, models.CodeInternal) {
		middleware.Logger.ErrorContext(c.UserContext(), "request failed",
			"method", c.Method(),
			"path", c.Path(),
			"error", err,
		)
	}
	return models.RespondWithError(c, err)
}
