package middleware

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/krishkalaria12/blog-serve/schemas"
	"github.com/krishkalaria12/blog-serve/services"
	"github.com/krishkalaria12/blog-serve/views"
)

const APIPrefix = "/api"

// ErrorHandler maps errors to a status code and renders them as JSON for
// API paths and as the error page everywhere else.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code, message, data := classify(c, err)

	if strings.HasPrefix(c.Path(), APIPrefix) {
		return c.Status(code).JSON(fiber.Map{
			"status":  "error",
			"message": message,
			"data":    data,
		})
	}

	renderErr := c.Status(code).Render("error", fiber.Map{
		"StatusCode": code,
		"Title":      code,
		"Message":    message,
	}, views.Layout)
	if renderErr != nil {
		slog.Error("failed to render error page", "error", renderErr)
		return c.Status(code).SendString(message)
	}
	return nil
}

func classify(c *fiber.Ctx, err error) (int, string, interface{}) {
	var serr *services.Error
	if errors.As(err, &serr) {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return fiber.StatusNotFound, serr.Message, nil
		case errors.Is(err, services.ErrConflict):
			return fiber.StatusBadRequest, serr.Message, nil
		}
	}

	var verr *schemas.ValidationError
	if errors.As(err, &verr) {
		if strings.HasPrefix(c.Path(), APIPrefix) {
			return fiber.StatusUnprocessableEntity, verr.Message, verr.Fields
		}
		return fiber.StatusUnprocessableEntity, "Invalid request, please check your input", nil
	}

	var ferr *fiber.Error
	if errors.As(err, &ferr) {
		return ferr.Code, ferr.Message, nil
	}

	slog.Error("unhandled error", "method", c.Method(), "path", c.Path(), "error", err)
	return fiber.StatusInternalServerError, "Some error occurred!", nil
}
