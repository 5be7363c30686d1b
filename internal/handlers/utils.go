package handlers

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"financehub/internal/errors"
)

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

// parseUUIDParam parses a UUID path parameter, returning a ready-to-send
// validation error on failure.
func parseUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, SendError(c, errors.ValidationInvalidFormat,
			errors.WithDetails(fmt.Sprintf("%s must be a valid UUID", name)))
	}
	return id, nil
}
