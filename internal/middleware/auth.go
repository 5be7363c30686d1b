package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"financehub/internal/config"
	"financehub/internal/errors"
	"financehub/internal/handlers"
)

// StaticTokenAuth guards the API with a single pre-shared bearer token,
// stored in config as a bcrypt hash so the plaintext never sits in the
// environment. An empty hash disables auth, which is the local
// single-user default.
func StaticTokenAuth(cfg config.SecurityConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cfg.APITokenHash == "" {
				return next(c)
			}

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			if err := bcrypt.CompareHashAndPassword([]byte(cfg.APITokenHash), []byte(token)); err != nil {
				return handlers.SendError(c, errors.AuthInvalidToken)
			}

			return next(c)
		}
	}
}
