package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"volunteer-hub.com/volunteer-hub/internal/services"
)

// RequireSession authenticates requests carrying a bearer session token.
func RequireSession(auth *services.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			username, err := auth.Authenticate(c.Request().Context(), token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired session")
			}

			c.Set("username", username)
			c.Set("session_token", token)

			return next(c)
		}
	}
}
