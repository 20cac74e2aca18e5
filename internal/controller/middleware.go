package controller

import (
	"net/http"
	"strings"

	"marketplace-api/internal/service"

	"github.com/labstack/echo"
)

const (
	contextUserId = "userId"
	contextRole   = "role"

	bearerPrefix = "Bearer "
)

// JWTAuth verifies the bearer token and exposes the caller's identity
// to downstream handlers. It does no database lookup, so a token keeps
// working for its whole lifetime even if the user record changes.
func JWTAuth(tokens *service.TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, bearerPrefix) {
				return c.JSON(http.StatusUnauthorized, errorResponse{"Unauthorized: no token provided"})
			}

			identity, err := tokens.Verify(strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorResponse{"Unauthorized: invalid token"})
			}

			c.Set(contextUserId, identity.UserId)
			c.Set(contextRole, identity.Role)

			return next(c)
		}
	}
}

func callerUserId(c echo.Context) string {
	userId, _ := c.Get(contextUserId).(string)
	return userId
}

func callerRole(c echo.Context) string {
	role, _ := c.Get(contextRole).(string)
	return role
}
