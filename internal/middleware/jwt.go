// Package middleware contains reusable HTTP middleware.
package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/iremar/book-catalog-api/internal/repository"
	"github.com/iremar/book-catalog-api/internal/utils"
)

// Context keys under which TokenAuth stores the resolved identity.
const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
)

// TokenAuth returns middleware that gates a route behind a bearer access
// token. The Authorization header is split on whitespace and the second
// field is taken as the token; the scheme word itself is not checked. The
// token subject must resolve to an existing user row, otherwise the token is
// treated as invalid even when signature and expiry are fine. Clients see
// only two outcomes, missing or invalid; the internal failure reason is
// logged at debug level.
func TokenAuth(secret string, users *repository.UserRepo, log *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			parts := strings.Fields(c.Request().Header.Get("Authorization"))
			if len(parts) < 2 {
				return c.JSON(http.StatusForbidden, echo.Map{"message": "Token is missing!"})
			}
			raw := parts[1]

			userID, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				log.WithError(err).Debug("token rejected")
				return c.JSON(http.StatusForbidden, echo.Map{"message": "Token is invalid!"})
			}

			user, err := users.GetByID(c.Request().Context(), userID)
			if err != nil {
				log.WithError(err).WithField("user_id", userID).Debug("token subject rejected")
				return c.JSON(http.StatusForbidden, echo.Map{"message": "Token is invalid!"})
			}

			c.Set(CtxUserID, user.ID)
			c.Set(CtxUsername, user.Username)
			return next(c)
		}
	}
}
