package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs one line per request: method, path, status and latency.
func RequestLogger(log *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			log.WithFields(logrus.Fields{
				"method":   c.Request().Method,
				"path":     c.Request().URL.Path,
				"status":   c.Response().Status,
				"duration": time.Since(start).String(),
			}).Info("request")
			return err
		}
	}
}
