// Package router wires HTTP routes to their handlers.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/iremar/book-catalog-api/internal/config"
	"github.com/iremar/book-catalog-api/internal/handler"
	"github.com/iremar/book-catalog-api/internal/middleware"
	"github.com/iremar/book-catalog-api/internal/repository"
)

// Register mounts every route of the service. Listing books and the auth
// endpoints are open; all other book routes sit behind the bearer-token
// gate, which resolves the token subject against the users table before the
// wrapped handler runs.
func Register(e *echo.Echo, cfg config.Config, auth *handler.AuthHandler, books *handler.BookHandler, users *repository.UserRepo, log *logrus.Logger) {
	e.Use(middleware.RequestLogger(log))

	e.GET("/healthz", handler.Health)
	e.POST("/register", auth.Register)
	e.POST("/login", auth.Login)

	e.GET("/books", books.List) // open reads

	guard := middleware.TokenAuth(cfg.JWTSecret, users, log)
	e.POST("/books", books.Create, guard)
	e.GET("/books/:id", books.Get, guard)
	e.PUT("/books/:id", books.Update, guard)
	e.PATCH("/books/:id", books.Update, guard)
	e.DELETE("/books/:id", books.Delete, guard)
}
