package main

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/iremar/book-catalog-api/internal/config"
	"github.com/iremar/book-catalog-api/internal/database"
	"github.com/iremar/book-catalog-api/internal/handler"
	"github.com/iremar/book-catalog-api/internal/repository"
	"github.com/iremar/book-catalog-api/internal/router"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := database.EnsureSchema(ctx, db); err != nil {
		logger.Fatalf("bootstrap schema: %v", err)
	}

	users := repository.NewUserRepo(db)
	books := repository.NewBookRepo(db)

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg,
		handler.NewAuthHandler(cfg, users, logger),
		handler.NewBookHandler(books, logger),
		users, logger)

	addr := ":" + cfg.Port
	logger.Infof("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		logger.Fatal(err)
	}
}
