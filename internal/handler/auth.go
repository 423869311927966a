package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/iremar/book-catalog-api/internal/config"
	"github.com/iremar/book-catalog-api/internal/repository"
	"github.com/iremar/book-catalog-api/internal/utils"
)

// AuthHandler bundles dependencies for the register and login endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
	Log   *logrus.Logger
}

func NewAuthHandler(cfg config.Config, users *repository.UserRepo, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users, Log: log}
}

// ----- DTOs -----

type credentialsReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userPart struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

type authResp struct {
	Message string   `json:"message"`
	User    userPart `json:"user"`
	Token   string   `json:"token"`
}

func (h *AuthHandler) tokenTTL() time.Duration {
	return time.Duration(h.Cfg.AccessTTLMin) * time.Minute
}

// Register creates a user and returns a fresh access token in one response.
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Username and password are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Users.Create(ctx, req.Username, req.Password, h.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "User already exists"})
		}
		h.Log.WithError(err).Error("create user failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}

	token, err := utils.NewAccessToken(h.Cfg.JWTSecret, id, h.tokenTTL())
	if err != nil {
		h.Log.WithError(err).Error("issue token failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}

	return c.JSON(http.StatusOK, authResp{
		Message: "User registered successfully",
		User:    userPart{ID: id, Username: req.Username},
		Token:   token,
	})
}

// Login verifies credentials and returns a new access token. An unknown
// username burns a dummy hash comparison so both failure cases cost the same
// and answer identically.
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Username and password are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			utils.VerifyDummy(req.Password)
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		h.Log.WithError(err).Error("load user failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	token, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, h.tokenTTL())
	if err != nil {
		h.Log.WithError(err).Error("issue token failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}

	return c.JSON(http.StatusOK, authResp{
		Message: "Login successful",
		User:    userPart{ID: u.ID, Username: u.Username},
		Token:   token,
	})
}
