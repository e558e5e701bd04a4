// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"mise/internal/delivery/http/middleware"
	"mise/internal/delivery/http/response"
	"mise/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// Signup handles the account registration request.
func (h *AccountHandler) Signup(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	// Normalize before the tag checks so a padded or mixed-case email is
	// not rejected for its formatting.
	input.Normalize()
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Account registered successfully")
}

// Login handles the authentication request.
func (h *AccountHandler) Login(c echo.Context) error {
	var input *usecase.AuthenticateInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	input.Normalize()
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Authenticate(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// Profile returns the authenticated account ID from the verified token.
// It exists as the in-process consumer of the token contract.
func (h *AccountHandler) Profile(c echo.Context) error {
	accountIDVal := c.Get(middleware.ContextAccountIDKey)
	accountID, ok := accountIDVal.(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid account ID in token")
	}

	return response.Success(c, http.StatusOK, map[string]string{"accountId": accountID.String()}, "Profile retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
