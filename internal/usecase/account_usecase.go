// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new restaurant account.
type RegisterInput struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6"`
	RestaurantName string `json:"restaurantName" validate:"required"`
}

// Normalize trims surrounding whitespace and lowercases the email so the
// same address always maps to the same stored account. It runs before any
// validation; the password is left untouched because whitespace in it is
// significant.
func (in *RegisterInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
	in.RestaurantName = strings.TrimSpace(in.RestaurantName)
}

// AuthenticateInput defines the data required to authenticate an account.
type AuthenticateInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Normalize applies the same email normalization as RegisterInput.Normalize.
func (in *AuthenticateInput) Normalize() {
	in.Email = normalizeEmail(in.Email)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// --- Output DTOs ---

// AccountSummary is the account view returned to callers.
// It deliberately has no field for the password hash.
type AccountSummary struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	RestaurantName string    `json:"restaurantName"`
}

// AuthOutput returns a session token and the account it belongs to.
// Both Register and Authenticate produce this shape.
type AuthOutput struct {
	Token   string          `json:"token"`
	Account *AccountSummary `json:"account"`
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// Register creates a new account and returns a session token for it.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Authenticate verifies an email/password pair and returns a session token.
	Authenticate(ctx context.Context, input *AuthenticateInput) (*AuthOutput, error)
}
