// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"mise/internal/domain/entity"
)

// ErrAccountNotFound is a domain-specific error returned when no account matches a lookup.
var ErrAccountNotFound = errors.New("account not found")

// ErrDuplicateEmail is returned by Insert when the store's unique email
// constraint rejects the record. The constraint, not the service-level
// existence check, is the authoritative guard against duplicate accounts.
var ErrDuplicateEmail = errors.New("email already registered")

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByEmail retrieves a single account by its lowercase email address.
	// The stored password hash is populated only when includeHash is true;
	// every other read path receives the account without it.
	FindByEmail(ctx context.Context, email string, includeHash bool) (*entity.Account, error)

	// Insert persists a new account and assigns its ID and CreatedAt.
	// Returns ErrDuplicateEmail when the email is already taken.
	Insert(ctx context.Context, account *entity.Account) error
}
