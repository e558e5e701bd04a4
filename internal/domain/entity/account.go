// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account represents one registered restaurant operator.
// Email is unique across all accounts and stored lowercase.
type Account struct {
	ID             uuid.UUID // Unique identifier, assigned by the store at creation.
	Name           string    // The operator's display name.
	Email          string    // Login identifier, lowercase at rest, unique.
	RestaurantName string    // The restaurant this account manages.

	// PasswordHash is the bcrypt hash of the account password. It is only
	// populated on the authenticate read path and must never appear in any
	// response or log line.
	PasswordHash string

	CreatedAt time.Time // Set once at creation, never mutated.
	UpdatedAt time.Time // Timestamp of the last modification.
}
