package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenService defines the interface for issuing and verifying session tokens.
// A token's validity is a pure function of the token string and the current
// time; there is no server-side session state.
type TokenService interface {
	// Issue mints a signed bearer token bound to the given account ID,
	// expiring a fixed duration after issuance.
	Issue(accountID uuid.UUID) (string, error)

	// Verify validates a presented token's signature and expiry and returns
	// the embedded account ID. Expired, malformed and mis-signed tokens all
	// fail with the same domain error.
	Verify(tokenString string) (uuid.UUID, error)

	// TokenDuration returns the configured session token lifetime.
	TokenDuration() time.Duration
}
