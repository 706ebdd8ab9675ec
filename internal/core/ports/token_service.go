package ports

import "time"

// TokenClaims is the verified identity data carried by a bearer token.
type TokenClaims struct {
	Email     string
	UserID    string
	Role      string
	ExpiresAt time.Time
}

// TokenService issues and verifies signed bearer tokens. The signing key is
// fixed for the process lifetime; rotation requires a restart.
type TokenService interface {
	Issue(email, role, userID string) (string, error)
	// Verify validates signature and expiry. Malformed structure, bad
	// signature, and expiry all surface as domain.ErrInvalidToken so callers
	// cannot distinguish which check failed.
	Verify(token string) (*TokenClaims, error)
}
