package token

import "time"

// SessionTokenService signs and verifies the cookie value that names a
// server-side session.
type SessionTokenService interface {
	Sign(sessionID, userID uint, ttl time.Duration) (string, error)
	Parse(raw string) (*SessionClaims, error)
}
