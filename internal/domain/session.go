package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is a server-side record of an issued session credential. Only the
// SHA-256 hash of the token id is stored, so a database leak does not leak
// usable sessions.
type Session struct {
	ID        uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the session has been revoked.
func (s *Session) IsRevoked() bool {
	return s.RevokedAt != nil
}
