package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionManager issues and validates household session tokens. A token is a
// signed HS256 JWT whose JWT ID identifies the session row in the database:
// the token itself never touches storage, only the SHA-256 hash of its ID.
type SessionManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewSessionManager creates a session manager.
// secret must be at least 32 characters for HS256 security.
func NewSessionManager(secret string, issuer string, ttl time.Duration) *SessionManager {
	return &SessionManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

// TTL returns the configured session lifetime.
func (m *SessionManager) TTL() time.Duration {
	return m.ttl
}

// Generate creates a signed session token with a fresh random session ID.
// Returns the raw token (to send to the client as a cookie) and the SHA-256
// hash of the session ID (to store in the database).
func (m *SessionManager) Generate() (token string, idHash string, expiresAt time.Time, err error) {
	now := time.Now()
	expiresAt = now.Add(m.ttl)
	sessionID := uuid.New().String()

	claims := jwt.RegisteredClaims{
		ID:        sessionID,
		Issuer:    m.issuer,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return signed, HashToken(sessionID), expiresAt, nil
}

// Validate parses and validates a session token.
// Returns the SHA-256 hash of the embedded session ID if the signature,
// issuer and expiry all check out. Whether the session is still live (not
// revoked) is the store's concern, not the token's.
func (m *SessionManager) Validate(tokenString string) (string, error) {
	if tokenString == "" {
		return "", fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token claims")
	}

	if claims.Issuer != m.issuer {
		return "", fmt.Errorf("invalid issuer: expected %s, got %s", m.issuer, claims.Issuer)
	}

	if claims.ID == "" {
		return "", fmt.Errorf("missing session ID claim")
	}

	return HashToken(claims.ID), nil
}

// HashToken computes the SHA-256 hash of a value and returns it as a hex
// string. Session IDs are hashed before storage so a database leak does not
// yield usable tokens.
func HashToken(raw string) string {
	h := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(h[:])
}
