// Package session issues and verifies the signed admin session tokens set
// as HTTP-only cookies by the login endpoint.
package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the admin session cookie.
const CookieName = "trackspeed_admin_session"

// TTL is how long an admin session stays valid.
const TTL = 24 * time.Hour

var ErrInvalidSession = errors.New("invalid session token")

// Manager signs and verifies admin session JWTs with the shared server
// secret. Each token carries a unique session id and an expiry.
type Manager struct {
	secret []byte
}

func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

// Issue returns a signed session token for the admin identity.
func (m *Manager) Issue() (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": "admin",
		"sid": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(TTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify checks the signature and expiry of a session token.
func (m *Manager) Verify(token string) error {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return ErrInvalidSession
	}
	return nil
}
