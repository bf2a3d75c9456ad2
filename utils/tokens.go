package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"golang.org/x/exp/rand"
)

// Manager signs the short-lived tickets that authenticate websocket
// handshakes. The browser cannot send the session cookie on a
// cross-origin upgrade, so it trades the session for a ticket first
// and presents the ticket in the query string.
type Manager struct {
	signingKey string
}

func NewManager(signingKey string) (*Manager, error) {
	if signingKey == "" {
		return nil, errors.New("empty signing key")
	}

	return &Manager{signingKey: signingKey}, nil
}

// NewTicket issues a ticket bound to one session.
func (m *Manager) NewTicket(sessionID string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		ExpiresAt: time.Now().Add(ttl).Unix(),
		Subject:   sessionID,
	})

	return token.SignedString([]byte(m.signingKey))
}

// ParseTicket verifies a ticket and returns the session id it was
// issued for. Expired or forged tickets fail here.
func (m *Manager) ParseTicket(ticket string) (string, error) {
	token, err := jwt.ParseWithClaims(ticket, &jwt.StandardClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.signingKey), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*jwt.StandardClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", errors.New("invalid ticket claims")
	}

	return claims.Subject, nil
}

// NewSessionID returns a 64 character random hex id.
func NewSessionID() (string, error) {
	b := make([]byte, 32)

	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", b), nil
}
