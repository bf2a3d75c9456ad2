package models

import (
	"time"
)

// Session is the server-held state for one signed-in browser: the platform
// token pair plus a snapshot of the account it belongs to. Everything else
// the pages show is fetched per request; this is the only durable state the
// front-end keeps.
type Session struct {
	ID              string    `json:"id"`
	User            User      `json:"user"`
	Tokens          Tokens    `json:"tokens"`
	AccessExpiresAt time.Time `json:"access_expires_at"`
	CSRFSecret      string    `json:"csrf_secret"`
	CreatedAt       time.Time `json:"created_at"`
	LastSeenAt      time.Time `json:"last_seen_at"`
}

// Expired reports whether the access token needs refreshing before the
// next platform call.
func (s Session) Expired(now time.Time) bool {
	return !s.AccessExpiresAt.IsZero() && !now.Before(s.AccessExpiresAt)
}
