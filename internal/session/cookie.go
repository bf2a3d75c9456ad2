package session

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"time"

	"golang.org/x/crypto/nacl/secretbox"

	"mazadWeb/internal/models"
)

const CookieName = "mazad_session"

// Cookie seals session ids before they reach the browser, so the raw
// redis key never travels in clear text and a tampered cookie fails to
// open instead of hitting the store.
type Cookie struct {
	key    [32]byte
	secure bool
	maxAge time.Duration
}

// NewCookie derives the sealing key from the configured secret.
func NewCookie(secret string, secure bool, maxAge time.Duration) (*Cookie, error) {
	if len(secret) < 32 {
		return nil, errors.New("session cookie secret must be at least 32 characters")
	}
	c := &Cookie{secure: secure, maxAge: maxAge}
	c.key = sha256.Sum256([]byte(secret))
	return c, nil
}

// Write seals the session id and sets the cookie.
func (c *Cookie) Write(w http.ResponseWriter, sessionID string) error {
	var nonce [24]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return err
	}
	sealed := secretbox.Seal(nonce[:], []byte(sessionID), &nonce, &c.key)

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    base64.RawURLEncoding.EncodeToString(sealed),
		Path:     "/",
		MaxAge:   int(c.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Read opens the cookie and returns the session id inside. Absent,
// corrupt or forged cookies all come back as ErrSessionNotFound.
func (c *Cookie) Read(r *http.Request) (string, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return "", models.ErrSessionNotFound
	}

	sealed, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil || len(sealed) < 24 {
		return "", models.ErrSessionNotFound
	}

	var nonce [24]byte
	copy(nonce[:], sealed[:24])
	opened, ok := secretbox.Open(nil, sealed[24:], &nonce, &c.key)
	if !ok {
		return "", models.ErrSessionNotFound
	}
	return string(opened), nil
}

// Clear expires the cookie in the browser.
func (c *Cookie) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
