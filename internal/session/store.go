package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/redis/go-redis/v9"

	"mazadWeb/internal/models"
	"mazadWeb/utils"
)

// Store keeps sessions in redis. A session holds the platform token
// pair and a snapshot of the signed-in user; nothing else is persisted
// on this side.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStore creates a session store. ttl bounds how long an idle
// session survives; every Touch pushes the deadline forward.
func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func sessionKey(id string) string {
	return "session:" + id
}

// Create opens a session for a freshly authenticated user.
func (s *Store) Create(ctx context.Context, user models.User, tokens models.Tokens) (models.Session, error) {
	id, err := utils.NewSessionID()
	if err != nil {
		return models.Session{}, fmt.Errorf("session id: %w", err)
	}
	csrf, err := utils.NewSessionID()
	if err != nil {
		return models.Session{}, fmt.Errorf("csrf secret: %w", err)
	}

	now := time.Now()
	sess := models.Session{
		ID:              id,
		User:            user,
		Tokens:          tokens,
		AccessExpiresAt: accessExpiry(tokens.AccessToken),
		CSRFSecret:      csrf,
		CreatedAt:       now,
		LastSeenAt:      now,
	}
	if err := s.save(ctx, sess); err != nil {
		return models.Session{}, err
	}
	return sess, nil
}

// Get loads a session by id.
func (s *Store) Get(ctx context.Context, id string) (models.Session, error) {
	raw, err := s.rdb.Get(ctx, sessionKey(id)).Result()
	if err == redis.Nil {
		return models.Session{}, models.ErrSessionNotFound
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("session get: %w", err)
	}

	var sess models.Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return models.Session{}, fmt.Errorf("session decode: %w", err)
	}
	return sess, nil
}

// UpdateTokens swaps in a refreshed token pair and recomputes the
// access expiry from the new token.
func (s *Store) UpdateTokens(ctx context.Context, id string, tokens models.Tokens) (models.Session, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return models.Session{}, err
	}
	sess.Tokens = tokens
	sess.AccessExpiresAt = accessExpiry(tokens.AccessToken)
	if err := s.save(ctx, sess); err != nil {
		return models.Session{}, err
	}
	return sess, nil
}

// UpdateUser refreshes the cached account snapshot after a profile
// change.
func (s *Store) UpdateUser(ctx context.Context, id string, user models.User) (models.Session, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return models.Session{}, err
	}
	sess.User = user
	if err := s.save(ctx, sess); err != nil {
		return models.Session{}, err
	}
	return sess, nil
}

// Touch marks the session as seen and pushes its expiry forward.
func (s *Store) Touch(ctx context.Context, id string) error {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	sess.LastSeenAt = time.Now()
	return s.save(ctx, sess)
}

// Delete removes the session. Deleting an unknown id is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.rdb.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}

func (s *Store) save(ctx context.Context, sess models.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("session encode: %w", err)
	}
	if err := s.rdb.Set(ctx, sessionKey(sess.ID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("session set: %w", err)
	}
	return nil
}

// accessExpiry reads the exp claim without verifying the signature.
// The platform signed the token; this side only needs to know when to
// refresh it. An unparsable token gets a short fuse so the next call
// refreshes immediately.
func accessExpiry(accessToken string) time.Time {
	var claims models.Claims
	parser := new(jwt.Parser)
	if _, _, err := parser.ParseUnverified(accessToken, &claims); err != nil || claims.ExpiresAt == 0 {
		return time.Now().Add(time.Minute)
	}
	return time.Unix(claims.ExpiresAt, 0)
}

// IsNotFound reports whether err means the session is gone, expired or
// never existed.
func IsNotFound(err error) bool {
	return errors.Is(err, models.ErrSessionNotFound)
}
