package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"talentscout/internal/domain"
	"talentscout/internal/ports/output"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	keyPrefix        = "talentscout:session:"
	defaultOpTimeout = 2 * time.Second
)

// Compile-time check to ensure RedisSessionStore implements SessionStore interface
var _ output.SessionStore = (*RedisSessionStore)(nil)

// RedisSessionStore struct - Output adapter keeping sessions in Redis so that
// several service instances can serve the same candidate.
// Each session is one JSON value whose TTL is the idle timeout.
type RedisSessionStore struct {
	client    *goredis.Client
	timeout   time.Duration
	opTimeout time.Duration
}

// NewRedisSessionStore wraps an existing client
func NewRedisSessionStore(client *goredis.Client, timeout time.Duration) *RedisSessionStore {
	return &RedisSessionStore{
		client:    client,
		timeout:   timeout,
		opTimeout: defaultOpTimeout,
	}
}

// Connect opens a client and pings it once
func Connect(addr, password string, db int) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), defaultOpTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to reach redis at %s: %w", addr, err)
	}
	logrus.Infof("Connected to redis at %s", addr)
	return client, nil
}

func sessionKey(sessionID string) string {
	return keyPrefix + sessionID
}

// GetSession loads a session and slides its TTL.
// Returns nil when the key is absent; Redis drops expired keys on its own.
func (r *RedisSessionStore) GetSession(sessionID string) (*domain.InterviewSession, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.opTimeout)
	defer cancel()

	raw, err := r.client.GetEx(ctx, sessionKey(sessionID), r.timeout).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}

	var session domain.InterviewSession
	if err := json.Unmarshal(raw, &session); err != nil {
		logrus.Warnf("Dropping malformed session %s: %v", sessionID, err)
		_ = r.client.Del(ctx, sessionKey(sessionID)).Err()
		return nil, nil
	}

	session.LastAccessTime = time.Now()
	return &session, nil
}

// UpdateSession writes the session with a fresh TTL
func (r *RedisSessionStore) UpdateSession(session *domain.InterviewSession) error {
	session.LastAccessTime = time.Now()

	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", session.ID, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.opTimeout)
	defer cancel()
	if err := r.client.Set(ctx, sessionKey(session.ID), raw, r.timeout).Err(); err != nil {
		return fmt.Errorf("failed to store session %s: %w", session.ID, err)
	}
	return nil
}

// DeleteSession removes the key; a missing key is not an error
func (r *RedisSessionStore) DeleteSession(sessionID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.opTimeout)
	defer cancel()
	if err := r.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session %s: %w", sessionID, err)
	}
	return nil
}
