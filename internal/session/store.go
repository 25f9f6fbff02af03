package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/communica-av/quoter-backend/internal/builder"
	pkgerrors "github.com/communica-av/quoter-backend/pkg/errors"
	"github.com/communica-av/quoter-backend/pkg/redis"
)

// Store persists builder session state between requests.
type Store interface {
	Save(ctx context.Context, sessionID string, state *builder.State) error
	Load(ctx context.Context, sessionID string) (*builder.State, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisStore keeps each session as a JSON document under a namespaced key.
// Every save refreshes the TTL, so active sessions stay alive and abandoned
// ones expire on their own.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore builds a session store on the shared redis client.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, state *builder.State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode session state")
	}
	if err := s.client.Set(ctx, s.client.SessionKey(sessionID), payload, s.ttl); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save session state")
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) (*builder.State, error) {
	raw, err := s.client.Get(ctx, s.client.SessionKey(sessionID))
	if err != nil {
		if redis.IsNil(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "session not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load session state")
	}
	var state builder.State
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode session state")
	}

	// Reads slide the TTL so an active session does not expire mid-flow.
	if s.ttl > 0 {
		_ = s.client.Expire(ctx, s.client.SessionKey(sessionID), s.ttl)
	}
	return &state, nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.client.SessionKey(sessionID)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete session state")
	}
	return nil
}
