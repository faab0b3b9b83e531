package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/common"
	"golang-stock-sentiment/pkg/logger"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// ErrSessionNotFound is returned when no live session has the requested id.
var ErrSessionNotFound = errors.New("session not found")

// memorySessionRepository keeps sessions in process memory. Values are stored
// encoded so callers never share a session between requests.
type memorySessionRepository struct {
	store *cache.Cache
	ttl   time.Duration
}

// NewMemorySessionRepository creates an in-process session store.
func NewMemorySessionRepository(ttl time.Duration) SessionRepository {
	return &memorySessionRepository{
		store: cache.New(ttl, ttl*2),
		ttl:   ttl,
	}
}

func (r *memorySessionRepository) Get(_ context.Context, id string) (*entity.Session, error) {
	raw, ok := r.store.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return decodeSession(raw.([]byte))
}

func (r *memorySessionRepository) Save(_ context.Context, session *entity.Session) error {
	data, err := encodeSession(session)
	if err != nil {
		return err
	}
	r.store.Set(session.ID, data, r.ttl)
	return nil
}

func (r *memorySessionRepository) Delete(_ context.Context, id string) error {
	r.store.Delete(id)
	return nil
}

type redisSessionRepository struct {
	client *redis.Client
	log    *logger.Logger
	ttl    time.Duration
}

// NewRedisSessionRepository creates a session store backed by Redis.
func NewRedisSessionRepository(client *redis.Client, log *logger.Logger, ttl time.Duration) SessionRepository {
	return &redisSessionRepository{
		client: client,
		log:    log,
		ttl:    ttl,
	}
}

func (r *redisSessionRepository) key(id string) string {
	return common.RedisSessionKeyPrefix + id
}

func (r *redisSessionRepository) Get(ctx context.Context, id string) (*entity.Session, error) {
	data, err := r.client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		r.log.ErrorContext(ctx, "Failed to get session from redis", logger.ErrorField(err), logger.StringField("session_id", id))
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return decodeSession(data)
}

func (r *redisSessionRepository) Save(ctx context.Context, session *entity.Session) error {
	data, err := encodeSession(session)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key(session.ID), data, r.ttl).Err(); err != nil {
		r.log.ErrorContext(ctx, "Failed to save session to redis", logger.ErrorField(err), logger.StringField("session_id", session.ID))
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *redisSessionRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func encodeSession(session *entity.Session) ([]byte, error) {
	if session == nil || session.ID == "" {
		return nil, errors.New("session id is required")
	}
	session.UpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}
	return data, nil
}

func decodeSession(data []byte) (*entity.Session, error) {
	var session entity.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}
