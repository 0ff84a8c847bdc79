package conversation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var (
	// ErrSnapshotNotFound means the session has no persisted state.
	ErrSnapshotNotFound = errors.New("conversation: snapshot not found")
	// ErrSnapshotCorrupt means the persisted state cannot be decoded;
	// policy is to reset the session rather than fail the turn.
	ErrSnapshotCorrupt = errors.New("conversation: snapshot corrupt")
)

// SnapshotStore persists session state across process restarts.
type SnapshotStore interface {
	Save(ctx context.Context, sess *Session) error
	Load(ctx context.Context, sessionID string) (*Session, error)
}

// RedisSnapshotStore keeps session snapshots in Redis with a TTL
// matching the in-memory store's eviction.
type RedisSnapshotStore struct {
	redis  *redis.Client
	ttl    time.Duration
	tracer trace.Tracer
}

// NewRedisSnapshotStore creates a snapshot store. tracer may be nil.
func NewRedisSnapshotStore(client *redis.Client, ttl time.Duration, tracer trace.Tracer) *RedisSnapshotStore {
	if client == nil {
		panic("conversation: redis client cannot be nil")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if tracer == nil {
		tracer = otel.Tracer("honeypot.internal.conversation.snapshot")
	}
	return &RedisSnapshotStore{redis: client, ttl: ttl, tracer: tracer}
}

func (s *RedisSnapshotStore) Save(ctx context.Context, sess *Session) error {
	ctx, span := s.tracer.Start(ctx, "conversation.save_snapshot")
	defer span.End()

	data, err := json.Marshal(sess)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("conversation: failed to marshal snapshot: %w", err)
	}
	if err := s.redis.Set(ctx, snapshotKey(sess.ID), data, s.ttl).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("conversation: failed to persist snapshot: %w", err)
	}
	return nil
}

func (s *RedisSnapshotStore) Load(ctx context.Context, sessionID string) (*Session, error) {
	ctx, span := s.tracer.Start(ctx, "conversation.load_snapshot")
	defer span.End()

	data, err := s.redis.Get(ctx, snapshotKey(sessionID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSnapshotNotFound
		}
		span.RecordError(err)
		return nil, fmt.Errorf("conversation: failed to load snapshot: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("conversation: decode snapshot %s: %w", sessionID, ErrSnapshotCorrupt)
	}
	if sess.ID == "" {
		return nil, fmt.Errorf("conversation: snapshot %s missing id: %w", sessionID, ErrSnapshotCorrupt)
	}
	sess.normalize()
	return &sess, nil
}

func snapshotKey(id string) string {
	return fmt.Sprintf("honeypot:session:%s", id)
}
