package vitals

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"doctigo/models"
)

// keyPrefix namespaces published snapshots in the vitals cache DB.
const keyPrefix = "vitals:"

// Provider supplies the latest vitals snapshot published for a session. A nil
// snapshot with a nil error means nothing was published; callers treat any
// failure as "no vitals" rather than blocking the conversation.
type Provider interface {
	GetSnapshot(ctx context.Context, sessionID string) (*models.VitalsSnapshot, error)
}

// RedisProvider stores snapshots as JSON blobs with a TTL, keyed by session.
// The vitals hub publishes through it; the conversation engine reads from it.
type RedisProvider struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisProvider returns a Redis-backed vitals provider.
func NewRedisProvider(client *redis.Client, ttl time.Duration) *RedisProvider {
	return &RedisProvider{client: client, ttl: ttl}
}

// Publish stores snap as the latest vitals for the session, replacing any
// earlier snapshot.
func (p *RedisProvider) Publish(ctx context.Context, sessionID string, snap models.VitalsSnapshot) error {
	if snap.Timestamp.IsZero() {
		snap.Timestamp = time.Now()
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal vitals snapshot: %w", err)
	}
	if err := p.client.Set(ctx, keyPrefix+sessionID, data, p.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store vitals snapshot: %w", err)
	}
	return nil
}

// GetSnapshot returns the latest published snapshot, or (nil, nil) when none
// exists.
func (p *RedisProvider) GetSnapshot(ctx context.Context, sessionID string) (*models.VitalsSnapshot, error) {
	data, err := p.client.Get(ctx, keyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch vitals snapshot: %w", err)
	}
	var snap models.VitalsSnapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, fmt.Errorf("failed to parse vitals snapshot: %w", err)
	}
	return &snap, nil
}
