package publish

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix  = "curriculum:"
	currentKey = keyPrefix + "current"
)

// SnapshotKey is the Redis key holding the JSON payload for fingerprint.
func SnapshotKey(fingerprint string) string {
	return keyPrefix + "snapshot:" + fingerprint
}

// RedisPublisher stores the JSON payload under its fingerprint and points
// curriculum:current at it. Both keys share the same TTL so the pointer never
// outlives its snapshot.
type RedisPublisher struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisPublisher returns a publisher; ttl 0 keeps snapshots forever.
func NewRedisPublisher(client *redis.Client, ttl time.Duration) *RedisPublisher {
	return &RedisPublisher{client: client, ttl: ttl}
}

func (p *RedisPublisher) Publish(ctx context.Context, snap Snapshot) error {
	_, err := p.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, SnapshotKey(snap.Fingerprint), snap.Payload, p.ttl)
		pipe.Set(ctx, currentKey, snap.Fingerprint, p.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("publish snapshot to redis: %w", err)
	}

	slog.Info("curriculum snapshot published",
		"store", "redis",
		"fingerprint", snap.Fingerprint,
		"bytes", len(snap.Payload),
	)
	return nil
}

// Current returns the fingerprint and payload of the latest snapshot. found is
// false when nothing has been published yet or the snapshot has expired.
func (p *RedisPublisher) Current(ctx context.Context) (fingerprint string, payload []byte, found bool, err error) {
	fingerprint, err = p.client.Get(ctx, currentKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil, false, nil
	}
	if err != nil {
		return "", nil, false, fmt.Errorf("read current snapshot: %w", err)
	}
	payload, err = p.client.Get(ctx, SnapshotKey(fingerprint)).Bytes()
	if errors.Is(err, redis.Nil) {
		return fingerprint, nil, false, nil
	}
	if err != nil {
		return "", nil, false, fmt.Errorf("read snapshot %s: %w", fingerprint, err)
	}
	return fingerprint, payload, true, nil
}
