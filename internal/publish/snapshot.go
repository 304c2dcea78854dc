// Package publish hands a read-only copy of the curriculum to stores that
// downstream readers query: PostgreSQL tables and a Redis JSON snapshot. Each
// snapshot is keyed by a content fingerprint, so publishing is idempotent.
package publish

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/p-n-ai/pai-curriculum/internal/curriculum"
)

// Snapshot is the serialized tree plus its fingerprint.
type Snapshot struct {
	Fingerprint string
	Payload     []byte // JSON array of epochs
	Epochs      []curriculum.Epoch
}

// Publisher stores a snapshot somewhere readers can find it.
type Publisher interface {
	Publish(ctx context.Context, snap Snapshot) error
}

// NewSnapshot serializes epochs and fingerprints the result. Identical content
// always yields the same fingerprint.
func NewSnapshot(epochs []curriculum.Epoch) (Snapshot, error) {
	payload, err := json.Marshal(epochs)
	if err != nil {
		return Snapshot{}, fmt.Errorf("marshal snapshot: %w", err)
	}
	return Snapshot{
		Fingerprint: Fingerprint(payload),
		Payload:     payload,
		Epochs:      epochs,
	}, nil
}

// Fingerprint returns the hex BLAKE2b-256 digest of payload.
func Fingerprint(payload []byte) string {
	sum := blake2b.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

// All publishes snap to each publisher in order and stops at the first error.
func All(ctx context.Context, snap Snapshot, pubs ...Publisher) error {
	for _, p := range pubs {
		if err := p.Publish(ctx, snap); err != nil {
			return err
		}
	}
	return nil
}
