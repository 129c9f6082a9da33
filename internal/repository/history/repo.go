// Package history persists recommendation records per caller identity.
// The write path is best-effort only; ranking never reads records back.
package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/promptrec/internal/db"
	"github.com/kailas-cloud/promptrec/internal/domain"
)

// Repo stores recommendation records in per-user Redis lists.
type Repo struct {
	store     db.ListStore
	keyPrefix string
	ttl       time.Duration // 0 = keep forever
}

// New creates a history repository.
func New(store db.ListStore, keyPrefix string) *Repo {
	return &Repo{store: store, keyPrefix: keyPrefix}
}

// WithTTL sets an expiry on each user's history list.
func (r *Repo) WithTTL(ttl time.Duration) *Repo {
	r.ttl = ttl
	return r
}

func (r *Repo) key(user string) string {
	return r.keyPrefix + "history:" + user
}

// SaveMany appends records to the owner's history list and returns the
// number of records written. All records in one call belong to the same user.
func (r *Repo) SaveMany(ctx context.Context, records []domain.Record) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	user := records[0].User
	payloads := make([]string, len(records))
	for i, rec := range records {
		data, err := marshalRecord(rec)
		if err != nil {
			return 0, fmt.Errorf("marshal record [%d]: %w", i, err)
		}
		payloads[i] = data
	}

	key := r.key(user)
	if _, err := r.store.RPush(ctx, key, payloads); err != nil {
		return 0, fmt.Errorf("push history: %w", err)
	}

	if r.ttl > 0 {
		// Refresh expiry on every write so active users keep their history.
		if err := r.store.Expire(ctx, key, r.ttl, false); err != nil {
			return len(records), fmt.Errorf("expire history: %w", err)
		}
	}

	return len(records), nil
}

// ListByUser returns up to limit of the user's records, newest first.
func (r *Repo) ListByUser(ctx context.Context, user string, limit int) ([]domain.Record, error) {
	if limit <= 0 {
		return nil, nil
	}

	// The list is append-only, so the tail holds the newest records.
	items, err := r.store.LRange(ctx, r.key(user), -limit, -1)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("range history: %w", err)
	}

	records := make([]domain.Record, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		rec, err := unmarshalRecord(items[i])
		if err != nil {
			return nil, fmt.Errorf("unmarshal record: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}
