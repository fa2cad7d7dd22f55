package store

import (
	"context"
	"fmt"

	"github.com/traino-dev/traino/internal/progress"
)

// ProgressStore persists the coaching progress record under KeyProgress.
type ProgressStore struct {
	kv KV
}

// NewProgressStore returns a ProgressStore over the given KV.
func NewProgressStore(kv KV) *ProgressStore {
	return &ProgressStore{kv: kv}
}

// Load reads the stored progress record. An absent key yields a zero
// record; a malformed one decodes tolerantly field by field.
func (ps *ProgressStore) Load(ctx context.Context) (progress.Progress, error) {
	raw, found, err := ps.kv.Get(ctx, KeyProgress)
	if err != nil {
		return progress.Progress{}, fmt.Errorf("load progress: %w", err)
	}
	if !found {
		return progress.Progress{}, nil
	}
	return progress.Decode(raw), nil
}

// Save writes the progress record back to storage.
func (ps *ProgressStore) Save(ctx context.Context, p progress.Progress) error {
	raw, err := progress.Encode(p)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	if err := ps.kv.Set(ctx, KeyProgress, raw); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// Reset deletes the stored progress record.
func (ps *ProgressStore) Reset(ctx context.Context) error {
	if err := ps.kv.Delete(ctx, KeyProgress); err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}
	return nil
}
