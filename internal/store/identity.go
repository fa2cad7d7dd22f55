package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Identity manages the opaque session identifier sent with every coach
// request. The id is generated once, persisted under KeySessionID, and
// regenerated only if it ever goes missing from storage.
type Identity struct {
	kv KV
}

// NewIdentity returns an Identity over the given KV.
func NewIdentity(kv KV) *Identity {
	return &Identity{kv: kv}
}

// SessionID returns the stored session identifier, generating and
// persisting a fresh one when absent.
func (i *Identity) SessionID(ctx context.Context) (string, error) {
	id, found, err := i.kv.Get(ctx, KeySessionID)
	if err != nil {
		return "", fmt.Errorf("load session id: %w", err)
	}
	if found && id != "" {
		return id, nil
	}

	id = uuid.New().String()
	if err := i.kv.Set(ctx, KeySessionID, id); err != nil {
		return "", fmt.Errorf("persist session id: %w", err)
	}
	return id, nil
}

// Reset deletes the stored session identifier so the next SessionID
// call mints a new one.
func (i *Identity) Reset(ctx context.Context) error {
	if err := i.kv.Delete(ctx, KeySessionID); err != nil {
		return fmt.Errorf("reset session id: %w", err)
	}
	return nil
}
