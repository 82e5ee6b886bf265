// Package session holds server-side login sessions. The browser only
// carries an opaque id in a cookie; everything else lives in the store
// and dies with it.
package session

import (
	"context"
	"time"
)

// Record is what a session id resolves to.
type Record struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Store is a process-external (or at least process-owned) KV keyed by
// session id. Entries expire a fixed TTL after creation; there is no
// sliding renewal.
type Store interface {
	// Create stores rec under a fresh random id and returns the id.
	Create(ctx context.Context, rec Record) (string, error)
	// Get returns the record for id, or nil if the session does not
	// exist or has expired. A non-nil error means the store itself failed.
	Get(ctx context.Context, id string) (*Record, error)
	// Delete removes the session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error
}

// DefaultTTL matches the 24h login cookie.
const DefaultTTL = 24 * time.Hour
