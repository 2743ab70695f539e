// Package secondary defines the secondary ports (driven adapters) for the
// application: local storage and the remote backend.
package secondary

import "context"

// Queue categories. Each category is persisted as one blob; the two
// categories are independent and may be drained concurrently.
const (
	CategoryVisits   = "visits"
	CategoryMonitors = "monitors"
)

// Cache keys for non-queue local state.
const (
	KeyUser      = "user"      // last authenticated profile, for offline restore
	KeySession   = "session"   // in-progress recording draft
	KeyLastVisit = "lastVisit" // most recent visit, links the next monitor
	KeySchools   = "schools"   // cached school directory
)

// QueueStore is the durable, append-only pending-record store. The
// persisted blob per category is the single source of truth for
// not-yet-synced records. Every write is atomic: a failed operation must
// leave the previous value intact.
type QueueStore interface {
	// Enqueue appends one serialized record to the category's list.
	Enqueue(ctx context.Context, category string, record []byte) error

	// List returns all pending records in insertion order.
	List(ctx context.Context, category string) ([][]byte, error)

	// Replace writes back a filtered list as the new persisted value.
	// An empty list removes the key.
	Replace(ctx context.Context, category string, records [][]byte) error

	// Clear removes all records in the category.
	Clear(ctx context.Context, category string) error
}

// CacheStore is plain key-value storage for the non-queue keys above.
// Get returns (nil, nil) when the key is absent.
type CacheStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Reachability is the point-in-time connectivity check consulted before
// every remote operation. No retries, no subscription: callers decide what
// a false means (cached data, local queuing).
type Reachability interface {
	IsConnected(ctx context.Context) bool
}
