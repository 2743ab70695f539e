package primary

import "context"

// SyncService drains the pending queues against the backend on explicit
// user request. One drain per category at a time; two categories may be
// drained concurrently.
type SyncService interface {
	// Push drains one category. Records are uploaded independently; a
	// failed record stays queued for the next attempt and never blocks
	// the rest of the batch.
	Push(ctx context.Context, category string) (*PushResult, error)

	// PushAll drains monitors then visits (the profile-screen flow).
	PushAll(ctx context.Context) ([]*PushResult, error)
}

// PushResult summarizes one category's drain.
type PushResult struct {
	Category string
	Total    int
	Uploaded int
	Failed   int
}
