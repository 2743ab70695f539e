package primary

import (
	"context"

	"github.com/example/monitoreo/internal/models"
)

// QuantityService derives the dashboard counters: pending counts from the
// local queues plus remote-confirmed counts from the backend. Always a
// full recompute, no caching beyond the returned value.
type QuantityService interface {
	Refresh(ctx context.Context) (*Counts, error)
}

// Counts is the dashboard view. Remote counts are zero while offline.
type Counts struct {
	Remote          models.Quantity
	PendingVisits   int
	PendingMonitors int
	Connected       bool
}
