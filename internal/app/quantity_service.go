package app

import (
	"context"

	"github.com/example/monitoreo/internal/ports/primary"
	"github.com/example/monitoreo/internal/ports/secondary"
)

// QuantityServiceImpl implements the QuantityService interface. Counts
// are always recomputed in full: queue lengths locally, confirmed totals
// from the backend when connected. Remote totals read zero offline.
type QuantityServiceImpl struct {
	queue   secondary.QueueStore
	cache   secondary.CacheStore
	gateway secondary.RecordGateway
	network secondary.Reachability
}

// NewQuantityService creates a new QuantityService with injected dependencies.
func NewQuantityService(
	queue secondary.QueueStore,
	cache secondary.CacheStore,
	gateway secondary.RecordGateway,
	network secondary.Reachability,
) *QuantityServiceImpl {
	return &QuantityServiceImpl{queue: queue, cache: cache, gateway: gateway, network: network}
}

// Refresh recomputes the dashboard counters.
func (s *QuantityServiceImpl) Refresh(ctx context.Context) (*primary.Counts, error) {
	visits, err := s.queue.List(ctx, secondary.CategoryVisits)
	if err != nil {
		return nil, err
	}
	monitors, err := s.queue.List(ctx, secondary.CategoryMonitors)
	if err != nil {
		return nil, err
	}

	counts := &primary.Counts{
		PendingVisits:   len(visits),
		PendingMonitors: len(monitors),
	}

	if !s.network.IsConnected(ctx) {
		return counts, nil
	}
	counts.Connected = true

	user, err := loadUser(ctx, s.cache)
	if err != nil {
		return nil, err
	}
	remote, err := s.gateway.Quantity(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	counts.Remote = *remote
	return counts, nil
}

var _ primary.QuantityService = (*QuantityServiceImpl)(nil)
