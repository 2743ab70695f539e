package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/example/monitoreo/internal/models"
	"github.com/example/monitoreo/internal/ports/primary"
	"github.com/example/monitoreo/internal/ports/secondary"
)

// VisitServiceImpl implements the VisitService interface. Visits always
// land in the local queue first; when the device is online the fresh
// record is flushed immediately, unifying the offline and online paths.
type VisitServiceImpl struct {
	queue   secondary.QueueStore
	cache   secondary.CacheStore
	gateway secondary.RecordGateway
	network secondary.Reachability
	now     func() time.Time
}

// NewVisitService creates a new VisitService with injected dependencies.
func NewVisitService(
	queue secondary.QueueStore,
	cache secondary.CacheStore,
	gateway secondary.RecordGateway,
	network secondary.Reachability,
) *VisitServiceImpl {
	return &VisitServiceImpl{
		queue:   queue,
		cache:   cache,
		gateway: gateway,
		network: network,
		now:     time.Now,
	}
}

// Record creates a visit for the school, stores it as the last visit for
// monitor linkage, and opportunistically flushes it when online.
func (s *VisitServiceImpl) Record(ctx context.Context, schoolCode string) (*primary.RecordVisitResponse, error) {
	user, err := loadUser(ctx, s.cache)
	if err != nil {
		return nil, err
	}

	school, err := findSchoolInCache(ctx, s.cache, schoolCode)
	if err != nil {
		return nil, err
	}

	visit := &models.Visit{
		ClientID:  uuid.NewString(),
		User:      *user,
		School:    *school,
		CreatedAt: s.now(),
	}
	raw, err := json.Marshal(visit)
	if err != nil {
		return nil, fmt.Errorf("failed to encode visit: %w", err)
	}

	if err := s.queue.Enqueue(ctx, secondary.CategoryVisits, raw); err != nil {
		return nil, fmt.Errorf("failed to save visit locally: %w", err)
	}
	if err := s.cache.Set(ctx, secondary.KeyLastVisit, raw); err != nil {
		return nil, fmt.Errorf("failed to store last visit: %w", err)
	}

	resp := &primary.RecordVisitResponse{Visit: visit}
	if s.network.IsConnected(ctx) {
		if err := s.gateway.CreateVisit(ctx, visit); err == nil {
			if err := s.dropLocal(ctx, visit.ClientID); err == nil {
				resp.Flushed = true
			}
			// Observation sessions link by the server id once the
			// backend has assigned one.
			if visit.ID != "" {
				if synced, err := json.Marshal(visit); err == nil {
					_ = s.cache.Set(ctx, secondary.KeyLastVisit, synced)
				}
			}
		}
	}
	return resp, nil
}

// List merges remote visits (when connected) with pending local ones.
func (s *VisitServiceImpl) List(ctx context.Context) (*primary.VisitList, error) {
	user, err := loadUser(ctx, s.cache)
	if err != nil {
		return nil, err
	}

	list := &primary.VisitList{Connected: s.network.IsConnected(ctx)}
	if list.Connected {
		remote, err := s.gateway.ListVisits(ctx, user.DNI)
		if err != nil {
			return nil, err
		}
		list.Remote = remote
	}

	pending, err := s.pendingVisits(ctx)
	if err != nil {
		return nil, err
	}
	list.Pending = pending
	return list, nil
}

// DeleteLocal removes a pending visit by its client id (admin only).
func (s *VisitServiceImpl) DeleteLocal(ctx context.Context, clientID string) error {
	if _, err := requireAdmin(ctx, s.cache); err != nil {
		return err
	}
	if err := s.dropLocal(ctx, clientID); err != nil {
		return err
	}
	return nil
}

// DeleteRemote removes a synced visit by its server id (admin only).
func (s *VisitServiceImpl) DeleteRemote(ctx context.Context, id string) error {
	if _, err := requireAdmin(ctx, s.cache); err != nil {
		return err
	}
	if !s.network.IsConnected(ctx) {
		return secondary.ErrNotConnected
	}
	return s.gateway.DeleteVisit(ctx, id)
}

// dropLocal filters the visit with the given client id out of the queue
// and writes the remaining list back in one step.
func (s *VisitServiceImpl) dropLocal(ctx context.Context, clientID string) error {
	records, err := s.queue.List(ctx, secondary.CategoryVisits)
	if err != nil {
		return err
	}

	remaining := make([][]byte, 0, len(records))
	found := false
	for _, rec := range records {
		var v models.Visit
		if err := json.Unmarshal(rec, &v); err == nil && v.ClientID == clientID {
			found = true
			continue
		}
		remaining = append(remaining, rec)
	}
	if !found {
		return fmt.Errorf("visita pendiente %s no encontrada", clientID)
	}
	return s.queue.Replace(ctx, secondary.CategoryVisits, remaining)
}

func (s *VisitServiceImpl) pendingVisits(ctx context.Context) ([]models.Visit, error) {
	records, err := s.queue.List(ctx, secondary.CategoryVisits)
	if err != nil {
		return nil, err
	}
	visits := make([]models.Visit, 0, len(records))
	for _, rec := range records {
		var v models.Visit
		if err := json.Unmarshal(rec, &v); err != nil {
			return nil, fmt.Errorf("pending visit is corrupt: %w", err)
		}
		visits = append(visits, v)
	}
	return visits, nil
}

var _ primary.VisitService = (*VisitServiceImpl)(nil)
