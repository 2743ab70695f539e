package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/example/monitoreo/internal/models"
	"github.com/example/monitoreo/internal/ports/primary"
	"github.com/example/monitoreo/internal/ports/secondary"
)

// MonitorServiceImpl implements the MonitorService interface: the merged
// registry of synced and pending observations.
type MonitorServiceImpl struct {
	queue   secondary.QueueStore
	cache   secondary.CacheStore
	gateway secondary.RecordGateway
	network secondary.Reachability
}

// NewMonitorService creates a new MonitorService with injected dependencies.
func NewMonitorService(
	queue secondary.QueueStore,
	cache secondary.CacheStore,
	gateway secondary.RecordGateway,
	network secondary.Reachability,
) *MonitorServiceImpl {
	return &MonitorServiceImpl{queue: queue, cache: cache, gateway: gateway, network: network}
}

// List merges remote monitors (when connected) with pending local ones,
// optionally filtered by a teacher/school substring.
func (s *MonitorServiceImpl) List(ctx context.Context, query string) (*primary.MonitorList, error) {
	user, err := loadUser(ctx, s.cache)
	if err != nil {
		return nil, err
	}

	list := &primary.MonitorList{Connected: s.network.IsConnected(ctx)}
	if list.Connected {
		remote, err := s.gateway.ListMonitors(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		list.Remote = remote
	}

	pending, err := s.pendingMonitors(ctx)
	if err != nil {
		return nil, err
	}
	list.Pending = pending

	if query != "" {
		list.Remote = filterMonitors(list.Remote, query)
		list.Pending = filterMonitors(list.Pending, query)
	}
	return list, nil
}

// DeleteLocal removes a pending monitor by its client id (admin only).
func (s *MonitorServiceImpl) DeleteLocal(ctx context.Context, clientID string) error {
	if _, err := requireAdmin(ctx, s.cache); err != nil {
		return err
	}

	records, err := s.queue.List(ctx, secondary.CategoryMonitors)
	if err != nil {
		return err
	}

	remaining := make([][]byte, 0, len(records))
	found := false
	for _, rec := range records {
		var m models.Monitor
		if err := json.Unmarshal(rec, &m); err == nil && m.ClientID == clientID {
			found = true
			continue
		}
		remaining = append(remaining, rec)
	}
	if !found {
		return fmt.Errorf("monitoreo pendiente %s no encontrado", clientID)
	}
	return s.queue.Replace(ctx, secondary.CategoryMonitors, remaining)
}

// DeleteRemote removes a synced monitor by its server id (admin only).
func (s *MonitorServiceImpl) DeleteRemote(ctx context.Context, id string) error {
	if _, err := requireAdmin(ctx, s.cache); err != nil {
		return err
	}
	if !s.network.IsConnected(ctx) {
		return secondary.ErrNotConnected
	}
	return s.gateway.DeleteMonitor(ctx, id)
}

// UpdateRemote replays an edited monitor against the backend (admin only).
func (s *MonitorServiceImpl) UpdateRemote(ctx context.Context, id string, m *models.Monitor) error {
	if _, err := requireAdmin(ctx, s.cache); err != nil {
		return err
	}
	if !s.network.IsConnected(ctx) {
		return secondary.ErrNotConnected
	}
	return s.gateway.UpdateMonitor(ctx, id, m)
}

func (s *MonitorServiceImpl) pendingMonitors(ctx context.Context) ([]models.Monitor, error) {
	records, err := s.queue.List(ctx, secondary.CategoryMonitors)
	if err != nil {
		return nil, err
	}
	monitors := make([]models.Monitor, 0, len(records))
	for _, rec := range records {
		var m models.Monitor
		if err := json.Unmarshal(rec, &m); err != nil {
			return nil, fmt.Errorf("pending monitor is corrupt: %w", err)
		}
		monitors = append(monitors, m)
	}
	return monitors, nil
}

func filterMonitors(monitors []models.Monitor, query string) []models.Monitor {
	word := strings.ToLower(query)
	filtered := make([]models.Monitor, 0, len(monitors))
	for _, m := range monitors {
		if strings.Contains(strings.ToLower(m.SubjectName()), word) ||
			strings.Contains(strings.ToLower(m.School.Name), word) {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

var _ primary.MonitorService = (*MonitorServiceImpl)(nil)
