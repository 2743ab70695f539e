package primary

import (
	"context"

	"github.com/example/monitoreo/internal/models"
)

// MonitorService manages the observation registry: the merged view of
// synced and pending monitors, plus admin edits and deletion.
type MonitorService interface {
	// List merges remote monitors (when connected) with pending local
	// ones, optionally filtered by a teacher/school substring.
	List(ctx context.Context, query string) (*MonitorList, error)

	// DeleteLocal removes a pending monitor by its client id (admin only).
	DeleteLocal(ctx context.Context, clientID string) error

	// DeleteRemote removes a synced monitor by its server id (admin only).
	DeleteRemote(ctx context.Context, id string) error

	// UpdateRemote replays an edited monitor against the backend
	// (admin only).
	UpdateRemote(ctx context.Context, id string, m *models.Monitor) error
}

// MonitorList is the combined registry view.
type MonitorList struct {
	Remote    []models.Monitor
	Pending   []models.Monitor
	Connected bool
}
