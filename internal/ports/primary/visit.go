package primary

import (
	"context"

	"github.com/example/monitoreo/internal/models"
)

// VisitService records school visits and manages the visit registry.
// A visit is always queued locally first, then flushed immediately when
// the device is online (unified offline-first policy).
type VisitService interface {
	// Record creates a visit for the given school (resolved against the
	// cached directory) and stores it as the last visit for monitor
	// linkage.
	Record(ctx context.Context, schoolCode string) (*RecordVisitResponse, error)

	// List merges remote visits (when connected) with pending local ones.
	List(ctx context.Context) (*VisitList, error)

	// DeleteLocal removes a pending visit by its client id (admin only).
	DeleteLocal(ctx context.Context, clientID string) error

	// DeleteRemote removes a synced visit by its server id (admin only).
	DeleteRemote(ctx context.Context, id string) error
}

// RecordVisitResponse reports the outcome of a visit save.
type RecordVisitResponse struct {
	Visit   *models.Visit
	Flushed bool // true when the record was uploaded immediately
}

// VisitList is the combined registry view.
type VisitList struct {
	Remote    []models.Visit
	Pending   []models.Visit
	Connected bool
}
