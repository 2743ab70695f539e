package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/example/monitoreo/internal/core/reconcile"
	"github.com/example/monitoreo/internal/models"
	"github.com/example/monitoreo/internal/ports/primary"
	"github.com/example/monitoreo/internal/ports/secondary"
)

// SyncServiceImpl implements the SyncService interface: the user-triggered
// drain of the pending queues against the backend.
//
// Each record in a batch is uploaded independently and concurrently; the
// queue is rewritten exactly once, after every outcome is known, so the
// persisted blob never reflects a half-finished batch. A per-category
// mutex rejects overlapping drains of the same category while leaving the
// two categories free to drain in parallel.
type SyncServiceImpl struct {
	queue    secondary.QueueStore
	gateway  secondary.RecordGateway
	network  secondary.Reachability
	quantity primary.QuantityService
	errw     io.Writer

	mu sync.Map // category -> *sync.Mutex
}

// NewSyncService creates a new SyncService with injected dependencies.
func NewSyncService(
	queue secondary.QueueStore,
	gateway secondary.RecordGateway,
	network secondary.Reachability,
	quantity primary.QuantityService,
) *SyncServiceImpl {
	return &SyncServiceImpl{
		queue:    queue,
		gateway:  gateway,
		network:  network,
		quantity: quantity,
		errw:     os.Stderr,
	}
}

// Push drains one category. A failed record stays queued for the next
// attempt; one bad record never blocks the rest of the batch.
func (s *SyncServiceImpl) Push(ctx context.Context, category string) (*primary.PushResult, error) {
	if category != secondary.CategoryVisits && category != secondary.CategoryMonitors {
		return nil, fmt.Errorf("categoría desconocida: %s", category)
	}

	lock := s.categoryLock(category)
	if !lock.TryLock() {
		return nil, fmt.Errorf("ya hay una sincronización de %s en curso", category)
	}
	defer lock.Unlock()

	records, err := s.queue.List(ctx, category)
	if err != nil {
		return nil, err
	}
	result := &primary.PushResult{Category: category, Total: len(records)}
	if len(records) == 0 {
		return result, nil
	}

	if !s.network.IsConnected(ctx) {
		return nil, secondary.ErrNotConnected
	}

	// Fire every upload, then join before touching the queue. The errs
	// slice is indexed per record so reconcile.Apply can keep exactly
	// the failed ones.
	errs := make([]error, len(records))
	var wg sync.WaitGroup
	for i, rec := range records {
		wg.Add(1)
		go func(i int, rec []byte) {
			defer wg.Done()
			errs[i] = s.upload(ctx, category, rec)
		}(i, rec)
	}
	wg.Wait()

	outcome := reconcile.Apply(records, errs)
	result.Uploaded = outcome.Uploaded
	result.Failed = outcome.Failed
	for i, err := range errs {
		if err != nil {
			fmt.Fprintf(s.errw, "registro %d de %s no subido: %v\n", i+1, category, err)
		}
	}

	if err := s.queue.Replace(ctx, category, outcome.Remaining); err != nil {
		// The in-memory view no longer matches storage; the next drain
		// re-reads the queue, so nothing already uploaded can resurrect.
		return nil, fmt.Errorf("failed to write back queue %s: %w", category, err)
	}

	if s.quantity != nil {
		if _, err := s.quantity.Refresh(ctx); err != nil {
			fmt.Fprintf(s.errw, "no se pudo actualizar las cantidades: %v\n", err)
		}
	}
	return result, nil
}

// PushAll drains monitors then visits.
func (s *SyncServiceImpl) PushAll(ctx context.Context) ([]*primary.PushResult, error) {
	var results []*primary.PushResult
	for _, category := range []string{secondary.CategoryMonitors, secondary.CategoryVisits} {
		res, err := s.Push(ctx, category)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// upload replays one queued record against its create endpoint. A record
// that no longer decodes counts as failed and stays queued for inspection.
func (s *SyncServiceImpl) upload(ctx context.Context, category string, rec []byte) error {
	switch category {
	case secondary.CategoryVisits:
		var v models.Visit
		if err := json.Unmarshal(rec, &v); err != nil {
			return fmt.Errorf("pending visit is corrupt: %w", err)
		}
		return s.gateway.CreateVisit(ctx, &v)
	default:
		var m models.Monitor
		if err := json.Unmarshal(rec, &m); err != nil {
			return fmt.Errorf("pending monitor is corrupt: %w", err)
		}
		return s.gateway.CreateMonitor(ctx, &m)
	}
}

func (s *SyncServiceImpl) categoryLock(category string) *sync.Mutex {
	actual, _ := s.mu.LoadOrStore(category, &sync.Mutex{})
	return actual.(*sync.Mutex)
}

var _ primary.SyncService = (*SyncServiceImpl)(nil)
