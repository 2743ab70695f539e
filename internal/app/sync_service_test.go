package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/example/monitoreo/internal/models"
	"github.com/example/monitoreo/internal/ports/secondary"
)

func newSyncService(queue *mockQueueStore, gateway *mockGateway, connected bool) *SyncServiceImpl {
	svc := NewSyncService(queue, gateway, &mockReachability{connected: connected}, nil)
	svc.errw = io.Discard
	return svc
}

func enqueueMonitors(t *testing.T, queue *mockQueueStore, ids ...string) {
	t.Helper()
	for _, id := range ids {
		raw, err := json.Marshal(&models.Monitor{ClientID: id, Type: models.MonitorTypeTeacher})
		if err != nil {
			t.Fatal(err)
		}
		if err := queue.Enqueue(context.Background(), secondary.CategoryMonitors, raw); err != nil {
			t.Fatal(err)
		}
	}
}

func TestPushUploadsEveryRecord(t *testing.T) {
	queue := newMockQueueStore()
	gateway := &mockGateway{}
	enqueueMonitors(t, queue, "m-0", "m-1", "m-2")

	svc := newSyncService(queue, gateway, true)
	result, err := svc.Push(context.Background(), secondary.CategoryMonitors)
	if err != nil {
		t.Fatalf("Push() error = %v", err)
	}

	if result.Total != 3 || result.Uploaded != 3 || result.Failed != 0 {
		t.Errorf("result = %+v, want 3 total, 3 uploaded", result)
	}
	if gateway.createdMonitorCount() != 3 {
		t.Errorf("gateway received %d monitors, want 3", gateway.createdMonitorCount())
	}
	if queue.len(secondary.CategoryMonitors) != 0 {
		t.Errorf("queue not emptied: %d left", queue.len(secondary.CategoryMonitors))
	}
}

func TestPushKeepsFailedRecordsInOrder(t *testing.T) {
	queue := newMockQueueStore()
	gateway := &mockGateway{
		createMonitorFn: func(m *models.Monitor) error {
			if m.ClientID == "m-1" || m.ClientID == "m-3" {
				return errors.New("500")
			}
			return nil
		},
	}
	enqueueMonitors(t, queue, "m-0", "m-1", "m-2", "m-3", "m-4")

	svc := newSyncService(queue, gateway, true)
	result, err := svc.Push(context.Background(), secondary.CategoryMonitors)
	if err != nil {
		t.Fatalf("Push() error = %v", err)
	}

	if result.Uploaded != 3 || result.Failed != 2 {
		t.Errorf("result = %+v, want 3 uploaded, 2 failed", result)
	}

	remaining, _ := queue.List(context.Background(), secondary.CategoryMonitors)
	if len(remaining) != 2 {
		t.Fatalf("queue holds %d records, want 2", len(remaining))
	}
	for i, wantID := range []string{"m-1", "m-3"} {
		var m models.Monitor
		if err := json.Unmarshal(remaining[i], &m); err != nil {
			t.Fatal(err)
		}
		if m.ClientID != wantID {
			t.Errorf("remaining[%d] = %s, want %s", i, m.ClientID, wantID)
		}
	}
}

func TestPushSecondDrainRetriesOnlyFailed(t *testing.T) {
	queue := newMockQueueStore()
	fail := true
	gateway := &mockGateway{
		createMonitorFn: func(m *models.Monitor) error {
			if fail && m.ClientID == "m-1" {
				return errors.New("500")
			}
			return nil
		},
	}
	enqueueMonitors(t, queue, "m-0", "m-1")
	svc := newSyncService(queue, gateway, true)
	ctx := context.Background()

	if _, err := svc.Push(ctx, secondary.CategoryMonitors); err != nil {
		t.Fatal(err)
	}

	// The backend recovers; the retry must re-send only the failed record.
	fail = false
	result, err := svc.Push(ctx, secondary.CategoryMonitors)
	if err != nil {
		t.Fatal(err)
	}
	if result.Total != 1 || result.Uploaded != 1 {
		t.Errorf("retry result = %+v, want 1 total, 1 uploaded", result)
	}
	if gateway.createdMonitorCount() != 2 {
		t.Errorf("gateway received %d creates in total, want 2 (no duplicate upload)", gateway.createdMonitorCount())
	}
	if queue.len(secondary.CategoryMonitors) != 0 {
		t.Error("queue not empty after successful retry")
	}
}

func TestPushOfflineLeavesQueueIntact(t *testing.T) {
	queue := newMockQueueStore()
	gateway := &mockGateway{}
	enqueueMonitors(t, queue, "m-0")

	svc := newSyncService(queue, gateway, false)
	_, err := svc.Push(context.Background(), secondary.CategoryMonitors)
	if !errors.Is(err, secondary.ErrNotConnected) {
		t.Fatalf("err = %v, want ErrNotConnected", err)
	}
	if queue.len(secondary.CategoryMonitors) != 1 {
		t.Error("offline push touched the queue")
	}
	if gateway.createdMonitorCount() != 0 {
		t.Error("offline push reached the gateway")
	}
}

func TestPushEmptyQueueSkipsConnectivityCheck(t *testing.T) {
	svc := newSyncService(newMockQueueStore(), &mockGateway{}, false)
	result, err := svc.Push(context.Background(), secondary.CategoryVisits)
	if err != nil {
		t.Fatalf("Push() on empty queue: %v", err)
	}
	if result.Total != 0 {
		t.Errorf("Total = %d, want 0", result.Total)
	}
}

func TestPushUnknownCategory(t *testing.T) {
	svc := newSyncService(newMockQueueStore(), &mockGateway{}, true)
	if _, err := svc.Push(context.Background(), "tasks"); err == nil {
		t.Error("expected error for an unknown category")
	}
}

func TestPushCorruptRecordStaysQueued(t *testing.T) {
	queue := newMockQueueStore()
	// Bypass Enqueue validation to simulate a blob corrupted at rest.
	queue.queues[secondary.CategoryMonitors] = [][]byte{[]byte("{broken")}
	gateway := &mockGateway{}

	svc := newSyncService(queue, gateway, true)
	result, err := svc.Push(context.Background(), secondary.CategoryMonitors)
	if err != nil {
		t.Fatal(err)
	}
	if result.Failed != 1 || result.Uploaded != 0 {
		t.Errorf("result = %+v, want the corrupt record to fail", result)
	}
	if queue.len(secondary.CategoryMonitors) != 1 {
		t.Error("corrupt record dropped from the queue")
	}
}

func TestPushAllDrainsBothCategories(t *testing.T) {
	queue := newMockQueueStore()
	gateway := &mockGateway{}
	enqueueMonitors(t, queue, "m-0")
	rawVisit, _ := json.Marshal(&models.Visit{ClientID: "v-0"})
	if err := queue.Enqueue(context.Background(), secondary.CategoryVisits, rawVisit); err != nil {
		t.Fatal(err)
	}

	svc := newSyncService(queue, gateway, true)
	results, err := svc.PushAll(context.Background())
	if err != nil {
		t.Fatalf("PushAll() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("PushAll() returned %d results, want 2", len(results))
	}
	if results[0].Category != secondary.CategoryMonitors || results[1].Category != secondary.CategoryVisits {
		t.Errorf("categories = %s, %s; want monitors then visits", results[0].Category, results[1].Category)
	}
	if queue.len(secondary.CategoryMonitors) != 0 || queue.len(secondary.CategoryVisits) != 0 {
		t.Error("queues not drained")
	}
}

func TestPushWriteBackFailureSurfaces(t *testing.T) {
	queue := newMockQueueStore()
	queue.replaceErr = fmt.Errorf("disk full")
	gateway := &mockGateway{}
	enqueueMonitors(t, queue, "m-0")

	svc := newSyncService(queue, gateway, true)
	if _, err := svc.Push(context.Background(), secondary.CategoryMonitors); err == nil {
		t.Error("expected error when the write-back fails")
	}
}
