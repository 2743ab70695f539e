package app

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/example/monitoreo/internal/models"
	"github.com/example/monitoreo/internal/ports/secondary"
)

func seedPendingMonitor(t *testing.T, queue *mockQueueStore, clientID, teacherName, schoolName string) {
	t.Helper()
	m := models.Monitor{
		ClientID: clientID,
		Type:     models.MonitorTypeTeacher,
		Teacher:  &models.Teacher{Fullname: teacherName},
		School:   models.School{Name: schoolName},
	}
	raw, err := json.Marshal(&m)
	if err != nil {
		t.Fatal(err)
	}
	if err := queue.Enqueue(context.Background(), secondary.CategoryMonitors, raw); err != nil {
		t.Fatal(err)
	}
}

func TestMonitorListMergesAndFilters(t *testing.T) {
	queue := newMockQueueStore()
	cache := newMockCacheStore()
	seedUser(t, cache, "maria")
	seedPendingMonitor(t, queue, "m-1", "Juan Pérez", "IE San Martín")
	seedPendingMonitor(t, queue, "m-2", "Rosa Palacios", "IE Los Algarrobos")
	gateway := &mockGateway{remoteMonitors: []models.Monitor{
		{ID: "r-1", Type: models.MonitorTypeTeacher, Teacher: &models.Teacher{Fullname: "Carlos Pérez"}, School: models.School{Name: "IE San Martín"}},
	}}

	svc := NewMonitorService(queue, cache, gateway, &mockReachability{connected: true})

	list, err := svc.List(context.Background(), "")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list.Remote) != 1 || len(list.Pending) != 2 {
		t.Errorf("remote %d pending %d, want 1 and 2", len(list.Remote), len(list.Pending))
	}

	// Substring filter hits teacher names on both sides.
	list, err = svc.List(context.Background(), "pérez")
	if err != nil {
		t.Fatal(err)
	}
	if len(list.Remote) != 1 || len(list.Pending) != 1 {
		t.Errorf("filtered: remote %d pending %d, want 1 and 1", len(list.Remote), len(list.Pending))
	}

	// And school names.
	list, err = svc.List(context.Background(), "algarrobos")
	if err != nil {
		t.Fatal(err)
	}
	if len(list.Remote) != 0 || len(list.Pending) != 1 {
		t.Errorf("filtered by school: remote %d pending %d, want 0 and 1", len(list.Remote), len(list.Pending))
	}
}

func TestMonitorListOffline(t *testing.T) {
	queue := newMockQueueStore()
	cache := newMockCacheStore()
	seedUser(t, cache, "maria")
	seedPendingMonitor(t, queue, "m-1", "Juan Pérez", "IE San Martín")

	svc := NewMonitorService(queue, cache, &mockGateway{}, &mockReachability{connected: false})
	list, err := svc.List(context.Background(), "")
	if err != nil {
		t.Fatal(err)
	}
	if list.Connected || len(list.Remote) != 0 || len(list.Pending) != 1 {
		t.Errorf("offline list = %+v", list)
	}
}

func TestMonitorDeleteLocal(t *testing.T) {
	queue := newMockQueueStore()
	cache := newMockCacheStore()
	seedUser(t, cache, models.AdminUsername)
	seedPendingMonitor(t, queue, "m-1", "Juan Pérez", "IE San Martín")
	seedPendingMonitor(t, queue, "m-2", "Rosa Palacios", "IE Los Algarrobos")

	svc := NewMonitorService(queue, cache, &mockGateway{}, &mockReachability{connected: false})
	if err := svc.DeleteLocal(context.Background(), "m-1"); err != nil {
		t.Fatalf("DeleteLocal() error = %v", err)
	}

	records, _ := queue.List(context.Background(), secondary.CategoryMonitors)
	if len(records) != 1 {
		t.Fatalf("queue holds %d records, want 1", len(records))
	}
	var m models.Monitor
	if err := json.Unmarshal(records[0], &m); err != nil {
		t.Fatal(err)
	}
	if m.ClientID != "m-2" {
		t.Errorf("wrong record deleted, %s left", m.ClientID)
	}

	if err := svc.DeleteLocal(context.Background(), "missing"); err == nil {
		t.Error("expected error for an unknown client id")
	}
}

func TestMonitorAdminOperationsRejectNonAdmin(t *testing.T) {
	queue := newMockQueueStore()
	cache := newMockCacheStore()
	seedUser(t, cache, "maria")
	seedPendingMonitor(t, queue, "m-1", "Juan Pérez", "IE San Martín")

	svc := NewMonitorService(queue, cache, &mockGateway{}, &mockReachability{connected: true})
	if err := svc.DeleteLocal(context.Background(), "m-1"); err == nil {
		t.Error("DeleteLocal allowed for non-admin")
	}
	if err := svc.DeleteRemote(context.Background(), "r-1"); err == nil {
		t.Error("DeleteRemote allowed for non-admin")
	}
	if err := svc.UpdateRemote(context.Background(), "r-1", &models.Monitor{}); err == nil {
		t.Error("UpdateRemote allowed for non-admin")
	}
}

func TestMonitorRemoteOperationsRequireConnectivity(t *testing.T) {
	cache := newMockCacheStore()
	seedUser(t, cache, models.AdminUsername)
	gateway := &mockGateway{}

	svc := NewMonitorService(newMockQueueStore(), cache, gateway, &mockReachability{connected: false})
	if err := svc.DeleteRemote(context.Background(), "r-1"); err != secondary.ErrNotConnected {
		t.Errorf("DeleteRemote err = %v, want ErrNotConnected", err)
	}
	if err := svc.UpdateRemote(context.Background(), "r-1", &models.Monitor{}); err != secondary.ErrNotConnected {
		t.Errorf("UpdateRemote err = %v, want ErrNotConnected", err)
	}
	if len(gateway.deletedMonitors) != 0 || len(gateway.updatedMonitors) != 0 {
		t.Error("offline operation reached the gateway")
	}
}
