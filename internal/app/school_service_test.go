package app

import (
	"context"
	"errors"
	"testing"

	"github.com/example/monitoreo/internal/models"
	"github.com/example/monitoreo/internal/ports/secondary"
)

func TestSchoolSyncReplacesCache(t *testing.T) {
	cache := newMockCacheStore()
	seedSchools(t, cache) // stale directory
	gateway := &mockGateway{remoteSchools: []models.School{
		{ID: "s-9", Name: "IE Nueva", Code: "7777777", District: "Sullana"},
	}}

	svc := NewSchoolService(cache, gateway, &mockReachability{connected: true})
	count, err := svc.Sync(context.Background())
	if err != nil {
		t.Fatalf("Sync() error = %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}

	schools, err := cachedSchools(context.Background(), cache)
	if err != nil {
		t.Fatal(err)
	}
	if len(schools) != 1 || schools[0].Code != "7777777" {
		t.Errorf("cache = %+v, want the fresh directory", schools)
	}
}

func TestSchoolSyncOffline(t *testing.T) {
	svc := NewSchoolService(newMockCacheStore(), &mockGateway{}, &mockReachability{connected: false})
	if _, err := svc.Sync(context.Background()); !errors.Is(err, secondary.ErrNotConnected) {
		t.Errorf("err = %v, want ErrNotConnected", err)
	}
}

func TestSchoolListFiltersCachedDirectory(t *testing.T) {
	cache := newMockCacheStore()
	seedSchools(t, cache,
		models.School{Name: "IE San Martín", Code: "0593202", District: "Castilla"},
		models.School{Name: "IE Los Algarrobos", Code: "1140052", District: "Piura", Place: "Los Ejidos"},
	)

	svc := NewSchoolService(cache, &mockGateway{}, &mockReachability{connected: false})

	tests := []struct {
		query string
		want  int
	}{
		{"", 2},
		{"martín", 1},
		{"1140052", 1},
		{"castilla", 1},
		{"ejidos", 1},
		{"lima", 0},
	}
	for _, tt := range tests {
		schools, err := svc.List(context.Background(), tt.query)
		if err != nil {
			t.Fatalf("List(%q) error = %v", tt.query, err)
		}
		if len(schools) != tt.want {
			t.Errorf("List(%q) = %d schools, want %d", tt.query, len(schools), tt.want)
		}
	}
}

func TestSchoolListUnsyncedDirectory(t *testing.T) {
	svc := NewSchoolService(newMockCacheStore(), &mockGateway{}, &mockReachability{connected: false})
	if _, err := svc.List(context.Background(), ""); err == nil {
		t.Error("expected error for an unsynced directory")
	}
}

func TestSchoolFind(t *testing.T) {
	cache := newMockCacheStore()
	seedSchools(t, cache)

	svc := NewSchoolService(cache, &mockGateway{}, &mockReachability{connected: false})
	school, err := svc.Find(context.Background(), "0593202")
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if school.Name != "IE San Martín" {
		t.Errorf("school = %+v", school)
	}

	if _, err := svc.Find(context.Background(), "0000000"); err == nil {
		t.Error("expected error for an unknown code")
	}
}

func TestSchoolAddValidation(t *testing.T) {
	cache := newMockCacheStore()
	seedUser(t, cache, models.AdminUsername)

	svc := NewSchoolService(cache, &mockGateway{}, &mockReachability{connected: true})
	err := svc.Add(context.Background(), &models.School{Name: "IE Sin Código"})
	if err == nil {
		t.Error("expected validation error for a school without code and district")
	}

	if err := svc.Add(context.Background(), &models.School{
		Name: "IE Nueva", Code: "7777777", District: "Sullana",
	}); err != nil {
		t.Errorf("Add() error = %v", err)
	}
}

func TestSchoolAddRequiresAdmin(t *testing.T) {
	cache := newMockCacheStore()
	seedUser(t, cache, "maria")

	svc := NewSchoolService(cache, &mockGateway{}, &mockReachability{connected: true})
	err := svc.Add(context.Background(), &models.School{Name: "IE Nueva", Code: "7777777", District: "Sullana"})
	if err == nil {
		t.Error("expected rejection for a non-admin user")
	}
}
