package app

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"testing"

	"github.com/example/monitoreo/internal/models"
	"github.com/example/monitoreo/internal/ports/secondary"
)

// Ensure the mocks implement the secondary ports
var (
	_ secondary.QueueStore    = (*mockQueueStore)(nil)
	_ secondary.CacheStore    = (*mockCacheStore)(nil)
	_ secondary.Reachability  = (*mockReachability)(nil)
	_ secondary.RecordGateway = (*mockGateway)(nil)
)

// mockQueueStore implements secondary.QueueStore in memory.
type mockQueueStore struct {
	mu         sync.Mutex
	queues     map[string][][]byte
	enqueueErr error
	listErr    error
	replaceErr error
}

func newMockQueueStore() *mockQueueStore {
	return &mockQueueStore{queues: make(map[string][][]byte)}
}

func (m *mockQueueStore) Enqueue(ctx context.Context, category string, record []byte) error {
	if m.enqueueErr != nil {
		return m.enqueueErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queues[category] = append(m.queues[category], record)
	return nil
}

func (m *mockQueueStore) List(ctx context.Context, category string) ([][]byte, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]byte, len(m.queues[category]))
	copy(out, m.queues[category])
	return out, nil
}

func (m *mockQueueStore) Replace(ctx context.Context, category string, records [][]byte) error {
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(records) == 0 {
		delete(m.queues, category)
		return nil
	}
	m.queues[category] = records
	return nil
}

func (m *mockQueueStore) Clear(ctx context.Context, category string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.queues, category)
	return nil
}

func (m *mockQueueStore) len(category string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queues[category])
}

// mockCacheStore implements secondary.CacheStore in memory.
type mockCacheStore struct {
	values map[string][]byte
	getErr error
	setErr error
}

func newMockCacheStore() *mockCacheStore {
	return &mockCacheStore{values: make(map[string][]byte)}
}

func (m *mockCacheStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.values[key], nil
}

func (m *mockCacheStore) Set(ctx context.Context, key string, value []byte) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

func (m *mockCacheStore) Delete(ctx context.Context, key string) error {
	delete(m.values, key)
	return nil
}

// mockReachability implements secondary.Reachability with a fixed answer.
type mockReachability struct {
	connected bool
}

func (m *mockReachability) IsConnected(ctx context.Context) bool {
	return m.connected
}

// mockGateway implements secondary.RecordGateway. Behavior is configured
// per call through the function fields; a nil field means success with
// zero values. Calls that may run concurrently record under the mutex.
type mockGateway struct {
	mu sync.Mutex

	loginUser *models.User
	loginErr  error

	createVisitFn   func(v *models.Visit) error
	createMonitorFn func(m *models.Monitor) error

	createdVisits   []*models.Visit
	createdMonitors []*models.Monitor
	deletedVisits   []string
	deletedMonitors []string
	updatedMonitors []string

	remoteVisits   []models.Visit
	remoteMonitors []models.Monitor
	remoteSchools  []models.School
	teachers       []models.Teacher
	directors      []models.Director
	users          []models.User
	quantity       models.Quantity
	listErr        error
}

func (m *mockGateway) Login(ctx context.Context, username, password string) (*models.User, error) {
	if m.loginErr != nil {
		return nil, m.loginErr
	}
	if m.loginUser != nil {
		return m.loginUser, nil
	}
	return &models.User{Username: username}, nil
}

func (m *mockGateway) InitialInfo(ctx context.Context, username string) (*models.User, *models.Quantity, error) {
	if m.loginErr != nil {
		return nil, nil, m.loginErr
	}
	if m.loginUser != nil {
		return m.loginUser, &m.quantity, nil
	}
	return &models.User{Username: username}, &m.quantity, nil
}

func (m *mockGateway) CreateVisit(ctx context.Context, v *models.Visit) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createVisitFn != nil {
		if err := m.createVisitFn(v); err != nil {
			return err
		}
	}
	m.createdVisits = append(m.createdVisits, v)
	return nil
}

func (m *mockGateway) DeleteVisit(ctx context.Context, id string) error {
	m.deletedVisits = append(m.deletedVisits, id)
	return nil
}

func (m *mockGateway) ListVisits(ctx context.Context, dni string) ([]models.Visit, error) {
	return m.remoteVisits, m.listErr
}

func (m *mockGateway) Quantity(ctx context.Context, userID string) (*models.Quantity, error) {
	q := m.quantity
	return &q, nil
}

func (m *mockGateway) CreateMonitor(ctx context.Context, mon *models.Monitor) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createMonitorFn != nil {
		if err := m.createMonitorFn(mon); err != nil {
			return err
		}
	}
	m.createdMonitors = append(m.createdMonitors, mon)
	return nil
}

func (m *mockGateway) UpdateMonitor(ctx context.Context, id string, mon *models.Monitor) error {
	m.updatedMonitors = append(m.updatedMonitors, id)
	return nil
}

func (m *mockGateway) DeleteMonitor(ctx context.Context, id string) error {
	m.deletedMonitors = append(m.deletedMonitors, id)
	return nil
}

func (m *mockGateway) ListMonitors(ctx context.Context, userID string) ([]models.Monitor, error) {
	return m.remoteMonitors, m.listErr
}

func (m *mockGateway) ListSchools(ctx context.Context) ([]models.School, error) {
	return m.remoteSchools, m.listErr
}

func (m *mockGateway) CreateSchool(ctx context.Context, s *models.School) error {
	return nil
}

func (m *mockGateway) ListTeachers(ctx context.Context, schoolCode string) ([]models.Teacher, error) {
	return m.teachers, m.listErr
}

func (m *mockGateway) CreateTeacher(ctx context.Context, t *models.Teacher) error {
	return nil
}

func (m *mockGateway) ListDirectors(ctx context.Context, schoolCode string) ([]models.Director, error) {
	return m.directors, m.listErr
}

func (m *mockGateway) CreateDirector(ctx context.Context, d *models.Director) error {
	return nil
}

func (m *mockGateway) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.users, m.listErr
}

func (m *mockGateway) CreateUser(ctx context.Context, u *models.User, password string) error {
	return nil
}

func (m *mockGateway) UpdateUser(ctx context.Context, id string, u *models.User) error {
	return nil
}

func (m *mockGateway) TeacherReport(ctx context.Context, f models.ReportFilter) ([]models.ReportRow, error) {
	return nil, nil
}

func (m *mockGateway) DirectorReport(ctx context.Context, f models.ReportFilter) ([]models.ReportRow, error) {
	return nil, nil
}

func (m *mockGateway) ExportArchive(ctx context.Context, userID string, w io.Writer) error {
	_, err := w.Write([]byte("PK"))
	return err
}

func (m *mockGateway) createdMonitorCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.createdMonitors)
}

// seedUser stores a profile in the cache as a completed login would.
func seedUser(t *testing.T, cache *mockCacheStore, username string) *models.User {
	t.Helper()
	user := &models.User{ID: "u-1", Username: username, Fullname: "Test User", DNI: "12345678"}
	raw, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("failed to encode user: %v", err)
	}
	cache.values[secondary.KeyUser] = raw
	return user
}

// seedSchools stores a school directory in the cache as schools sync would.
func seedSchools(t *testing.T, cache *mockCacheStore, schools ...models.School) {
	t.Helper()
	if len(schools) == 0 {
		schools = []models.School{
			{ID: "s-1", Name: "IE San Martín", Code: "0593202", District: "Castilla"},
			{ID: "s-2", Name: "IE Los Algarrobos", Code: "1140052", District: "Piura"},
		}
	}
	raw, err := json.Marshal(schools)
	if err != nil {
		t.Fatalf("failed to encode schools: %v", err)
	}
	cache.values[secondary.KeySchools] = raw
}
