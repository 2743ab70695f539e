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

// SchoolServiceImpl implements the SchoolService interface: a read-through
// cache of the school directory so school selection works offline.
type SchoolServiceImpl struct {
	cache   secondary.CacheStore
	gateway secondary.RecordGateway
	network secondary.Reachability
}

// NewSchoolService creates a new SchoolService with injected dependencies.
func NewSchoolService(
	cache secondary.CacheStore,
	gateway secondary.RecordGateway,
	network secondary.Reachability,
) *SchoolServiceImpl {
	return &SchoolServiceImpl{cache: cache, gateway: gateway, network: network}
}

// Sync fetches the full directory and replaces the cache.
func (s *SchoolServiceImpl) Sync(ctx context.Context) (int, error) {
	if !s.network.IsConnected(ctx) {
		return 0, secondary.ErrNotConnected
	}

	schools, err := s.gateway.ListSchools(ctx)
	if err != nil {
		return 0, err
	}
	raw, err := json.Marshal(schools)
	if err != nil {
		return 0, fmt.Errorf("failed to encode school directory: %w", err)
	}
	if err := s.cache.Set(ctx, secondary.KeySchools, raw); err != nil {
		return 0, fmt.Errorf("failed to cache school directory: %w", err)
	}
	return len(schools), nil
}

// List returns cached schools filtered by a name/code/district/place
// substring, refreshing the cache first when connected.
func (s *SchoolServiceImpl) List(ctx context.Context, query string) ([]models.School, error) {
	if s.network.IsConnected(ctx) {
		if _, err := s.Sync(ctx); err != nil {
			return nil, err
		}
	}

	schools, err := cachedSchools(ctx, s.cache)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return schools, nil
	}

	word := strings.ToLower(query)
	filtered := make([]models.School, 0, len(schools))
	for _, sc := range schools {
		if strings.Contains(strings.ToLower(sc.Name), word) ||
			strings.Contains(strings.ToLower(sc.Code), word) ||
			strings.Contains(strings.ToLower(sc.District), word) ||
			strings.Contains(strings.ToLower(sc.Place), word) {
			filtered = append(filtered, sc)
		}
	}
	return filtered, nil
}

// Find resolves one school by its code against the cache.
func (s *SchoolServiceImpl) Find(ctx context.Context, code string) (*models.School, error) {
	return findSchoolInCache(ctx, s.cache, code)
}

// Add registers a new school on the backend (admin only).
func (s *SchoolServiceImpl) Add(ctx context.Context, school *models.School) error {
	if _, err := requireAdmin(ctx, s.cache); err != nil {
		return err
	}
	if err := validate.Struct(school); err != nil {
		return fmt.Errorf("datos del colegio incompletos: %w", err)
	}
	if !s.network.IsConnected(ctx) {
		return secondary.ErrNotConnected
	}
	return s.gateway.CreateSchool(ctx, school)
}

// cachedSchools decodes the cached directory; an unsynced cache is an
// explicit user-facing error, not an empty list.
func cachedSchools(ctx context.Context, cache secondary.CacheStore) ([]models.School, error) {
	raw, err := cache.Get(ctx, secondary.KeySchools)
	if err != nil {
		return nil, fmt.Errorf("failed to read school directory: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("el directorio de colegios no está sincronizado (ejecute schools sync)")
	}
	var schools []models.School
	if err := json.Unmarshal(raw, &schools); err != nil {
		return nil, fmt.Errorf("school directory is corrupt: %w", err)
	}
	return schools, nil
}

// findSchoolInCache resolves one school by code from the cached directory.
func findSchoolInCache(ctx context.Context, cache secondary.CacheStore, code string) (*models.School, error) {
	schools, err := cachedSchools(ctx, cache)
	if err != nil {
		return nil, err
	}
	for i := range schools {
		if schools[i].Code == code {
			return &schools[i], nil
		}
	}
	return nil, fmt.Errorf("colegio %s no encontrado en el directorio", code)
}

var _ primary.SchoolService = (*SchoolServiceImpl)(nil)
