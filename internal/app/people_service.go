package app

import (
	"context"
	"fmt"

	"github.com/example/monitoreo/internal/models"
	"github.com/example/monitoreo/internal/ports/primary"
	"github.com/example/monitoreo/internal/ports/secondary"
)

// PeopleServiceImpl implements the PeopleService interface.
type PeopleServiceImpl struct {
	cache   secondary.CacheStore
	gateway secondary.RecordGateway
	network secondary.Reachability
}

// NewPeopleService creates a new PeopleService with injected dependencies.
func NewPeopleService(
	cache secondary.CacheStore,
	gateway secondary.RecordGateway,
	network secondary.Reachability,
) *PeopleServiceImpl {
	return &PeopleServiceImpl{cache: cache, gateway: gateway, network: network}
}

// ListTeachers returns the teachers attached to a school.
func (s *PeopleServiceImpl) ListTeachers(ctx context.Context, schoolCode string) ([]models.Teacher, error) {
	if !s.network.IsConnected(ctx) {
		return nil, secondary.ErrNotConnected
	}
	return s.gateway.ListTeachers(ctx, schoolCode)
}

// AddTeacher registers a new teacher.
func (s *PeopleServiceImpl) AddTeacher(ctx context.Context, t *models.Teacher) error {
	if _, err := loadUser(ctx, s.cache); err != nil {
		return err
	}
	if err := validate.Struct(t); err != nil {
		return fmt.Errorf("datos del docente incompletos: %w", err)
	}
	if !s.network.IsConnected(ctx) {
		return secondary.ErrNotConnected
	}
	return s.gateway.CreateTeacher(ctx, t)
}

// ListDirectors returns the directors attached to a school.
func (s *PeopleServiceImpl) ListDirectors(ctx context.Context, schoolCode string) ([]models.Director, error) {
	if !s.network.IsConnected(ctx) {
		return nil, secondary.ErrNotConnected
	}
	return s.gateway.ListDirectors(ctx, schoolCode)
}

// AddDirector registers a new director.
func (s *PeopleServiceImpl) AddDirector(ctx context.Context, d *models.Director) error {
	if _, err := loadUser(ctx, s.cache); err != nil {
		return err
	}
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("datos del directivo incompletos: %w", err)
	}
	if !s.network.IsConnected(ctx) {
		return secondary.ErrNotConnected
	}
	return s.gateway.CreateDirector(ctx, d)
}

var _ primary.PeopleService = (*PeopleServiceImpl)(nil)
