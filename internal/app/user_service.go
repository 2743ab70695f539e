package app

import (
	"context"
	"fmt"

	"github.com/example/monitoreo/internal/models"
	"github.com/example/monitoreo/internal/ports/primary"
	"github.com/example/monitoreo/internal/ports/secondary"
)

// UserServiceImpl implements the UserService interface (admin only).
type UserServiceImpl struct {
	cache   secondary.CacheStore
	gateway secondary.RecordGateway
	network secondary.Reachability
}

// NewUserService creates a new UserService with injected dependencies.
func NewUserService(
	cache secondary.CacheStore,
	gateway secondary.RecordGateway,
	network secondary.Reachability,
) *UserServiceImpl {
	return &UserServiceImpl{cache: cache, gateway: gateway, network: network}
}

// List returns every application user.
func (s *UserServiceImpl) List(ctx context.Context) ([]models.User, error) {
	if _, err := requireAdmin(ctx, s.cache); err != nil {
		return nil, err
	}
	if !s.network.IsConnected(ctx) {
		return nil, secondary.ErrNotConnected
	}
	return s.gateway.ListUsers(ctx)
}

// Add registers a new user.
func (s *UserServiceImpl) Add(ctx context.Context, u *models.User, password string) error {
	if _, err := requireAdmin(ctx, s.cache); err != nil {
		return err
	}
	if err := validate.Struct(u); err != nil {
		return fmt.Errorf("datos del usuario incompletos: %w", err)
	}
	if password == "" {
		return fmt.Errorf("la contraseña es obligatoria")
	}
	if !s.network.IsConnected(ctx) {
		return secondary.ErrNotConnected
	}
	return s.gateway.CreateUser(ctx, u, password)
}

// Update updates an existing user.
func (s *UserServiceImpl) Update(ctx context.Context, id string, u *models.User) error {
	if _, err := requireAdmin(ctx, s.cache); err != nil {
		return err
	}
	if err := validate.Struct(u); err != nil {
		return fmt.Errorf("datos del usuario incompletos: %w", err)
	}
	if !s.network.IsConnected(ctx) {
		return secondary.ErrNotConnected
	}
	return s.gateway.UpdateUser(ctx, id, u)
}

var _ primary.UserService = (*UserServiceImpl)(nil)
