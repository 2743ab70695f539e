package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/example/monitoreo/internal/models"
	"github.com/example/monitoreo/internal/ports/primary"
	"github.com/example/monitoreo/internal/ports/secondary"
)

// AuthServiceImpl implements the AuthService interface.
type AuthServiceImpl struct {
	gateway secondary.RecordGateway
	cache   secondary.CacheStore
	network secondary.Reachability
}

// NewAuthService creates a new AuthService with injected dependencies.
func NewAuthService(
	gateway secondary.RecordGateway,
	cache secondary.CacheStore,
	network secondary.Reachability,
) *AuthServiceImpl {
	return &AuthServiceImpl{gateway: gateway, cache: cache, network: network}
}

// Login authenticates against the backend and caches the profile for
// offline restore. Requires connectivity.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (*primary.LoginResponse, error) {
	if !s.network.IsConnected(ctx) {
		return nil, secondary.ErrNotConnected
	}

	user, err := s.gateway.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	if err := s.storeUser(ctx, user); err != nil {
		return nil, err
	}

	resp := &primary.LoginResponse{User: user}
	if q, err := s.gateway.Quantity(ctx, user.ID); err == nil {
		resp.Quantity = q
	}
	return resp, nil
}

// CurrentUser returns the cached profile, refreshed from the backend when
// connected (the initial-info call).
func (s *AuthServiceImpl) CurrentUser(ctx context.Context) (*models.User, error) {
	user, err := loadUser(ctx, s.cache)
	if err != nil {
		return nil, err
	}
	if !s.network.IsConnected(ctx) {
		return user, nil
	}

	fresh, _, err := s.gateway.InitialInfo(ctx, user.Username)
	if err != nil {
		// Stale is better than nothing for a read path.
		return user, nil
	}
	if err := s.storeUser(ctx, fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}

// Logout clears the cached profile. Pending queues stay untouched so the
// records can still be synced after the next login.
func (s *AuthServiceImpl) Logout(ctx context.Context) error {
	if err := s.cache.Delete(ctx, secondary.KeyUser); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (s *AuthServiceImpl) storeUser(ctx context.Context, user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := s.cache.Set(ctx, secondary.KeyUser, raw); err != nil {
		return fmt.Errorf("failed to store profile: %w", err)
	}
	return nil
}

var _ primary.AuthService = (*AuthServiceImpl)(nil)
