// Package app implements the primary ports by composing the secondary
// ports: local storage, the reachability probe and the backend gateway.
package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/example/monitoreo/internal/models"
	"github.com/example/monitoreo/internal/ports/secondary"
)

// validate checks outbound entities before they are enqueued or posted.
var validate = validator.New()

// loadUser returns the cached profile, or an error when nobody is logged in.
func loadUser(ctx context.Context, cache secondary.CacheStore) (*models.User, error) {
	raw, err := cache.Get(ctx, secondary.KeyUser)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("no hay una sesión iniciada")
	}
	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("stored profile is corrupt: %w", err)
	}
	return &user, nil
}

// requireAdmin loads the profile and rejects non-admin users.
func requireAdmin(ctx context.Context, cache secondary.CacheStore) (*models.User, error) {
	user, err := loadUser(ctx, cache)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin() {
		return nil, fmt.Errorf("operación permitida solo al administrador")
	}
	return user, nil
}
