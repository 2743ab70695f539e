// Package primary defines the primary ports (driving interfaces) for the
// application, consumed by the CLI layer.
package primary

import (
	"context"

	"github.com/example/monitoreo/internal/models"
)

// AuthService manages the authenticated session. The profile is cached
// locally so the user can keep working offline.
type AuthService interface {
	// Login authenticates against the backend and caches the profile.
	// Offline login is not possible; a previously cached profile is
	// restored by CurrentUser instead.
	Login(ctx context.Context, username, password string) (*LoginResponse, error)

	// CurrentUser returns the cached profile, refreshed from the backend
	// initial-info endpoint when connected.
	CurrentUser(ctx context.Context) (*models.User, error)

	// Logout clears the cached profile. Pending queues are kept.
	Logout(ctx context.Context) error
}

// LoginResponse carries the authenticated profile plus the remote record
// counts the backend returns on login.
type LoginResponse struct {
	User     *models.User
	Quantity *models.Quantity
}
