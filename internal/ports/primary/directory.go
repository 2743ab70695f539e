package primary

import (
	"context"

	"github.com/example/monitoreo/internal/models"
)

// SchoolService maintains the school directory: a read-through cache
// refreshed on manual pull so school selection works offline.
type SchoolService interface {
	// Sync fetches the full directory and replaces the cache.
	Sync(ctx context.Context) (int, error)

	// List returns cached schools filtered by a name/code/district
	// substring. Falls back to the cache when offline.
	List(ctx context.Context, query string) ([]models.School, error)

	// Find resolves one school by its code.
	Find(ctx context.Context, code string) (*models.School, error)

	// Add registers a new school on the backend (admin only).
	Add(ctx context.Context, s *models.School) error
}

// PeopleService lists and registers the observable people per school.
type PeopleService interface {
	ListTeachers(ctx context.Context, schoolCode string) ([]models.Teacher, error)
	AddTeacher(ctx context.Context, t *models.Teacher) error
	ListDirectors(ctx context.Context, schoolCode string) ([]models.Director, error)
	AddDirector(ctx context.Context, d *models.Director) error
}

// UserService manages application users (admin only).
type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Add(ctx context.Context, u *models.User, password string) error
	Update(ctx context.Context, id string, u *models.User) error
}
