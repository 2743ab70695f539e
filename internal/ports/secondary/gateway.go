package secondary

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/example/monitoreo/internal/models"
)

// ErrNotConnected is returned by callers that checked reachability and
// chose not to attempt a remote call. It is never fatal.
var ErrNotConnected = errors.New("sin conexión a internet")

// RemoteError carries the backend's human-readable failure message for a
// single request. No raw transport errors cross this boundary.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("error del servidor (%d)", e.Status)
}

// RecordGateway is the thin typed client for the backend REST API. Each
// call is a single request/response with no client-side retry; failures
// surface as *RemoteError or a wrapped transport error.
type RecordGateway interface {
	// Auth and profile.
	Login(ctx context.Context, username, password string) (*models.User, error)
	InitialInfo(ctx context.Context, username string) (*models.User, *models.Quantity, error)

	// Visits.
	CreateVisit(ctx context.Context, v *models.Visit) error
	DeleteVisit(ctx context.Context, id string) error
	ListVisits(ctx context.Context, dni string) ([]models.Visit, error)
	Quantity(ctx context.Context, userID string) (*models.Quantity, error)

	// Monitors.
	CreateMonitor(ctx context.Context, m *models.Monitor) error
	UpdateMonitor(ctx context.Context, id string, m *models.Monitor) error
	DeleteMonitor(ctx context.Context, id string) error
	ListMonitors(ctx context.Context, userID string) ([]models.Monitor, error)

	// School directory and people.
	ListSchools(ctx context.Context) ([]models.School, error)
	CreateSchool(ctx context.Context, s *models.School) error
	ListTeachers(ctx context.Context, schoolCode string) ([]models.Teacher, error)
	CreateTeacher(ctx context.Context, t *models.Teacher) error
	ListDirectors(ctx context.Context, schoolCode string) ([]models.Director, error)
	CreateDirector(ctx context.Context, d *models.Director) error

	// User management (admin).
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, u *models.User, password string) error
	UpdateUser(ctx context.Context, id string, u *models.User) error

	// Aggregate reports and export.
	TeacherReport(ctx context.Context, f models.ReportFilter) ([]models.ReportRow, error)
	DirectorReport(ctx context.Context, f models.ReportFilter) ([]models.ReportRow, error)
	ExportArchive(ctx context.Context, userID string, w io.Writer) error
}
