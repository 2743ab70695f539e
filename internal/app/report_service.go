package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/example/monitoreo/internal/models"
	"github.com/example/monitoreo/internal/ports/primary"
	"github.com/example/monitoreo/internal/ports/secondary"
)

// ReportServiceImpl implements the ReportService interface. Aggregation
// happens on the backend; this service only scopes the filter to the
// current user and requires connectivity.
type ReportServiceImpl struct {
	cache   secondary.CacheStore
	gateway secondary.RecordGateway
	network secondary.Reachability
}

// NewReportService creates a new ReportService with injected dependencies.
func NewReportService(
	cache secondary.CacheStore,
	gateway secondary.RecordGateway,
	network secondary.Reachability,
) *ReportServiceImpl {
	return &ReportServiceImpl{cache: cache, gateway: gateway, network: network}
}

// Teacher returns the level distribution per rubric code.
func (s *ReportServiceImpl) Teacher(ctx context.Context, f models.ReportFilter) ([]models.ReportRow, error) {
	if err := s.scope(ctx, &f); err != nil {
		return nil, err
	}
	return s.gateway.TeacherReport(ctx, f)
}

// Director returns the sí/no distribution per rubric code.
func (s *ReportServiceImpl) Director(ctx context.Context, f models.ReportFilter) ([]models.ReportRow, error) {
	if err := s.scope(ctx, &f); err != nil {
		return nil, err
	}
	return s.gateway.DirectorReport(ctx, f)
}

func (s *ReportServiceImpl) scope(ctx context.Context, f *models.ReportFilter) error {
	user, err := loadUser(ctx, s.cache)
	if err != nil {
		return err
	}
	if !s.network.IsConnected(ctx) {
		return secondary.ErrNotConnected
	}
	f.UserID = user.ID
	return nil
}

var _ primary.ReportService = (*ReportServiceImpl)(nil)

// ExportServiceImpl implements the ExportService interface.
type ExportServiceImpl struct {
	cache   secondary.CacheStore
	gateway secondary.RecordGateway
	network secondary.Reachability
	now     func() time.Time
}

// NewExportService creates a new ExportService with injected dependencies.
func NewExportService(
	cache secondary.CacheStore,
	gateway secondary.RecordGateway,
	network secondary.Reachability,
) *ExportServiceImpl {
	return &ExportServiceImpl{cache: cache, gateway: gateway, network: network, now: time.Now}
}

// Export streams the backend's ZIP export into dir and returns the
// written file path. A failed download removes the partial file.
func (s *ExportServiceImpl) Export(ctx context.Context, dir string) (string, error) {
	user, err := loadUser(ctx, s.cache)
	if err != nil {
		return "", err
	}
	if !s.network.IsConnected(ctx) {
		return "", secondary.ErrNotConnected
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("monitoreos_%s.zip", s.now().Format("2006-01-02")))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}

	if err := s.gateway.ExportArchive(ctx, user.ID, f); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to finish export file: %w", err)
	}
	return path, nil
}

var _ primary.ExportService = (*ExportServiceImpl)(nil)
