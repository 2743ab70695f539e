package primary

import (
	"context"

	"github.com/example/monitoreo/internal/models"
)

// ReportService fetches the backend's aggregate rubric statistics for a
// filtered set of observations.
type ReportService interface {
	// Teacher returns the level distribution (I-IV) per rubric code.
	Teacher(ctx context.Context, f models.ReportFilter) ([]models.ReportRow, error)

	// Director returns the sí/no distribution per rubric code.
	Director(ctx context.Context, f models.ReportFilter) ([]models.ReportRow, error)
}

// ExportService downloads the user's records archive.
type ExportService interface {
	// Export streams the backend's ZIP export into dir and returns the
	// written file path.
	Export(ctx context.Context, dir string) (string, error)
}
