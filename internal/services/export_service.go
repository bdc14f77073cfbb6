package services

import (
	"fmt"
	"time"

	"github.com/angemarius939/datarw-core/internal/models"
)

// ActivityExportStore is the persistence collaborator view the export
// service needs.
type ActivityExportStore interface {
	ListActivities() ([]models.ActivityRecord, error)
}

// ExportParams selects what to export and how.
type ExportParams struct {
	Format    string // csv (default) or xlsx
	Columns   []string
	Filter    ActivityFilter
	SheetName string
}

type ExportService struct {
	store     ActivityExportStore
	projector *Projector
	now       func() time.Time
}

func NewExportService(store ActivityExportStore, projector *Projector) *ExportService {
	return &ExportService{
		store:     store,
		projector: projector,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// ExportActivities fetches, filters, projects and serializes activity
// records in one pass.
func (s *ExportService) ExportActivities(params ExportParams) (*ExportResult, error) {
	format := params.Format
	if format == "" {
		format = FormatCSV
	}
	records, err := s.store.ListActivities()
	if err != nil {
		return nil, NewUnavailableError(err.Error())
	}
	records = FilterActivities(records, params.Filter)
	table := s.projector.ProjectActivities(records, params.Columns)

	stamp := s.now().Format(DateLayout)
	switch format {
	case FormatCSV:
		b, err := SerializeCSV(table)
		if err != nil {
			return nil, err
		}
		return &ExportResult{
			Filename:    fmt.Sprintf("activities_%s.csv", stamp),
			ContentType: csvContentType,
			Data:        b,
		}, nil
	case FormatXLSX:
		sheet := params.SheetName
		if sheet == "" {
			sheet = "Activities"
		}
		b, err := SerializeWorkbook(table, sheet)
		if err != nil {
			return nil, err
		}
		return &ExportResult{
			Filename:    fmt.Sprintf("activities_%s.xlsx", stamp),
			ContentType: xlsxContentType,
			Data:        b,
		}, nil
	default:
		return nil, NewInvalidError("unsupported format")
	}
}
