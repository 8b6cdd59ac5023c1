package service

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/brightup/admin-gateway/internal/models"
	appErrors "github.com/brightup/admin-gateway/pkg/errors"
	"github.com/brightup/admin-gateway/pkg/export"
)

type rosterSource interface {
	GetBatch(ctx context.Context, token string, id int64) (*models.Batch, error)
	BatchStudents(ctx context.Context, token string, batchID int64) ([]models.BatchStudent, error)
}

// ExportFile is a rendered roster ready for download.
type ExportFile struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ExportService renders a batch's student roster as CSV or PDF.
type ExportService struct {
	client rosterSource
	csv    *export.CSVExporter
	pdf    *export.PDFExporter
	logger *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(client rosterSource, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		client: client,
		csv:    export.NewCSVExporter(),
		pdf:    export.NewPDFExporter(),
		logger: logger,
	}
}

var rosterHeaders = []string{"ID", "Name", "Email", "Phone", "Amount", "Joined At"}

// Roster exports the students of one batch in the requested format.
func (s *ExportService) Roster(ctx context.Context, token string, batchID int64, format string) (*ExportFile, error) {
	batch, err := s.client.GetBatch(ctx, token, batchID)
	if err != nil {
		return nil, err
	}

	students, err := s.client.BatchStudents(ctx, token, batchID)
	if err != nil {
		return nil, err
	}

	dataset := export.Dataset{Headers: rosterHeaders, Rows: make([][]string, 0, len(students))}
	for _, student := range students {
		dataset.Rows = append(dataset.Rows, []string{
			strconv.FormatInt(student.ID, 10),
			student.Name,
			student.Email,
			student.PhoneNumber,
			strconv.FormatFloat(student.Amount, 'f', 2, 64),
			student.JoinedAt,
		})
	}

	title := fmt.Sprintf("Batch %d roster (%s)", batch.ID, batch.MentorName)

	switch format {
	case "csv":
		content, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render csv roster")
		}
		return &ExportFile{
			Content:     content,
			ContentType: s.csv.ContentType(),
			Filename:    fmt.Sprintf("batch-%d-roster.csv", batch.ID),
		}, nil
	case "pdf":
		content, err := s.pdf.Render(dataset, title)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render pdf roster")
		}
		return &ExportFile{
			Content:     content,
			ContentType: s.pdf.ContentType(),
			Filename:    fmt.Sprintf("batch-%d-roster.pdf", batch.ID),
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
}
