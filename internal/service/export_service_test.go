package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightup/admin-gateway/internal/models"
	appErrors "github.com/brightup/admin-gateway/pkg/errors"
)

type rosterSourceStub struct {
	batch    *models.Batch
	students []models.BatchStudent
}

func (s *rosterSourceStub) GetBatch(ctx context.Context, token string, id int64) (*models.Batch, error) {
	return s.batch, nil
}

func (s *rosterSourceStub) BatchStudents(ctx context.Context, token string, batchID int64) ([]models.BatchStudent, error) {
	return s.students, nil
}

func rosterFixture() *rosterSourceStub {
	return &rosterSourceStub{
		batch: &models.Batch{ID: 4, MentorName: "Priya"},
		students: []models.BatchStudent{
			{ID: 1, Name: "Asha", Email: "asha@test.com", PhoneNumber: "111", Amount: 1500, JoinedAt: "2026-01-10"},
			{ID: 2, Name: "Ravi", Email: "ravi@test.com", PhoneNumber: "222", Amount: 2000, JoinedAt: "2026-02-01"},
		},
	}
}

func TestExportRosterCSV(t *testing.T) {
	svc := NewExportService(rosterFixture(), nil)

	file, err := svc.Roster(context.Background(), "tok", 4, "csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", file.ContentType)
	assert.Equal(t, "batch-4-roster.csv", file.Filename)

	content := string(file.Content)
	assert.True(t, strings.HasPrefix(content, "ID,Name,Email,Phone,Amount,Joined At"))
	assert.Contains(t, content, "Asha")
	assert.Contains(t, content, "1500.00")
}

func TestExportRosterPDF(t *testing.T) {
	svc := NewExportService(rosterFixture(), nil)

	file, err := svc.Roster(context.Background(), "tok", 4, "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.Equal(t, "batch-4-roster.pdf", file.Filename)
	assert.True(t, len(file.Content) > 0)
}

func TestExportRosterUnknownFormat(t *testing.T) {
	svc := NewExportService(rosterFixture(), nil)

	_, err := svc.Roster(context.Background(), "tok", 4, "xlsx")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
