package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/brightup/admin-gateway/internal/dto"
	"github.com/brightup/admin-gateway/internal/models"
)

type dashboardClient interface {
	ListBatches(ctx context.Context, token string) ([]models.Batch, error)
	ListStudents(ctx context.Context, token string) ([]models.Student, error)
	ListSyllabi(ctx context.Context, token string) ([]models.Syllabus, error)
}

// DashboardService produces the landing-page summary counts. The three
// upstream fetches are independent and run concurrently with no ordering
// guarantee; any failure fails the whole summary.
type DashboardService struct {
	client dashboardClient
	logger *zap.Logger
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(client dashboardClient, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{client: client, logger: logger}
}

// Summary counts batches, students and syllabi.
func (s *DashboardService) Summary(ctx context.Context, token string) (*dto.DashboardSummary, error) {
	summary := &dto.DashboardSummary{}
	errs := make([]error, 3)

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		batches, err := s.client.ListBatches(ctx, token)
		if err != nil {
			errs[0] = err
			return
		}
		summary.Batches = len(batches)
	}()

	go func() {
		defer wg.Done()
		students, err := s.client.ListStudents(ctx, token)
		if err != nil {
			errs[1] = err
			return
		}
		summary.Students = len(students)
	}()

	go func() {
		defer wg.Done()
		syllabi, err := s.client.ListSyllabi(ctx, token)
		if err != nil {
			errs[2] = err
			return
		}
		summary.Syllabi = len(syllabi)
	}()

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			s.logger.Warn("dashboard summary fetch failed", zap.Error(err))
			return nil, err
		}
	}

	return summary, nil
}
