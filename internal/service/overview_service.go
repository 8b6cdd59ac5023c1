package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/brightup/admin-gateway/internal/dto"
	"github.com/brightup/admin-gateway/internal/models"
	appErrors "github.com/brightup/admin-gateway/pkg/errors"
)

type overviewClient interface {
	GetBatch(ctx context.Context, token string, id int64) (*models.Batch, error)
	BatchStudents(ctx context.Context, token string, batchID int64) ([]models.BatchStudent, error)
	ListSchedules(ctx context.Context, token string, batchID int64) ([]models.ClassSchedule, error)
	MapStudentToBatch(ctx context.Context, token string, studentID int64, req models.MapStudentRequest) (*models.SuccessMessage, error)
}

// OverviewService composes one batch's students, weekly schedule and
// syllabus into independently loaded tabs. Tab payloads are cached per
// batch ID, so revisiting a tab for the same batch is served from cache
// while a different batch always fetches fresh data.
type OverviewService struct {
	client    overviewClient
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
	cacheTTL  time.Duration
}

// NewOverviewService constructs an OverviewService.
func NewOverviewService(client overviewClient, cache *CacheService, validate *validator.Validate, logger *zap.Logger, cacheTTL time.Duration) *OverviewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &OverviewService{client: client, cache: cache, validator: validate, logger: logger, cacheTTL: cacheTTL}
}

func overviewKey(batchID int64, tab string) string {
	return fmt.Sprintf("overview:%d:%s", batchID, tab)
}

// Batch returns the batch record heading the overview.
func (s *OverviewService) Batch(ctx context.Context, token string, batchID int64) (*models.Batch, bool, error) {
	key := overviewKey(batchID, "batch")
	var cached models.Batch
	if hit, err := s.cacheGet(ctx, key, &cached); err == nil && hit {
		return &cached, true, nil
	}

	batch, err := s.client.GetBatch(ctx, token, batchID)
	if err != nil {
		return nil, false, err
	}
	s.cacheSet(ctx, key, batch)
	return batch, false, nil
}

// Students loads the students tab.
func (s *OverviewService) Students(ctx context.Context, token string, batchID int64) ([]models.BatchStudent, bool, error) {
	key := overviewKey(batchID, "students")
	var cached []models.BatchStudent
	if hit, err := s.cacheGet(ctx, key, &cached); err == nil && hit {
		return cached, true, nil
	}

	students, err := s.client.BatchStudents(ctx, token, batchID)
	if err != nil {
		return nil, false, err
	}
	s.cacheSet(ctx, key, students)
	return students, false, nil
}

// Schedule loads the weekly class schedule tab.
func (s *OverviewService) Schedule(ctx context.Context, token string, batchID int64) ([]models.ClassSchedule, bool, error) {
	key := overviewKey(batchID, "schedule")
	var cached []models.ClassSchedule
	if hit, err := s.cacheGet(ctx, key, &cached); err == nil && hit {
		return cached, true, nil
	}

	schedules, err := s.client.ListSchedules(ctx, token, batchID)
	if err != nil {
		return nil, false, err
	}
	s.cacheSet(ctx, key, schedules)
	return schedules, false, nil
}

// Syllabus serves the syllabus tab from the topic groups embedded in the
// batch record; no separate catalog fetch is made.
func (s *OverviewService) Syllabus(ctx context.Context, token string, batchID int64) (*dto.SyllabusTab, error) {
	batch, _, err := s.Batch(ctx, token, batchID)
	if err != nil {
		return nil, err
	}

	tab := &dto.SyllabusTab{BatchID: batch.ID, Groups: []dto.SyllabusItem{}}
	for _, group := range batch.Syllabus {
		tab.Groups = append(tab.Groups, dto.SyllabusItem{ID: group.ID, Name: group.Name, Topics: group.Topics})
	}
	return tab, nil
}

// AddStudent maps a student into the batch and invalidates the students tab
// only; the schedule and syllabus tabs are untouched.
func (s *OverviewService) AddStudent(ctx context.Context, token string, batchID int64, req dto.AddStudentRequest) (*models.SuccessMessage, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid enrollment payload")
	}

	msg, err := s.client.MapStudentToBatch(ctx, token, req.StudentID, models.MapStudentRequest{
		BatchID:  batchID,
		Amount:   req.Amount,
		JoinedAt: req.JoinedAt,
	})
	if err != nil {
		return nil, err
	}

	if err := s.cache.Invalidate(ctx, overviewKey(batchID, "students")); err != nil {
		s.logger.Warn("failed to invalidate students tab", zap.Int64("batch_id", batchID), zap.Error(err))
	}
	return msg, nil
}

func (s *OverviewService) cacheGet(ctx context.Context, key string, dest interface{}) (bool, error) {
	if s.cache == nil {
		return false, nil
	}
	hit, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		// A broken cache degrades to a fetch, not a failed tab.
		return false, nil
	}
	return hit, nil
}

func (s *OverviewService) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value, s.cacheTTL); err != nil {
		s.logger.Warn("overview cache write failed", zap.String("key", key), zap.Error(err))
	}
}
