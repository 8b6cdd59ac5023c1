package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightup/admin-gateway/internal/dto"
	"github.com/brightup/admin-gateway/internal/models"
	appErrors "github.com/brightup/admin-gateway/pkg/errors"
)

type memoryCacheRepo struct {
	values map[string][]byte
}

func newMemoryCacheRepo() *memoryCacheRepo {
	return &memoryCacheRepo{values: map[string][]byte{}}
}

func (m *memoryCacheRepo) Get(ctx context.Context, key string, dest interface{}) error {
	raw, ok := m.values[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.values[key] = raw
	return nil
}

func (m *memoryCacheRepo) DeleteByPattern(ctx context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	for key := range m.values {
		if strings.HasPrefix(key, prefix) {
			delete(m.values, key)
		}
	}
	return nil
}

type overviewClientStub struct {
	batches       map[int64]*models.Batch
	scheduleCalls map[int64]int
	studentCalls  map[int64]int
	mapErr        error
	mapped        []models.MapStudentRequest
}

func newOverviewClientStub() *overviewClientStub {
	return &overviewClientStub{
		batches:       map[int64]*models.Batch{},
		scheduleCalls: map[int64]int{},
		studentCalls:  map[int64]int{},
	}
}

func (s *overviewClientStub) GetBatch(ctx context.Context, token string, id int64) (*models.Batch, error) {
	if batch, ok := s.batches[id]; ok {
		return batch, nil
	}
	return nil, appErrors.ErrNotFound
}

func (s *overviewClientStub) BatchStudents(ctx context.Context, token string, batchID int64) ([]models.BatchStudent, error) {
	s.studentCalls[batchID]++
	return []models.BatchStudent{{ID: batchID * 10, Name: "Student"}}, nil
}

func (s *overviewClientStub) ListSchedules(ctx context.Context, token string, batchID int64) ([]models.ClassSchedule, error) {
	s.scheduleCalls[batchID]++
	return []models.ClassSchedule{{ID: batchID * 100, Day: "Monday"}}, nil
}

func (s *overviewClientStub) MapStudentToBatch(ctx context.Context, token string, studentID int64, req models.MapStudentRequest) (*models.SuccessMessage, error) {
	if s.mapErr != nil {
		return nil, s.mapErr
	}
	s.mapped = append(s.mapped, req)
	return &models.SuccessMessage{Message: "mapped"}, nil
}

func newOverviewFixture(t *testing.T) (*OverviewService, *overviewClientStub, *memoryCacheRepo) {
	t.Helper()
	client := newOverviewClientStub()
	repo := newMemoryCacheRepo()
	cache := NewCacheService(repo, nil, time.Minute, nil, true)
	svc := NewOverviewService(client, cache, nil, nil, time.Minute)
	return svc, client, repo
}

func TestOverviewScheduleCachedPerBatch(t *testing.T) {
	svc, client, _ := newOverviewFixture(t)
	ctx := context.Background()

	// Batch A: first load fetches, second load hits the cache.
	_, hit, err := svc.Schedule(ctx, "tok", 1)
	require.NoError(t, err)
	assert.False(t, hit)

	_, hit, err = svc.Schedule(ctx, "tok", 1)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 1, client.scheduleCalls[1])

	// Switching to batch B issues a fresh fetch; the cache is keyed by
	// batch ID, not globally.
	schedules, hit, err := svc.Schedule(ctx, "tok", 2)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 1, client.scheduleCalls[2])
	require.Len(t, schedules, 1)
	assert.Equal(t, int64(200), schedules[0].ID)
}

func TestOverviewStudentsCachedPerBatch(t *testing.T) {
	svc, client, _ := newOverviewFixture(t)
	ctx := context.Background()

	_, hit, err := svc.Students(ctx, "tok", 7)
	require.NoError(t, err)
	assert.False(t, hit)

	_, hit, err = svc.Students(ctx, "tok", 7)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 1, client.studentCalls[7])
}

func TestOverviewSyllabusReadsEmbeddedGroups(t *testing.T) {
	svc, client, _ := newOverviewFixture(t)
	client.batches[3] = &models.Batch{
		ID: 3,
		Syllabus: []models.SyllabusGroup{
			{ID: 11, Name: "Go Basics", Topics: []string{"syntax", "slices"}},
		},
	}

	tab, err := svc.Syllabus(context.Background(), "tok", 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), tab.BatchID)
	require.Len(t, tab.Groups, 1)
	assert.Equal(t, "Go Basics", tab.Groups[0].Name)
	assert.Equal(t, []string{"syntax", "slices"}, tab.Groups[0].Topics)
}

func TestOverviewAddStudentInvalidatesStudentsTabOnly(t *testing.T) {
	svc, client, repo := newOverviewFixture(t)
	ctx := context.Background()

	// Warm both tab caches for batch 5.
	_, _, err := svc.Students(ctx, "tok", 5)
	require.NoError(t, err)
	_, _, err = svc.Schedule(ctx, "tok", 5)
	require.NoError(t, err)

	_, err = svc.AddStudent(ctx, "tok", 5, dto.AddStudentRequest{StudentID: 42, Amount: 1500, JoinedAt: "2026-01-15"})
	require.NoError(t, err)

	require.Len(t, client.mapped, 1)
	assert.Equal(t, int64(5), client.mapped[0].BatchID)

	_, hasStudents := repo.values["overview:5:students"]
	_, hasSchedule := repo.values["overview:5:schedule"]
	assert.False(t, hasStudents, "students tab must be invalidated")
	assert.True(t, hasSchedule, "schedule tab must survive the enrollment")
}

func TestOverviewAddStudentValidation(t *testing.T) {
	svc, client, _ := newOverviewFixture(t)

	_, err := svc.AddStudent(context.Background(), "tok", 5, dto.AddStudentRequest{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Empty(t, client.mapped)
}

func TestOverviewAddStudentSurfacesUpstreamError(t *testing.T) {
	svc, client, _ := newOverviewFixture(t)
	client.mapErr = appErrors.New("STUDENT_ALREADY_MAPPED_TO_BATCH", 409, appErrors.Humanize("STUDENT_ALREADY_MAPPED_TO_BATCH"))

	_, err := svc.AddStudent(context.Background(), "tok", 5, dto.AddStudentRequest{StudentID: 42, Amount: 1500, JoinedAt: "2026-01-15"})
	require.Error(t, err)
	assert.Equal(t, "Student Already Mapped To Batch.", appErrors.FromError(err).Message)
}
