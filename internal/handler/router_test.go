package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightup/admin-gateway/internal/middleware"
	"github.com/brightup/admin-gateway/internal/models"
	"github.com/brightup/admin-gateway/internal/session"
	appErrors "github.com/brightup/admin-gateway/pkg/errors"
)

type routerKV struct {
	mu     sync.Mutex
	values map[string]string
}

func newRouterKV() *routerKV {
	return &routerKV{values: map[string]string{}}
}

func (m *routerKV) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return "", session.ErrNoSession
	}
	return v, nil
}

func (m *routerKV) Set(_ context.Context, key, value string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *routerKV) Del(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.values, key)
	}
	return nil
}

// routerToken mints a decodable upstream token so the session survives the
// guard's expiry check.
func routerToken(t *testing.T) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tok.SignedString([]byte("test_secret"))
	require.NoError(t, err)
	return signed
}

type fixedBatchClient struct {
	batches []models.Batch
}

func (f *fixedBatchClient) ListBatches(context.Context, string) ([]models.Batch, error) {
	return f.batches, nil
}

func (f *fixedBatchClient) GetBatch(_ context.Context, _ string, id int64) (*models.Batch, error) {
	for i := range f.batches {
		if f.batches[i].ID == id {
			return &f.batches[i], nil
		}
	}
	return nil, appErrors.ErrNotFound
}

func (f *fixedBatchClient) CreateBatch(context.Context, string, models.BatchRequest) (*models.SuccessMessage, error) {
	return &models.SuccessMessage{Message: "created"}, nil
}

func (f *fixedBatchClient) UpdateBatch(context.Context, string, int64, models.BatchRequest) (*models.SuccessMessage, error) {
	return &models.SuccessMessage{Message: "updated"}, nil
}

func (f *fixedBatchClient) DeleteBatch(context.Context, string, int64) (*models.SuccessMessage, error) {
	return &models.SuccessMessage{Message: "deleted"}, nil
}

// guardedRouter mounts the batch routes behind a real session guard backed
// by an in-memory store, close to the wiring in main.
func guardedRouter(t *testing.T, store *session.Store) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()

	batches := make([]models.Batch, 12)
	for i := range batches {
		batches[i] = models.Batch{ID: int64(i + 1)}
	}

	Routes{
		Auth:      NewAuthHandler(&fakeAuthSrv{}),
		Users:     NewUserHandler(&fixedUserClient{}, nil),
		Students:  NewStudentHandler(&fixedStudentClient{}, nil),
		Syllabi:   NewSyllabusHandler(&fixedSyllabusClient{}, nil),
		Batches:   NewBatchHandler(&fixedBatchClient{batches: batches}, nil),
		Schedules: NewScheduleHandler(&fixedScheduleClient{}, nil),
		Mappings:  NewMappingHandler(&fixedMappingClient{}, nil),
		Overview:  NewOverviewHandler(&fakeOverviewSrv{}),
		Guard:     middleware.SessionGuard(store),
	}.Register(r)
	return r
}

func TestRouterRejectsMissingSession(t *testing.T) {
	store := session.NewStore(newRouterKV(), time.Hour, nil)
	r := guardedRouter(t, store)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/batches", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouterRejectsUnknownSession(t *testing.T) {
	store := session.NewStore(newRouterKV(), time.Hour, nil)
	r := guardedRouter(t, store)

	req := httptest.NewRequest(http.MethodGet, "/batches", nil)
	req.Header.Set("Authorization", "Bearer nope")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, appErrors.ErrSessionExpired.Code, envelope.Error["code"])
}

func TestRouterServesGuardedRouteWithLiveSession(t *testing.T) {
	store := session.NewStore(newRouterKV(), time.Hour, nil)
	sess, err := store.Create(context.Background(), routerToken(t), models.User{ID: 1, Name: "Admin"})
	require.NoError(t, err)

	r := guardedRouter(t, store)

	req := httptest.NewRequest(http.MethodGet, "/batches?page=2&page_size=5", nil)
	req.Header.Set("Authorization", "Bearer "+sess.ID)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope struct {
		Data       []map[string]interface{} `json:"data"`
		Pagination map[string]interface{}   `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	// 12 batches, page 2 of size 5 holds IDs 6..10.
	require.Len(t, envelope.Data, 5)
	assert.Equal(t, float64(6), envelope.Data[0]["id"])
	assert.Equal(t, float64(12), envelope.Pagination["total_count"])
}

func TestRouterLogoutInvalidatesSession(t *testing.T) {
	store := session.NewStore(newRouterKV(), time.Hour, nil)
	sess, err := store.Create(context.Background(), routerToken(t), models.User{ID: 1})
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	// Wire a real auth service boundary: logout must clear the store the
	// guard reads from.
	Routes{
		Auth:      NewAuthHandler(&storeBackedAuth{store: store}),
		Users:     NewUserHandler(&fixedUserClient{}, nil),
		Students:  NewStudentHandler(&fixedStudentClient{}, nil),
		Syllabi:   NewSyllabusHandler(&fixedSyllabusClient{}, nil),
		Batches:   NewBatchHandler(&fixedBatchClient{}, nil),
		Schedules: NewScheduleHandler(&fixedScheduleClient{}, nil),
		Mappings:  NewMappingHandler(&fixedMappingClient{}, nil),
		Overview:  NewOverviewHandler(&fakeOverviewSrv{}),
		Guard:     middleware.SessionGuard(store),
	}.Register(r)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+sess.ID)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// The session is gone; the next guarded call gets a 401.
	req = httptest.NewRequest(http.MethodGet, "/batches", nil)
	req.Header.Set("Authorization", "Bearer "+sess.ID)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

type storeBackedAuth struct {
	store *session.Store
}

func (s *storeBackedAuth) Login(context.Context, models.LoginRequest) (*models.LoginResponse, error) {
	return nil, appErrors.ErrInvalidCredentials
}

func (s *storeBackedAuth) Logout(ctx context.Context, sessionID string) error {
	return s.store.Clear(ctx, sessionID)
}

// No-op upstream stubs keeping the full route table mountable.

type fixedUserClient struct{}

func (fixedUserClient) ListUsers(context.Context, string) ([]models.User, error) {
	return nil, nil
}

func (fixedUserClient) GetUser(context.Context, string, int64) (*models.User, error) {
	return &models.User{}, nil
}

func (fixedUserClient) CreateUser(context.Context, string, models.UserCreationRequest) (*models.User, error) {
	return &models.User{}, nil
}

type fixedStudentClient struct{}

func (fixedStudentClient) ListStudents(context.Context, string) ([]models.Student, error) {
	return nil, nil
}

func (fixedStudentClient) GetStudent(context.Context, string, int64) (*models.Student, error) {
	return &models.Student{}, nil
}

func (fixedStudentClient) CreateStudent(context.Context, string, models.StudentRequest) (*models.SuccessMessage, error) {
	return &models.SuccessMessage{}, nil
}

func (fixedStudentClient) UpdateStudent(context.Context, string, int64, models.StudentRequest) (*models.SuccessMessage, error) {
	return &models.SuccessMessage{}, nil
}

func (fixedStudentClient) DeleteStudent(context.Context, string, int64) (*models.SuccessMessage, error) {
	return &models.SuccessMessage{}, nil
}

type fixedSyllabusClient struct{}

func (fixedSyllabusClient) ListSyllabi(context.Context, string) ([]models.Syllabus, error) {
	return nil, nil
}

func (fixedSyllabusClient) GetSyllabus(context.Context, string, int64) (*models.Syllabus, error) {
	return &models.Syllabus{}, nil
}

func (fixedSyllabusClient) CreateSyllabus(context.Context, string, models.SyllabusRequest) (*models.SuccessMessage, error) {
	return &models.SuccessMessage{}, nil
}

func (fixedSyllabusClient) UpdateSyllabus(context.Context, string, int64, models.SyllabusRequest) (*models.SuccessMessage, error) {
	return &models.SuccessMessage{}, nil
}

func (fixedSyllabusClient) DeleteSyllabus(context.Context, string, int64) (*models.SuccessMessage, error) {
	return &models.SuccessMessage{}, nil
}

type fixedScheduleClient struct{}

func (fixedScheduleClient) ListSchedules(context.Context, string, int64) ([]models.ClassSchedule, error) {
	return nil, nil
}

func (fixedScheduleClient) CreateSchedule(context.Context, string, int64, models.ClassScheduleRequest) (*models.SuccessMessage, error) {
	return &models.SuccessMessage{}, nil
}

func (fixedScheduleClient) UpdateSchedule(context.Context, string, int64, int64, models.ClassScheduleRequest) (*models.SuccessMessage, error) {
	return &models.SuccessMessage{}, nil
}

func (fixedScheduleClient) DeleteSchedule(context.Context, string, int64, int64) (*models.SuccessMessage, error) {
	return &models.SuccessMessage{}, nil
}

type fixedMappingClient struct{}

func (fixedMappingClient) MapStudentToBatch(context.Context, string, int64, models.MapStudentRequest) (*models.SuccessMessage, error) {
	return &models.SuccessMessage{}, nil
}

func (fixedMappingClient) BatchStudents(context.Context, string, int64) ([]models.BatchStudent, error) {
	return nil, nil
}

func (fixedMappingClient) GetMapping(context.Context, string, int64) (*models.BatchStudent, error) {
	return &models.BatchStudent{}, nil
}

func (fixedMappingClient) UpdateMapping(context.Context, string, int64, models.UpdateBatchStudentRequest) (*models.SuccessMessage, error) {
	return &models.SuccessMessage{}, nil
}

func (fixedMappingClient) DeleteMapping(context.Context, string, int64) (*models.SuccessMessage, error) {
	return &models.SuccessMessage{}, nil
}
