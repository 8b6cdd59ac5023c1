package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightup/admin-gateway/internal/dto"
	"github.com/brightup/admin-gateway/internal/middleware"
	"github.com/brightup/admin-gateway/internal/models"
	"github.com/brightup/admin-gateway/internal/session"
	appErrors "github.com/brightup/admin-gateway/pkg/errors"
)

type fakeOverviewSrv struct {
	batch     *models.Batch
	students  []models.BatchStudent
	schedules []models.ClassSchedule
	syllabus  *dto.SyllabusTab
	hit       bool
	err       error
	added     []dto.AddStudentRequest
}

func (f *fakeOverviewSrv) Batch(context.Context, string, int64) (*models.Batch, bool, error) {
	return f.batch, f.hit, f.err
}

func (f *fakeOverviewSrv) Students(context.Context, string, int64) ([]models.BatchStudent, bool, error) {
	return f.students, f.hit, f.err
}

func (f *fakeOverviewSrv) Schedule(context.Context, string, int64) ([]models.ClassSchedule, bool, error) {
	return f.schedules, f.hit, f.err
}

func (f *fakeOverviewSrv) Syllabus(context.Context, string, int64) (*dto.SyllabusTab, error) {
	return f.syllabus, f.err
}

func (f *fakeOverviewSrv) AddStudent(_ context.Context, _ string, _ int64, req dto.AddStudentRequest) (*models.SuccessMessage, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.added = append(f.added, req)
	return &models.SuccessMessage{Message: "mapped"}, nil
}

func overviewTestContext(t *testing.T, method, target string, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.ContextSessionKey, &session.Session{ID: "sess-1", Token: "tok"})
	c.Params = gin.Params{{Key: "batchId", Value: "5"}}
	return c, rec
}

func TestOverviewHandlerScheduleReportsCacheHit(t *testing.T) {
	srv := &fakeOverviewSrv{schedules: []models.ClassSchedule{{ID: 1, Day: "Monday"}}, hit: true}
	handler := NewOverviewHandler(srv)

	c, rec := overviewTestContext(t, http.MethodGet, "/batches/5/overview/schedule", "")
	handler.Schedule(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope struct {
		Data []map[string]interface{} `json:"data"`
		Meta map[string]interface{}   `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, true, envelope.Meta["cache_hit"])
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "Monday", envelope.Data[0]["day"])
}

func TestOverviewHandlerStudentsFreshFetch(t *testing.T) {
	srv := &fakeOverviewSrv{students: []models.BatchStudent{{ID: 9, Name: "Asha"}}, hit: false}
	handler := NewOverviewHandler(srv)

	c, rec := overviewTestContext(t, http.MethodGet, "/batches/5/overview/students", "")
	handler.Students(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope struct {
		Meta map[string]interface{} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, false, envelope.Meta["cache_hit"])
}

func TestOverviewHandlerInvalidBatchID(t *testing.T) {
	handler := NewOverviewHandler(&fakeOverviewSrv{})

	c, rec := overviewTestContext(t, http.MethodGet, "/batches/abc/overview/schedule", "")
	c.Params = gin.Params{{Key: "batchId", Value: "abc"}}
	handler.Schedule(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOverviewHandlerAddStudent(t *testing.T) {
	srv := &fakeOverviewSrv{}
	handler := NewOverviewHandler(srv)

	c, rec := overviewTestContext(t, http.MethodPost, "/batches/5/overview/students",
		`{"student_id":42,"amount":1500,"joined_at":"2026-01-15"}`)
	handler.AddStudent(c)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, srv.added, 1)
	assert.Equal(t, int64(42), srv.added[0].StudentID)
}

func TestOverviewHandlerAddStudentConflict(t *testing.T) {
	srv := &fakeOverviewSrv{err: appErrors.New("STUDENT_ALREADY_MAPPED_TO_BATCH", http.StatusConflict,
		appErrors.Humanize("STUDENT_ALREADY_MAPPED_TO_BATCH"))}
	handler := NewOverviewHandler(srv)

	c, rec := overviewTestContext(t, http.MethodPost, "/batches/5/overview/students",
		`{"student_id":42,"amount":1500,"joined_at":"2026-01-15"}`)
	handler.AddStudent(c)

	require.Equal(t, http.StatusConflict, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "Student Already Mapped To Batch.", envelope.Error["message"])
}
