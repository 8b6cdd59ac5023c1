package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightup/admin-gateway/internal/models"
	"github.com/brightup/admin-gateway/pkg/config"
	appErrors "github.com/brightup/admin-gateway/pkg/errors"
)

func testClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := New(config.UpstreamConfig{BaseURL: server.URL, Timeout: 5 * time.Second}, nil, nil)
	return client, server
}

func TestClientLoginUnwrapsEnvelope(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "admin@test.com", req.UserName)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status_message":"ok","data":{"access_token":"abc.def.ghi","id":1,"name":"Admin","role":"Admin","contact":"123"}}`))
	}))

	result, err := client.Login(context.Background(), models.LoginRequest{UserName: "admin@test.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", result.AccessToken)
	assert.Equal(t, int64(1), result.ID)
	assert.Equal(t, "Admin", result.Name)
}

func TestClientForwardsBearerToken(t *testing.T) {
	var seen string
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"status_message":"ok","data":[]}`))
	}))

	_, err := client.ListStudents(context.Background(), "token-123")
	require.NoError(t, err)
	assert.Equal(t, "Bearer token-123", seen)
}

func TestClientTranslatesBusinessError(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"detail":"SCHEDULE_FOR_THIS_DAY_ALREADY_EXISTS_FOR_THIS_BATCH"}`))
	}))

	_, err := client.CreateSchedule(context.Background(), "tok", 7, models.ClassScheduleRequest{
		Day: models.Monday, StartTime: "10:00", EndTime: "12:00",
	})
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, "SCHEDULE_FOR_THIS_DAY_ALREADY_EXISTS_FOR_THIS_BATCH", appErr.Code)
	assert.Equal(t, http.StatusConflict, appErr.Status)
	assert.Equal(t, "Schedule for this day already exists for this batch.", appErr.Message)
}

func TestClientGenericErrorWhenUndecodable(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`boom`))
	}))

	_, err := client.ListBatches(context.Background(), "tok")
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrUpstream.Code, appErr.Code)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
}

func TestClientHonorsContextCancellation(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.ListUsers(ctx, "tok")
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrUpstream.Code, appErr.Code)
}
