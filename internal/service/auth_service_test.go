package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightup/admin-gateway/internal/models"
	"github.com/brightup/admin-gateway/internal/session"
	appErrors "github.com/brightup/admin-gateway/pkg/errors"
)

type loginClientStub struct {
	result *models.LoginResult
	err    error
}

func (s *loginClientStub) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type sessionStoreStub struct {
	created []session.Session
	cleared []string
	err     error
}

func (s *sessionStoreStub) Create(ctx context.Context, token string, user models.User) (*session.Session, error) {
	if s.err != nil {
		return nil, s.err
	}
	sess := session.Session{ID: "sess-1", Token: token, User: user}
	s.created = append(s.created, sess)
	return &sess, nil
}

func (s *sessionStoreStub) Clear(ctx context.Context, id string) error {
	s.cleared = append(s.cleared, id)
	return s.err
}

func TestAuthServiceLoginSuccess(t *testing.T) {
	client := &loginClientStub{result: &models.LoginResult{
		AccessToken: "abc.def.ghi",
		ID:          1,
		Name:        "Admin",
		Role:        "Admin",
		Contact:     "123",
	}}
	store := &sessionStoreStub{}
	svc := NewAuthService(client, store, nil, nil)

	resp, err := svc.Login(context.Background(), models.LoginRequest{UserName: "admin@test.com", Password: "secret"})
	require.NoError(t, err)

	assert.Equal(t, "sess-1", resp.SessionID)
	assert.Equal(t, "abc.def.ghi", resp.Token)
	assert.Equal(t, int64(1), resp.User.ID)
	assert.Equal(t, "Admin", resp.User.Name)
	assert.Equal(t, "admin@test.com", resp.User.Username)
	assert.Equal(t, models.RoleAdmin, resp.User.Role)
	assert.True(t, resp.User.IsActive)
	assert.False(t, resp.User.CreatedAt.IsZero())

	// Exactly one session was persisted, holding token and user together.
	require.Len(t, store.created, 1)
	assert.Equal(t, "abc.def.ghi", store.created[0].Token)
	assert.Equal(t, int64(1), store.created[0].User.ID)
}

func TestAuthServiceLoginInvalidCredentials(t *testing.T) {
	client := &loginClientStub{err: appErrors.New("INVALID_CREDENTIALS", http.StatusUnauthorized, "Invalid credentials.")}
	store := &sessionStoreStub{}
	svc := NewAuthService(client, store, nil, nil)

	_, err := svc.Login(context.Background(), models.LoginRequest{UserName: "admin@test.com", Password: "wrong"})
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErr.Code)
	assert.Empty(t, store.created, "failed login must not persist a session")
}

func TestAuthServiceLoginValidation(t *testing.T) {
	client := &loginClientStub{}
	store := &sessionStoreStub{}
	svc := NewAuthService(client, store, nil, nil)

	_, err := svc.Login(context.Background(), models.LoginRequest{UserName: "", Password: ""})
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Empty(t, store.created)
}

func TestAuthServiceLogout(t *testing.T) {
	store := &sessionStoreStub{}
	svc := NewAuthService(&loginClientStub{}, store, nil, nil)

	require.NoError(t, svc.Logout(context.Background(), "sess-1"))
	assert.Equal(t, []string{"sess-1"}, store.cleared)
}

func TestAuthServiceLogoutEmptySession(t *testing.T) {
	store := &sessionStoreStub{}
	svc := NewAuthService(&loginClientStub{}, store, nil, nil)

	require.NoError(t, svc.Logout(context.Background(), ""))
	assert.Empty(t, store.cleared)
}
