package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/brightup/admin-gateway/internal/models"
	"github.com/brightup/admin-gateway/internal/session"
	appErrors "github.com/brightup/admin-gateway/pkg/errors"
)

type loginClient interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResult, error)
}

type sessionStore interface {
	Create(ctx context.Context, token string, user models.User) (*session.Session, error)
	Clear(ctx context.Context, id string) error
}

// AuthService drives the session lifecycle: it authenticates against the
// core API and owns session creation and teardown.
type AuthService struct {
	client    loginClient
	sessions  sessionStore
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(client loginClient, sessions sessionStore, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AuthService{client: client, sessions: sessions, validator: validate, logger: logger, now: time.Now}
}

// Login exchanges credentials for a gateway session. The core API's login
// response carries only a minimal profile, so the full user record is
// synthesized here: tagged active, with the username from the request and a
// creation time stamped at login.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload")
	}

	result, err := s.client.Login(ctx, req)
	if err != nil {
		appErr := appErrors.FromError(err)
		if appErr.Status == appErrors.ErrUnauthorized.Status {
			return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, appErr.Message)
		}
		return nil, err
	}

	user := models.User{
		ID:        result.ID,
		Name:      result.Name,
		Username:  req.UserName,
		Contact:   result.Contact,
		Role:      models.UserRole(result.Role),
		CreatedAt: s.now().UTC(),
		IsActive:  true,
	}

	sess, err := s.sessions.Create(ctx, result.AccessToken, user)
	if err != nil {
		s.logger.Error("failed to persist session", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create session")
	}

	return &models.LoginResponse{
		SessionID: sess.ID,
		Token:     sess.Token,
		User:      user,
	}, nil
}

// Logout destroys the session. Clearing an already-gone session is a no-op.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Clear(ctx, sessionID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to clear session")
	}
	return nil
}
