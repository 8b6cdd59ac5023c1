package upstream

import (
	"context"
	"net/http"

	"github.com/brightup/admin-gateway/internal/models"
)

// Login exchanges credentials for an access token and a minimal profile.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResult, error) {
	var result models.LoginResult
	if err := c.do(ctx, http.MethodPost, "/login", "", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
