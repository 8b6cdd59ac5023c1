package models

// LoginRequest holds credentials submitted to the core API login endpoint.
type LoginRequest struct {
	UserName string `json:"userName" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResult is the payload returned by the core API on successful login.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Contact     string `json:"contact"`
}

// LoginResponse is what the gateway hands back to the admin UI.
type LoginResponse struct {
	SessionID string `json:"session_id"`
	Token     string `json:"token"`
	User      User   `json:"user"`
}
