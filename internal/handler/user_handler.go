package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/brightup/admin-gateway/internal/models"
	appErrors "github.com/brightup/admin-gateway/pkg/errors"
	"github.com/brightup/admin-gateway/pkg/response"
)

type userClient interface {
	ListUsers(ctx context.Context, token string) ([]models.User, error)
	GetUser(ctx context.Context, token string, id int64) (*models.User, error)
	CreateUser(ctx context.Context, token string, req models.UserCreationRequest) (*models.User, error)
}

// UserHandler proxies back-office user administration to the core API.
type UserHandler struct {
	client   userClient
	validate *validator.Validate
}

// NewUserHandler constructs UserHandler.
func NewUserHandler(client userClient, validate *validator.Validate) *UserHandler {
	if validate == nil {
		validate = validator.New()
	}
	return &UserHandler{client: client, validate: validate}
}

// List godoc
// @Summary List back-office users
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param page_size query int false "Page size (5, 10, 25 or 50)"
// @Success 200 {object} response.Envelope
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.client.ListUsers(c.Request.Context(), currentToken(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	page, size := pageParams(c)
	pageItems, pagination := paginate(users, page, size)
	response.JSON(c, http.StatusOK, pageItems, pagination)
}

// Get godoc
// @Summary Get one user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} response.Envelope
// @Router /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid user id"))
		return
	}

	user, err := h.client.GetUser(c.Request.Context(), currentToken(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, user, nil)
}

// Create godoc
// @Summary Create a back-office user
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.UserCreationRequest true "User payload"
// @Success 201 {object} response.Envelope
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req models.UserCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid user payload"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid user payload"))
		return
	}

	user, err := h.client.CreateUser(c.Request.Context(), currentToken(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, user)
}
