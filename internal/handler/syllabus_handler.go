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

type syllabusClient interface {
	ListSyllabi(ctx context.Context, token string) ([]models.Syllabus, error)
	GetSyllabus(ctx context.Context, token string, id int64) (*models.Syllabus, error)
	CreateSyllabus(ctx context.Context, token string, req models.SyllabusRequest) (*models.SuccessMessage, error)
	UpdateSyllabus(ctx context.Context, token string, id int64, req models.SyllabusRequest) (*models.SuccessMessage, error)
	DeleteSyllabus(ctx context.Context, token string, id int64) (*models.SuccessMessage, error)
}

// SyllabusHandler proxies syllabus catalog maintenance to the core API.
type SyllabusHandler struct {
	client   syllabusClient
	validate *validator.Validate
}

// NewSyllabusHandler constructs SyllabusHandler.
func NewSyllabusHandler(client syllabusClient, validate *validator.Validate) *SyllabusHandler {
	if validate == nil {
		validate = validator.New()
	}
	return &SyllabusHandler{client: client, validate: validate}
}

// List godoc
// @Summary List syllabus entries
// @Tags Syllabus
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param page_size query int false "Page size (5, 10, 25 or 50)"
// @Success 200 {object} response.Envelope
// @Router /syllabus [get]
func (h *SyllabusHandler) List(c *gin.Context) {
	syllabi, err := h.client.ListSyllabi(c.Request.Context(), currentToken(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	page, size := pageParams(c)
	pageItems, pagination := paginate(syllabi, page, size)
	response.JSON(c, http.StatusOK, pageItems, pagination)
}

// Get godoc
// @Summary Get one syllabus entry
// @Tags Syllabus
// @Produce json
// @Security BearerAuth
// @Param id path int true "Syllabus ID"
// @Success 200 {object} response.Envelope
// @Router /syllabus/{id} [get]
func (h *SyllabusHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid syllabus id"))
		return
	}

	syllabus, err := h.client.GetSyllabus(c.Request.Context(), currentToken(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, syllabus, nil)
}

// Create godoc
// @Summary Create a syllabus entry
// @Tags Syllabus
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.SyllabusRequest true "Syllabus payload"
// @Success 201 {object} response.Envelope
// @Router /syllabus [post]
func (h *SyllabusHandler) Create(c *gin.Context) {
	var req models.SyllabusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid syllabus payload"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid syllabus payload"))
		return
	}

	msg, err := h.client.CreateSyllabus(c.Request.Context(), currentToken(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, msg)
}

// Update godoc
// @Summary Update a syllabus entry
// @Tags Syllabus
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Syllabus ID"
// @Param payload body models.SyllabusRequest true "Syllabus payload"
// @Success 200 {object} response.Envelope
// @Router /syllabus/{id} [put]
func (h *SyllabusHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid syllabus id"))
		return
	}

	var req models.SyllabusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid syllabus payload"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid syllabus payload"))
		return
	}

	msg, err := h.client.UpdateSyllabus(c.Request.Context(), currentToken(c), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, msg, nil)
}

// Delete godoc
// @Summary Delete a syllabus entry
// @Tags Syllabus
// @Produce json
// @Security BearerAuth
// @Param id path int true "Syllabus ID"
// @Success 200 {object} response.Envelope
// @Router /syllabus/{id} [delete]
func (h *SyllabusHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid syllabus id"))
		return
	}

	msg, err := h.client.DeleteSyllabus(c.Request.Context(), currentToken(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, msg, nil)
}
