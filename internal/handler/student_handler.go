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

type studentClient interface {
	ListStudents(ctx context.Context, token string) ([]models.Student, error)
	GetStudent(ctx context.Context, token string, id int64) (*models.Student, error)
	CreateStudent(ctx context.Context, token string, req models.StudentRequest) (*models.SuccessMessage, error)
	UpdateStudent(ctx context.Context, token string, id int64, req models.StudentRequest) (*models.SuccessMessage, error)
	DeleteStudent(ctx context.Context, token string, id int64) (*models.SuccessMessage, error)
}

// StudentHandler proxies student administration to the core API.
type StudentHandler struct {
	client   studentClient
	validate *validator.Validate
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(client studentClient, validate *validator.Validate) *StudentHandler {
	if validate == nil {
		validate = validator.New()
	}
	return &StudentHandler{client: client, validate: validate}
}

// List godoc
// @Summary List students
// @Tags Students
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param page_size query int false "Page size (5, 10, 25 or 50)"
// @Success 200 {object} response.Envelope
// @Router /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.client.ListStudents(c.Request.Context(), currentToken(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	page, size := pageParams(c)
	pageItems, pagination := paginate(students, page, size)
	response.JSON(c, http.StatusOK, pageItems, pagination)
}

// Get godoc
// @Summary Get one student
// @Tags Students
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /students/{studentId} [get]
func (h *StudentHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "studentId")
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid student id"))
		return
	}

	student, err := h.client.GetStudent(c.Request.Context(), currentToken(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student, nil)
}

// Create godoc
// @Summary Register a student
// @Tags Students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.StudentRequest true "Student payload"
// @Success 201 {object} response.Envelope
// @Router /students [post]
func (h *StudentHandler) Create(c *gin.Context) {
	var req models.StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid student payload"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid student payload"))
		return
	}

	msg, err := h.client.CreateStudent(c.Request.Context(), currentToken(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, msg)
}

// Update godoc
// @Summary Update a student
// @Tags Students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID"
// @Param payload body models.StudentRequest true "Student payload"
// @Success 200 {object} response.Envelope
// @Router /students/{studentId} [put]
func (h *StudentHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "studentId")
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid student id"))
		return
	}

	var req models.StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid student payload"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid student payload"))
		return
	}

	msg, err := h.client.UpdateStudent(c.Request.Context(), currentToken(c), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, msg, nil)
}

// Delete godoc
// @Summary Delete a student
// @Tags Students
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /students/{studentId} [delete]
func (h *StudentHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "studentId")
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid student id"))
		return
	}

	msg, err := h.client.DeleteStudent(c.Request.Context(), currentToken(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, msg, nil)
}
