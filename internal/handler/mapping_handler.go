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

type mappingClient interface {
	MapStudentToBatch(ctx context.Context, token string, studentID int64, req models.MapStudentRequest) (*models.SuccessMessage, error)
	BatchStudents(ctx context.Context, token string, batchID int64) ([]models.BatchStudent, error)
	GetMapping(ctx context.Context, token string, mappingID int64) (*models.BatchStudent, error)
	UpdateMapping(ctx context.Context, token string, mappingID int64, req models.UpdateBatchStudentRequest) (*models.SuccessMessage, error)
	DeleteMapping(ctx context.Context, token string, mappingID int64) (*models.SuccessMessage, error)
}

// MappingHandler proxies student-to-batch enrollment records.
type MappingHandler struct {
	client   mappingClient
	validate *validator.Validate
}

// NewMappingHandler constructs MappingHandler.
func NewMappingHandler(client mappingClient, validate *validator.Validate) *MappingHandler {
	if validate == nil {
		validate = validator.New()
	}
	return &MappingHandler{client: client, validate: validate}
}

// Map godoc
// @Summary Enroll a student into a batch
// @Tags Mappings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID"
// @Param payload body models.MapStudentRequest true "Enrollment payload"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /students/{studentId}/batches [post]
func (h *MappingHandler) Map(c *gin.Context) {
	studentID, ok := idParam(c, "studentId")
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid student id"))
		return
	}

	var req models.MapStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid enrollment payload"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid enrollment payload"))
		return
	}

	msg, err := h.client.MapStudentToBatch(c.Request.Context(), currentToken(c), studentID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, msg)
}

// BatchStudents godoc
// @Summary List students enrolled in a batch
// @Tags Mappings
// @Produce json
// @Security BearerAuth
// @Param batchId path int true "Batch ID"
// @Param page query int false "Page"
// @Param page_size query int false "Page size (5, 10, 25 or 50)"
// @Success 200 {object} response.Envelope
// @Router /students/batches/{batchId} [get]
func (h *MappingHandler) BatchStudents(c *gin.Context) {
	batchID, ok := idParam(c, "batchId")
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid batch id"))
		return
	}

	students, err := h.client.BatchStudents(c.Request.Context(), currentToken(c), batchID)
	if err != nil {
		response.Error(c, err)
		return
	}

	page, size := pageParams(c)
	pageItems, pagination := paginate(students, page, size)
	response.JSON(c, http.StatusOK, pageItems, pagination)
}

// Get godoc
// @Summary Get one enrollment record
// @Tags Mappings
// @Produce json
// @Security BearerAuth
// @Param mappingId path int true "Mapping ID"
// @Success 200 {object} response.Envelope
// @Router /students/mappings/{mappingId} [get]
func (h *MappingHandler) Get(c *gin.Context) {
	mappingID, ok := idParam(c, "mappingId")
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid mapping id"))
		return
	}

	mapping, err := h.client.GetMapping(c.Request.Context(), currentToken(c), mappingID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, mapping, nil)
}

// Update godoc
// @Summary Update an enrollment record
// @Tags Mappings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param mappingId path int true "Mapping ID"
// @Param payload body models.UpdateBatchStudentRequest true "Enrollment payload"
// @Success 200 {object} response.Envelope
// @Router /students/mappings/{mappingId} [put]
func (h *MappingHandler) Update(c *gin.Context) {
	mappingID, ok := idParam(c, "mappingId")
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid mapping id"))
		return
	}

	var req models.UpdateBatchStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid enrollment payload"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid enrollment payload"))
		return
	}

	msg, err := h.client.UpdateMapping(c.Request.Context(), currentToken(c), mappingID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, msg, nil)
}

// Delete godoc
// @Summary Remove a student from a batch
// @Tags Mappings
// @Produce json
// @Security BearerAuth
// @Param mappingId path int true "Mapping ID"
// @Success 200 {object} response.Envelope
// @Router /students/mappings/{mappingId} [delete]
func (h *MappingHandler) Delete(c *gin.Context) {
	mappingID, ok := idParam(c, "mappingId")
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid mapping id"))
		return
	}

	msg, err := h.client.DeleteMapping(c.Request.Context(), currentToken(c), mappingID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, msg, nil)
}
