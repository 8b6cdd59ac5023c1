package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brightup/admin-gateway/internal/dto"
	"github.com/brightup/admin-gateway/internal/models"
	appErrors "github.com/brightup/admin-gateway/pkg/errors"
	"github.com/brightup/admin-gateway/pkg/response"
)

type overviewService interface {
	Batch(ctx context.Context, token string, batchID int64) (*models.Batch, bool, error)
	Students(ctx context.Context, token string, batchID int64) ([]models.BatchStudent, bool, error)
	Schedule(ctx context.Context, token string, batchID int64) ([]models.ClassSchedule, bool, error)
	Syllabus(ctx context.Context, token string, batchID int64) (*dto.SyllabusTab, error)
	AddStudent(ctx context.Context, token string, batchID int64, req dto.AddStudentRequest) (*models.SuccessMessage, error)
}

// OverviewHandler serves the batch overview page: a batch heading plus
// three independently loaded tabs. Each tab response carries a cache_hit
// meta flag so the UI can show staleness hints.
type OverviewHandler struct {
	overview overviewService
}

// NewOverviewHandler constructs OverviewHandler.
func NewOverviewHandler(overview overviewService) *OverviewHandler {
	return &OverviewHandler{overview: overview}
}

func cacheMeta(hit bool) map[string]interface{} {
	return map[string]interface{}{"cache_hit": hit}
}

// Batch godoc
// @Summary Batch overview heading
// @Tags Overview
// @Produce json
// @Security BearerAuth
// @Param batchId path int true "Batch ID"
// @Success 200 {object} response.Envelope
// @Router /batches/{batchId}/overview [get]
func (h *OverviewHandler) Batch(c *gin.Context) {
	batchID, ok := idParam(c, "batchId")
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid batch id"))
		return
	}

	batch, hit, err := h.overview.Batch(c.Request.Context(), currentToken(c), batchID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, batch, nil, cacheMeta(hit))
}

// Students godoc
// @Summary Students tab of the batch overview
// @Tags Overview
// @Produce json
// @Security BearerAuth
// @Param batchId path int true "Batch ID"
// @Success 200 {object} response.Envelope
// @Router /batches/{batchId}/overview/students [get]
func (h *OverviewHandler) Students(c *gin.Context) {
	batchID, ok := idParam(c, "batchId")
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid batch id"))
		return
	}

	students, hit, err := h.overview.Students(c.Request.Context(), currentToken(c), batchID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students, nil, cacheMeta(hit))
}

// Schedule godoc
// @Summary Schedule tab of the batch overview
// @Tags Overview
// @Produce json
// @Security BearerAuth
// @Param batchId path int true "Batch ID"
// @Success 200 {object} response.Envelope
// @Router /batches/{batchId}/overview/schedule [get]
func (h *OverviewHandler) Schedule(c *gin.Context) {
	batchID, ok := idParam(c, "batchId")
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid batch id"))
		return
	}

	schedules, hit, err := h.overview.Schedule(c.Request.Context(), currentToken(c), batchID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, schedules, nil, cacheMeta(hit))
}

// Syllabus godoc
// @Summary Syllabus tab of the batch overview
// @Tags Overview
// @Produce json
// @Security BearerAuth
// @Param batchId path int true "Batch ID"
// @Success 200 {object} response.Envelope
// @Router /batches/{batchId}/overview/syllabus [get]
func (h *OverviewHandler) Syllabus(c *gin.Context) {
	batchID, ok := idParam(c, "batchId")
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid batch id"))
		return
	}

	tab, err := h.overview.Syllabus(c.Request.Context(), currentToken(c), batchID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, tab, nil)
}

// AddStudent godoc
// @Summary Enroll a student from the overview page
// @Tags Overview
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param batchId path int true "Batch ID"
// @Param payload body dto.AddStudentRequest true "Enrollment payload"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /batches/{batchId}/overview/students [post]
func (h *OverviewHandler) AddStudent(c *gin.Context) {
	batchID, ok := idParam(c, "batchId")
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid batch id"))
		return
	}

	var req dto.AddStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid enrollment payload"))
		return
	}

	msg, err := h.overview.AddStudent(c.Request.Context(), currentToken(c), batchID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, msg)
}
