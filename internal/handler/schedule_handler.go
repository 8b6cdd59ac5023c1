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

type scheduleClient interface {
	ListSchedules(ctx context.Context, token string, batchID int64) ([]models.ClassSchedule, error)
	CreateSchedule(ctx context.Context, token string, batchID int64, req models.ClassScheduleRequest) (*models.SuccessMessage, error)
	UpdateSchedule(ctx context.Context, token string, batchID, scheduleID int64, req models.ClassScheduleRequest) (*models.SuccessMessage, error)
	DeleteSchedule(ctx context.Context, token string, batchID, scheduleID int64) (*models.SuccessMessage, error)
}

// ScheduleHandler proxies per-batch weekly class schedules to the core API.
// The core enforces the one-schedule-per-day rule; its conflict code is
// translated into a readable message by the error layer.
type ScheduleHandler struct {
	client   scheduleClient
	validate *validator.Validate
}

// NewScheduleHandler constructs ScheduleHandler.
func NewScheduleHandler(client scheduleClient, validate *validator.Validate) *ScheduleHandler {
	if validate == nil {
		validate = validator.New()
	}
	return &ScheduleHandler{client: client, validate: validate}
}

// List godoc
// @Summary List class schedules of a batch
// @Tags Schedules
// @Produce json
// @Security BearerAuth
// @Param batchId path int true "Batch ID"
// @Success 200 {object} response.Envelope
// @Router /batches/{batchId}/schedule-class [get]
func (h *ScheduleHandler) List(c *gin.Context) {
	batchID, ok := idParam(c, "batchId")
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid batch id"))
		return
	}

	schedules, err := h.client.ListSchedules(c.Request.Context(), currentToken(c), batchID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, schedules, nil)
}

// Create godoc
// @Summary Add a class schedule to a batch
// @Tags Schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param batchId path int true "Batch ID"
// @Param payload body models.ClassScheduleRequest true "Schedule payload"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /batches/{batchId}/schedule-class [post]
func (h *ScheduleHandler) Create(c *gin.Context) {
	batchID, ok := idParam(c, "batchId")
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid batch id"))
		return
	}

	var req models.ClassScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid schedule payload"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid schedule payload"))
		return
	}

	msg, err := h.client.CreateSchedule(c.Request.Context(), currentToken(c), batchID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, msg)
}

// Update godoc
// @Summary Update a class schedule
// @Tags Schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param batchId path int true "Batch ID"
// @Param scheduleId path int true "Schedule ID"
// @Param payload body models.ClassScheduleRequest true "Schedule payload"
// @Success 200 {object} response.Envelope
// @Router /batches/{batchId}/schedule-class/{scheduleId} [put]
func (h *ScheduleHandler) Update(c *gin.Context) {
	batchID, ok := idParam(c, "batchId")
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid batch id"))
		return
	}
	scheduleID, ok := idParam(c, "scheduleId")
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid schedule id"))
		return
	}

	var req models.ClassScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid schedule payload"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid schedule payload"))
		return
	}

	msg, err := h.client.UpdateSchedule(c.Request.Context(), currentToken(c), batchID, scheduleID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, msg, nil)
}

// Delete godoc
// @Summary Delete a class schedule
// @Tags Schedules
// @Produce json
// @Security BearerAuth
// @Param batchId path int true "Batch ID"
// @Param scheduleId path int true "Schedule ID"
// @Success 200 {object} response.Envelope
// @Router /batches/{batchId}/schedule-class/{scheduleId} [delete]
func (h *ScheduleHandler) Delete(c *gin.Context) {
	batchID, ok := idParam(c, "batchId")
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid batch id"))
		return
	}
	scheduleID, ok := idParam(c, "scheduleId")
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid schedule id"))
		return
	}

	msg, err := h.client.DeleteSchedule(c.Request.Context(), currentToken(c), batchID, scheduleID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, msg, nil)
}
