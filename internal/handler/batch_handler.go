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

type batchClient interface {
	ListBatches(ctx context.Context, token string) ([]models.Batch, error)
	GetBatch(ctx context.Context, token string, id int64) (*models.Batch, error)
	CreateBatch(ctx context.Context, token string, req models.BatchRequest) (*models.SuccessMessage, error)
	UpdateBatch(ctx context.Context, token string, id int64, req models.BatchRequest) (*models.SuccessMessage, error)
	DeleteBatch(ctx context.Context, token string, id int64) (*models.SuccessMessage, error)
}

// BatchHandler proxies batch (cohort) administration to the core API.
type BatchHandler struct {
	client   batchClient
	validate *validator.Validate
}

// NewBatchHandler constructs BatchHandler.
func NewBatchHandler(client batchClient, validate *validator.Validate) *BatchHandler {
	if validate == nil {
		validate = validator.New()
	}
	return &BatchHandler{client: client, validate: validate}
}

// List godoc
// @Summary List batches
// @Tags Batches
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param page_size query int false "Page size (5, 10, 25 or 50)"
// @Success 200 {object} response.Envelope
// @Router /batches [get]
func (h *BatchHandler) List(c *gin.Context) {
	batches, err := h.client.ListBatches(c.Request.Context(), currentToken(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	page, size := pageParams(c)
	pageItems, pagination := paginate(batches, page, size)
	response.JSON(c, http.StatusOK, pageItems, pagination)
}

// Get godoc
// @Summary Get one batch
// @Tags Batches
// @Produce json
// @Security BearerAuth
// @Param batchId path int true "Batch ID"
// @Success 200 {object} response.Envelope
// @Router /batches/{batchId} [get]
func (h *BatchHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "batchId")
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid batch id"))
		return
	}

	batch, err := h.client.GetBatch(c.Request.Context(), currentToken(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, batch, nil)
}

// Create godoc
// @Summary Create a batch
// @Tags Batches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.BatchRequest true "Batch payload"
// @Success 201 {object} response.Envelope
// @Router /batches [post]
func (h *BatchHandler) Create(c *gin.Context) {
	var req models.BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid batch payload"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid batch payload"))
		return
	}

	msg, err := h.client.CreateBatch(c.Request.Context(), currentToken(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, msg)
}

// Update godoc
// @Summary Update a batch
// @Tags Batches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param batchId path int true "Batch ID"
// @Param payload body models.BatchRequest true "Batch payload"
// @Success 200 {object} response.Envelope
// @Router /batches/{batchId} [put]
func (h *BatchHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "batchId")
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid batch id"))
		return
	}

	var req models.BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid batch payload"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid batch payload"))
		return
	}

	msg, err := h.client.UpdateBatch(c.Request.Context(), currentToken(c), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, msg, nil)
}

// Delete godoc
// @Summary Delete a batch
// @Tags Batches
// @Produce json
// @Security BearerAuth
// @Param batchId path int true "Batch ID"
// @Success 200 {object} response.Envelope
// @Router /batches/{batchId} [delete]
func (h *BatchHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "batchId")
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid batch id"))
		return
	}

	msg, err := h.client.DeleteBatch(c.Request.Context(), currentToken(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, msg, nil)
}
