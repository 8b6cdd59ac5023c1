package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/brightup/admin-gateway/internal/service"
	appErrors "github.com/brightup/admin-gateway/pkg/errors"
	"github.com/brightup/admin-gateway/pkg/response"
)

type exportService interface {
	Roster(ctx context.Context, token string, batchID int64, format string) (*service.ExportFile, error)
}

// ExportHandler streams batch roster downloads.
type ExportHandler struct {
	exports exportService
}

// NewExportHandler constructs ExportHandler.
func NewExportHandler(exports exportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// Roster godoc
// @Summary Download the batch roster as CSV or PDF
// @Tags Exports
// @Produce octet-stream
// @Security BearerAuth
// @Param batchId path int true "Batch ID"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} binary
// @Router /batches/{batchId}/export [get]
func (h *ExportHandler) Roster(c *gin.Context) {
	batchID, ok := idParam(c, "batchId")
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid batch id"))
		return
	}
	format := c.DefaultQuery("format", "csv")

	file, err := h.exports.Roster(c.Request.Context(), currentToken(c), batchID, format)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.File(c, file.Filename, file.ContentType, file.Content)
}
