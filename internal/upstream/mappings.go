package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/brightup/admin-gateway/internal/models"
)

// MapStudentToBatch enrolls a student into a batch.
func (c *Client) MapStudentToBatch(ctx context.Context, token string, studentID int64, req models.MapStudentRequest) (*models.SuccessMessage, error) {
	var msg models.SuccessMessage
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/students/%d/batches", studentID), token, req, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// BatchStudents lists the students mapped to a batch.
func (c *Client) BatchStudents(ctx context.Context, token string, batchID int64) ([]models.BatchStudent, error) {
	var students []models.BatchStudent
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/students/batches/%d", batchID), token, nil, &students); err != nil {
		return nil, err
	}
	return students, nil
}

func (c *Client) GetMapping(ctx context.Context, token string, mappingID int64) (*models.BatchStudent, error) {
	var mapping models.BatchStudent
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/students/mappings/%d", mappingID), token, nil, &mapping); err != nil {
		return nil, err
	}
	return &mapping, nil
}

func (c *Client) UpdateMapping(ctx context.Context, token string, mappingID int64, req models.UpdateBatchStudentRequest) (*models.SuccessMessage, error) {
	var msg models.SuccessMessage
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/students/mappings/%d", mappingID), token, req, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (c *Client) DeleteMapping(ctx context.Context, token string, mappingID int64) (*models.SuccessMessage, error) {
	var msg models.SuccessMessage
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/students/mappings/%d", mappingID), token, nil, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
