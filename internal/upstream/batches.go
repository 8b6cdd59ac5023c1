package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/brightup/admin-gateway/internal/models"
)

func (c *Client) ListBatches(ctx context.Context, token string) ([]models.Batch, error) {
	var batches []models.Batch
	if err := c.do(ctx, http.MethodGet, "/batches", token, nil, &batches); err != nil {
		return nil, err
	}
	return batches, nil
}

func (c *Client) GetBatch(ctx context.Context, token string, id int64) (*models.Batch, error) {
	var batch models.Batch
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/batches/%d", id), token, nil, &batch); err != nil {
		return nil, err
	}
	return &batch, nil
}

func (c *Client) CreateBatch(ctx context.Context, token string, req models.BatchRequest) (*models.SuccessMessage, error) {
	var msg models.SuccessMessage
	if err := c.do(ctx, http.MethodPost, "/batches", token, req, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (c *Client) UpdateBatch(ctx context.Context, token string, id int64, req models.BatchRequest) (*models.SuccessMessage, error) {
	var msg models.SuccessMessage
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/batches/%d", id), token, req, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (c *Client) DeleteBatch(ctx context.Context, token string, id int64) (*models.SuccessMessage, error) {
	var msg models.SuccessMessage
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/batches/%d", id), token, nil, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
