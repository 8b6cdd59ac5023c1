package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/brightup/admin-gateway/internal/models"
)

func (c *Client) ListSchedules(ctx context.Context, token string, batchID int64) ([]models.ClassSchedule, error) {
	var schedules []models.ClassSchedule
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/batches/%d/schedule-class", batchID), token, nil, &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}

func (c *Client) CreateSchedule(ctx context.Context, token string, batchID int64, req models.ClassScheduleRequest) (*models.SuccessMessage, error) {
	var msg models.SuccessMessage
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/batches/%d/schedule-class", batchID), token, req, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (c *Client) UpdateSchedule(ctx context.Context, token string, batchID, scheduleID int64, req models.ClassScheduleRequest) (*models.SuccessMessage, error) {
	var msg models.SuccessMessage
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/batches/%d/schedule-class/%d", batchID, scheduleID), token, req, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (c *Client) DeleteSchedule(ctx context.Context, token string, batchID, scheduleID int64) (*models.SuccessMessage, error) {
	var msg models.SuccessMessage
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/batches/%d/schedule-class/%d", batchID, scheduleID), token, nil, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
