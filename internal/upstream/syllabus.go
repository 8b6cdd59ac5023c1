package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/brightup/admin-gateway/internal/models"
)

func (c *Client) ListSyllabi(ctx context.Context, token string) ([]models.Syllabus, error) {
	var syllabi []models.Syllabus
	if err := c.do(ctx, http.MethodGet, "/syllabus", token, nil, &syllabi); err != nil {
		return nil, err
	}
	return syllabi, nil
}

func (c *Client) GetSyllabus(ctx context.Context, token string, id int64) (*models.Syllabus, error) {
	var syllabus models.Syllabus
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/syllabus/%d", id), token, nil, &syllabus); err != nil {
		return nil, err
	}
	return &syllabus, nil
}

func (c *Client) CreateSyllabus(ctx context.Context, token string, req models.SyllabusRequest) (*models.SuccessMessage, error) {
	var msg models.SuccessMessage
	if err := c.do(ctx, http.MethodPost, "/syllabus", token, req, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (c *Client) UpdateSyllabus(ctx context.Context, token string, id int64, req models.SyllabusRequest) (*models.SuccessMessage, error) {
	var msg models.SuccessMessage
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/syllabus/%d", id), token, req, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (c *Client) DeleteSyllabus(ctx context.Context, token string, id int64) (*models.SuccessMessage, error) {
	var msg models.SuccessMessage
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/syllabus/%d", id), token, nil, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
