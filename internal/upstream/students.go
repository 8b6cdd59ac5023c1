package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/brightup/admin-gateway/internal/models"
)

func (c *Client) ListStudents(ctx context.Context, token string) ([]models.Student, error) {
	var students []models.Student
	if err := c.do(ctx, http.MethodGet, "/students", token, nil, &students); err != nil {
		return nil, err
	}
	return students, nil
}

func (c *Client) GetStudent(ctx context.Context, token string, id int64) (*models.Student, error) {
	var student models.Student
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/students/%d", id), token, nil, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

func (c *Client) CreateStudent(ctx context.Context, token string, req models.StudentRequest) (*models.SuccessMessage, error) {
	var msg models.SuccessMessage
	if err := c.do(ctx, http.MethodPost, "/students", token, req, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (c *Client) UpdateStudent(ctx context.Context, token string, id int64, req models.StudentRequest) (*models.SuccessMessage, error) {
	var msg models.SuccessMessage
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/students/%d", id), token, req, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (c *Client) DeleteStudent(ctx context.Context, token string, id int64) (*models.SuccessMessage, error) {
	var msg models.SuccessMessage
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/students/%d", id), token, nil, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
