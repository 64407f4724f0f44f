package restapi

import (
	"context"
	"net/http"

	"eventdesk/internal/domain"
)

type createCategoryRequest struct {
	Name string `json:"name"`
}

func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) CreateCategory(ctx context.Context, name string) (domain.Category, error) {
	var created domain.Category
	if err := c.do(ctx, http.MethodPost, "/categories", createCategoryRequest{Name: name}, &created); err != nil {
		return domain.Category{}, err
	}
	return created, nil
}
