package restapi

import (
	"context"
	"net/http"

	"eventdesk/internal/domain"
)

type createUserRequest struct {
	Name      string `json:"name"`
	UserImage string `json:"userImage"`
}

func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	var created domain.User
	req := createUserRequest{Name: user.Name, UserImage: user.UserImage}
	if err := c.do(ctx, http.MethodPost, "/users", req, &created); err != nil {
		return domain.User{}, err
	}
	return created, nil
}
