package clients

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"admin-panel-client/gateway"
	"admin-panel-client/models"
)

type UserClient struct {
	gw *gateway.Gateway
}

func NewUserClient(gw *gateway.Gateway) *UserClient {
	return &UserClient{gw: gw}
}

func (c *UserClient) GetAllUsers(ctx context.Context, page, limit int) (*models.UsersResponse, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	var resp models.UsersResponse
	if err := c.gw.Do(ctx, http.MethodGet, "/users", query, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *UserClient) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	var resp models.UserResponse
	if err := c.gw.Do(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *UserClient) CreateAdmin(ctx context.Context, req models.CreateAdminRequest) (*models.User, error) {
	var resp models.UserResponse
	if err := c.gw.Do(ctx, http.MethodPost, "/users/create-admin", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *UserClient) UpdateUserRole(ctx context.Context, id int64, role string) (string, error) {
	req := models.UpdateRoleRequest{Role: role}
	var resp models.MessageResponse
	if err := c.gw.Do(ctx, http.MethodPut, fmt.Sprintf("/users/%d/role", id), nil, req, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *UserClient) DeleteUser(ctx context.Context, id int64) (string, error) {
	var resp models.MessageResponse
	if err := c.gw.Do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *UserClient) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error) {
	var resp models.UserResponse
	if err := c.gw.Do(ctx, http.MethodPut, "/users/profile", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *UserClient) GetUserStats(ctx context.Context) (*models.UserStats, error) {
	var resp models.UserStatsResponse
	if err := c.gw.Do(ctx, http.MethodGet, "/users/stats", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Stats, nil
}

func (c *UserClient) SearchUsers(ctx context.Context, params models.UserSearchParams) (*models.UsersResponse, error) {
	query := url.Values{}
	query.Set("q", params.Query)
	if params.Role != "" {
		query.Set("role", params.Role)
	}
	query.Set("page", strconv.Itoa(params.Page))
	query.Set("limit", strconv.Itoa(params.Limit))

	var resp models.UsersResponse
	if err := c.gw.Do(ctx, http.MethodGet, "/users/search", query, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
