package clients

import (
	"context"
	"net/http"

	"admin-panel-client/gateway"
	"admin-panel-client/models"
)

type AuthClient struct {
	gw *gateway.Gateway
}

func NewAuthClient(gw *gateway.Gateway) *AuthClient {
	return &AuthClient{gw: gw}
}

func (c *AuthClient) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	req := models.LoginRequest{Email: email, Password: password}
	var resp models.AuthResponse
	if err := c.gw.Do(ctx, http.MethodPost, "/auth/login", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *AuthClient) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.gw.Do(ctx, http.MethodPost, "/auth/register", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *AuthClient) GetProfile(ctx context.Context) (*models.User, error) {
	var resp models.ProfileResponse
	if err := c.gw.Do(ctx, http.MethodGet, "/auth/profile", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *AuthClient) Logout(ctx context.Context) error {
	return c.gw.Do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}

func (c *AuthClient) ChangePassword(ctx context.Context, currentPassword, newPassword string) (string, error) {
	req := models.ChangePasswordRequest{CurrentPassword: currentPassword, NewPassword: newPassword}
	var resp models.MessageResponse
	if err := c.gw.Do(ctx, http.MethodPut, "/auth/change-password", nil, req, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
