package platform

import (
	"context"
	"net/http"

	"mazadWeb/internal/models"
)

// SignUp registers a new account and returns the created user with a
// fresh token pair.
func (c *Client) SignUp(ctx context.Context, req models.SignUpRequest) (models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/sign-up", nil, "", req, &out); err != nil {
		return models.AuthResponse{}, err
	}
	return out, nil
}

// SignIn exchanges credentials for a token pair.
func (c *Client) SignIn(ctx context.Context, req models.SignInRequest) (models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/sign-in", nil, "", req, &out); err != nil {
		return models.AuthResponse{}, err
	}
	return out, nil
}

// RefreshTokens trades a refresh token for a new pair. The platform
// rotates refresh tokens, so the old one is dead after this call.
func (c *Client) RefreshTokens(ctx context.Context, refreshToken string) (models.Tokens, error) {
	in := struct {
		RefreshToken string `json:"refresh_token"`
	}{RefreshToken: refreshToken}

	var out models.Tokens
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/refresh", nil, "", in, &out); err != nil {
		return models.Tokens{}, err
	}
	return out, nil
}

// SignOut revokes the refresh token upstream.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	return c.do(ctx, http.MethodPost, "/api/v1/auth/sign-out", nil, accessToken, nil, nil)
}

// RequestPasswordReset asks the platform to send a verification code
// to the account email.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	in := models.PasswordResetRequest{Email: email}
	return c.do(ctx, http.MethodPost, "/api/v1/auth/password/request", nil, "", in, nil)
}

// VerifyResetCode checks a password reset code without consuming it.
func (c *Client) VerifyResetCode(ctx context.Context, email, code string) error {
	in := models.VerifyResetCodeRequest{Email: email, Code: code}
	return c.do(ctx, http.MethodPost, "/api/v1/auth/password/verify", nil, "", in, nil)
}

// ResetPassword sets a new password using a verified code.
func (c *Client) ResetPassword(ctx context.Context, req models.NewPasswordRequest) error {
	return c.do(ctx, http.MethodPost, "/api/v1/auth/password/reset", nil, "", req, nil)
}

// Profile fetches the account behind the access token.
func (c *Client) Profile(ctx context.Context, accessToken string) (models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodGet, "/api/v1/users/me", nil, accessToken, nil, &out); err != nil {
		return models.User{}, err
	}
	return out, nil
}

// UpdateProfile changes account fields and returns the updated user.
func (c *Client) UpdateProfile(ctx context.Context, accessToken string, upd models.ProfileUpdate) (models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodPut, "/api/v1/users/me", nil, accessToken, upd, &out); err != nil {
		return models.User{}, err
	}
	return out, nil
}

// UpdateAvatar stores the public path of an uploaded avatar on the
// account.
func (c *Client) UpdateAvatar(ctx context.Context, accessToken, avatarPath string) (models.User, error) {
	in := struct {
		AvatarPath string `json:"avatar_path"`
	}{AvatarPath: avatarPath}

	var out models.User
	if err := c.do(ctx, http.MethodPut, "/api/v1/users/me/avatar", nil, accessToken, in, &out); err != nil {
		return models.User{}, err
	}
	return out, nil
}
