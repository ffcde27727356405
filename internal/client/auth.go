package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/jhoicas/dailycare-store/internal/application/dto"
)

// Register crea una cuenta de cliente.
func (c *Client) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	var out dto.UserResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login usa el formulario OAuth2 (username, password) y guarda el token en el cliente.
func (c *Client) Login(ctx context.Context, email, password string) (*dto.TokenResponse, error) {
	form := url.Values{"username": {email}, "password": {password}}
	req, err := c.newRequest(ctx, http.MethodPost, "/api/auth/login", nil, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	raw, err := c.send(req)
	if err != nil {
		return nil, err
	}
	var out dto.TokenResponse
	if err := decode(raw, &out); err != nil {
		return nil, err
	}
	c.token = out.AccessToken
	return &out, nil
}

// Me usuario del token actual.
func (c *Client) Me(ctx context.Context) (*dto.UserResponse, error) {
	var out dto.UserResponse
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMe actualización parcial del perfil.
func (c *Client) UpdateMe(ctx context.Context, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	var out dto.UserResponse
	if err := c.do(ctx, http.MethodPut, "/api/auth/me", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendOTP pide un código por SMS.
func (c *Client) SendOTP(ctx context.Context, phone string) (*dto.OTPSentResponse, error) {
	var out dto.OTPSentResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/send-otp", nil, dto.OTPRequest{Phone: phone}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyOTP canjea el código y guarda el token.
func (c *Client) VerifyOTP(ctx context.Context, phone, otp string) (*dto.TokenResponse, error) {
	var out dto.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/verify-otp", nil, dto.OTPVerifyRequest{Phone: phone, OTP: otp}, &out); err != nil {
		return nil, err
	}
	c.token = out.AccessToken
	return &out, nil
}

// ForgotPassword inicia la recuperación de contraseña.
func (c *Client) ForgotPassword(ctx context.Context, email string) (*dto.ForgotPasswordResponse, error) {
	var out dto.ForgotPasswordResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/forgot-password", nil, dto.ForgotPasswordRequest{Email: email}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResetPassword fija una contraseña nueva con el token recibido.
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) (*dto.MessageResponse, error) {
	var out dto.MessageResponse
	in := dto.ResetPasswordRequest{Token: token, NewPassword: newPassword}
	if err := c.do(ctx, http.MethodPost, "/api/auth/reset-password", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
