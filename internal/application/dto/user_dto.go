package dto

import "time"

// RegisterRequest entrada para registro.
type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	FullName string  `json:"full_name" validate:"required"`
	Phone    *string `json:"phone"`
}

// LoginRequest entrada para login. El storefront envía form-urlencoded con username=email;
// también se acepta JSON con email.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// Identifier devuelve el email con el que se intenta iniciar sesión.
func (r LoginRequest) Identifier() string {
	if r.Username != "" {
		return r.Username
	}
	return r.Email
}

// TokenResponse salida con token JWT (formato OAuth2 password flow).
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Phone     *string   `json:"phone"`
	Address   *string   `json:"address"`
	IsActive  bool      `json:"is_active"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdateProfileRequest actualización parcial del perfil (PUT /api/auth/me).
type UpdateProfileRequest struct {
	FullName *string `json:"full_name"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
}

// AdminUserUpdateRequest cambios de administración sobre un usuario.
type AdminUserUpdateRequest struct {
	IsAdmin  *bool `json:"is_admin"`
	IsActive *bool `json:"is_active"`
}

// OTPRequest solicitud de código por SMS.
type OTPRequest struct {
	Phone string `json:"phone" validate:"required"`
}

// OTPVerifyRequest verificación de código.
type OTPVerifyRequest struct {
	Phone string `json:"phone" validate:"required"`
	OTP   string `json:"otp" validate:"required,len=6"`
}

// OTPSentResponse resultado de send-otp. OTPDebug solo viaja si el SMS no se envió.
type OTPSentResponse struct {
	Message  string `json:"message"`
	Phone    string `json:"phone"`
	OTPDebug string `json:"otp_debug,omitempty"`
}

// ForgotPasswordRequest solicitud de recuperación.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ForgotPasswordResponse respuesta genérica. ResetDebug solo viaja si el correo no está configurado.
type ForgotPasswordResponse struct {
	Message    string `json:"message"`
	ResetDebug string `json:"reset_debug,omitempty"`
}

// ResetPasswordRequest canje del token de recuperación.
type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}
