package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/dailycare-store/internal/application/dto"
	"github.com/jhoicas/dailycare-store/internal/application/ports"
	"github.com/jhoicas/dailycare-store/internal/domain"
	"github.com/jhoicas/dailycare-store/internal/domain/entity"
	"github.com/jhoicas/dailycare-store/internal/domain/repository"
	"github.com/jhoicas/dailycare-store/pkg/jwt"
	"github.com/jhoicas/dailycare-store/pkg/logger"
)

const (
	minPasswordLen = 6
	otpTTL         = 5 * time.Minute
	resetTTL       = 30 * time.Minute
	tokenType      = "bearer"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Config parámetros del caso de uso.
type Config struct {
	JWT       JWTConfig
	PublicURL string // base de los enlaces de recuperación
}

// AuthUseCase casos de uso de autenticación: registro, login, perfil, OTP y recuperación.
// sms y mailer son opcionales: sin ellos el código o token se devuelve como *_debug.
type AuthUseCase struct {
	userRepo  repository.UserRepository
	otpRepo   repository.OTPRepository
	resetRepo repository.PasswordResetRepository
	sms       ports.SMSSender
	mailer    ports.Mailer
	cfg       Config
	log       *logger.Logger
	now       func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	otpRepo repository.OTPRepository,
	resetRepo repository.PasswordResetRepository,
	sms ports.SMSSender,
	mailer ports.Mailer,
	cfg Config,
	log *logger.Logger,
) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{
		userRepo:  userRepo,
		otpRepo:   otpRepo,
		resetRepo: resetRepo,
		sms:       sms,
		mailer:    mailer,
		cfg:       cfg,
		log:       log.Component("auth"),
		now:       time.Now,
	}
}

// RegisterUser crea un cliente: valida, hashea password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if _, err := mail.ParseAddress(email); err != nil || email == "" {
		return nil, domain.WithDetail(domain.ErrInvalidInput, "Invalid email address")
	}
	if len(in.Password) < minPasswordLen {
		return nil, domain.WithDetail(domain.ErrInvalidInput, "Password must be at least %d characters", minPasswordLen)
	}
	if strings.TrimSpace(in.FullName) == "" {
		return nil, domain.WithDetail(domain.ErrInvalidInput, "Full name is required")
	}
	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(in.FullName),
		IsActive:     true,
		CreatedAt:    uc.now(),
	}
	if in.Phone != nil {
		user.Phone = strings.TrimSpace(*in.Phone)
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	out := dto.FromUser(user)
	return &out, nil
}

// Login verifica email/password y genera el JWT.
// Credenciales incorrectas → ErrUnauthorized; usuario desactivado → ErrForbidden.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.TokenResponse, error) {
	email := strings.TrimSpace(strings.ToLower(in.Identifier()))
	if email == "" || in.Password == "" {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.WithDetail(domain.ErrForbidden, "Inactive user")
	}
	return uc.issueToken(user)
}

// Me devuelve el usuario autenticado.
func (uc *AuthUseCase) Me(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	out := dto.FromUser(user)
	return &out, nil
}

// UpdateProfile aplica solo los campos presentes (full_name, phone, address).
func (uc *AuthUseCase) UpdateProfile(ctx context.Context, userID int64, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.FullName != nil {
		name := strings.TrimSpace(*in.FullName)
		if name == "" {
			return nil, domain.WithDetail(domain.ErrInvalidInput, "Full name is required")
		}
		user.FullName = name
	}
	if in.Phone != nil {
		user.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Address != nil {
		user.Address = strings.TrimSpace(*in.Address)
	}
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	out := dto.FromUser(user)
	return &out, nil
}

// SendOTP genera un código de 6 dígitos para un teléfono registrado, reemplaza los anteriores
// y lo envía por SMS. Si el SMS no sale, el código viaja en OTPDebug.
func (uc *AuthUseCase) SendOTP(ctx context.Context, in dto.OTPRequest) (*dto.OTPSentResponse, error) {
	phone := strings.TrimSpace(in.Phone)
	if phone == "" {
		return nil, domain.WithDetail(domain.ErrInvalidInput, "Phone number is required")
	}
	user, err := uc.userRepo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.WithDetail(domain.ErrNotFound, "Phone number not registered")
	}
	code, err := generateOTP()
	if err != nil {
		return nil, err
	}
	if err := uc.otpRepo.DeleteByPhone(ctx, phone); err != nil {
		return nil, err
	}
	now := uc.now()
	otp := &entity.OTP{Phone: phone, Code: code, CreatedAt: now, ExpiresAt: now.Add(otpTTL)}
	if err := uc.otpRepo.Create(ctx, otp); err != nil {
		return nil, err
	}

	sent := false
	if uc.sms != nil {
		body := fmt.Sprintf("Your PureGlow verification code is: %s. Valid for 5 minutes.", code)
		if err := uc.sms.SendSMS(ctx, phone, body); err != nil {
			uc.log.Warn().Err(err).Str("phone", phone).Msg("no se pudo enviar el SMS con el OTP")
		} else {
			sent = true
		}
	}
	if !sent {
		return &dto.OTPSentResponse{Message: "OTP generated (SMS not configured)", Phone: phone, OTPDebug: code}, nil
	}
	return &dto.OTPSentResponse{Message: "OTP sent successfully", Phone: phone}, nil
}

// VerifyOTP canjea un código vigente y devuelve un token para el dueño del teléfono.
func (uc *AuthUseCase) VerifyOTP(ctx context.Context, in dto.OTPVerifyRequest) (*dto.TokenResponse, error) {
	phone := strings.TrimSpace(in.Phone)
	otp, err := uc.otpRepo.FindUnused(ctx, phone, strings.TrimSpace(in.OTP))
	if err != nil {
		return nil, err
	}
	if otp == nil {
		return nil, domain.ErrInvalidOTP
	}
	if otp.Expired(uc.now()) {
		return nil, domain.ErrOTPExpired
	}
	if err := uc.otpRepo.MarkUsed(ctx, otp.ID); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if !user.IsActive {
		return nil, domain.WithDetail(domain.ErrForbidden, "Inactive user")
	}
	return uc.issueToken(user)
}

// ForgotPassword crea un token de recuperación para usuarios activos y lo envía por correo.
// La respuesta es la misma exista o no el email.
func (uc *AuthUseCase) ForgotPassword(ctx context.Context, in dto.ForgotPasswordRequest) (*dto.ForgotPasswordResponse, error) {
	resp := &dto.ForgotPasswordResponse{Message: "If the email is registered, a reset link has been sent"}
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" {
		return nil, domain.WithDetail(domain.ErrInvalidInput, "Email is required")
	}
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return resp, nil
	}
	if err := uc.resetRepo.DeleteByUser(ctx, user.ID); err != nil {
		return nil, err
	}
	now := uc.now()
	reset := &entity.PasswordReset{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		CreatedAt: now,
		ExpiresAt: now.Add(resetTTL),
	}
	if err := uc.resetRepo.Create(ctx, reset); err != nil {
		return nil, err
	}

	if uc.mailer == nil {
		resp.ResetDebug = reset.Token
		return resp, nil
	}
	link := fmt.Sprintf("%s/reset-password?token=%s", uc.cfg.PublicURL, reset.Token)
	body := fmt.Sprintf(`<p>Hi %s,</p><p>Use the link below to reset your PureGlow password. It expires in 30 minutes.</p><p><a href="%s">%s</a></p>`,
		user.FullName, link, link)
	if err := uc.mailer.Send(ctx, user.Email, "Reset your PureGlow password", body); err != nil {
		uc.log.Error().Err(err).Int64("user_id", user.ID).Msg("no se pudo enviar el correo de recuperación")
	}
	return resp, nil
}

// ResetPassword canjea el token y reemplaza el hash de la contraseña.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, in dto.ResetPasswordRequest) (*dto.MessageResponse, error) {
	if len(in.NewPassword) < minPasswordLen {
		return nil, domain.WithDetail(domain.ErrInvalidInput, "Password must be at least %d characters", minPasswordLen)
	}
	reset, err := uc.resetRepo.GetByToken(ctx, strings.TrimSpace(in.Token))
	if err != nil {
		return nil, err
	}
	if reset == nil || !reset.Usable(uc.now()) {
		return nil, domain.ErrInvalidResetToken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	// El token se consume antes de escribir: de dos canjes simultáneos solo uno llega a UpdatePassword.
	if err := uc.resetRepo.MarkUsed(ctx, reset.ID); err != nil {
		return nil, err
	}
	if err := uc.userRepo.UpdatePassword(ctx, reset.UserID, string(hash)); err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: "Password has been reset successfully"}, nil
}

func (uc *AuthUseCase) issueToken(user *entity.User) (*dto.TokenResponse, error) {
	token, err := jwt.Generate(uc.cfg.JWT.Secret, user.ID, user.Email, user.Role(), uc.cfg.JWT.Issuer, uc.cfg.JWT.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{AccessToken: token, TokenType: tokenType}, nil
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
