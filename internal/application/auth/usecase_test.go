package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dailycare-store/internal/application/dto"
	"github.com/jhoicas/dailycare-store/internal/domain"
	"github.com/jhoicas/dailycare-store/internal/infrastructure/memory"
	"github.com/jhoicas/dailycare-store/pkg/jwt"
)

const testSecret = "auth-test-secret"

type fakeSMS struct {
	to, body string
	err      error
}

func (f *fakeSMS) SendSMS(_ context.Context, to, body string) error {
	f.to, f.body = to, body
	return f.err
}

type fakeMailer struct {
	to, subject, body string
}

func (f *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	f.to, f.subject, f.body = to, subject, body
	return nil
}

func newUseCase(t *testing.T, store *memory.Store, sms *fakeSMS, mailer *fakeMailer) *AuthUseCase {
	t.Helper()
	cfg := Config{JWT: JWTConfig{Secret: testSecret, ExpMinutes: 30, Issuer: "test"}, PublicURL: "http://shop.test"}
	uc := NewAuthUseCase(store.Users(), store.OTPs(), store.Resets(), nil, nil, cfg, nil)
	if sms != nil {
		uc.sms = sms
	}
	if mailer != nil {
		uc.mailer = mailer
	}
	return uc
}

func register(t *testing.T, uc *AuthUseCase, email, phone string) *dto.UserResponse {
	t.Helper()
	in := dto.RegisterRequest{Email: email, Password: "secret1", FullName: "Ana Pérez"}
	if phone != "" {
		in.Phone = &phone
	}
	u, err := uc.RegisterUser(context.Background(), in)
	require.NoError(t, err)
	return u
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	uc := newUseCase(t, memory.NewStore(), nil, nil)
	register(t, uc, "ana@example.com", "")

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{Email: "ANA@example.com", Password: "secret1", FullName: "Otra"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterUser_ValidaEntrada(t *testing.T) {
	uc := newUseCase(t, memory.NewStore(), nil, nil)
	ctx := context.Background()

	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "no-es-email", Password: "secret1", FullName: "Ana"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Email: "a@b.com", Password: "123", FullName: "Ana"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	var detailed *domain.DetailedError
	require.True(t, errors.As(err, &detailed))
	assert.Equal(t, "Password must be at least 6 characters", detailed.Detail)
}

func TestLogin_GeneraTokenConRol(t *testing.T) {
	store := memory.NewStore()
	uc := newUseCase(t, store, nil, nil)
	u := register(t, uc, "ana@example.com", "")

	tok, err := uc.Login(context.Background(), dto.LoginRequest{Username: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", tok.TokenType)

	userID, email, role, err := jwt.Parse(testSecret, tok.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, userID)
	assert.Equal(t, "ana@example.com", email)
	assert.Equal(t, "customer", role)
}

func TestLogin_CredencialesIncorrectas(t *testing.T) {
	uc := newUseCase(t, memory.NewStore(), nil, nil)
	register(t, uc, "ana@example.com", "")
	ctx := context.Background()

	_, err := uc.Login(ctx, dto.LoginRequest{Username: "ana@example.com", Password: "mala"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	store := memory.NewStore()
	uc := newUseCase(t, store, nil, nil)
	u := register(t, uc, "ana@example.com", "")
	ctx := context.Background()

	ent, err := store.Users().GetByID(ctx, u.ID)
	require.NoError(t, err)
	ent.IsActive = false
	require.NoError(t, store.Users().Update(ctx, ent))

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "ana@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUpdateProfile_SoloCamposPresentes(t *testing.T) {
	uc := newUseCase(t, memory.NewStore(), nil, nil)
	u := register(t, uc, "ana@example.com", "+911111111111")
	addr := "12 MG Road, Bengaluru"

	out, err := uc.UpdateProfile(context.Background(), u.ID, dto.UpdateProfileRequest{Address: &addr})
	require.NoError(t, err)
	assert.Equal(t, "Ana Pérez", out.FullName)
	require.NotNil(t, out.Phone)
	assert.Equal(t, "+911111111111", *out.Phone)
	require.NotNil(t, out.Address)
	assert.Equal(t, addr, *out.Address)
}

func TestSendOTP_TelefonoNoRegistrado(t *testing.T) {
	uc := newUseCase(t, memory.NewStore(), nil, nil)

	_, err := uc.SendOTP(context.Background(), dto.OTPRequest{Phone: "+910000000000"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSendOTP_SinSMSDevuelveDebugYVerifica(t *testing.T) {
	uc := newUseCase(t, memory.NewStore(), nil, nil)
	u := register(t, uc, "ana@example.com", "+911234567890")
	ctx := context.Background()

	sent, err := uc.SendOTP(ctx, dto.OTPRequest{Phone: "+911234567890"})
	require.NoError(t, err)
	require.Len(t, sent.OTPDebug, 6)

	tok, err := uc.VerifyOTP(ctx, dto.OTPVerifyRequest{Phone: "+911234567890", OTP: sent.OTPDebug})
	require.NoError(t, err)
	userID, _, _, err := jwt.Parse(testSecret, tok.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, userID)

	// el código es de un solo uso
	_, err = uc.VerifyOTP(ctx, dto.OTPVerifyRequest{Phone: "+911234567890", OTP: sent.OTPDebug})
	assert.ErrorIs(t, err, domain.ErrInvalidOTP)
}

func TestSendOTP_ConSMSNoExponeCodigo(t *testing.T) {
	sms := &fakeSMS{}
	uc := newUseCase(t, memory.NewStore(), sms, nil)
	register(t, uc, "ana@example.com", "+911234567890")

	sent, err := uc.SendOTP(context.Background(), dto.OTPRequest{Phone: "+911234567890"})
	require.NoError(t, err)
	assert.Empty(t, sent.OTPDebug)
	assert.Equal(t, "OTP sent successfully", sent.Message)
	assert.Equal(t, "+911234567890", sms.to)
	assert.Contains(t, sms.body, "Valid for 5 minutes")
}

func TestVerifyOTP_Expirado(t *testing.T) {
	uc := newUseCase(t, memory.NewStore(), nil, nil)
	register(t, uc, "ana@example.com", "+911234567890")
	ctx := context.Background()

	sent, err := uc.SendOTP(ctx, dto.OTPRequest{Phone: "+911234567890"})
	require.NoError(t, err)

	uc.now = func() time.Time { return time.Now().Add(6 * time.Minute) }
	_, err = uc.VerifyOTP(ctx, dto.OTPVerifyRequest{Phone: "+911234567890", OTP: sent.OTPDebug})
	assert.ErrorIs(t, err, domain.ErrOTPExpired)
}

func TestForgotPassword_EmailDesconocidoRespondeIgual(t *testing.T) {
	uc := newUseCase(t, memory.NewStore(), nil, nil)

	resp, err := uc.ForgotPassword(context.Background(), dto.ForgotPasswordRequest{Email: "nadie@example.com"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Message)
	assert.Empty(t, resp.ResetDebug)
}

func TestForgotYResetPassword_FlujoCompleto(t *testing.T) {
	uc := newUseCase(t, memory.NewStore(), nil, nil)
	register(t, uc, "ana@example.com", "")
	ctx := context.Background()

	resp, err := uc.ForgotPassword(ctx, dto.ForgotPasswordRequest{Email: "ana@example.com"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.ResetDebug)

	_, err = uc.ResetPassword(ctx, dto.ResetPasswordRequest{Token: resp.ResetDebug, NewPassword: "nueva-clave"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "ana@example.com", Password: "nueva-clave"})
	assert.NoError(t, err)

	_, err = uc.ResetPassword(ctx, dto.ResetPasswordRequest{Token: resp.ResetDebug, NewPassword: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrInvalidResetToken)
}

func TestForgotPassword_ConMailerEnviaEnlace(t *testing.T) {
	mailer := &fakeMailer{}
	uc := newUseCase(t, memory.NewStore(), nil, mailer)
	register(t, uc, "ana@example.com", "")

	resp, err := uc.ForgotPassword(context.Background(), dto.ForgotPasswordRequest{Email: "ana@example.com"})
	require.NoError(t, err)
	assert.Empty(t, resp.ResetDebug)
	assert.Equal(t, "ana@example.com", mailer.to)
	assert.Contains(t, mailer.body, "http://shop.test/reset-password?token=")
}

func TestResetPassword_TokenExpirado(t *testing.T) {
	uc := newUseCase(t, memory.NewStore(), nil, nil)
	register(t, uc, "ana@example.com", "")
	ctx := context.Background()

	resp, err := uc.ForgotPassword(ctx, dto.ForgotPasswordRequest{Email: "ana@example.com"})
	require.NoError(t, err)

	uc.now = func() time.Time { return time.Now().Add(31 * time.Minute) }
	_, err = uc.ResetPassword(ctx, dto.ResetPasswordRequest{Token: resp.ResetDebug, NewPassword: "nueva-clave"})
	assert.ErrorIs(t, err, domain.ErrInvalidResetToken)
}

func TestResetPassword_CanjesConcurrentesSoloUnoGana(t *testing.T) {
	store := memory.NewStore()
	uc := newUseCase(t, store, nil, nil)
	register(t, uc, "ana@example.com", "")
	ctx := context.Background()

	resp, err := uc.ForgotPassword(ctx, dto.ForgotPasswordRequest{Email: "ana@example.com"})
	require.NoError(t, err)

	passwords := []string{"clave-uno", "clave-dos", "clave-tres", "clave-cuatro"}
	errs := make(chan error, len(passwords))
	var wg sync.WaitGroup
	for _, pw := range passwords {
		wg.Add(1)
		go func(pw string) {
			defer wg.Done()
			_, err := uc.ResetPassword(ctx, dto.ResetPasswordRequest{Token: resp.ResetDebug, NewPassword: pw})
			errs <- err
		}(pw)
	}
	wg.Wait()
	close(errs)

	ok := 0
	for err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrInvalidResetToken)
	}
	assert.Equal(t, 1, ok)

	// Solo una de las contraseñas quedó vigente.
	valid := 0
	for _, pw := range passwords {
		if _, err := uc.Login(ctx, dto.LoginRequest{Username: "ana@example.com", Password: pw}); err == nil {
			valid++
		}
	}
	assert.Equal(t, 1, valid)
}
