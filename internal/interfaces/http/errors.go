package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dailycare-store/internal/application/dto"
	"github.com/jhoicas/dailycare-store/internal/domain"
	"github.com/jhoicas/dailycare-store/pkg/logger"
)

// errorMapping traduce un error de dominio a status, código y mensaje por defecto.
type errorMapping struct {
	err    error
	status int
	code   string
	detail string
}

// El orden importa: los sentinels específicos van antes que ErrNotFound.
var errorMappings = []errorMapping{
	{domain.ErrUserNotFound, fiber.StatusNotFound, "NOT_FOUND", "User not found"},
	{domain.ErrProductNotFound, fiber.StatusNotFound, "NOT_FOUND", "Product not found"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND", "Not found"},
	{domain.ErrEmailAlreadyExists, fiber.StatusBadRequest, "EMAIL_EXISTS", "Email already registered"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION", "Invalid input"},
	{domain.ErrDuplicate, fiber.StatusBadRequest, "DUPLICATE", "Resource already exists"},
	{domain.ErrAlreadyInWishlist, fiber.StatusBadRequest, "ALREADY_IN_WISHLIST", "Product already in wishlist"},
	{domain.ErrInsufficientStock, fiber.StatusBadRequest, "INSUFFICIENT_STOCK", "Insufficient stock"},
	{domain.ErrInvalidOTP, fiber.StatusBadRequest, "INVALID_OTP", "Invalid OTP"},
	{domain.ErrOTPExpired, fiber.StatusBadRequest, "OTP_EXPIRED", "OTP has expired"},
	{domain.ErrInvalidResetToken, fiber.StatusBadRequest, "INVALID_RESET_TOKEN", "Invalid or expired reset token"},
	{domain.ErrSelfModification, fiber.StatusBadRequest, "SELF_MODIFICATION", "Cannot modify your own admin status"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED", "Incorrect email or password"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN", "Not enough permissions"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT", "Resource is in use"},
	{domain.ErrNotConfigured, fiber.StatusInternalServerError, "NOT_CONFIGURED", "Service not configured"},
	{domain.ErrUpstream, fiber.StatusInternalServerError, "UPSTREAM", "External service failed"},
}

// respondError escribe {code, detail} para err. Los DetailedError aportan su propio detail;
// los errores desconocidos se registran y responden 500 INTERNAL sin filtrar el mensaje.
func respondError(c *fiber.Ctx, log *logger.Logger, err error) error {
	var detailed *domain.DetailedError
	hasDetail := errors.As(err, &detailed)
	for _, m := range errorMappings {
		if !errors.Is(err, m.err) {
			continue
		}
		detail := m.detail
		if hasDetail && detailed.Detail != "" {
			detail = detailed.Detail
		}
		if m.status == fiber.StatusUnauthorized {
			c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
		}
		if m.status >= fiber.StatusInternalServerError && log != nil {
			log.Error().Err(err).Str("path", c.Path()).Msg("error de servicio externo")
		}
		return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Detail: detail})
	}
	if log != nil {
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Detail: "Internal server error"})
}

func badRequest(c *fiber.Ctx, code, detail string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Detail: detail})
}

func invalidBody(c *fiber.Ctx) error {
	return badRequest(c, "INVALID_BODY", "Invalid request body")
}

// ErrorHandler manejador global de Fiber: errores de routing (*fiber.Error) conservan su status.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Detail: fe.Message})
		}
		return respondError(c, log, err)
	}
}
