package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/roofguard-api/internal/application/dto"
	"github.com/jhoicas/roofguard-api/internal/domain"
	"github.com/jhoicas/roofguard-api/pkg/logger"
)

// Mensajes públicos de error; el detalle interno solo va al log.
const (
	msgUnauthorized       = "Unauthorized"
	msgForbidden          = "Forbidden"
	msgOrgNotSpecified    = "Organization not specified"
	msgInvalidCredentials = "Invalid credentials"
	msgEmailRegistered    = "Email already registered"
	msgValidationFailed   = "Validation failed"
	msgNotFound           = "Not found"
	msgConflict           = "Conflict"
	msgInternal           = "Internal server error"
)

func writeError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: msg})
}

// respondError traduce errores de dominio a la respuesta HTTP correspondiente.
func respondError(c *fiber.Ctx, log *logger.Logger, err error) error {
	var verr *validationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msgValidationFailed, Details: verr.fields})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   msgValidationFailed,
			Details: map[string]string{"request": err.Error()},
		})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return writeError(c, fiber.StatusConflict, msgEmailRegistered)
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrUserNotFound):
		return writeError(c, fiber.StatusUnauthorized, msgUnauthorized)
	case errors.Is(err, domain.ErrForbidden):
		return writeError(c, fiber.StatusForbidden, msgForbidden)
	case errors.Is(err, domain.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, msgNotFound)
	case errors.Is(err, domain.ErrConflict):
		return writeError(c, fiber.StatusConflict, msgConflict)
	}
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error no controlado")
	return writeError(c, fiber.StatusInternalServerError, msgInternal)
}

// ErrorHandler para fiber.Config: rutas inexistentes, body demasiado grande y panics recuperados.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return writeError(c, fe.Code, fe.Message)
		}
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error en handler")
		return writeError(c, fiber.StatusInternalServerError, msgInternal)
	}
}
