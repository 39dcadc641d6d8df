package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/roofguard-api/internal/application/auth"
	"github.com/jhoicas/roofguard-api/internal/domain/entity"
	"github.com/jhoicas/roofguard-api/pkg/logger"
)

// Locals keys para la sesión autenticada y la organización resuelta en Fiber.
const (
	LocalSession = "auth_session"
	LocalUserID  = "user_id"
	LocalOrgID   = "org_id"
	LocalOrgRole = "org_role"
	LocalOrgName = "org_name"
)

const bearerPrefix = "Bearer "

// TokenVerifier valida un token y devuelve el id de usuario que contiene.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// SessionReader reconstruye la sesión desde el almacén; (nil, nil) si el usuario ya no existe.
type SessionReader interface {
	LoadByID(ctx context.Context, userID string) (*entity.AuthSession, error)
}

// AuthMiddleware valida el Bearer Token, carga la sesión del usuario y la deja en c.Locals
// y en el user context. Cualquier fallo del token responde el mismo 401.
func AuthMiddleware(tokens TokenVerifier, sessions SessionReader, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, bearerPrefix) {
			return writeError(c, fiber.StatusUnauthorized, msgUnauthorized)
		}
		userID, err := tokens.Verify(strings.TrimSpace(header[len(bearerPrefix):]))
		if err != nil {
			return writeError(c, fiber.StatusUnauthorized, msgUnauthorized)
		}

		session, err := sessions.LoadByID(c.UserContext(), userID)
		if err != nil {
			log.Error().Err(err).Str("user_id", userID).Msg("cargar sesión")
			return writeError(c, fiber.StatusInternalServerError, msgInternal)
		}
		if session == nil {
			return writeError(c, fiber.StatusUnauthorized, msgUnauthorized)
		}

		c.Locals(LocalSession, session)
		c.Locals(LocalUserID, session.UserID)
		c.SetUserContext(auth.WithSession(c.UserContext(), session))
		return c.Next()
	}
}

// GetSession devuelve la sesión del contexto (después del middleware de auth).
func GetSession(c *fiber.Ctx) *entity.AuthSession {
	s, _ := c.Locals(LocalSession).(*entity.AuthSession)
	return s
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}
