package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/roofguard-api/internal/domain/entity"
)

// HeaderOrgID header que indica la organización de la petición; tiene prioridad sobre el parámetro orgId.
const HeaderOrgID = "x-org-id"

// RequireRole devuelve un middleware que exige una membresía en la organización de la
// petición con rol >= min. Debe usarse DESPUÉS de AuthMiddleware y registrarse por ruta
// para que c.Params("orgId") esté disponible.
//
// Comportamiento:
//   - 401 sin sesión.
//   - 400 si no hay organización en header ni en la ruta.
//   - 403 sin membresía en esa organización o con rol insuficiente.
func RequireRole(min entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := GetSession(c)
		if session == nil {
			return writeError(c, fiber.StatusUnauthorized, msgUnauthorized)
		}

		orgID := c.Get(HeaderOrgID)
		if orgID == "" {
			orgID = c.Params("orgId")
		}
		if orgID == "" {
			return writeError(c, fiber.StatusBadRequest, msgOrgNotSpecified)
		}

		m, ok := session.Membership(orgID)
		if !ok || !m.Role.AtLeast(min) {
			return writeError(c, fiber.StatusForbidden, msgForbidden)
		}

		c.Locals(LocalOrgID, orgID)
		c.Locals(LocalOrgRole, m.Role)
		c.Locals(LocalOrgName, m.OrganizationName)
		return c.Next()
	}
}

// GetOrgID devuelve la organización autorizada por RequireRole.
func GetOrgID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalOrgID).(string)
	return s
}

// GetOrgRole devuelve el rol del usuario en la organización autorizada.
func GetOrgRole(c *fiber.Ctx) entity.Role {
	r, _ := c.Locals(LocalOrgRole).(entity.Role)
	return r
}

// GetOrgName devuelve el nombre de la organización autorizada.
func GetOrgName(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalOrgName).(string)
	return s
}
