package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/roofguard-api/internal/application/dto"
	"github.com/jhoicas/roofguard-api/internal/application/safety"
	"github.com/jhoicas/roofguard-api/pkg/logger"
)

// CertificationHandler certificaciones de seguridad de los empleados.
type CertificationHandler struct {
	uc  *safety.CertificationUseCase
	log *logger.Logger
}

// NewCertificationHandler construye el handler.
func NewCertificationHandler(uc *safety.CertificationUseCase, log *logger.Logger) *CertificationHandler {
	return &CertificationHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Registrar certificación
// @Tags         certifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        orgId  path  string  true  "Organization ID"
// @Param        body  body  dto.CreateCertificationRequest  true  "certificación"
// @Success      201   {object}  dto.CertificationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orgs/{orgId}/certifications [post]
func (h *CertificationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCertificationRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, h.log, err)
	}
	out, err := h.uc.Create(c.UserContext(), GetOrgID(c), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar certificaciones
// @Tags         certifications
// @Produce      json
// @Security     BearerAuth
// @Param        orgId               path   string  true   "Organization ID"
// @Param        employeeId          query  string  false  "Filtrar por empleado"
// @Param        expiringWithinDays  query  int     false  "Solo las que vencen en N días (incluye vencidas)"
// @Success      200   {object}  dto.CertificationListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orgs/{orgId}/certifications [get]
func (h *CertificationHandler) List(c *fiber.Ctx) error {
	within := -1
	if raw := c.Query("expiringWithinDays"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > 3650 {
			return respondError(c, h.log, invalidQuery("expiringWithinDays", "expiringWithinDays must be an integer between 0 and 3650"))
		}
		within = n
	}
	employeeID := c.Query("employeeId")
	if employeeID != "" && validate.Var(employeeID, "uuid") != nil {
		return respondError(c, h.log, invalidQuery("employeeId", "employeeId must be a valid UUID"))
	}
	out, err := h.uc.List(c.UserContext(), GetOrgID(c), employeeID, within)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar certificación
// @Tags         certifications
// @Security     BearerAuth
// @Param        orgId  path  string  true  "Organization ID"
// @Param        id     path  string  true  "Certification ID"
// @Success      204
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orgs/{orgId}/certifications/{id} [delete]
func (h *CertificationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetOrgID(c), c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
