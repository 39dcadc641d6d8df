package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/roofguard-api/internal/application/dto"
	"github.com/jhoicas/roofguard-api/internal/application/safety"
	"github.com/jhoicas/roofguard-api/pkg/logger"
)

// CertificationTemplateHandler catálogo de tipos de certificación.
type CertificationTemplateHandler struct {
	uc  *safety.CertificationTemplateUseCase
	log *logger.Logger
}

// NewCertificationTemplateHandler construye el handler.
func NewCertificationTemplateHandler(uc *safety.CertificationTemplateUseCase, log *logger.Logger) *CertificationTemplateHandler {
	return &CertificationTemplateHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear plantilla de certificación
// @Tags         certifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        orgId  path  string  true  "Organization ID"
// @Param        body  body  dto.CreateCertificationTemplateRequest  true  "plantilla"
// @Success      201   {object}  dto.CertificationTemplateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orgs/{orgId}/certification-templates [post]
func (h *CertificationTemplateHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCertificationTemplateRequest
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
// @Summary      Listar plantillas de certificación
// @Tags         certifications
// @Produce      json
// @Security     BearerAuth
// @Param        orgId  path  string  true  "Organization ID"
// @Success      200   {object}  dto.CertificationTemplateListResponse
// @Router       /api/orgs/{orgId}/certification-templates [get]
func (h *CertificationTemplateHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetOrgID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
