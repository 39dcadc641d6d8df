package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/roofguard-api/internal/application/usecase"
	"github.com/jhoicas/roofguard-api/pkg/logger"
)

// OrganizationHandler expone la organización activa (header x-org-id).
type OrganizationHandler struct {
	uc  *usecase.OrganizationUseCase
	log *logger.Logger
}

// NewOrganizationHandler construye el handler.
func NewOrganizationHandler(uc *usecase.OrganizationUseCase, log *logger.Logger) *OrganizationHandler {
	return &OrganizationHandler{uc: uc, log: log}
}

// Get godoc
// @Summary      Organización activa con el rol del usuario
// @Tags         organization
// @Produce      json
// @Security     BearerAuth
// @Param        x-org-id  header  string  true  "Organization ID"
// @Success      200   {object}  dto.OrganizationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/organization [get]
func (h *OrganizationHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetOrgID(c), GetOrgRole(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// ListMembers godoc
// @Summary      Miembros de la organización activa
// @Tags         organization
// @Produce      json
// @Security     BearerAuth
// @Param        x-org-id  header  string  true  "Organization ID"
// @Success      200   {object}  dto.MemberListResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/organization/members [get]
func (h *OrganizationHandler) ListMembers(c *fiber.Ctx) error {
	out, err := h.uc.ListMembers(c.UserContext(), GetOrgID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
