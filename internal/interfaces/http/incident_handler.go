package http

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/roofguard-api/internal/application/dto"
	"github.com/jhoicas/roofguard-api/internal/application/safety"
	"github.com/jhoicas/roofguard-api/pkg/logger"
)

// IncidentHandler reporte de incidentes y registro OSHA 300.
type IncidentHandler struct {
	uc   *safety.IncidentUseCase
	osha *safety.OSHALogUseCase
	log  *logger.Logger
}

// NewIncidentHandler construye el handler.
func NewIncidentHandler(uc *safety.IncidentUseCase, osha *safety.OSHALogUseCase, log *logger.Logger) *IncidentHandler {
	return &IncidentHandler{uc: uc, osha: osha, log: log}
}

// Report godoc
// @Summary      Reportar incidente
// @Tags         incidents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        orgId  path  string  true  "Organization ID"
// @Param        body  body  dto.CreateIncidentRequest  true  "incidente"
// @Success      201   {object}  dto.IncidentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orgs/{orgId}/incidents [post]
func (h *IncidentHandler) Report(c *fiber.Ctx) error {
	var in dto.CreateIncidentRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, h.log, err)
	}
	out, err := h.uc.Report(c.UserContext(), GetOrgID(c), GetUserID(c), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar incidentes
// @Tags         incidents
// @Produce      json
// @Security     BearerAuth
// @Param        orgId   path   string  true   "Organization ID"
// @Param        status  query  string  false  "OPEN, INVESTIGATING o CLOSED"
// @Param        limit   query  int     false  "Límite"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200   {object}  dto.IncidentListResponse
// @Router       /api/orgs/{orgId}/incidents [get]
func (h *IncidentHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(c.UserContext(), GetOrgID(c), c.Query("status"), page)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener incidente
// @Tags         incidents
// @Produce      json
// @Security     BearerAuth
// @Param        orgId  path  string  true  "Organization ID"
// @Param        id     path  string  true  "Incident ID"
// @Success      200   {object}  dto.IncidentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orgs/{orgId}/incidents/{id} [get]
func (h *IncidentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetOrgID(c), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado del incidente
// @Tags         incidents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        orgId  path  string  true  "Organization ID"
// @Param        id     path  string  true  "Incident ID"
// @Param        body  body  dto.UpdateIncidentStatusRequest  true  "nuevo estado"
// @Success      200   {object}  dto.IncidentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orgs/{orgId}/incidents/{id}/status [patch]
func (h *IncidentHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateIncidentStatusRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, h.log, err)
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), GetOrgID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// OSHALog godoc
// @Summary      Descargar registro OSHA 300 en PDF
// @Tags         incidents
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        orgId  path   string  true   "Organization ID"
// @Param        year   query  int     false  "Año (por defecto el actual)"
// @Success      200   {file}    binary
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orgs/{orgId}/incidents/osha300.pdf [get]
func (h *IncidentHandler) OSHALog(c *fiber.Ctx) error {
	year := time.Now().UTC().Year()
	if raw := c.Query("year"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return respondError(c, h.log, invalidQuery("year", "year must be an integer"))
		}
		year = n
	}
	pdf, filename, err := h.osha.DownloadPDF(c.UserContext(), GetOrgID(c), GetOrgName(c), year)
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdf)
}
