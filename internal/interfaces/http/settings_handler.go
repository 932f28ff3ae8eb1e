package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Garancia-api/internal/application/certificate"
	"github.com/jhoicas/Garancia-api/internal/application/dto"
)

// SettingsHandler configuración de garantías de la empresa del token.
type SettingsHandler struct {
	uc  *certificate.SettingsUseCase
	log zerolog.Logger
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *certificate.SettingsUseCase, log zerolog.Logger) *SettingsHandler {
	return &SettingsHandler{uc: uc, log: log}
}

// Get godoc
// @Summary      Obtener configuración de garantías
// @Tags         warranty
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.WarrantySettingsResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/warranty/settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), GetCompanyID(c))
	if err != nil {
		return writeError(c, h.log, err, "configuración no encontrada")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Guardar configuración de garantías
// @Description  Lista de exclusión vacía vuelve al producto por defecto; período vacío vuelve a 1 mes.
// @Tags         warranty
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateWarrantySettingsRequest  true  "exclusiones y período por defecto"
// @Success      200   {object}  dto.WarrantySettingsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/warranty/settings [put]
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateWarrantySettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Save(c.Context(), GetCompanyID(c), in)
	if err != nil {
		return writeError(c, h.log, err, "configuración no encontrada")
	}
	h.log.Info().Str("company_id", GetCompanyID(c)).Str("user_id", GetUserID(c)).Msg("configuración de garantías actualizada")
	return c.JSON(out)
}
