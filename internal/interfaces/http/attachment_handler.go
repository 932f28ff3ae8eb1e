package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Garancia-api/internal/application/certificate"
	"github.com/jhoicas/Garancia-api/internal/application/dto"
)

// AttachmentHandler descarga de adjuntos generados (protegido).
type AttachmentHandler struct {
	reader certificate.AttachmentReader
	log    zerolog.Logger
}

// NewAttachmentHandler construye el handler.
func NewAttachmentHandler(reader certificate.AttachmentReader, log zerolog.Logger) *AttachmentHandler {
	return &AttachmentHandler{reader: reader, log: log}
}

// Download godoc
// @Summary      Descargar adjunto
// @Tags         warranty
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del adjunto"
// @Success      200  {file}    binary
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/attachments/{id} [get]
func (h *AttachmentHandler) Download(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	a, err := h.reader.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err, "adjunto no encontrado")
	}
	// Un adjunto de otra empresa se trata como inexistente.
	if a == nil || a.CompanyID != companyID {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "adjunto no encontrado"})
	}

	c.Set(fiber.HeaderContentType, a.MimeType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", strconv.Quote(a.Name)))
	return c.Status(fiber.StatusOK).Send(a.Data)
}
