package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Garancia-api/internal/application/certificate"
	"github.com/jhoicas/Garancia-api/internal/application/dto"
)

// CertificateHandler generación de certificados de garantía (protegido).
type CertificateHandler struct {
	uc  *certificate.GenerateUseCase
	log zerolog.Logger
}

// NewCertificateHandler construye el handler.
func NewCertificateHandler(uc *certificate.GenerateUseCase, log zerolog.Logger) *CertificateHandler {
	return &CertificateHandler{uc: uc, log: log}
}

// Generate godoc
// @Summary      Generar certificados de garantía de una factura
// @Description  Un certificado por línea elegible, unidos en un PDF que se guarda como adjunto.
//
//	Si hay productos marcados sin garantía responde 409 con las líneas; reenviar con confirmed=true.
//
// @Tags         warranty
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                            true   "ID de la factura"
// @Param        body  body  dto.GenerateCertificatesRequest  false  "confirmed"
// @Success      201   {object}  dto.CertificatesDeliveredResponse
// @Success      200   {object}  dto.NotificationResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ConfirmationRequiredResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/warranty-certificates [post]
func (h *CertificateHandler) Generate(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.GenerateCertificatesRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}

	res, err := h.uc.Generate(c.Context(), certificate.GenerateInput{
		CompanyID: companyID,
		InvoiceID: c.Params("id"),
		Confirmed: in.Confirmed,
	})
	if err != nil {
		return writeError(c, h.log, err, "factura no encontrada")
	}

	switch res.Status {
	case certificate.StatusEmpty:
		return c.Status(fiber.StatusOK).JSON(dto.NotificationResponse{
			Status:  string(res.Status),
			Title:   "Sin certificados",
			Message: "La factura " + res.InvoiceName + " no tiene productos que requieran certificado de garantía.",
			Type:    "warning",
		})
	case certificate.StatusConfirmationRequired:
		lines := make([]dto.PendingLineResponse, 0, len(res.PendingLines))
		for _, l := range res.PendingLines {
			lines = append(lines, dto.PendingLineResponse{LineID: l.LineID, ProductID: l.ProductID, ProductName: l.DisplayName})
		}
		return c.Status(fiber.StatusConflict).JSON(dto.ConfirmationRequiredResponse{
			Status:  string(res.Status),
			Message: "Algunos productos no tienen garantía definida. Reenvíe con confirmed=true para generar igualmente.",
			Lines:   lines,
		})
	}

	out := dto.CertificatesDeliveredResponse{
		Status:       string(res.Status),
		AttachmentID: res.Attachment.ID,
		Filename:     res.Attachment.Name,
		Pages:        res.Document.PageCount(),
		DownloadURL:  "/api/attachments/" + res.Attachment.ID,
	}
	for _, f := range res.Failures {
		out.Failures = append(out.Failures, dto.LineFailureResponse{LineID: f.LineID, ProductID: f.ProductID, Error: f.Err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
