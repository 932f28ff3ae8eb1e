package dto

// GenerateCertificatesRequest body para POST /api/invoices/:id/warranty-certificates.
// Confirmed=true se envía después de que el usuario acepta las líneas sin garantía definida.
type GenerateCertificatesRequest struct {
	Confirmed bool `json:"confirmed"`
}

// CertificatesDeliveredResponse PDF generado y guardado como adjunto.
type CertificatesDeliveredResponse struct {
	Status       string                `json:"status"` // delivered
	AttachmentID string                `json:"attachment_id"`
	Filename     string                `json:"filename"`
	Pages        int                   `json:"pages"`
	DownloadURL  string                `json:"download_url"`
	Failures     []LineFailureResponse `json:"failures,omitempty"`
}

// LineFailureResponse línea omitida porque su certificado no se pudo componer.
type LineFailureResponse struct {
	LineID    string `json:"line_id"`
	ProductID string `json:"product_id"`
	Error     string `json:"error"`
}

// ConfirmationRequiredResponse líneas con garantía no definida que el usuario debe aceptar.
type ConfirmationRequiredResponse struct {
	Status  string                `json:"status"` // confirmation_required
	Message string                `json:"message"`
	Lines   []PendingLineResponse `json:"lines"`
}

// PendingLineResponse línea pendiente de confirmación.
type PendingLineResponse struct {
	LineID      string `json:"line_id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
}
