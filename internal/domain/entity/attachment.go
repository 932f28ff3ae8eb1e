package entity

import "time"

// Modelo y tipo MIME con que se registran los certificados generados.
const (
	AttachmentResModelInvoice = "account.move"
	MimeTypePDF               = "application/pdf"
)

// Attachment archivo generado y asociado a un registro (la factura).
type Attachment struct {
	ID        string
	CompanyID string
	ResModel  string
	ResID     string
	Name      string
	MimeType  string
	Data      []byte
	CreatedAt time.Time
}
