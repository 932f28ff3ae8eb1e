package certificate

import (
	"context"

	"github.com/jhoicas/Garancia-api/internal/domain/entity"
	"github.com/jhoicas/Garancia-api/internal/domain/warranty"
)

// InvoiceSource entrega la factura con sus líneas (solo lectura).
// Devuelve (nil, nil) si la factura no existe.
type InvoiceSource interface {
	GetInvoice(ctx context.Context, invoiceID string) (*entity.Invoice, error)
}

// SettingsStore almacén de configuración de garantías por empresa.
// Get nunca devuelve nil sin error: si no hay nada guardado aplica los valores por defecto.
type SettingsStore interface {
	Get(ctx context.Context, companyID string) (*entity.WarrantySettings, error)
	Save(ctx context.Context, companyID string, settings *entity.WarrantySettings) error
}

// AttachmentSink persiste el PDF final. Asigna ID y CreatedAt si vienen vacíos.
type AttachmentSink interface {
	Save(ctx context.Context, attachment *entity.Attachment) error
}

// AttachmentReader lectura de adjuntos para la descarga.
type AttachmentReader interface {
	GetByID(ctx context.Context, id string) (*entity.Attachment, error)
}

// CertificateComposer compone un certificado (una o más páginas A4).
type CertificateComposer interface {
	Compose(ctx context.Context, req warranty.CertificateRequest) (warranty.RenderedPage, error)
}

// DocumentMerger concatena las páginas en el orden recibido.
type DocumentMerger interface {
	Merge(ctx context.Context, pages []warranty.RenderedPage) (warranty.Document, error)
}
