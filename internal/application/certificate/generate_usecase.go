package certificate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/iter"

	"github.com/jhoicas/Garancia-api/internal/domain"
	"github.com/jhoicas/Garancia-api/internal/domain/entity"
	"github.com/jhoicas/Garancia-api/internal/domain/warranty"
)

// Status resultado visible para el llamador cuando no hay error.
type Status string

const (
	StatusDelivered            Status = "delivered"
	StatusEmpty                Status = "empty"
	StatusConfirmationRequired Status = "confirmation_required"
)

// GenerateInput petición de generación para una factura.
// Confirmed=true reanuda una generación que pidió confirmación.
type GenerateInput struct {
	CompanyID string
	InvoiceID string
	Confirmed bool
}

// LineFailure diagnóstico de una línea cuyo certificado no se pudo componer.
type LineFailure struct {
	LineID    string
	ProductID string
	Err       error
}

// GenerationResult resultado de Generate.
//   - StatusDelivered: Attachment y Document contienen el PDF; Failures las líneas omitidas.
//   - StatusEmpty: ninguna línea elegible, no se generó nada.
//   - StatusConfirmationRequired: PendingLines deben confirmarse y reenviarse con Confirmed=true.
type GenerationResult struct {
	Status       Status
	InvoiceName  string
	Attachment   *entity.Attachment
	Document     warranty.Document
	PendingLines []warranty.ProductLine
	Failures     []LineFailure
}

// GenerateUseCase genera el PDF de certificados de garantía de una factura:
// filtro → normalización → composición por línea → unión en orden → adjunto.
type GenerateUseCase struct {
	invoices    InvoiceSource
	settings    SettingsStore
	attachments AttachmentSink
	composer    CertificateComposer
	merger      DocumentMerger
	log         zerolog.Logger
	workers     int
	now         func() time.Time
}

// Option ajustes opcionales del caso de uso.
type Option func(*GenerateUseCase)

// WithWorkers número máximo de certificados compuestos en paralelo (por defecto 1).
func WithWorkers(n int) Option {
	return func(uc *GenerateUseCase) {
		if n > 0 {
			uc.workers = n
		}
	}
}

// WithClock reloj para el nombre del archivo.
func WithClock(now func() time.Time) Option {
	return func(uc *GenerateUseCase) { uc.now = now }
}

// WithLogger logger estructurado.
func WithLogger(log zerolog.Logger) Option {
	return func(uc *GenerateUseCase) { uc.log = log }
}

// NewGenerateUseCase construye el caso de uso inyectando todas sus dependencias.
func NewGenerateUseCase(
	invoices InvoiceSource,
	settings SettingsStore,
	attachments AttachmentSink,
	composer CertificateComposer,
	merger DocumentMerger,
	opts ...Option,
) *GenerateUseCase {
	uc := &GenerateUseCase{
		invoices:    invoices,
		settings:    settings,
		attachments: attachments,
		composer:    composer,
		merger:      merger,
		log:         zerolog.Nop(),
		workers:     1,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Generate ejecuta la generación completa para una factura.
//
// Retorna:
//   - (*GenerationResult, nil)  para los tres resultados de Status.
//   - domain.ErrNotFound        si la factura no existe.
//   - domain.ErrForbidden       si la factura no pertenece a la empresa.
//   - domain.ErrGenerationFailed si ninguna línea se pudo componer o falló la unión.
func (uc *GenerateUseCase) Generate(ctx context.Context, in GenerateInput) (*GenerationResult, error) {
	if in.InvoiceID == "" || in.CompanyID == "" {
		return nil, domain.ErrInvalidInput
	}

	// ── 1. Cargar factura ─────────────────────────────────────────────────────
	inv, err := uc.invoices.GetInvoice(ctx, in.InvoiceID)
	if err != nil {
		return nil, fmt.Errorf("garantía: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.CompanyID != in.CompanyID {
		return nil, domain.ErrForbidden
	}

	log := uc.log.With().Str("invoice_id", inv.ID).Str("invoice", inv.Name).Logger()

	// ── 2. Configuración de la empresa (una sola lectura por invocación) ──────
	settings, err := uc.settings.Get(ctx, in.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("garantía: obtener configuración: %w", err)
	}

	// ── 3. Filtro de elegibilidad ─────────────────────────────────────────────
	part := warranty.Filter(inv.ProductLines(), settings.Exclusions(), in.Confirmed)
	log.Info().
		Int("lines", len(inv.Lines)).
		Int("included", len(part.Included)).
		Int("pending", len(part.NeedsConfirmation)).
		Int("excluded", len(part.Excluded)).
		Bool("confirmed", in.Confirmed).
		Msg("generación de certificados de garantía")

	result := &GenerationResult{InvoiceName: inv.Name}
	if part.IsEmpty() {
		log.Info().Msg("sin líneas elegibles para certificado")
		result.Status = StatusEmpty
		return result, nil
	}
	if part.RequiresConfirmation() {
		log.Info().Int("pending", len(part.NeedsConfirmation)).Msg("se requiere confirmación del usuario")
		result.Status = StatusConfirmationRequired
		result.PendingLines = part.NeedsConfirmation
		return result, nil
	}

	// ── 4. Normalizar + componer (en paralelo, orden preservado) ──────────────
	reqs := make([]warranty.CertificateRequest, len(part.Included))
	for i, line := range part.Included {
		reqs[i] = warranty.Normalize(line, inv.PartnerName, inv.Name, inv.Date, settings.DefaultWarrantyPeriod)
	}

	type rendered struct {
		page warranty.RenderedPage
		err  error
	}
	mapper := iter.Mapper[warranty.CertificateRequest, rendered]{MaxGoroutines: uc.workers}
	outputs := mapper.Map(reqs, func(req *warranty.CertificateRequest) rendered {
		page, err := uc.composer.Compose(ctx, *req)
		if err == nil && page.IsEmpty() {
			err = domain.ErrRenderFailed
		}
		return rendered{page: page, err: err}
	})

	pages := make([]warranty.RenderedPage, 0, len(outputs))
	var causes []error
	for i, out := range outputs {
		line := part.Included[i]
		if out.err != nil {
			log.Warn().Err(out.err).
				Str("line_id", line.LineID).
				Str("product_id", line.ProductID).
				Msg("certificado omitido: falló la composición")
			result.Failures = append(result.Failures, LineFailure{LineID: line.LineID, ProductID: line.ProductID, Err: out.err})
			causes = append(causes, fmt.Errorf("línea %s: %w", line.LineID, out.err))
			continue
		}
		pages = append(pages, out.page)
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("%w: %w", domain.ErrGenerationFailed, errors.Join(causes...))
	}

	// ── 5. Unir en un solo documento ──────────────────────────────────────────
	doc, err := uc.merger.Merge(ctx, pages)
	if err != nil {
		return nil, fmt.Errorf("%w: unir certificados: %w", domain.ErrGenerationFailed, err)
	}

	// ── 6. Entregar como adjunto de la factura ────────────────────────────────
	now := uc.now()
	attachment := &entity.Attachment{
		CompanyID: inv.CompanyID,
		ResModel:  entity.AttachmentResModelInvoice,
		ResID:     inv.ID,
		Name:      Filename(inv.Name, now),
		MimeType:  entity.MimeTypePDF,
		Data:      doc.Bytes(),
		CreatedAt: now,
	}
	if err := uc.attachments.Save(ctx, attachment); err != nil {
		return nil, fmt.Errorf("garantía: guardar adjunto: %w", err)
	}

	log.Info().
		Str("attachment_id", attachment.ID).
		Int("pages", doc.PageCount()).
		Int("bytes", len(attachment.Data)).
		Int("failures", len(result.Failures)).
		Msg("certificados de garantía generados")

	result.Status = StatusDelivered
	result.Attachment = attachment
	result.Document = doc
	return result, nil
}

// Filename nombre del PDF: certificate_<factura>_<YYYYMMDD_HHMMSS>.pdf.
// Las barras y espacios del número de factura se reemplazan por "_".
func Filename(invoiceName string, at time.Time) string {
	name := strings.TrimSpace(invoiceName)
	if name == "" {
		name = "factura"
	}
	name = strings.NewReplacer("/", "_", "\\", "_", " ", "_").Replace(name)
	return fmt.Sprintf("certificate_%s_%s.pdf", name, at.Format("20060102_150405"))
}
