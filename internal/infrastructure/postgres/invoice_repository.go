package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Garancia-api/internal/application/certificate"
	"github.com/jhoicas/Garancia-api/internal/domain/entity"
	"github.com/jhoicas/Garancia-api/internal/domain/warranty"
)

var _ certificate.InvoiceSource = (*InvoiceRepo)(nil)

// InvoiceRepo lectura de facturas y sus líneas con la garantía del producto.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// GetInvoice obtiene la cabecera y las líneas en orden de factura. (nil, nil) si no existe.
func (r *InvoiceRepo) GetInvoice(ctx context.Context, invoiceID string) (*entity.Invoice, error) {
	const headerQuery = `
		SELECT id, company_id, name, date, COALESCE(partner_name, '')
		FROM invoices WHERE id = $1`
	var inv entity.Invoice
	var date *time.Time
	err := r.q.QueryRow(ctx, headerQuery, invoiceID).Scan(
		&inv.ID, &inv.CompanyID, &inv.Name, &date, &inv.PartnerName,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	inv.Date = date

	lines, err := r.lines(ctx, inv.ID)
	if err != nil {
		return nil, err
	}
	inv.Lines = lines
	return &inv, nil
}

func (r *InvoiceRepo) lines(ctx context.Context, invoiceID string) ([]entity.InvoiceLine, error) {
	const query = `
		SELECT l.id, l.product_id, COALESCE(NULLIF(l.product_name, ''), p.name, ''),
		       l.quantity, p.warranty, COALESCE(p.warranty_disabled, FALSE)
		FROM invoice_lines l
		LEFT JOIN products p ON p.id = l.product_id
		WHERE l.invoice_id = $1
		ORDER BY l.sequence, l.id`
	rows, err := r.q.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice lines: %w", err)
	}
	defer rows.Close()

	var list []entity.InvoiceLine
	for rows.Next() {
		var (
			l        entity.InvoiceLine
			qty      decimal.Decimal
			raw      *string
			disabled bool
		)
		if err := rows.Scan(&l.ID, &l.ProductID, &l.ProductName, &qty, &raw, &disabled); err != nil {
			return nil, fmt.Errorf("scan invoice line: %w", err)
		}
		l.Quantity = qty
		l.Warranty = warrantyFromColumns(raw, disabled)
		list = append(list, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate invoice lines: %w", err)
	}
	return list, nil
}

// warrantyFromColumns traduce las columnas del producto a WarrantyValue:
// warranty_disabled=TRUE es "sin garantía" explícito, NULL es no definido.
func warrantyFromColumns(raw *string, disabled bool) warranty.WarrantyValue {
	switch {
	case disabled:
		return warranty.ExplicitNone()
	case raw == nil:
		return warranty.Unset()
	default:
		return warranty.Provided(*raw)
	}
}
