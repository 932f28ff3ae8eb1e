package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Garancia-api/internal/domain/warranty"
)

// Invoice cabecera de factura con sus líneas, tal como la entrega la fuente de facturas.
type Invoice struct {
	ID          string
	CompanyID   string
	Name        string     // número visible, ej. "INV/2024/0001"
	Date        *time.Time // nil si la factura aún no tiene fecha
	PartnerName string     // cliente
	Lines       []InvoiceLine
}

// InvoiceLine línea de factura. El orden del slice es el orden de la factura.
type InvoiceLine struct {
	ID          string
	ProductID   string
	ProductName string
	Quantity    decimal.Decimal
	Warranty    warranty.WarrantyValue // garantía del producto (x_studio_warranty)
}

// ProductLines vista de las líneas para el filtro de elegibilidad.
func (inv *Invoice) ProductLines() []warranty.ProductLine {
	out := make([]warranty.ProductLine, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		out = append(out, l.ProductLine())
	}
	return out
}

// ProductLine convierte la línea a la vista del filtro.
func (l InvoiceLine) ProductLine() warranty.ProductLine {
	return warranty.ProductLine{
		LineID:      l.ID,
		ProductID:   l.ProductID,
		DisplayName: l.ProductName,
		Warranty:    l.Warranty,
	}
}
