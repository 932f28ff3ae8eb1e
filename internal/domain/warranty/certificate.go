package warranty

import "fmt"

// MonthUnit sufijo fijo del período en el certificado.
const MonthUnit = "Muaj"

// CertificateRequest campos ya resueltos de un certificado. El compositor no hace
// búsquedas ni decide valores por defecto.
type CertificateRequest struct {
	CustomerName   string
	ProductName    string
	WarrantyMonths string
	InvoiceNumber  string
	InvoiceDate    string
}

// WarrantyLabel texto impreso en el bloque de campos, ej. "24 Muaj".
func (r CertificateRequest) WarrantyLabel() string {
	return fmt.Sprintf("%s %s", r.WarrantyMonths, MonthUnit)
}

// RenderedPage salida del compositor para un certificado: bytes PDF con una o más
// páginas A4. Inmutable: Bytes devuelve una copia.
type RenderedPage struct {
	content   []byte
	pageCount int
}

// NewRenderedPage copia content para que el llamador no pueda mutarlo después.
func NewRenderedPage(content []byte, pageCount int) RenderedPage {
	return RenderedPage{content: append([]byte(nil), content...), pageCount: pageCount}
}

func (p RenderedPage) Bytes() []byte  { return append([]byte(nil), p.content...) }
func (p RenderedPage) Len() int       { return len(p.content) }
func (p RenderedPage) PageCount() int { return p.pageCount }

// IsEmpty: la composición no produjo nada utilizable.
func (p RenderedPage) IsEmpty() bool { return len(p.content) == 0 || p.pageCount == 0 }

// Document PDF final con todos los certificados en el orden de las líneas.
// Igual que RenderedPage, Bytes devuelve una copia.
type Document struct {
	content   []byte
	pageCount int
}

// NewDocument construye el documento final copiando content.
func NewDocument(content []byte, pageCount int) Document {
	return Document{content: append([]byte(nil), content...), pageCount: pageCount}
}

func (d Document) Bytes() []byte  { return append([]byte(nil), d.content...) }
func (d Document) Len() int       { return len(d.content) }
func (d Document) PageCount() int { return d.pageCount }
