package warranty

import (
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// Placeholders cuando falta el dato: se imprimen como línea para completar a mano.
const (
	CustomerPlaceholder = "___________________"
	ProductPlaceholder  = "________________"

	// FallbackMonths se usa si ni la línea ni la configuración aportan un período.
	FallbackMonths = "1"

	// DateLayout formato DD/MM/YYYY del certificado.
	DateLayout = "02/01/2006"
)

// Sufijos de unidad que se eliminan del período crudo (sensible a mayúsculas).
// "months" va antes que "month" para no dejar una "s" colgando.
var monthSuffixes = []string{"muaj", "months", "month"}

// NormalizeMonths limpia un período crudo ("24 muaj" → "24"). Devuelve "" si no queda nada.
func NormalizeMonths(raw string) string {
	s := strings.TrimSpace(raw)
	for _, suffix := range monthSuffixes {
		if strings.HasSuffix(s, suffix) {
			s = strings.TrimSpace(strings.TrimSuffix(s, suffix))
			break
		}
	}
	return s
}

// Normalize deriva los campos visibles del certificado para una línea.
// Nunca falla: los datos ausentes se degradan a placeholders o valores por defecto.
// defaultMonths es el período configurado; si está vacío se usa FallbackMonths.
func Normalize(line ProductLine, customerName, invoiceNumber string, invoiceDate *time.Time, defaultMonths string) CertificateRequest {
	return CertificateRequest{
		CustomerName:   textOr(customerName, CustomerPlaceholder),
		ProductName:    textOr(line.DisplayName, ProductPlaceholder),
		WarrantyMonths: resolveMonths(line.Warranty, defaultMonths),
		InvoiceNumber:  norm.NFC.String(strings.TrimSpace(invoiceNumber)),
		InvoiceDate:    FormatDate(invoiceDate),
	}
}

// FormatDate formatea sin convertir de zona horaria; nil → "".
func FormatDate(d *time.Time) string {
	if d == nil || d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func resolveMonths(w WarrantyValue, defaultMonths string) string {
	if raw, ok := w.Raw(); ok {
		if months := NormalizeMonths(raw); months != "" {
			return months
		}
	}
	if months := NormalizeMonths(defaultMonths); months != "" {
		return months
	}
	return FallbackMonths
}

func textOr(s, placeholder string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return placeholder
	}
	return norm.NFC.String(s)
}
