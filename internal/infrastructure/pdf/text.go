package pdf

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/Garancia-api/internal/domain"
)

// maxFieldRunes longitud máxima que cabe en una línea del bloque de campos.
const maxFieldRunes = 48

// Las fuentes base del PDF solo cubren Windows-1252.
func encodable(s string) bool {
	for _, r := range s {
		if _, ok := charmap.Windows1252.EncodeRune(r); !ok {
			return false
		}
	}
	return true
}

// checkFields valida que los valores quepan en el bloque de campos.
func checkFields(values ...string) error {
	for _, v := range values {
		if !encodable(v) {
			return fmt.Errorf("%w: %q", domain.ErrUnencodableText, v)
		}
		if utf8.RuneCountInString(v) > maxFieldRunes {
			return fmt.Errorf("pdf: valor demasiado largo para el bloque de campos (%d caracteres)", utf8.RuneCountInString(v))
		}
	}
	return nil
}

// safeText reemplaza por "?" los caracteres fuera de Windows-1252.
func safeText(s string) string {
	if encodable(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if _, ok := charmap.Windows1252.EncodeRune(r); ok {
			b.WriteRune(r)
		} else {
			b.WriteByte('?')
		}
	}
	return b.String()
}

// documentTitle título de los metadatos del PDF.
func documentTitle(invoiceNumber string) string {
	return safeText(strings.TrimSpace("Certifikatë Garancie " + invoiceNumber))
}
