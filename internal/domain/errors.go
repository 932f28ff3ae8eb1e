package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")

	// Generación de certificados de garantía.
	ErrRenderFailed     = errors.New("no se pudo componer el certificado")
	ErrGenerationFailed = errors.New("no se pudo generar el PDF de garantía")
	ErrNothingToMerge   = errors.New("no hay páginas para unir")
	ErrUnencodableText  = errors.New("texto no representable en la fuente del documento")
	ErrInvalidWarranty  = errors.New("valor de garantía inválido")
)
