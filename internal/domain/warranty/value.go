package warranty

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/Garancia-api/internal/domain"
)

// Kind distingue los tres estados posibles del campo de garantía de un producto.
type Kind uint8

const (
	// KindUnset: el producto no informa garantía (campo ausente o null).
	KindUnset Kind = iota
	// KindProvided: hay un texto, que puede ser vacío ("") o algo como "24 muaj".
	KindProvided
	// KindExplicitNone: garantía marcada explícitamente como no definida (false).
	// Es el único estado que exige confirmación del usuario.
	KindExplicitNone
)

func (k Kind) String() string {
	switch k {
	case KindProvided:
		return "provided"
	case KindExplicitNone:
		return "explicit_none"
	default:
		return "unset"
	}
}

// WarrantyValue es el valor crudo de garantía de una línea. El valor cero es Unset.
type WarrantyValue struct {
	kind Kind
	raw  string
}

// Unset devuelve una garantía no informada.
func Unset() WarrantyValue { return WarrantyValue{} }

// Provided devuelve una garantía con texto (puede ser vacío).
func Provided(raw string) WarrantyValue { return WarrantyValue{kind: KindProvided, raw: raw} }

// ExplicitNone devuelve el centinela "garantía no definida".
func ExplicitNone() WarrantyValue { return WarrantyValue{kind: KindExplicitNone} }

// Kind devuelve la variante.
func (w WarrantyValue) Kind() Kind { return w.kind }

// Raw devuelve el texto si la variante es Provided.
func (w WarrantyValue) Raw() (string, bool) {
	if w.kind != KindProvided {
		return "", false
	}
	return w.raw, true
}

// IsExplicitNone informa si es el centinela false.
func (w WarrantyValue) IsExplicitNone() bool { return w.kind == KindExplicitNone }

func (w WarrantyValue) String() string {
	switch w.kind {
	case KindProvided:
		return fmt.Sprintf("%q", w.raw)
	case KindExplicitNone:
		return "false"
	default:
		return "<unset>"
	}
}

// MarshalJSON: Unset → null, Provided → string, ExplicitNone → false.
func (w WarrantyValue) MarshalJSON() ([]byte, error) {
	switch w.kind {
	case KindProvided:
		return json.Marshal(w.raw)
	case KindExplicitNone:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON acepta null, string o false. true y los números son inválidos.
func (w *WarrantyValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*w = Unset()
		return nil
	case bytes.Equal(data, []byte("false")):
		*w = ExplicitNone()
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrInvalidWarranty, err)
		}
		*w = Provided(s)
		return nil
	default:
		return fmt.Errorf("%w: %s", domain.ErrInvalidWarranty, string(data))
	}
}
