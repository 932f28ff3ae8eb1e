package warranty

import "strings"

// ProductLine es la vista de una línea de factura que necesita el filtro.
type ProductLine struct {
	LineID      string
	ProductID   string
	DisplayName string
	Warranty    WarrantyValue
}

// Exclusions lista de productos que nunca llevan certificado.
// Los nombres se comparan por contención, sensible a mayúsculas.
type Exclusions struct {
	ProductIDs     []string
	NameSubstrings []string
}

// Excludes informa si la línea queda fuera del todo.
func (e Exclusions) Excludes(line ProductLine) bool {
	for _, id := range e.ProductIDs {
		if id != "" && id == line.ProductID {
			return true
		}
	}
	for _, sub := range e.NameSubstrings {
		if sub != "" && strings.Contains(line.DisplayName, sub) {
			return true
		}
	}
	return false
}

// Partition resultado del filtro. Las tres listas son disjuntas, cubren la entrada
// y conservan el orden original.
type Partition struct {
	Included          []ProductLine
	NeedsConfirmation []ProductLine
	Excluded          []ProductLine
}

// IsEmpty: no queda ninguna línea elegible (ni incluida ni pendiente).
func (p Partition) IsEmpty() bool {
	return len(p.Included) == 0 && len(p.NeedsConfirmation) == 0
}

// RequiresConfirmation: hay líneas con garantía explícitamente no definida.
func (p Partition) RequiresConfirmation() bool {
	return len(p.NeedsConfirmation) > 0
}

// Filter reparte las líneas en excluidas, pendientes de confirmación e incluidas.
// Con confirmed=true las líneas marcadas con ExplicitNone pasan a Included.
func Filter(lines []ProductLine, ex Exclusions, confirmed bool) Partition {
	var p Partition
	for _, line := range lines {
		switch {
		case ex.Excludes(line):
			p.Excluded = append(p.Excluded, line)
		case line.Warranty.IsExplicitNone() && !confirmed:
			p.NeedsConfirmation = append(p.NeedsConfirmation, line)
		default:
			p.Included = append(p.Included, line)
		}
	}
	return p
}
