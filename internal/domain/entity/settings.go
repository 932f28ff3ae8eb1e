package entity

import "github.com/jhoicas/Garancia-api/internal/domain/warranty"

// Valores por defecto heredados del módulo original.
const (
	DefaultExcludedProductID = "7884"
	DefaultWarrantyPeriod    = "1"
)

// Claves en el almacén de configuración (clave/valor por empresa).
const (
	SettingExcludeProductIDs     = "warranty_pdf.exclude_product_ids"
	SettingExcludeNameSubstrings = "warranty_pdf.exclude_name_substrings"
	SettingDefaultWarrantyPeriod = "warranty_pdf.default_warranty_period"
)

// WarrantySettings configuración de generación de certificados de una empresa.
type WarrantySettings struct {
	ExcludeProductIDs     []string `json:"exclude_product_ids"`
	ExcludeNameSubstrings []string `json:"exclude_name_substrings"`
	DefaultWarrantyPeriod string   `json:"default_warranty_period"`
}

// DefaultWarrantySettings configuración cuando la empresa no ha guardado nada.
func DefaultWarrantySettings() *WarrantySettings {
	return &WarrantySettings{
		ExcludeProductIDs:     []string{DefaultExcludedProductID},
		ExcludeNameSubstrings: []string{},
		DefaultWarrantyPeriod: DefaultWarrantyPeriod,
	}
}

// Exclusions lista de exclusión para el filtro.
func (s *WarrantySettings) Exclusions() warranty.Exclusions {
	return warranty.Exclusions{
		ProductIDs:     append([]string(nil), s.ExcludeProductIDs...),
		NameSubstrings: append([]string(nil), s.ExcludeNameSubstrings...),
	}
}
