package dto

// UpdateWarrantySettingsRequest body para PUT /api/warranty/settings.
type UpdateWarrantySettingsRequest struct {
	ExcludeProductIDs     []string `json:"exclude_product_ids"`
	ExcludeNameSubstrings []string `json:"exclude_name_substrings"`
	DefaultWarrantyPeriod string   `json:"default_warranty_period"`
}

// WarrantySettingsResponse configuración vigente.
type WarrantySettingsResponse struct {
	ExcludeProductIDs     []string `json:"exclude_product_ids"`
	ExcludeNameSubstrings []string `json:"exclude_name_substrings"`
	DefaultWarrantyPeriod string   `json:"default_warranty_period"`
}
