package certificate

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Garancia-api/internal/application/dto"
	"github.com/jhoicas/Garancia-api/internal/domain"
	"github.com/jhoicas/Garancia-api/internal/domain/entity"
	"github.com/jhoicas/Garancia-api/internal/domain/warranty"
)

// SettingsUseCase lectura y guardado de la configuración de garantías.
type SettingsUseCase struct {
	store SettingsStore
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(store SettingsStore) *SettingsUseCase {
	return &SettingsUseCase{store: store}
}

// Get devuelve la configuración vigente de la empresa.
func (uc *SettingsUseCase) Get(ctx context.Context, companyID string) (*dto.WarrantySettingsResponse, error) {
	if companyID == "" {
		return nil, domain.ErrInvalidInput
	}
	s, err := uc.store.Get(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("configuración: obtener: %w", err)
	}
	return toSettingsResponse(s), nil
}

// Save guarda la configuración. Lista de exclusión vacía vuelve al producto por
// defecto y período vacío vuelve a "1". El período debe ser numérico tras quitar el sufijo.
func (uc *SettingsUseCase) Save(ctx context.Context, companyID string, in dto.UpdateWarrantySettingsRequest) (*dto.WarrantySettingsResponse, error) {
	if companyID == "" {
		return nil, domain.ErrInvalidInput
	}

	period := warranty.NormalizeMonths(in.DefaultWarrantyPeriod)
	if period == "" {
		period = entity.DefaultWarrantyPeriod
	}
	if !isDigits(period) {
		return nil, fmt.Errorf("%w: default_warranty_period debe ser un número de meses", domain.ErrInvalidInput)
	}

	ids := cleanList(in.ExcludeProductIDs)
	if len(ids) == 0 {
		ids = []string{entity.DefaultExcludedProductID}
	}

	s := &entity.WarrantySettings{
		ExcludeProductIDs:     ids,
		ExcludeNameSubstrings: cleanList(in.ExcludeNameSubstrings),
		DefaultWarrantyPeriod: period,
	}
	if err := uc.store.Save(ctx, companyID, s); err != nil {
		return nil, fmt.Errorf("configuración: guardar: %w", err)
	}
	return toSettingsResponse(s), nil
}

func toSettingsResponse(s *entity.WarrantySettings) *dto.WarrantySettingsResponse {
	return &dto.WarrantySettingsResponse{
		ExcludeProductIDs:     append([]string{}, s.ExcludeProductIDs...),
		ExcludeNameSubstrings: append([]string{}, s.ExcludeNameSubstrings...),
		DefaultWarrantyPeriod: s.DefaultWarrantyPeriod,
	}
}

// cleanList recorta espacios, descarta vacíos y duplicados conservando el orden.
func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
