package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Garancia-api/internal/application/certificate"
	"github.com/jhoicas/Garancia-api/internal/domain/entity"
)

var _ certificate.SettingsStore = (*SettingsStore)(nil)

// SettingsStore configuración por empresa en memoria.
type SettingsStore struct {
	mu       sync.RWMutex
	settings map[string]entity.WarrantySettings
}

// NewSettingsStore construye el almacén vacío (todas las empresas con valores por defecto).
func NewSettingsStore() *SettingsStore {
	return &SettingsStore{settings: make(map[string]entity.WarrantySettings)}
}

// Get devuelve la configuración guardada o la de por defecto.
func (s *SettingsStore) Get(_ context.Context, companyID string) (*entity.WarrantySettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.settings[companyID]
	if !ok {
		return entity.DefaultWarrantySettings(), nil
	}
	return clone(&v), nil
}

// Save reemplaza la configuración de la empresa.
func (s *SettingsStore) Save(_ context.Context, companyID string, settings *entity.WarrantySettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings[companyID] = *clone(settings)
	return nil
}

func clone(in *entity.WarrantySettings) *entity.WarrantySettings {
	return &entity.WarrantySettings{
		ExcludeProductIDs:     append([]string{}, in.ExcludeProductIDs...),
		ExcludeNameSubstrings: append([]string{}, in.ExcludeNameSubstrings...),
		DefaultWarrantyPeriod: in.DefaultWarrantyPeriod,
	}
}
