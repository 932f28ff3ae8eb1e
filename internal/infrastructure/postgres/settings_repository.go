package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Garancia-api/internal/application/certificate"
	"github.com/jhoicas/Garancia-api/internal/domain/entity"
)

var _ certificate.SettingsStore = (*SettingsRepo)(nil)

// SettingsRepo configuración clave/valor por empresa (tabla warranty_settings).
// Las listas se guardan separadas por comas.
type SettingsRepo struct {
	q  Querier
	tx *TxRunner
}

// NewSettingsRepository construye el adaptador. tx puede ser nil: Save usa entonces q directamente.
func NewSettingsRepository(q Querier, tx *TxRunner) *SettingsRepo {
	return &SettingsRepo{q: q, tx: tx}
}

// Get lee la configuración. Las claves ausentes toman el valor por defecto.
func (r *SettingsRepo) Get(ctx context.Context, companyID string) (*entity.WarrantySettings, error) {
	const query = `SELECT key, value FROM warranty_settings WHERE company_id = $1`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("get warranty settings: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scan warranty setting: %w", err)
		}
		values[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate warranty settings: %w", err)
	}
	return settingsFromValues(values), nil
}

// Save reemplaza las tres claves de la empresa en una sola transacción.
func (r *SettingsRepo) Save(ctx context.Context, companyID string, s *entity.WarrantySettings) error {
	write := func(q Querier) error {
		const upsert = `
			INSERT INTO warranty_settings (company_id, key, value, updated_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (company_id, key) DO UPDATE
			SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
		now := time.Now().UTC()
		for key, value := range settingsToValues(s) {
			if _, err := q.Exec(ctx, upsert, companyID, key, value, now); err != nil {
				return fmt.Errorf("upsert warranty setting %s: %w", key, err)
			}
		}
		return nil
	}
	if r.tx == nil {
		return write(r.q)
	}
	return r.tx.Run(ctx, write)
}

func settingsFromValues(values map[string]string) *entity.WarrantySettings {
	s := entity.DefaultWarrantySettings()
	if v, ok := values[entity.SettingExcludeProductIDs]; ok {
		if ids := splitList(v); len(ids) > 0 {
			s.ExcludeProductIDs = ids
		}
	}
	if v, ok := values[entity.SettingExcludeNameSubstrings]; ok {
		s.ExcludeNameSubstrings = splitList(v)
	}
	if v, ok := values[entity.SettingDefaultWarrantyPeriod]; ok && strings.TrimSpace(v) != "" {
		s.DefaultWarrantyPeriod = strings.TrimSpace(v)
	}
	return s
}

func settingsToValues(s *entity.WarrantySettings) map[string]string {
	return map[string]string{
		entity.SettingExcludeProductIDs:     strings.Join(s.ExcludeProductIDs, ","),
		entity.SettingExcludeNameSubstrings: strings.Join(s.ExcludeNameSubstrings, ","),
		entity.SettingDefaultWarrantyPeriod: s.DefaultWarrantyPeriod,
	}
}

// splitList separa por comas descartando elementos vacíos.
func splitList(v string) []string {
	out := []string{}
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
