// Package redis caché read-through de la configuración de garantías.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Garancia-api/internal/application/certificate"
	"github.com/jhoicas/Garancia-api/internal/domain/entity"
	"github.com/jhoicas/Garancia-api/pkg/config"
)

var _ certificate.SettingsStore = (*CachedSettingsStore)(nil)

const keyPrefix = "warranty_pdf:settings:"

// Key clave de la configuración de una empresa.
func Key(companyID string) string { return keyPrefix + companyID }

// NewClient crea el cliente y verifica la conexión.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// CachedSettingsStore envuelve otro SettingsStore. Los errores de Redis no son
// fatales: se registran y se lee del almacén de origen.
type CachedSettingsStore struct {
	next   certificate.SettingsStore
	client goredis.Cmdable
	ttl    time.Duration
	log    zerolog.Logger
}

// NewCachedSettingsStore construye la caché sobre next.
func NewCachedSettingsStore(next certificate.SettingsStore, client goredis.Cmdable, ttl time.Duration, log zerolog.Logger) *CachedSettingsStore {
	return &CachedSettingsStore{next: next, client: client, ttl: ttl, log: log}
}

// Get devuelve la configuración desde la caché o desde el origen, guardándola con TTL.
func (c *CachedSettingsStore) Get(ctx context.Context, companyID string) (*entity.WarrantySettings, error) {
	key := Key(companyID)

	s, found, err := c.lookup(ctx, key)
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("caché de configuración no disponible")
	}
	if found {
		return s, nil
	}

	s, err = c.next.Get(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if payload, err := json.Marshal(s); err == nil {
		if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			c.log.Warn().Err(err).Str("key", key).Msg("no se pudo guardar en caché")
		}
	}
	return s, nil
}

// Save escribe en el origen e invalida la entrada de la empresa.
func (c *CachedSettingsStore) Save(ctx context.Context, companyID string, s *entity.WarrantySettings) error {
	if err := c.next.Save(ctx, companyID, s); err != nil {
		return err
	}
	if err := c.client.Del(ctx, Key(companyID)).Err(); err != nil {
		c.log.Warn().Err(err).Str("company_id", companyID).Msg("no se pudo invalidar la caché")
	}
	return nil
}

// lookup redis.Nil -> found=false, err=nil.
func (c *CachedSettingsStore) lookup(ctx context.Context, key string) (*entity.WarrantySettings, bool, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var s entity.WarrantySettings
	if err := json.Unmarshal(val, &s); err != nil {
		return nil, false, fmt.Errorf("redis: decodificar %s: %w", key, err)
	}
	return &s, true, nil
}
