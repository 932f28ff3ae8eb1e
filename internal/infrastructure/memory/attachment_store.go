package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Garancia-api/internal/application/certificate"
	"github.com/jhoicas/Garancia-api/internal/domain/entity"
)

var (
	_ certificate.AttachmentSink   = (*AttachmentStore)(nil)
	_ certificate.AttachmentReader = (*AttachmentStore)(nil)
)

// AttachmentStore adjuntos en memoria, en orden de llegada.
type AttachmentStore struct {
	mu    sync.RWMutex
	items []entity.Attachment
}

// NewAttachmentStore construye el almacén vacío.
func NewAttachmentStore() *AttachmentStore { return &AttachmentStore{} }

// Save asigna ID y fecha si faltan y guarda una copia.
func (s *AttachmentStore) Save(_ context.Context, a *entity.Attachment) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	cp := *a
	cp.Data = append([]byte(nil), a.Data...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, cp)
	return nil
}

// GetByID devuelve el adjunto (nil, nil si no existe).
func (s *AttachmentStore) GetByID(_ context.Context, id string) (*entity.Attachment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.items {
		if s.items[i].ID == id {
			cp := s.items[i]
			return &cp, nil
		}
	}
	return nil, nil
}

// All devuelve los adjuntos guardados.
func (s *AttachmentStore) All() []entity.Attachment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Attachment(nil), s.items...)
}
