package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Garancia-api/internal/application/certificate"
	"github.com/jhoicas/Garancia-api/internal/domain/entity"
)

var (
	_ certificate.AttachmentSink   = (*AttachmentRepo)(nil)
	_ certificate.AttachmentReader = (*AttachmentRepo)(nil)
)

// AttachmentRepo adjuntos binarios (BYTEA) vinculados a un registro.
type AttachmentRepo struct {
	q Querier
}

// NewAttachmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAttachmentRepository(q Querier) *AttachmentRepo {
	return &AttachmentRepo{q: q}
}

// Save persiste el adjunto. Asigna ID y CreatedAt si vienen vacíos.
func (r *AttachmentRepo) Save(ctx context.Context, a *entity.Attachment) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	const query = `
		INSERT INTO attachments (id, company_id, res_model, res_id, name, mime_type, data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.CompanyID, a.ResModel, a.ResID, a.Name, a.MimeType, a.Data, a.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("attachment id already exists: %w", err)
		}
		return fmt.Errorf("insert attachment: %w", err)
	}
	return nil
}

// GetByID obtiene el adjunto con su contenido. (nil, nil) si no existe.
func (r *AttachmentRepo) GetByID(ctx context.Context, id string) (*entity.Attachment, error) {
	const query = `
		SELECT id, company_id, res_model, res_id, name, mime_type, data, created_at
		FROM attachments WHERE id = $1`
	var a entity.Attachment
	var mime *string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.CompanyID, &a.ResModel, &a.ResID, &a.Name, &mime, &a.Data, &a.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get attachment: %w", err)
	}
	a.MimeType = derefStr(mime)
	return &a, nil
}
