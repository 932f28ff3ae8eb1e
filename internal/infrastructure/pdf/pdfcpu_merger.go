package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/jhoicas/Garancia-api/internal/domain"
	"github.com/jhoicas/Garancia-api/internal/domain/warranty"
)

func init() {
	// pdfcpu no debe leer ni crear su directorio de configuración.
	model.ConfigPath = "disable"
}

// newPDFConfig configuración nueva por llamada: pdfcpu modifica la que recibe.
func newPDFConfig() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// PDFCPUMerger implementa certificate.DocumentMerger con pdfcpu.
type PDFCPUMerger struct{}

// NewPDFCPUMerger construye el merger.
func NewPDFCPUMerger() *PDFCPUMerger { return &PDFCPUMerger{} }

// Merge concatena las páginas en el orden recibido. Las páginas vacías se ignoran;
// si no queda ninguna devuelve domain.ErrNothingToMerge. Una sola página se
// devuelve tal cual.
func (m *PDFCPUMerger) Merge(ctx context.Context, pages []warranty.RenderedPage) (warranty.Document, error) {
	parts := make([]warranty.RenderedPage, 0, len(pages))
	for _, p := range pages {
		if !p.IsEmpty() {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return warranty.Document{}, domain.ErrNothingToMerge
	}
	if err := ctx.Err(); err != nil {
		return warranty.Document{}, err
	}
	if len(parts) == 1 {
		return warranty.NewDocument(parts[0].Bytes(), parts[0].PageCount()), nil
	}

	readers := make([]io.ReadSeeker, len(parts))
	for i, p := range parts {
		readers[i] = bytes.NewReader(p.Bytes())
	}

	var out bytes.Buffer
	if err := api.MergeRaw(readers, &out, false, newPDFConfig()); err != nil {
		return warranty.Document{}, fmt.Errorf("pdf: unir %d documentos: %w", len(parts), err)
	}
	content := out.Bytes()
	total, err := api.PageCount(bytes.NewReader(content), newPDFConfig())
	if err != nil {
		return warranty.Document{}, fmt.Errorf("pdf: contar páginas del documento unido: %w", err)
	}
	return warranty.NewDocument(content, total), nil
}
