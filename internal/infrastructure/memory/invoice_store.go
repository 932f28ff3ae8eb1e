// Package memory adaptadores en memoria de los puertos de certificados.
// Los usa el CLI render_sample y los tests; el servicio HTTP usa postgres.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Garancia-api/internal/application/certificate"
	"github.com/jhoicas/Garancia-api/internal/domain/entity"
)

var _ certificate.InvoiceSource = (*InvoiceStore)(nil)

// InvoiceStore fuente de facturas en memoria.
type InvoiceStore struct {
	mu       sync.RWMutex
	invoices map[string]entity.Invoice
}

// NewInvoiceStore construye el almacén con las facturas dadas.
func NewInvoiceStore(invoices ...entity.Invoice) *InvoiceStore {
	s := &InvoiceStore{invoices: make(map[string]entity.Invoice, len(invoices))}
	for _, inv := range invoices {
		s.Put(inv)
	}
	return s
}

// Put agrega o reemplaza una factura.
func (s *InvoiceStore) Put(inv entity.Invoice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoices[inv.ID] = inv
}

// GetInvoice devuelve una copia (nil, nil si no existe).
func (s *InvoiceStore) GetInvoice(_ context.Context, invoiceID string) (*entity.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	inv, ok := s.invoices[invoiceID]
	if !ok {
		return nil, nil
	}
	inv.Lines = append([]entity.InvoiceLine(nil), inv.Lines...)
	return &inv, nil
}
