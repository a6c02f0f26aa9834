package repository

import (
	"context"
	"sync"

	"faktur/internal/domain"
)

// MemoryStore in-memory хранилище счетов; слайс сохраняет порядок добавления
type MemoryStore struct {
	mu       sync.RWMutex
	invoices []domain.Invoice
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{invoices: make([]domain.Invoice, 0)}
}

var _ InvoiceRepository = (*MemoryStore)(nil)

func (m *MemoryStore) Append(ctx context.Context, inv *domain.Invoice) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invoices = append(m.invoices, *inv)
	return nil
}

func (m *MemoryStore) List(ctx context.Context) ([]domain.Invoice, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	// return copy
	out := make([]domain.Invoice, len(m.invoices))
	copy(out, m.invoices)
	return out, nil
}

func (m *MemoryStore) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, inv := range m.invoices {
		if inv.ID == id {
			cp := inv
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}
