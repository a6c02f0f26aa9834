package repository

import (
	"context"
	"errors"

	"faktur/internal/domain"
)

// ErrNotFound возвращается, когда счёт не найден
var ErrNotFound = errors.New("not found")

// InvoiceRepository интерфейс хранилища счетов. Записи только добавляются;
// порядок List — порядок добавления.
type InvoiceRepository interface {
	Append(ctx context.Context, inv *domain.Invoice) error
	List(ctx context.Context) ([]domain.Invoice, error)
	GetByID(ctx context.Context, id string) (*domain.Invoice, error)
}
