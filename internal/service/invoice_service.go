package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"faktur/internal/catalog"
	"faktur/internal/domain"
	"faktur/internal/repository"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnknownProduct = errors.New("unknown product")
)

// ItemInput выбранный в форме товар
type ItemInput struct {
	ProductID int64
	Quantity  int64
}

// CreateInvoiceInput данные формы создания счёта
type CreateInvoiceInput struct {
	CustomerName    string
	SalespersonName string
	InvoiceNotes    string
	InvoiceDate     string
	Items           []ItemInput
}

// InvoiceService собирает счета из формы и корзины и работает с хранилищем
type InvoiceService struct {
	catalog  *catalog.Catalog
	invoices repository.InvoiceRepository
}

func NewInvoiceService(cat *catalog.Catalog, invoices repository.InvoiceRepository) *InvoiceService {
	return &InvoiceService{catalog: cat, invoices: invoices}
}

// Create собирает счёт и добавляет его в хранилище. Имя клиента и имя
// продавца обязательны; пустая корзина и пустая дата не блокируют
// создание — о них возвращаются предупреждения.
func (s *InvoiceService) Create(ctx context.Context, in CreateInvoiceInput) (*domain.Invoice, []string, error) {
	if in.CustomerName == "" || in.SalespersonName == "" {
		return nil, nil, ErrInvalidInput
	}

	// build cart: duplicate ids collapse into one line, last quantity wins
	var cart domain.Cart
	for _, it := range in.Items {
		p, ok := s.catalog.Get(it.ProductID)
		if !ok {
			return nil, nil, fmt.Errorf("%w: %d", ErrUnknownProduct, it.ProductID)
		}
		cart.Select(p)
		cart.SetQuantity(p.ID, it.Quantity)
	}

	var warnings []string
	if cart.Len() == 0 {
		warnings = append(warnings, "no products selected")
	}
	if in.InvoiceDate == "" {
		warnings = append(warnings, "no invoice date chosen")
	}

	// snapshot cart lines; the items are immutable after this point
	lines := cart.Lines()
	items := make([]domain.InvoiceItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, domain.InvoiceItem{
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			Picture:   l.Product.Picture,
			Stock:     l.Product.Stock,
			Price:     l.Product.Price,
			Quantity:  l.Quantity,
		})
	}

	inv := domain.Invoice{
		ID:              uuid.NewString(),
		InvoiceNumber:   generateInvoiceNumber(),
		CustomerName:    in.CustomerName,
		SalespersonName: in.SalespersonName,
		ProductsSold:    items,
		InvoiceNotes:    in.InvoiceNotes,
		TotalAmount:     cart.Total(),
		InvoiceDate:     in.InvoiceDate,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.invoices.Append(ctx, &inv); err != nil {
		return nil, nil, err
	}
	return &inv, warnings, nil
}

// List возвращает все счета локального хранилища в порядке добавления
func (s *InvoiceService) List(ctx context.Context) ([]domain.Invoice, error) {
	return s.invoices.List(ctx)
}

// Get возвращает счёт по id
func (s *InvoiceService) Get(ctx context.Context, id string) (*domain.Invoice, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return s.invoices.GetByID(ctx, id)
}

// generateInvoiceNumber номер вида inv-NNNN в диапазоне [1000, 9999].
// Уникальность не гарантируется: идентичность записи — поле ID.
func generateInvoiceNumber() string {
	return fmt.Sprintf("inv-%d", 1000+rand.Intn(9000))
}
