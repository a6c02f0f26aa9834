package service

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"faktur/internal/catalog"
	"faktur/internal/domain"
	"faktur/internal/repository"
)

func setup(t *testing.T) (*InvoiceService, *repository.MemoryStore) {
	t.Helper()
	cat := catalog.New([]domain.Product{
		{ID: 1, Name: "Kopi Kapal Api", Picture: "kopi.jpg", Stock: 40, Price: 7000},
		{ID: 2, Name: "Teh Botol Sosro", Picture: "teh.jpg", Stock: 120, Price: 5000},
		{ID: 3, Name: "Beras Ramos", Picture: "beras.jpg", Stock: 25, Price: 10000},
	})
	store := repository.NewMemoryStore()
	return NewInvoiceService(cat, store), store
}

var invoiceNumberRe = regexp.MustCompile(`^inv-\d{4}$`)

func TestCreate_TotalAndSnapshot(t *testing.T) {
	ctx := context.Background()
	svc, _ := setup(t)

	inv, warnings, err := svc.Create(ctx, CreateInvoiceInput{
		CustomerName:    "Alice",
		SalespersonName: "Bob",
		InvoiceNotes:    "urgent",
		InvoiceDate:     "2024-5-3",
		Items:           []ItemInput{{ProductID: 3, Quantity: 2}, {ProductID: 2, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	// 10000*2 + 5000*1
	if inv.TotalAmount != 25000 {
		t.Fatalf("total expected 25000, got %v", inv.TotalAmount)
	}
	if inv.ID == "" {
		t.Fatalf("expected generated id")
	}
	if !invoiceNumberRe.MatchString(inv.InvoiceNumber) {
		t.Fatalf("bad invoice number %q", inv.InvoiceNumber)
	}

	// selection order, snapshot of product fields
	if len(inv.ProductsSold) != 2 {
		t.Fatalf("expected 2 line items, got %v", len(inv.ProductsSold))
	}
	first := inv.ProductsSold[0]
	if first.ProductID != 3 || first.Name != "Beras Ramos" || first.Picture != "beras.jpg" ||
		first.Stock != 25 || first.Price != 10000 || first.Quantity != 2 {
		t.Fatalf("bad snapshot: %+v", first)
	}
	if inv.InvoiceDate != "2024-5-3" {
		t.Fatalf("date not preserved: %q", inv.InvoiceDate)
	}
}

func TestCreate_DuplicateItemCollapses(t *testing.T) {
	ctx := context.Background()
	svc, _ := setup(t)

	inv, _, err := svc.Create(ctx, CreateInvoiceInput{
		CustomerName:    "Alice",
		SalespersonName: "Bob",
		InvoiceDate:     "2024-5-3",
		Items:           []ItemInput{{ProductID: 1, Quantity: 2}, {ProductID: 1, Quantity: 5}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(inv.ProductsSold) != 1 {
		t.Fatalf("duplicate product must collapse to one line, got %v", len(inv.ProductsSold))
	}
	if inv.ProductsSold[0].Quantity != 5 {
		t.Fatalf("last quantity must win, got %v", inv.ProductsSold[0].Quantity)
	}
	if inv.TotalAmount != 35000 {
		t.Fatalf("total expected 35000, got %v", inv.TotalAmount)
	}
}

func TestCreate_InvalidInput(t *testing.T) {
	ctx := context.Background()
	svc, _ := setup(t)

	if _, _, err := svc.Create(ctx, CreateInvoiceInput{SalespersonName: "Bob"}); err != ErrInvalidInput {
		t.Fatalf("expected invalid input for empty customer, got %v", err)
	}
	if _, _, err := svc.Create(ctx, CreateInvoiceInput{CustomerName: "Alice"}); err != ErrInvalidInput {
		t.Fatalf("expected invalid input for empty salesperson, got %v", err)
	}
}

func TestCreate_UnknownProduct(t *testing.T) {
	ctx := context.Background()
	svc, store := setup(t)

	_, _, err := svc.Create(ctx, CreateInvoiceInput{
		CustomerName:    "Alice",
		SalespersonName: "Bob",
		Items:           []ItemInput{{ProductID: 99, Quantity: 1}},
	})
	if !errors.Is(err, ErrUnknownProduct) {
		t.Fatalf("expected unknown product, got %v", err)
	}
	// nothing persisted
	list, _ := store.List(ctx)
	if len(list) != 0 {
		t.Fatalf("failed create must not persist, got %v records", len(list))
	}
}

func TestCreate_PermissiveWithWarnings(t *testing.T) {
	ctx := context.Background()
	svc, store := setup(t)

	// no items, no date: created anyway, with warnings
	inv, warnings, err := svc.Create(ctx, CreateInvoiceInput{
		CustomerName:    "Alice",
		SalespersonName: "Bob",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %v", warnings)
	}
	if inv.TotalAmount != 0 || len(inv.ProductsSold) != 0 {
		t.Fatalf("expected empty invoice, got %+v", inv)
	}
	list, _ := store.List(ctx)
	if len(list) != 1 {
		t.Fatalf("expected 1 persisted record, got %v", len(list))
	}
}

func TestCreate_ZeroQuantityContributesNothing(t *testing.T) {
	ctx := context.Background()
	svc, _ := setup(t)

	inv, _, err := svc.Create(ctx, CreateInvoiceInput{
		CustomerName:    "Alice",
		SalespersonName: "Bob",
		InvoiceDate:     "2024-5-3",
		Items:           []ItemInput{{ProductID: 1, Quantity: 3}, {ProductID: 2}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if inv.TotalAmount != 21000 {
		t.Fatalf("total expected 21000, got %v", inv.TotalAmount)
	}
	if inv.ProductsSold[1].Quantity != 0 {
		t.Fatalf("unset quantity must be stored as 0, got %v", inv.ProductsSold[1].Quantity)
	}
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	svc, _ := setup(t)

	inv, _, err := svc.Create(ctx, CreateInvoiceInput{
		CustomerName:    "Alice",
		SalespersonName: "Bob",
		InvoiceDate:     "2024-5-3",
		Items:           []ItemInput{{ProductID: 1, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.Get(ctx, inv.ID)
	if err != nil || got.InvoiceNumber != inv.InvoiceNumber {
		t.Fatalf("get: %v %v", err, got)
	}
	if _, err := svc.Get(ctx, "missing"); err != repository.ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := svc.Get(ctx, ""); err != ErrInvalidInput {
		t.Fatalf("expected invalid input for empty id, got %v", err)
	}
}

func TestGenerateInvoiceNumber_Range(t *testing.T) {
	// uniqueness is NOT guaranteed and is not asserted here
	for i := 0; i < 500; i++ {
		n := generateInvoiceNumber()
		if !invoiceNumberRe.MatchString(n) {
			t.Fatalf("bad format %q", n)
		}
		v, err := strconv.Atoi(strings.TrimPrefix(n, "inv-"))
		if err != nil || v < 1000 || v > 9999 {
			t.Fatalf("suffix out of range: %q", n)
		}
	}
}
