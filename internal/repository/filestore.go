package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"faktur/internal/domain"
)

// FileStore хранит все счета одним JSON-массивом в файле.
// Append — это чтение и перезапись всего массива; писатели внутри процесса
// сериализуются мьютексом, между процессами действует last-write-wins
// по всему файлу (ожидается единственный писатель).
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

var _ InvoiceRepository = (*FileStore)(nil)

func (s *FileStore) Append(ctx context.Context, inv *domain.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	invoices, err := s.read()
	if err != nil {
		return err
	}
	invoices = append(invoices, *inv)
	data, err := json.Marshal(invoices)
	if err != nil {
		return fmt.Errorf("encode invoices: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write invoices file: %w", err)
	}
	return nil
}

func (s *FileStore) List(ctx context.Context) ([]domain.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

func (s *FileStore) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	invoices, err := s.read()
	if err != nil {
		return nil, err
	}
	for _, inv := range invoices {
		if inv.ID == id {
			cp := inv
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

// read разбирает файл целиком; отсутствующий или пустой файл — пустая коллекция
func (s *FileStore) read() ([]domain.Invoice, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []domain.Invoice{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read invoices file: %w", err)
	}
	if len(data) == 0 {
		return []domain.Invoice{}, nil
	}
	var invoices []domain.Invoice
	if err := json.Unmarshal(data, &invoices); err != nil {
		return nil, fmt.Errorf("parse invoices file: %w", err)
	}
	return invoices, nil
}
