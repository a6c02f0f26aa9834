package service

import (
	"context"

	"faktur/internal/catalog"
	"faktur/internal/domain"
)

// CatalogService поиск по статическому каталогу товаров
type CatalogService struct {
	catalog *catalog.Catalog
}

func NewCatalogService(cat *catalog.Catalog) *CatalogService {
	return &CatalogService{catalog: cat}
}

func (s *CatalogService) Search(ctx context.Context, q string) []domain.Product {
	return s.catalog.Search(q)
}
