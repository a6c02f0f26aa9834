package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"faktur/internal/domain"
)

//go:embed products.json
var productsJSON []byte

// Catalog статический каталог товаров; read-only на всё время работы процесса
type Catalog struct {
	products []domain.Product
}

// Load разбирает встроенный каталог
func Load() (*Catalog, error) {
	var products []domain.Product
	if err := json.Unmarshal(productsJSON, &products); err != nil {
		return nil, fmt.Errorf("parse embedded catalog: %w", err)
	}
	return &Catalog{products: products}, nil
}

// New каталог поверх готового списка
func New(products []domain.Product) *Catalog {
	cp := make([]domain.Product, len(products))
	copy(cp, products)
	return &Catalog{products: cp}
}

// Search возвращает товары, имя которых содержит q без учёта регистра,
// в порядке каталога. Пустой запрос даёт пустой список, а не весь каталог.
func (c *Catalog) Search(q string) []domain.Product {
	out := make([]domain.Product, 0)
	if q == "" {
		return out
	}
	q = strings.ToLower(q)
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}

// Get ищет товар по id
func (c *Catalog) Get(id int64) (domain.Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// All полный каталог в исходном порядке
func (c *Catalog) All() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}
