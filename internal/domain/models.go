package domain

import "time"

// Product представляет товар из статического каталога
type Product struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Picture string  `json:"picture"`
	Stock   int64   `json:"stock"`
	Price   float64 `json:"price"`
}

// InvoiceItem снимок позиции счёта на момент создания
type InvoiceItem struct {
	ProductID int64   `json:"id"`
	Name      string  `json:"name"`
	Picture   string  `json:"picture"`
	Stock     int64   `json:"stock"`
	Price     float64 `json:"price"`
	Quantity  int64   `json:"quantity"`
}

// Invoice сущность счёта. После создания запись не изменяется;
// TotalAmount — снимок суммы на момент создания, не пересчитывается.
type Invoice struct {
	ID              string        `json:"id"`
	InvoiceNumber   string        `json:"invoice_number"`
	CustomerName    string        `json:"customer_name"`
	SalespersonName string        `json:"salesperson_name"`
	ProductsSold    []InvoiceItem `json:"products_sold"`
	InvoiceNotes    string        `json:"invoice_notes"`
	TotalAmount     float64       `json:"total_amount"`
	InvoiceDate     string        `json:"invoice_date"`
	CreatedAt       time.Time     `json:"created_at"`
}
