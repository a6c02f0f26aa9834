package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"faktur/internal/domain"
)

// RemoteClient читает счета из внешнего API. Один неаутентифицированный
// GET без ретраев; дедлайн задаётся контекстом вызывающего.
type RemoteClient struct {
	baseURL string
	http    *http.Client
}

func NewRemoteClient(baseURL string) *RemoteClient {
	return &RemoteClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// List запрашивает GET <base>/api/invoices и разбирает массив счетов
func (c *RemoteClient) List(ctx context.Context) ([]domain.Invoice, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/invoices", nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch invoices: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch invoices: unexpected status %d", resp.StatusCode)
	}
	var invoices []domain.Invoice
	if err := json.NewDecoder(resp.Body).Decode(&invoices); err != nil {
		return nil, fmt.Errorf("decode invoices: %w", err)
	}
	return invoices, nil
}
