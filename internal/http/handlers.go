package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"faktur/internal/domain"
	"faktur/internal/repository"
	"faktur/internal/service"
)

// RemoteLister источник счетов внешнего API
type RemoteLister interface {
	List(ctx context.Context) ([]domain.Invoice, error)
}

type Server struct {
	engine   *gin.Engine
	catalog  *service.CatalogService
	invoices *service.InvoiceService
	remote   RemoteLister
	log      *slog.Logger
}

func NewServer(catalog *service.CatalogService, invoices *service.InvoiceService, remote RemoteLister, log *slog.Logger) *Server {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	s := &Server{engine: r, catalog: catalog, invoices: invoices, remote: remote, log: log}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	// Swagger UI
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := s.engine.Group("/api/v1")
	{
		v1.GET("/products", s.searchProducts)

		invoices := v1.Group("/invoices")
		invoices.POST("", s.createInvoice)
		invoices.GET("", s.listInvoices)
		invoices.GET(":id", s.getInvoice)

		v1.GET("/remote/invoices", s.listRemoteInvoices)
	}
}

// @Summary Search products
// @Tags products
// @Produce json
// @Param q query string false "Name contains; empty query yields an empty list"
// @Success 200 {array} domain.Product
// @Router /products [get]
func (s *Server) searchProducts(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.Search(c, c.Query("q")))
}

type invoiceItemReq struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type createInvoiceReq struct {
	CustomerName    string           `json:"customer_name"`
	SalespersonName string           `json:"salesperson_name"`
	InvoiceNotes    string           `json:"invoice_notes"`
	InvoiceDate     string           `json:"invoice_date"`
	Items           []invoiceItemReq `json:"items"`
}

type createInvoiceResp struct {
	Invoice  domain.Invoice `json:"invoice"`
	Warnings []string       `json:"warnings,omitempty"`
}

// @Summary Create invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Param input body createInvoiceReq true "Invoice form"
// @Success 201 {object} createInvoiceResp
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /invoices [post]
func (s *Server) createInvoice(c *gin.Context) {
	var req createInvoiceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	items := make([]service.ItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, service.ItemInput{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	inv, warnings, err := s.invoices.Create(c, service.CreateInvoiceInput{
		CustomerName:    req.CustomerName,
		SalespersonName: req.SalespersonName,
		InvoiceNotes:    req.InvoiceNotes,
		InvoiceDate:     req.InvoiceDate,
		Items:           items,
	})
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, createInvoiceResp{Invoice: *inv, Warnings: warnings})
}

// @Summary List invoices from the local store
// @Tags invoices
// @Produce json
// @Success 200 {array} domain.Invoice
// @Router /invoices [get]
func (s *Server) listInvoices(c *gin.Context) {
	list, err := s.invoices.List(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Get invoice by id
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} domain.Invoice
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /invoices/{id} [get]
func (s *Server) getInvoice(c *gin.Context) {
	inv, err := s.invoices.Get(c, c.Param("id"))
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, inv)
}

// @Summary List invoices from the remote API
// @Tags invoices
// @Produce json
// @Success 200 {array} domain.Invoice
// @Router /remote/invoices [get]
func (s *Server) listRemoteInvoices(c *gin.Context) {
	invoices, err := s.remote.List(c)
	if err != nil {
		// degrade to zero rows: log, never fail the view
		s.log.Error("remote invoices fetch failed", "error", err)
		c.JSON(http.StatusOK, []domain.Invoice{})
		return
	}
	if invoices == nil {
		invoices = []domain.Invoice{}
	}
	c.JSON(http.StatusOK, invoices)
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnknownProduct):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
