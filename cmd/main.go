package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"faktur/internal/catalog"
	"faktur/internal/cfg"
	"faktur/internal/client"
	httpapi "faktur/internal/http"
	"faktur/internal/repository"
	"faktur/internal/service"

	_ "faktur/docs"
)

// @title           Faktur API
// @version         1.0
// @description     Invoice management over a static product catalog.
// @BasePath        /api/v1

func main() {
	config := cfg.Load()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: config.LogLevel})))

	cat, err := catalog.Load()
	if err != nil {
		slog.Error("failed to load product catalog", "error", err)
		os.Exit(1)
	}

	store := repository.NewFileStore(config.InvoicesFile)
	remote := client.NewRemoteClient(config.RemoteAPIBase)

	catalogSvc := service.NewCatalogService(cat)
	invoicesSvc := service.NewInvoiceService(cat, store)

	srv := httpapi.NewServer(catalogSvc, invoicesSvc, remote, slog.Default())

	httpServer := &http.Server{
		Addr:    config.HTTPAddr,
		Handler: srv.Engine(),
	}

	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
