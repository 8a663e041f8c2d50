package main

import (
	"log/slog"
	"net/http"
	"os"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/tehkencana/pos/internal/cart"
	"github.com/tehkencana/pos/internal/config"
	"github.com/tehkencana/pos/internal/images"
	"github.com/tehkencana/pos/internal/printer"
	"github.com/tehkencana/pos/internal/server"
	"github.com/tehkencana/pos/internal/service"
	"github.com/tehkencana/pos/internal/storage/sqlite"
	"github.com/tehkencana/pos/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.LogLevel)

	// The store is constructed here and injected everywhere; there is no
	// ambient singleton. Open at startup, closed at shutdown.
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("storage initialized", "database", cfg.DBPath)

	imgs, err := images.NewDir(cfg.ImagesDir)
	if err != nil {
		slog.Error("failed to initialize images directory", "error", err)
		os.Exit(1)
	}

	var adapter printer.Adapter
	if bluez, err := printer.NewBluezAdapter(); err != nil {
		slog.Warn("bluetooth unavailable", "error", err)
		adapter = printer.UnavailableAdapter{}
	} else {
		adapter = bluez
	}
	manager := printer.New(adapter, &printer.RFCOMMDialer{Channel: cfg.RFCOMMChannel})

	c := cart.New()
	srv := server.New(
		service.NewCatalogService(store, c),
		service.NewCheckoutService(store, c, manager),
		service.NewPrinterService(store, manager),
		c,
		imgs,
	)

	// h2c lets HTTP/2 clients in without TLS on the local network
	handler := h2c.NewHandler(srv.Handler(), &http2.Server{})

	slog.Info("pos server starting", "address", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, handler); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
