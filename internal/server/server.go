// Package server exposes the POS over a JSON HTTP API: catalog CRUD and
// reordering, cart mutation, printer selection and checkout. Mutating
// catalog endpoints sit behind the admin gate.
package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tehkencana/pos/internal/cart"
	"github.com/tehkencana/pos/internal/images"
	"github.com/tehkencana/pos/internal/service"
)

// Server wires the services to HTTP routes.
type Server struct {
	catalog  *service.CatalogService
	checkout *service.CheckoutService
	printers *service.PrinterService
	cart     *cart.Cart
	images   *images.Dir
	gate     *AdminGate
}

// New creates a Server over the given collaborators.
func New(
	catalog *service.CatalogService,
	checkout *service.CheckoutService,
	printers *service.PrinterService,
	c *cart.Cart,
	imgs *images.Dir,
) *Server {
	return &Server{
		catalog:  catalog,
		checkout: checkout,
		printers: printers,
		cart:     c,
		images:   imgs,
		gate:     NewAdminGate(),
	}
}

// Handler builds the full route table with logging and CORS applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/categories", s.handleListCategories)
	mux.HandleFunc("POST /api/categories", s.requireAdmin(s.handleAddCategory))
	mux.HandleFunc("PUT /api/categories/{id}", s.requireAdmin(s.handleUpdateCategory))
	mux.HandleFunc("DELETE /api/categories/{id}", s.requireAdmin(s.handleDeleteCategory))
	mux.HandleFunc("POST /api/categories/reorder", s.requireAdmin(s.handleReorderCategories))

	mux.HandleFunc("GET /api/products", s.handleListProducts)
	mux.HandleFunc("POST /api/products", s.requireAdmin(s.handleAddProduct))
	mux.HandleFunc("PUT /api/products/{id}", s.requireAdmin(s.handleUpdateProduct))
	mux.HandleFunc("DELETE /api/products/{id}", s.requireAdmin(s.handleDeleteProduct))
	mux.HandleFunc("POST /api/products/reorder", s.requireAdmin(s.handleReorderProducts))

	mux.HandleFunc("POST /api/images", s.requireAdmin(s.handleUploadImage))

	mux.HandleFunc("GET /api/cart", s.handleGetCart)
	mux.HandleFunc("POST /api/cart/items", s.handleAdjustCart)
	mux.HandleFunc("DELETE /api/cart", s.handleClearCart)

	mux.HandleFunc("POST /api/checkout", s.handleCheckout)
	mux.HandleFunc("GET /api/checkout/{id}", s.handleCheckoutStatus)

	mux.HandleFunc("GET /api/printer", s.requireAdmin(s.handleGetPrinter))
	mux.HandleFunc("PUT /api/printer", s.requireAdmin(s.handleSelectPrinter))
	mux.HandleFunc("GET /api/printer/devices", s.requireAdmin(s.handleListDevices))

	mux.HandleFunc("POST /api/admin/knock", s.handleKnock)

	mux.Handle("GET /metrics", promhttp.Handler())

	return loggingMiddleware(corsMiddleware(mux))
}
