package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/tehkencana/pos/internal/models"
)

type categoryJSON struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ImageURI string `json:"imageUri,omitempty"`
	Position int    `json:"position"`
}

type productJSON struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	CategoryID int64   `json:"categoryId"`
	Position   int     `json:"position"`
}

type cartLineJSON struct {
	Product  productJSON `json:"product"`
	Quantity int         `json:"quantity"`
	Subtotal int64       `json:"subtotal"`
}

func toCategoryJSON(c models.Category) categoryJSON {
	return categoryJSON{ID: c.ID, Name: c.Name, ImageURI: c.ImageURI, Position: c.Position}
}

func toProductJSON(p models.Product) productJSON {
	return productJSON{ID: p.ID, Name: p.Name, Price: p.Price, CategoryID: p.CategoryID, Position: p.Position}
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	return id, err == nil
}

// --- Categories ---

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.catalog.Categories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]categoryJSON, len(categories))
	for i, c := range categories {
		out[i] = toCategoryJSON(c)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleAddCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		ImageURI string `json:"imageUri"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	category, err := s.catalog.AddCategory(r.Context(), req.Name, req.ImageURI)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, toCategoryJSON(*category))
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid category id")
		return
	}

	var req categoryJSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	category := models.Category{ID: id, Name: req.Name, ImageURI: req.ImageURI, Position: req.Position}
	if err := s.catalog.UpdateCategory(r.Context(), &category); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryJSON(category))
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid category id")
		return
	}

	if err := s.catalog.DeleteCategory(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleReorderCategories(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs []int64 `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	if err := s.catalog.ReorderCategories(r.Context(), req.IDs); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// --- Products ---

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.ParseInt(r.URL.Query().Get("category"), 10, 64)
	if err != nil {
		writeBadRequest(w, "missing or invalid category parameter")
		return
	}

	products, err := s.catalog.Products(r.Context(), categoryID)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]productJSON, len(products))
	for i, p := range products {
		out[i] = toProductJSON(p)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleAddProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name       string  `json:"name"`
		Price      float64 `json:"price"`
		CategoryID int64   `json:"categoryId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	product, err := s.catalog.AddProduct(r.Context(), req.Name, req.Price, req.CategoryID)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, toProductJSON(*product))
}

func (s *Server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid product id")
		return
	}

	var req productJSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	product := models.Product{
		ID:         id,
		Name:       req.Name,
		Price:      req.Price,
		CategoryID: req.CategoryID,
		Position:   req.Position,
	}
	if err := s.catalog.UpdateProduct(r.Context(), &product); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductJSON(product))
}

func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid product id")
		return
	}

	if err := s.catalog.DeleteProduct(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleReorderProducts(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs []int64 `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	if err := s.catalog.ReorderProducts(r.Context(), req.IDs); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// --- Images ---

func (s *Server) handleUploadImage(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("image")
	if err != nil {
		writeBadRequest(w, "missing image file")
		return
	}
	defer file.Close()

	path, err := s.images.Save(file)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"imageUri": path})
}

// --- Cart ---

func (s *Server) handleGetCart(w http.ResponseWriter, r *http.Request) {
	lines := s.cart.Lines()
	out := make([]cartLineJSON, len(lines))
	for i, line := range lines {
		out[i] = cartLineJSON{
			Product:  toProductJSON(line.Product),
			Quantity: line.Quantity,
			Subtotal: int64(line.Subtotal()),
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"lines": out,
		// Whole currency units, truncated toward zero, never rounded.
		"total": int64(s.cart.Total()),
	})
}

func (s *Server) handleAdjustCart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID int64 `json:"productId"`
		Delta     int   `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	product, err := s.catalog.Product(r.Context(), req.ProductID)
	if err != nil {
		writeError(w, err)
		return
	}
	if product == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "product not found"})
		return
	}

	s.cart.AddOrAdjust(*product, req.Delta)
	writeJSON(w, http.StatusOK, map[string]int{"quantity": s.cart.Quantity(req.ProductID)})
}

func (s *Server) handleClearCart(w http.ResponseWriter, r *http.Request) {
	s.cart.Clear()
	writeJSON(w, http.StatusNoContent, nil)
}

// --- Checkout ---

func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	job, err := s.checkout.Checkout(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"jobId": job.ID})
}

func (s *Server) handleCheckoutStatus(w http.ResponseWriter, r *http.Request) {
	job, ok := s.checkout.Job(r.PathValue("id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "job not found"})
		return
	}

	status := "printing"
	var errMsg string
	if job.Finished() {
		if err := job.Err(); err != nil {
			status = "failed"
			errMsg = err.Error()
		} else {
			status = "done"
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"jobId":  job.ID,
		"status": status,
		"error":  errMsg,
	})
}

// --- Printer ---

func (s *Server) handleGetPrinter(w http.ResponseWriter, r *http.Request) {
	addr, err := s.printers.Selected(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"address": addr})
}

func (s *Server) handleSelectPrinter(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Address string `json:"address"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	if err := s.printers.Select(r.Context(), req.Address); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleListDevices(w http.ResponseWriter, r *http.Request) {
	devices := s.printers.PairedDevices(r.Context())
	out := make([]map[string]string, len(devices))
	for i, d := range devices {
		out[i] = map[string]string{"name": d.Name, "address": d.Address}
	}
	writeJSON(w, http.StatusOK, out)
}

// --- Admin gate ---

func (s *Server) handleKnock(w http.ResponseWriter, r *http.Request) {
	unlocked := s.gate.Knock()
	writeJSON(w, http.StatusOK, map[string]bool{"unlocked": unlocked})
}
