package api

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"stocktrack/internal/imaging"
	"stocktrack/internal/model"
	"stocktrack/internal/store"
)

// ProductsHandler handles product endpoints.
type ProductsHandler struct {
	DB *sql.DB
}

type createProductRequest struct {
	Name  string `json:"name"`
	Size  int    `json:"size"`
	Color string `json:"color"`
}

// List handles GET /api/products.
func (h *ProductsHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := store.ListProducts(r.Context(), h.DB)
	if err != nil {
		slog.Error("failed to list products", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list products")
		return
	}
	if products == nil {
		products = []model.Product{}
	}
	jsonResponse(w, http.StatusOK, products)
}

// Create handles POST /api/products.
func (h *ProductsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}
	if !model.ValidColor(req.Color) {
		jsonError(w, http.StatusBadRequest, "invalid color")
		return
	}

	product, err := store.CreateProduct(r.Context(), h.DB, req.Name, req.Size, req.Color)
	if err != nil {
		slog.Error("failed to create product", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to create product")
		return
	}

	jsonResponse(w, http.StatusCreated, product)
}

// Delete handles DELETE /api/products/{id}. Stock rows and transfers that
// reference the product are left untouched.
func (h *ProductsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := store.DeleteProduct(r.Context(), h.DB, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			jsonError(w, http.StatusNotFound, "product not found")
			return
		}
		slog.Error("failed to delete product", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to delete product")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "product deleted"})
}

// UploadPhoto handles PUT /api/products/{id}/photo.
func (h *ProductsHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	photo, mime, err := imaging.Normalize(r.Body)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := store.SetProductPhoto(r.Context(), h.DB, id, photo, mime); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			jsonError(w, http.StatusNotFound, "product not found")
			return
		}
		slog.Error("failed to set product photo", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to set product photo")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "photo updated"})
}

// GetPhoto handles GET /api/products/{id}/photo.
func (h *ProductsHandler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	photo, mime, err := store.GetProductPhoto(r.Context(), h.DB, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			jsonError(w, http.StatusNotFound, "product not found")
			return
		}
		slog.Error("failed to get product photo", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to get product photo")
		return
	}
	if len(photo) == 0 {
		jsonError(w, http.StatusNotFound, "product has no photo")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.WriteHeader(http.StatusOK)
	w.Write(photo)
}
