package api

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"stocktrack/internal/model"
	"stocktrack/internal/store"
)

// StockHandler handles stock endpoints.
type StockHandler struct {
	DB *sql.DB
}

type createStockRequest struct {
	ProductID int64 `json:"productId"`
	StoreID   int64 `json:"storeId"`
	Quantity  int   `json:"quantity"`
}

type updateStockRequest struct {
	Quantity int `json:"quantity"`
}

// ListByStore handles GET /api/stock/{storeId}.
func (h *StockHandler) ListByStore(w http.ResponseWriter, r *http.Request) {
	storeID, err := strconv.ParseInt(chi.URLParam(r, "storeId"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid store id")
		return
	}

	stock, err := store.ListStockByStore(r.Context(), h.DB, storeID)
	if err != nil {
		slog.Error("failed to list stock", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list stock")
		return
	}
	if stock == nil {
		stock = []model.StockWithProduct{}
	}
	jsonResponse(w, http.StatusOK, stock)
}

// Create handles POST /api/stock. The referenced product and store are not
// checked for existence.
func (h *StockHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createStockRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	stock, err := store.CreateStock(r.Context(), h.DB, req.ProductID, req.StoreID, req.Quantity)
	if err != nil {
		slog.Error("failed to create stock", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to create stock")
		return
	}

	jsonResponse(w, http.StatusCreated, stock)
}

// SetQuantity handles PATCH /api/stock/{id}. The body's quantity replaces
// the stored value outright.
func (h *StockHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid stock id")
		return
	}

	var req updateStockRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	stock, err := store.SetStockQuantity(r.Context(), h.DB, id, req.Quantity)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			jsonError(w, http.StatusNotFound, "stock not found")
			return
		}
		slog.Error("failed to update stock", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to update stock")
		return
	}

	jsonResponse(w, http.StatusOK, stock)
}
