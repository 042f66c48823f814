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

// TransfersHandler handles transfer endpoints.
type TransfersHandler struct {
	DB *sql.DB
	// ApplyStock makes completion move quantity between stock rows.
	ApplyStock bool
}

type createTransferRequest struct {
	ProductID   int64 `json:"productId"`
	FromStoreID int64 `json:"fromStoreId"`
	ToStoreID   int64 `json:"toStoreId"`
	Quantity    int   `json:"quantity"`
}

// Create handles POST /api/transfers. Any status in the body is ignored;
// transfers always start pending. Quantity and store checks live in the
// client form, not here.
func (h *TransfersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTransferRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	transfer, err := store.CreateTransfer(r.Context(), h.DB, req.ProductID, req.FromStoreID, req.ToStoreID, req.Quantity)
	if err != nil {
		slog.Error("failed to create transfer", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to create transfer")
		return
	}

	claims := GetClaims(r.Context())
	slog.Info("transfer created", "user", claims.Username,
		"product", transfer.ProductID, "quantity", transfer.Quantity,
		"from", transfer.FromStoreID, "to", transfer.ToStoreID)
	jsonResponse(w, http.StatusCreated, transfer)
}

// ListByStore handles GET /api/transfers/{storeId}.
func (h *TransfersHandler) ListByStore(w http.ResponseWriter, r *http.Request) {
	storeID, err := strconv.ParseInt(chi.URLParam(r, "storeId"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid store id")
		return
	}

	transfers, err := store.ListTransfersByStore(r.Context(), h.DB, storeID)
	if err != nil {
		slog.Error("failed to list transfers", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list transfers")
		return
	}
	if transfers == nil {
		transfers = []model.Transfer{}
	}
	jsonResponse(w, http.StatusOK, transfers)
}

// Complete handles PATCH /api/transfers/{id}/complete.
func (h *TransfersHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid transfer id")
		return
	}

	transfer, err := store.CompleteTransfer(r.Context(), h.DB, id, h.ApplyStock)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			jsonError(w, http.StatusNotFound, "transfer not found")
			return
		}
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	claims := GetClaims(r.Context())
	slog.Info("transfer completed", "user", claims.Username, "transfer", transfer.ID)
	jsonResponse(w, http.StatusOK, transfer)
}
