package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"stocktrack/internal/model"
	"stocktrack/internal/store"
)

// StoresHandler handles store endpoints.
type StoresHandler struct {
	DB *sql.DB
}

type createStoreRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// List handles GET /api/stores.
func (h *StoresHandler) List(w http.ResponseWriter, r *http.Request) {
	stores, err := store.ListStores(r.Context(), h.DB)
	if err != nil {
		slog.Error("failed to list stores", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list stores")
		return
	}
	if stores == nil {
		stores = []model.Store{}
	}
	jsonResponse(w, http.StatusOK, stores)
}

// Create handles POST /api/stores.
func (h *StoresHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createStoreRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" || req.Location == "" {
		jsonError(w, http.StatusBadRequest, "name and location required")
		return
	}

	created, err := store.CreateStore(r.Context(), h.DB, req.Name, req.Location)
	if err != nil {
		slog.Error("failed to create store", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to create store")
		return
	}

	jsonResponse(w, http.StatusCreated, created)
}
