package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"stocktrack/internal/store"
)

// DevHandler handles development helper endpoints.
type DevHandler struct {
	DB *sql.DB
}

// Init handles POST /api/dev/init. It seeds the demo dataset; inserts are
// not wrapped in a transaction, so a failure partway leaves partial state.
func (h *DevHandler) Init(w http.ResponseWriter, r *http.Request) {
	result, err := store.Seed(r.Context(), h.DB)
	if err != nil {
		slog.Error("failed to seed demo data", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to seed demo data")
		return
	}

	claims := GetClaims(r.Context())
	slog.Info("demo data seeded", "user", claims.Username)
	jsonResponse(w, http.StatusCreated, result)
}
