package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/easyshop/storefront/internal/repository"
)

// The only message an infrastructure failure is allowed to leak to a client.
const internalErrorMessage = "Oops... our bad."

type ErrorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondStoreError is the single mapping point from store errors onto HTTP
// statuses. NotFound stays 404 with an empty body and is never reclassified;
// everything else becomes an opaque 500 with diagnostic detail logged only.
func respondStoreError(w http.ResponseWriter, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		w.WriteHeader(http.StatusNotFound)
	case errors.Is(err, repository.ErrConflict):
		respondError(w, http.StatusConflict, "conflicts with an existing record")
	default:
		logger.Error("store operation failed", "error", err)
		respondError(w, http.StatusInternalServerError, internalErrorMessage)
	}
}
