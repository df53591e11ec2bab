package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"folio.dev/internal/services"
)

// SettingsHandler handles visitor settings endpoints
type SettingsHandler struct {
	settings *services.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(ss *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: ss}
}

// Get handles GET /api/settings/{key}
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	value := h.settings.Get(r.Context(), key, nil)
	if value == nil {
		value = json.RawMessage("null")
	}
	respondJSON(w, http.StatusOK, map[string]any{"key": key, "value": value})
}

// Put handles PUT /api/settings/{key}; the body is the JSON value
func (h *SettingsHandler) Put(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil || !json.Valid(body) {
		respondError(w, http.StatusBadRequest, "Invalid setting value")
		return
	}

	saved := h.settings.Set(r.Context(), key, body)
	respondJSON(w, http.StatusOK, map[string]any{"key": key, "saved": saved})
}

// Delete handles DELETE /api/settings/{key}
func (h *SettingsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	removed := h.settings.Remove(r.Context(), key)
	respondJSON(w, http.StatusOK, map[string]any{"key": key, "removed": removed})
}
