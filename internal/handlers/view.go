package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"folio.dev/internal/services"
)

// SessionCookie names the cookie that selects a visitor's controller
const SessionCookie = "catalog_session"

// ViewHandler exposes a session's CatalogController over HTTP
type ViewHandler struct {
	sessions *services.SessionManager
	projects *services.ProjectService
}

// NewViewHandler creates a new ViewHandler
func NewViewHandler(sm *services.SessionManager, ps *services.ProjectService) *ViewHandler {
	return &ViewHandler{sessions: sm, projects: ps}
}

// Current handles GET /api/view. Without a live session it returns the
// default view and does not start one.
func (h *ViewHandler) Current(w http.ResponseWriter, r *http.Request) {
	if c, ok := h.sessions.Lookup(sessionID(r)); ok {
		respondJSON(w, http.StatusOK, c.View())
		return
	}
	respondJSON(w, http.StatusOK, h.projects.List("", "", ""))
}

// Reset handles DELETE /api/view: the session is dropped and its cookie
// expired
func (h *ViewHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if id := sessionID(r); id != "" {
		h.sessions.Drop(id)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	respondJSON(w, http.StatusOK, h.projects.List("", "", ""))
}

// Filter handles POST /api/view/filter
func (h *ViewHandler) Filter(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Category string `json:"category"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	c := h.controller(w, r)
	respondJSON(w, http.StatusOK, c.OnFilterChange(req.Category))
}

// Search handles POST /api/view/search
func (h *ViewHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query string `json:"query"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	c := h.controller(w, r)
	respondJSON(w, http.StatusOK, c.OnSearchChange(req.Query))
}

// Sort handles POST /api/view/sort
func (h *ViewHandler) Sort(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Sort string `json:"sort"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	c := h.controller(w, r)
	respondJSON(w, http.StatusOK, c.OnSortChange(req.Sort))
}

// OpenDetail handles POST /api/view/detail/{id}. Unknown ids return the
// unchanged view.
func (h *ViewHandler) OpenDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid project id")
		return
	}

	c := h.controller(w, r)
	respondJSON(w, http.StatusOK, c.OnOpenDetail(id))
}

// CloseDetail handles DELETE /api/view/detail
func (h *ViewHandler) CloseDetail(w http.ResponseWriter, r *http.Request) {
	c := h.controller(w, r)
	respondJSON(w, http.StatusOK, c.OnCloseDetail())
}

// controller resolves the session cookie, issuing a new one if needed
func (h *ViewHandler) controller(w http.ResponseWriter, r *http.Request) *services.Controller {
	id := sessionID(r)
	c, newID := h.sessions.Get(id)
	if newID != id {
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    newID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return c
}

func sessionID(r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		return cookie.Value
	}
	return ""
}
