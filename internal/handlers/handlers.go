package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"slices"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"folio.dev/internal/config"
	"folio.dev/internal/middleware"
	"folio.dev/internal/services"
	"folio.dev/internal/socket"
)

const maxBodyBytes = 64 << 10

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, svc *services.Services) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(chimw.RealIP)

	// No origins configured means same-origin only. Credentials are never
	// allowed for a wildcard origin.
	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader},
			ExposedHeaders:   []string{middleware.RequestIDHeader},
			AllowCredentials: !slices.Contains(cfg.CORSOrigins, "*"),
			MaxAge:           300,
		}))
	}

	// Initialize handlers
	projectHandler := NewProjectHandler(svc.Projects)
	viewHandler := NewViewHandler(svc.Sessions, svc.Projects)
	settingsHandler := NewSettingsHandler(svc.Settings)
	liveHandler := socket.NewHandler(svc.Sessions, cfg.SearchDebounce)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Stateless catalog queries
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/featured", projectHandler.ListFeatured)
		r.Get("/projects/{id}", projectHandler.GetProject)
		r.Get("/categories", projectHandler.ListCategories)

		// Per-session interaction channels
		r.Route("/view", func(r chi.Router) {
			r.Get("/", viewHandler.Current)
			r.Delete("/", viewHandler.Reset)
			r.Post("/filter", viewHandler.Filter)
			r.Post("/search", viewHandler.Search)
			r.Post("/sort", viewHandler.Sort)
			r.Post("/detail/{id}", viewHandler.OpenDetail)
			r.Delete("/detail", viewHandler.CloseDetail)
		})

		// Visitor settings
		r.Get("/settings/{key}", settingsHandler.Get)
		r.Put("/settings/{key}", settingsHandler.Put)
		r.Delete("/settings/{key}", settingsHandler.Delete)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]any{
				"status":   "ok",
				"projects": svc.Projects.Store().Len(),
				"sessions": svc.Sessions.Len(),
			})
		})
	})

	r.Get("/ws", liveHandler.ServeHTTP)

	// Static files
	if cfg.StaticDir != "" {
		if _, err := os.Stat(cfg.StaticDir); err == nil {
			fileServer := http.FileServer(http.Dir(cfg.StaticDir))
			r.Handle("/static/*", http.StripPrefix("/static", fileServer))

			// Serve index.html at root
			r.Get("/", func(w http.ResponseWriter, r *http.Request) {
				http.ServeFile(w, r, filepath.Join(cfg.StaticDir, "index.html"))
			})
		} else {
			slog.Warn("static directory not found, serving API only", "dir", cfg.StaticDir)
		}
	}

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("error encoding JSON", "error", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// decodeJSON reads a bounded JSON request body into dst
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}
