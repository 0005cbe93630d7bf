package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// Handler returns the HTTP handler with all routes and middleware.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	r.Use(s.recovery)
	r.Use(s.logging)

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/conversions", s.handleListConversions).Methods(http.MethodGet)
	api.HandleFunc("/conversions", s.handleCreateConversion).Methods(http.MethodPost)
	api.HandleFunc("/conversions/{id}", s.handleGetConversion).Methods(http.MethodGet)
	api.HandleFunc("/conversions/{id}", s.handleDeleteConversion).Methods(http.MethodDelete)
	api.HandleFunc("/conversions/{id}/download", s.handleDownload).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: s.cfg.Server.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Requested-With"},
		ExposedHeaders: []string{"Content-Disposition", "Content-Length"},
		MaxAge:         86400,
	})
	return corsHandler.Handler(r)
}
