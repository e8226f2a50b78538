package server

import (
	"encoding/json"
	"net/http"

	"github.com/BurntSushi/toml"
	"github.com/go-chi/chi/v5"

	"github.com/raglet/raglet/internal/config"
	"github.com/raglet/raglet/internal/logger"
)

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.withTraceID, s.withLogging)

	r.Get("/healthz", s.handleHealth)
	r.Get("/v1/config", s.handleConfigJSON)
	r.Get("/v1/config.toml", s.handleConfigTOML)
	r.Get("/v1/generation", s.handleGeneration)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleConfigJSON serves the redacted document as JSON. The TOML key
// names are preserved by re-decoding the encoded document into a generic
// tree, so JSON consumers see the same paths the file uses.
func (s *Server) handleConfigJSON(w http.ResponseWriter, r *http.Request) {
	data, err := config.EncodeBytes(s.source().Redacted())
	if err != nil {
		s.serveError(w, r, err)
		return
	}

	var tree map[string]any
	if err := toml.Unmarshal(data, &tree); err != nil {
		s.serveError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tree)
}

func (s *Server) handleConfigTOML(w http.ResponseWriter, r *http.Request) {
	data, err := config.EncodeBytes(s.source().Redacted())
	if err != nil {
		s.serveError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/toml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// handleGeneration serves the effective generation config for every
// consumer section, after inheritance from [completion].
func (s *Server) handleGeneration(w http.ResponseWriter, r *http.Request) {
	effective, err := config.EffectiveGenerations(s.source().Redacted())
	if err != nil {
		s.serveError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, effective)
}

func (s *Server) serveError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Error().Err(err).Msg("error serving configuration")
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
