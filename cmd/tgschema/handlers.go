package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/brunobiangulo/tgschema/schema"
)

type handler struct {
	mu        sync.RWMutex
	schema    *schema.Schema
	extracted time.Time
}

func newHandler(s *schema.Schema) *handler {
	h := &handler{}
	h.set(s)
	return h
}

func (h *handler) set(s *schema.Schema) {
	h.mu.Lock()
	h.schema = s
	h.extracted = time.Now().UTC()
	h.mu.Unlock()
}

func (h *handler) current() (*schema.Schema, time.Time) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.schema, h.extracted
}

func (h *handler) routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.handleHealth)
	mux.HandleFunc("GET /schema", h.handleSchema)
	mux.HandleFunc("GET /changes", h.handleChanges)
	mux.HandleFunc("GET /types", h.handleListTypes)
	mux.HandleFunc("GET /types/{name}", h.handleGetType)
	mux.HandleFunc("GET /methods", h.handleListMethods)
	mux.HandleFunc("GET /methods/{name}", h.handleGetMethod)
}

// GET /health
func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	s, at := h.current()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":       "ok",
		"extracted_at": at.Format(time.RFC3339),
		"types":        len(s.Types),
		"methods":      len(s.Methods),
	})
}

// GET /schema
func (h *handler) handleSchema(w http.ResponseWriter, r *http.Request) {
	s, _ := h.current()
	writeJSON(w, http.StatusOK, s)
}

// GET /changes
func (h *handler) handleChanges(w http.ResponseWriter, r *http.Request) {
	s, _ := h.current()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"changes": s.RecentChanges,
	})
}

// GET /types
// Lists type names only; fetch /types/{name} for fields.
func (h *handler) handleListTypes(w http.ResponseWriter, r *http.Request) {
	s, _ := h.current()
	names := make([]string, len(s.Types))
	for i, t := range s.Types {
		names[i] = t.Name
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"types":      names,
		"unresolved": s.UnresolvedReferences(),
	})
}

// GET /types/{name}
func (h *handler) handleGetType(w http.ResponseWriter, r *http.Request) {
	s, _ := h.current()
	name := r.PathValue("name")
	t, ok := s.Type(name)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown type "+name)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// GET /methods
func (h *handler) handleListMethods(w http.ResponseWriter, r *http.Request) {
	s, _ := h.current()
	names := make([]string, len(s.Methods))
	for i, m := range s.Methods {
		names[i] = m.Name
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"methods": names,
	})
}

// GET /methods/{name}
func (h *handler) handleGetMethod(w http.ResponseWriter, r *http.Request) {
	s, _ := h.current()
	name := r.PathValue("name")
	m, ok := s.Method(name)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown method "+name)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("writing response failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
