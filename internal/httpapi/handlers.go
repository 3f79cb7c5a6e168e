package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/asciidag/asciidag/pkg/cache"
	"github.com/asciidag/asciidag/pkg/graph"
	"github.com/asciidag/asciidag/pkg/ingest/dot"
	"github.com/asciidag/asciidag/pkg/ingest/jsongraph"
	"github.com/asciidag/asciidag/pkg/ingest/mlgraph"
	"github.com/asciidag/asciidag/pkg/printer"
	"github.com/asciidag/asciidag/pkg/render"
	"github.com/asciidag/asciidag/pkg/store"
)

// renderResponse is the JSON shape returned by POST /render.
type renderResponse struct {
	ID     string `json:"id"`
	Output string `json:"output"`
	Cached bool   `json:"cached"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// handleRender accepts graph source in the request body, renders it, and
// returns the ASCII art along with an ID the render can later be fetched
// by. The input format is selected with ?format=dot|json|ml (default json).
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "read body: "+err.Error(), http.StatusBadRequest)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}

	g, err := parseGraph(ctx, format, data)
	if err != nil {
		http.Error(w, "parse graph: "+err.Error(), http.StatusBadRequest)
		return
	}

	opts := printer.DefaultOptions()

	key := cache.Key(cache.Hash(data), cache.Hash([]byte(format)))
	cached := false
	out, ok, err := s.cache.Get(ctx, key)
	switch {
	case err == nil && ok:
		cached = true
	default:
		rendered, err := render.RenderContext(ctx, g, opts)
		if err != nil {
			http.Error(w, "render: "+err.Error(), http.StatusUnprocessableEntity)
			return
		}
		out = []byte(rendered)
		_ = s.cache.Set(ctx, key, out, 0)
	}

	rec := store.New(cache.Hash(data), opts, string(out))
	if err := s.store.Set(ctx, rec); err != nil {
		s.logger.Warnf("store render: %v", err)
	}

	writeJSON(w, http.StatusOK, renderResponse{ID: rec.ID, Output: string(out), Cached: cached})
}

// handleGetRender retrieves a previously stored render by ID.
func (s *Server) handleGetRender(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rec, err := s.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "render not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "get render: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func parseGraph(ctx context.Context, format string, data []byte) (*graph.Graph[string], error) {
	switch format {
	case "dot":
		return dot.Parse(ctx, data)
	case "json":
		return jsongraph.Parse(ctx, bytes.NewReader(data))
	case "ml":
		return mlgraph.Parse(ctx, bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unknown input format: %s", format)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
