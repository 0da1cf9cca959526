// Package server exposes tag correction over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/calvinalkan/espacy/pkg/postable"
)

// Corrector is the correction surface the handlers call. The cache it
// returns must already be loaded; handlers never write to it.
type Corrector interface {
	CorrectTag(ctx context.Context, word, originalTag, phrase string) (string, error)
	Pattern(ctx context.Context, word, targetTag, phrase string) (string, error)
	Cache() (*postable.Cache, error)
}

// Options configures [NewHandler].
type Options struct {
	// CORSOrigins lists the allowed origins. Empty allows none.
	CORSOrigins []string
	Log         *zap.Logger
}

type wordRequest struct {
	Word   string `json:"word"`
	Tag    string `json:"tag"`
	Phrase string `json:"phrase"`
}

type tagResponse struct {
	Tag string `json:"tag"`
}

type patternResponse struct {
	Pattern string `json:"pattern"`
}

type entryJSON struct {
	Word    string `json:"word"`
	Pattern string `json:"pattern"`
	Tag     string `json:"tag"`
	Example string `json:"example"`
}

type errorResponse struct {
	Error string `json:"error"`
}

var errBadRequest = errors.New("body must be JSON with non-empty 'word', 'tag' and 'phrase' fields")

// NewHandler returns the API handler wrapped with CORS.
func NewHandler(c Corrector, opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	h := &handlers{c: c, log: log}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/correct", h.correct)
	mux.HandleFunc("/api/pattern", h.pattern)
	mux.HandleFunc("/api/cache", h.cache)

	return cors.New(cors.Options{
		AllowedOrigins: opts.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(mux)
}

type handlers struct {
	c   Corrector
	log *zap.Logger
}

func (h *handlers) correct(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	tag, err := h.c.CorrectTag(r.Context(), req.Word, req.Tag, req.Phrase)
	if err != nil {
		h.fail(w, err)
		return
	}

	h.log.Debug("correct", zap.String("word", req.Word), zap.String("tag", req.Tag), zap.String("result", tag))

	writeJSON(w, h.log, http.StatusOK, tagResponse{Tag: tag})
}

func (h *handlers) pattern(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	pattern, err := h.c.Pattern(r.Context(), req.Word, req.Tag, req.Phrase)
	if err != nil {
		h.fail(w, err)
		return
	}

	writeJSON(w, h.log, http.StatusOK, patternResponse{Pattern: pattern})
}

func (h *handlers) cache(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, h.log, http.StatusMethodNotAllowed, "GET required")
		return
	}

	cache, err := h.c.Cache()
	if err != nil {
		h.fail(w, err)
		return
	}

	var entries []postable.Entry

	if word := r.URL.Query().Get("word"); word != "" {
		if !cache.Has(word) {
			writeError(w, h.log, http.StatusNotFound, "word not in cache: "+word)
			return
		}

		entries = cache.WordEntries(word)
	} else {
		entries = cache.Entries()
	}

	out := make([]entryJSON, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryJSON(e))
	}

	writeJSON(w, h.log, http.StatusOK, out)
}

func (h *handlers) decode(w http.ResponseWriter, r *http.Request) (wordRequest, bool) {
	if r.Method != http.MethodPost {
		writeError(w, h.log, http.StatusMethodNotAllowed, "POST required")
		return wordRequest{}, false
	}

	var req wordRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.Word == "" || req.Tag == "" || req.Phrase == "" {
		writeError(w, h.log, http.StatusBadRequest, errBadRequest.Error())
		return wordRequest{}, false
	}

	return req, true
}

func (h *handlers) fail(w http.ResponseWriter, err error) {
	h.log.Error("request failed", zap.Error(err))
	writeError(w, h.log, http.StatusInternalServerError, err.Error())
}

func writeJSON(w http.ResponseWriter, log *zap.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn("encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, log *zap.Logger, status int, msg string) {
	writeJSON(w, log, status, errorResponse{Error: msg})
}
