// Package http exposes docuri over HTTP: archive contents are served under
// the local URI prefix and symbols are resolved through a JSON endpoint.
package http

import (
	"encoding/json"
	"log/slog"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/fwojciec/docuri"
)

// Handler serves documentation from a catalog and resolves symbols.
type Handler struct {
	catalog  *docuri.Catalog
	resolver docuri.Resolver
	reader   docuri.ArchiveReader
	logger   *slog.Logger
	mux      *http.ServeMux
}

// NewHandler creates a Handler serving catalog documents under prefix.
// A nil logger uses slog.Default().
func NewHandler(catalog *docuri.Catalog, resolver docuri.Resolver, reader docuri.ArchiveReader, prefix string, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{
		catalog:  catalog,
		resolver: resolver,
		reader:   reader,
		logger:   logger,
		mux:      http.NewServeMux(),
	}

	root := "/" + strings.Trim(prefix, "/")
	if root == "/" {
		root = ""
	}
	h.mux.HandleFunc("GET /resolve", h.handleResolve)
	h.mux.HandleFunc("GET "+root+"/{archive}/{path...}", h.handleDocument)
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

type resolveResponse struct {
	URI   string `json:"uri,omitempty"`
	Error string `json:"error,omitempty"`
}

// handleResolve resolves the "symbol" query parameter. An optional "java"
// parameter supplies the javadoc name when it differs from the scaladoc one.
func (h *Handler) handleResolve(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	scala, err := docuri.ParseSignature(q.Get("symbol"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, resolveResponse{Error: docuri.ErrorMessage(err)})
		return
	}
	pair := docuri.SymmetricPair(scala)
	if java := q.Get("java"); java != "" {
		if pair.Java, err = docuri.ParseSignature(java); err != nil {
			writeJSON(w, http.StatusBadRequest, resolveResponse{Error: docuri.ErrorMessage(err)})
			return
		}
	}

	uri, ok := h.resolver.Resolve(pair)
	if !ok {
		writeJSON(w, http.StatusNotFound, resolveResponse{Error: "no documentation found for " + scala.String()})
		return
	}
	writeJSON(w, http.StatusOK, resolveResponse{URI: uri})
}

func (h *Handler) handleDocument(w http.ResponseWriter, r *http.Request) {
	name, entry := r.PathValue("archive"), r.PathValue("path")

	archive, ok := h.catalog.Archive(name)
	if !ok {
		http.NotFound(w, r)
		return
	}

	content, err := h.reader.ReadEntry(r.Context(), archive, entry)
	if docuri.ErrorCode(err) == docuri.ENOTFOUND {
		http.NotFound(w, r)
		return
	} else if err != nil {
		h.logger.Error("read entry", "archive", name, "path", entry, "err", err)
		http.Error(w, "failed to read document", http.StatusInternalServerError)
		return
	}

	if ct := mime.TypeByExtension(path.Ext(entry)); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	_, _ = w.Write(content)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
