package server

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/demureom-ctrl/Game/internal/word"
)

// WordHandler serves heads-up word endpoints.
type WordHandler struct {
	words word.WordRepository
}

// NewWordHandler creates a new WordHandler.
func NewWordHandler(words word.WordRepository) *WordHandler {
	return &WordHandler{words: words}
}

// Routes returns the word routes relative to their mount point.
func (h *WordHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}

type wordInput struct {
	Category string `json:"category"`
	Content  string `json:"content"`
}

func (in wordInput) valid() bool {
	return strings.TrimSpace(in.Category) != "" && strings.TrimSpace(in.Content) != ""
}

func (h *WordHandler) List(w http.ResponseWriter, r *http.Request) {
	words, err := h.words.FindAll(r.Context())
	if err != nil {
		writeInternalError(w, r, "list words", err)
		return
	}
	writeJSON(w, http.StatusOK, words)
}

func (h *WordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in wordInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !in.valid() {
		writeError(w, http.StatusBadRequest, "Category and Content required")
		return
	}

	wd := &word.Word{Category: in.Category, Content: in.Content}
	if err := h.words.Create(r.Context(), wd); err != nil {
		writeInternalError(w, r, "create word", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": wd.ID})
}

func (h *WordHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	var in wordInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !in.valid() {
		writeError(w, http.StatusBadRequest, "Category and Content required")
		return
	}

	if err := h.words.Update(r.Context(), &word.Word{ID: id, Category: in.Category, Content: in.Content}); err != nil {
		writeInternalError(w, r, "update word", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *WordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if err := h.words.Delete(r.Context(), id); err != nil {
		writeInternalError(w, r, "delete word", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
