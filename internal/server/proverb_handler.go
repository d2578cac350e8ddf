package server

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/demureom-ctrl/Game/internal/proverb"
)

// ProverbHandler serves proverb endpoints.
type ProverbHandler struct {
	proverbs proverb.ProverbRepository
}

// NewProverbHandler creates a new ProverbHandler.
func NewProverbHandler(proverbs proverb.ProverbRepository) *ProverbHandler {
	return &ProverbHandler{proverbs: proverbs}
}

// Routes returns the proverb routes relative to their mount point.
func (h *ProverbHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/random", h.Random)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}

type proverbInput struct {
	Content string `json:"content"`
}

func (h *ProverbHandler) List(w http.ResponseWriter, r *http.Request) {
	proverbs, err := h.proverbs.FindAll(r.Context())
	if err != nil {
		writeInternalError(w, r, "list proverbs", err)
		return
	}
	writeJSON(w, http.StatusOK, proverbs)
}

func (h *ProverbHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in proverbInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(in.Content) == "" {
		writeError(w, http.StatusBadRequest, "Content required")
		return
	}

	p := &proverb.Proverb{Content: in.Content}
	if err := h.proverbs.Create(r.Context(), p); err != nil {
		writeInternalError(w, r, "create proverb", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": p.ID})
}

// Random returns one proverb, or 404 when there are none.
func (h *ProverbHandler) Random(w http.ResponseWriter, r *http.Request) {
	p, err := h.proverbs.Random(r.Context())
	if err != nil {
		writeInternalError(w, r, "random proverb", err)
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "No proverbs found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProverbHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	var in proverbInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(in.Content) == "" {
		writeError(w, http.StatusBadRequest, "Content required")
		return
	}

	if err := h.proverbs.Update(r.Context(), &proverb.Proverb{ID: id, Content: in.Content}); err != nil {
		writeInternalError(w, r, "update proverb", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *ProverbHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if err := h.proverbs.Delete(r.Context(), id); err != nil {
		writeInternalError(w, r, "delete proverb", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
