package server

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/demureom-ctrl/Game/internal/question"
)

// QuestionHandler serves question administration endpoints.
type QuestionHandler struct {
	questions question.QuestionRepository
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(questions question.QuestionRepository) *QuestionHandler {
	return &QuestionHandler{questions: questions}
}

// Routes returns the question routes relative to their mount point.
func (h *QuestionHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}

var (
	errQuestionFieldsRequired = errors.New("Category, Question and Answer required")
	errInvalidDifficulty      = errors.New("Difficulty must be a number within range")
)

type questionInput struct {
	Category   string      `json:"category"`
	Difficulty json.Number `json:"difficulty"`
	Question   string      `json:"question"`
	Answer     string      `json:"answer"`
	Options    []string    `json:"options"`
}

// toQuestion applies the defaults for difficulty (1) and options (empty).
func (in questionInput) toQuestion() (*question.Question, error) {
	if strings.TrimSpace(in.Category) == "" || strings.TrimSpace(in.Question) == "" || strings.TrimSpace(in.Answer) == "" {
		return nil, errQuestionFieldsRequired
	}
	difficulty := 1
	if in.Difficulty != "" {
		f, err := in.Difficulty.Float64()
		if err != nil || math.Abs(f) > math.MaxInt32 {
			return nil, errInvalidDifficulty
		}
		difficulty = int(f)
	}
	options := question.Options(in.Options)
	if options == nil {
		options = question.Options{}
	}
	return &question.Question{
		Category:   in.Category,
		Difficulty: difficulty,
		Question:   in.Question,
		Answer:     in.Answer,
		Options:    options,
	}, nil
}

// List returns all questions, or those of one category with ?category=.
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		questions []question.Question
		err       error
	)
	if category := r.URL.Query().Get("category"); category != "" {
		questions, err = h.questions.FindByCategory(r.Context(), category)
	} else {
		questions, err = h.questions.FindAll(r.Context())
	}
	if err != nil {
		writeInternalError(w, r, "list questions", err)
		return
	}
	writeJSON(w, http.StatusOK, questions)
}

func (h *QuestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	q, ok := h.readQuestion(w, r)
	if !ok {
		return
	}
	if err := h.questions.Create(r.Context(), q); err != nil {
		writeInternalError(w, r, "create question", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": q.ID})
}

func (h *QuestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	q, err := h.questions.FindByID(r.Context(), id)
	if err != nil {
		writeInternalError(w, r, "get question", err)
		return
	}
	if q == nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (h *QuestionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	q, ok := h.readQuestion(w, r)
	if !ok {
		return
	}
	q.ID = id
	if err := h.questions.Update(r.Context(), q); err != nil {
		writeInternalError(w, r, "update question", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *QuestionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if err := h.questions.Delete(r.Context(), id); err != nil {
		writeInternalError(w, r, "delete question", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *QuestionHandler) readQuestion(w http.ResponseWriter, r *http.Request) (*question.Question, bool) {
	var in questionInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	q, err := in.toQuestion()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return q, true
}
