package server

import (
	"math/rand/v2"
	"net/http"

	"github.com/demureom-ctrl/Game/internal/question"
)

const (
	minLevel       = 1
	maxLevel       = 5
	pointsPerLevel = 100
	defaultMode    = "text"
)

// GameHandler serves category listing and board generation.
type GameHandler struct {
	questions question.QuestionRepository
	pick      func(n int) int
}

// NewGameHandler creates a new GameHandler. A nil pick uses math/rand/v2.
func NewGameHandler(questions question.QuestionRepository, pick func(n int) int) *GameHandler {
	if pick == nil {
		pick = rand.IntN
	}
	return &GameHandler{questions: questions, pick: pick}
}

type selectedCategory struct {
	Name string `json:"name"`
	Mode string `json:"mode"`
}

type startRequest struct {
	SelectedCategories []selectedCategory `json:"selectedCategories"`
}

type boardQuestion struct {
	ID         int      `json:"id"`
	Category   string   `json:"category"`
	Points     int      `json:"points"`
	Question   string   `json:"question"`
	Answer     string   `json:"answer"`
	Difficulty int      `json:"difficulty"`
	Answered   bool     `json:"answered"`
	Mode       string   `json:"mode"`
	Options    []string `json:"options"`
}

// Categories lists the distinct question categories.
func (h *GameHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.questions.Categories(r.Context())
	if err != nil {
		writeInternalError(w, r, "list categories", err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

// Start builds a board with one random question per selected category and level.
// Levels without questions are left out.
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	board := []boardQuestion{}
	nextID := 1
	for _, c := range req.SelectedCategories {
		mode := c.Mode
		if mode == "" {
			mode = defaultMode
		}
		for level := minLevel; level <= maxLevel; level++ {
			pool, err := h.questions.FindByCategoryAndDifficulty(r.Context(), c.Name, level)
			if err != nil {
				writeInternalError(w, r, "load question pool", err)
				return
			}
			if len(pool) == 0 {
				continue
			}

			q := pool[h.pick(len(pool))]
			options := []string(q.Options)
			if options == nil {
				options = []string{}
			}
			board = append(board, boardQuestion{
				ID:         nextID,
				Category:   q.Category,
				Points:     level * pointsPerLevel,
				Question:   q.Question,
				Answer:     q.Answer,
				Difficulty: level,
				Answered:   false,
				Mode:       mode,
				Options:    options,
			})
			nextID++
		}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"questions": board})
}
