package server

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_question "github.com/demureom-ctrl/Game/internal/mocks/question"
	"github.com/demureom-ctrl/Game/internal/question"
)

func TestQuestionHandler(t *testing.T) {
	stored := question.Question{ID: 7, Category: "Tech", Difficulty: 2, Question: "Q1?", Answer: "A1", Options: question.Options{"x", "y"}}
	storedJSON := `{"id": 7, "category": "Tech", "difficulty": 2, "question": "Q1?", "answer": "A1", "options": ["x", "y"]}`

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		setup      func(repo *mock_question.MockQuestionRepository)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "list all",
			method: http.MethodGet,
			path:   "/api/questions",
			setup: func(repo *mock_question.MockQuestionRepository) {
				repo.EXPECT().FindAll(gomock.Any()).Return([]question.Question{stored}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "[" + storedJSON + "]",
		},
		{
			name:   "list by category",
			method: http.MethodGet,
			path:   "/api/questions?category=Tech",
			setup: func(repo *mock_question.MockQuestionRepository) {
				repo.EXPECT().FindByCategory(gomock.Any(), "Tech").Return([]question.Question{}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:   "create applies defaults",
			method: http.MethodPost,
			path:   "/api/questions",
			body:   `{"category": "Tech", "question": "Q?", "answer": "A"}`,
			setup: func(repo *mock_question.MockQuestionRepository) {
				repo.EXPECT().Create(gomock.Any(), &question.Question{
					Category: "Tech", Difficulty: 1, Question: "Q?", Answer: "A", Options: question.Options{},
				}).DoAndReturn(func(_ context.Context, q *question.Question) error {
					q.ID = 42
					return nil
				})
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"id": 42}`,
		},
		{
			name:   "create accepts a numeric string difficulty",
			method: http.MethodPost,
			path:   "/api/questions",
			body:   `{"category": "Tech", "difficulty": "4", "question": "Q?", "answer": "A", "options": ["A", "B"]}`,
			setup: func(repo *mock_question.MockQuestionRepository) {
				repo.EXPECT().Create(gomock.Any(), &question.Question{
					Category: "Tech", Difficulty: 4, Question: "Q?", Answer: "A", Options: question.Options{"A", "B"},
				}).Return(nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"id": 0}`,
		},
		{
			name:       "create without an answer",
			method:     http.MethodPost,
			path:       "/api/questions",
			body:       `{"category": "Tech", "question": "Q?"}`,
			setup:      func(repo *mock_question.MockQuestionRepository) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error": "Category, Question and Answer required"}`,
		},
		{
			name:       "create with an out of range difficulty",
			method:     http.MethodPost,
			path:       "/api/questions",
			body:       `{"category": "Tech", "difficulty": 1e300, "question": "Q?", "answer": "A"}`,
			setup:      func(repo *mock_question.MockQuestionRepository) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error": "Difficulty must be a number within range"}`,
		},
		{
			name:       "update with an out of range difficulty",
			method:     http.MethodPut,
			path:       "/api/questions/7",
			body:       `{"category": "Tech", "difficulty": -3e10, "question": "Q?", "answer": "A"}`,
			setup:      func(repo *mock_question.MockQuestionRepository) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error": "Difficulty must be a number within range"}`,
		},
		{
			name:       "create with invalid json",
			method:     http.MethodPost,
			path:       "/api/questions",
			body:       `{"category":`,
			setup:      func(repo *mock_question.MockQuestionRepository) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error": "invalid request body"}`,
		},
		{
			name:   "create storage failure",
			method: http.MethodPost,
			path:   "/api/questions",
			body:   `{"category": "Tech", "question": "Q?", "answer": "A"}`,
			setup: func(repo *mock_question.MockQuestionRepository) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(fmt.Errorf("database is locked"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error": "internal server error"}`,
		},
		{
			name:   "get existing",
			method: http.MethodGet,
			path:   "/api/questions/7",
			setup: func(repo *mock_question.MockQuestionRepository) {
				repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(&stored, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   storedJSON,
		},
		{
			name:   "get missing",
			method: http.MethodGet,
			path:   "/api/questions/8",
			setup: func(repo *mock_question.MockQuestionRepository) {
				repo.EXPECT().FindByID(gomock.Any(), int64(8)).Return(nil, nil)
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error": "not found"}`,
		},
		{
			name:       "get with a non-numeric id",
			method:     http.MethodGet,
			path:       "/api/questions/abc",
			setup:      func(repo *mock_question.MockQuestionRepository) {},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error": "not found"}`,
		},
		{
			name:   "update",
			method: http.MethodPut,
			path:   "/api/questions/7",
			body:   `{"category": "Tech", "difficulty": 3, "question": "Q?", "answer": "A"}`,
			setup: func(repo *mock_question.MockQuestionRepository) {
				repo.EXPECT().Update(gomock.Any(), &question.Question{
					ID: 7, Category: "Tech", Difficulty: 3, Question: "Q?", Answer: "A", Options: question.Options{},
				}).Return(nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"ok": true}`,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			path:   "/api/questions/7",
			setup: func(repo *mock_question.MockQuestionRepository) {
				repo.EXPECT().Delete(gomock.Any(), int64(7)).Return(nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"ok": true}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTestRouter(t, t.TempDir())
			tt.setup(tr.questions)

			rec := tr.do(tt.method, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
