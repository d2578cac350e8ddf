package server

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_word "github.com/demureom-ctrl/Game/internal/mocks/word"
	"github.com/demureom-ctrl/Game/internal/word"
)

func TestWordHandler(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		setup      func(repo *mock_word.MockWordRepository)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "list",
			method: http.MethodGet,
			path:   "/api/words",
			setup: func(repo *mock_word.MockWordRepository) {
				repo.EXPECT().FindAll(gomock.Any()).Return([]word.Word{{ID: 1, Category: "حيوانات", Content: "زرافة"}}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[{"id": 1, "category": "حيوانات", "content": "زرافة"}]`,
		},
		{
			name:   "create",
			method: http.MethodPost,
			path:   "/api/words",
			body:   `{"category": "حيوانات", "content": "فيل"}`,
			setup: func(repo *mock_word.MockWordRepository) {
				repo.EXPECT().Create(gomock.Any(), &word.Word{Category: "حيوانات", Content: "فيل"}).
					DoAndReturn(func(_ context.Context, w *word.Word) error {
						w.ID = 5
						return nil
					})
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"id": 5}`,
		},
		{
			name:       "create without category",
			method:     http.MethodPost,
			path:       "/api/words",
			body:       `{"content": "فيل"}`,
			setup:      func(repo *mock_word.MockWordRepository) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error": "Category and Content required"}`,
		},
		{
			name:   "update",
			method: http.MethodPut,
			path:   "/api/words/5",
			body:   `{"category": "حيوانات", "content": "أسد"}`,
			setup: func(repo *mock_word.MockWordRepository) {
				repo.EXPECT().Update(gomock.Any(), &word.Word{ID: 5, Category: "حيوانات", Content: "أسد"}).Return(nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"status": "updated"}`,
		},
		{
			name:       "update with invalid id",
			method:     http.MethodPut,
			path:       "/api/words/0",
			body:       `{"category": "c", "content": "x"}`,
			setup:      func(repo *mock_word.MockWordRepository) {},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error": "not found"}`,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			path:   "/api/words/5",
			setup: func(repo *mock_word.MockWordRepository) {
				repo.EXPECT().Delete(gomock.Any(), int64(5)).Return(nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"status": "deleted"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTestRouter(t, t.TempDir())
			tt.setup(tr.words)

			rec := tr.do(tt.method, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
