package question

import (
	"context"
	"fmt"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var questionColumns = []string{"id", "category", "difficulty", "question", "answer", "options"}

const insertQuery = "INSERT INTO questions (category, difficulty, question, answer, options) VALUES (?, ?, ?, ?, ?)"

func newMockRepository(t *testing.T) (*DBQuestionRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewDBQuestionRepository(sqlx.NewDb(db, "sqlite3")), mock
}

func TestDBQuestionRepository_FindAllKeys(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      map[DedupKey]struct{}
		wantErr   bool
	}{
		{
			name: "returns one key per row",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT category, difficulty, question FROM questions")).
					WillReturnRows(sqlmock.NewRows([]string{"category", "difficulty", "question"}).
						AddRow("Tech", 2, "Q1?").
						AddRow("History", 1, "Year?"))
			},
			want: map[DedupKey]struct{}{
				{Category: "Tech", Difficulty: 2, Question: "Q1?"}:    {},
				{Category: "History", Difficulty: 1, Question: "Year?"}: {},
			},
		},
		{
			name: "empty table",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT category, difficulty, question FROM questions")).
					WillReturnRows(sqlmock.NewRows([]string{"category", "difficulty", "question"}))
			},
			want: map[DedupKey]struct{}{},
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT category, difficulty, question FROM questions")).
					WillReturnError(fmt.Errorf("no such table: questions"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			tt.setupMock(mock)

			got, err := repo.FindAllKeys(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBQuestionRepository_BatchCreate(t *testing.T) {
	tests := []struct {
		name      string
		questions []*Question
		setupMock func(mock sqlmock.Sqlmock)
		wantIDs   []int64
		wantErr   bool
	}{
		{
			name: "inserts every question in one transaction",
			questions: []*Question{
				{Category: "Tech", Difficulty: 2, Question: "Q1?", Answer: "A1", Options: Options{"x", "y"}},
				{Category: "History", Difficulty: 1, Question: "Year?", Answer: "1919", Options: Options{}},
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(insertQuery)).
					WithArgs("Tech", 2, "Q1?", "A1", `["x","y"]`).
					WillReturnResult(sqlmock.NewResult(10, 1))
				mock.ExpectExec(regexp.QuoteMeta(insertQuery)).
					WithArgs("History", 1, "Year?", "1919", `[]`).
					WillReturnResult(sqlmock.NewResult(11, 1))
				mock.ExpectCommit()
			},
			wantIDs: []int64{10, 11},
		},
		{
			name:      "nothing to insert",
			questions: nil,
			setupMock: func(mock sqlmock.Sqlmock) {},
		},
		{
			name: "insert failure rolls back the whole batch",
			questions: []*Question{
				{Category: "Tech", Difficulty: 2, Question: "Q1?", Answer: "A1"},
				{Category: "Tech", Difficulty: 3, Question: "Q2?", Answer: "A2"},
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(insertQuery)).
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectExec(regexp.QuoteMeta(insertQuery)).
					WillReturnError(fmt.Errorf("disk I/O error"))
				mock.ExpectRollback()
			},
			wantErr: true,
		},
		{
			name: "begin failure",
			questions: []*Question{
				{Category: "Tech", Difficulty: 2, Question: "Q1?", Answer: "A1"},
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(fmt.Errorf("database is locked"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			tt.setupMock(mock)

			err := repo.BatchCreate(context.Background(), tt.questions)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				for i, q := range tt.questions {
					assert.Equal(t, tt.wantIDs[i], q.ID)
				}
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBQuestionRepository_FindAll(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + columns + " FROM questions ORDER BY id")).
		WillReturnRows(sqlmock.NewRows(questionColumns).
			AddRow(1, "Tech", 2, "Q1?", "A1", `["x","y"]`).
			AddRow(2, "History", 1, "Year?", "1919", nil).
			AddRow(3, "History", 3, "Who?", "Saad", ""))

	got, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Question{
		{ID: 1, Category: "Tech", Difficulty: 2, Question: "Q1?", Answer: "A1", Options: Options{"x", "y"}},
		{ID: 2, Category: "History", Difficulty: 1, Question: "Year?", Answer: "1919", Options: Options{}},
		{ID: 3, Category: "History", Difficulty: 3, Question: "Who?", Answer: "Saad", Options: Options{}},
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBQuestionRepository_FindByCategory(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + columns + " FROM questions WHERE category = ? ORDER BY id")).
		WithArgs("Tech").
		WillReturnRows(sqlmock.NewRows(questionColumns).
			AddRow(1, "Tech", 2, "Q1?", "A1", `["x"]`))

	got, err := repo.FindByCategory(context.Background(), "Tech")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, Options{"x"}, got[0].Options)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBQuestionRepository_FindByCategoryAndDifficulty(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantLen   int
		wantErr   bool
	}{
		{
			name: "returns the matching pool",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT "+columns+" FROM questions WHERE category = ? AND difficulty = ? ORDER BY id")).
					WithArgs("Tech", 3).
					WillReturnRows(sqlmock.NewRows(questionColumns).
						AddRow(4, "Tech", 3, "Q4?", "A4", nil).
						AddRow(5, "Tech", 3, "Q5?", "A5", nil))
			},
			wantLen: 2,
		},
		{
			name: "empty pool",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT "+columns+" FROM questions WHERE category = ? AND difficulty = ? ORDER BY id")).
					WithArgs("Tech", 3).
					WillReturnRows(sqlmock.NewRows(questionColumns))
			},
			wantLen: 0,
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT "+columns+" FROM questions WHERE category = ? AND difficulty = ? ORDER BY id")).
					WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			tt.setupMock(mock)

			got, err := repo.FindByCategoryAndDifficulty(context.Background(), "Tech", 3)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Len(t, got, tt.wantLen)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBQuestionRepository_FindByID(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      *Question
		wantErr   bool
	}{
		{
			name: "found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT " + columns + " FROM questions WHERE id = ?")).
					WithArgs(int64(7)).
					WillReturnRows(sqlmock.NewRows(questionColumns).
						AddRow(7, "Tech", 2, "Q1?", "A1", `["x","y"]`))
			},
			want: &Question{ID: 7, Category: "Tech", Difficulty: 2, Question: "Q1?", Answer: "A1", Options: Options{"x", "y"}},
		},
		{
			name: "not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT " + columns + " FROM questions WHERE id = ?")).
					WithArgs(int64(7)).
					WillReturnRows(sqlmock.NewRows(questionColumns))
			},
			want: nil,
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT " + columns + " FROM questions WHERE id = ?")).
					WithArgs(int64(7)).
					WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			tt.setupMock(mock)

			got, err := repo.FindByID(context.Background(), 7)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBQuestionRepository_Categories(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT category FROM questions ORDER BY category")).
		WillReturnRows(sqlmock.NewRows([]string{"category"}).
			AddRow("History").
			AddRow("Tech"))

	got, err := repo.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"History", "Tech"}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBQuestionRepository_Create(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantID    int64
		wantErr   bool
	}{
		{
			name: "assigns the generated ID",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(insertQuery)).
					WithArgs("Tech", 1, "Q?", "A", `[]`).
					WillReturnResult(sqlmock.NewResult(42, 1))
			},
			wantID: 42,
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(insertQuery)).
					WillReturnError(fmt.Errorf("constraint failed"))
			},
			wantErr: true,
		},
		{
			name: "last insert id unavailable",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(insertQuery)).
					WillReturnResult(sqlmock.NewErrorResult(fmt.Errorf("not supported")))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			tt.setupMock(mock)

			q := &Question{Category: "Tech", Difficulty: 1, Question: "Q?", Answer: "A"}
			err := repo.Create(context.Background(), q)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, q.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBQuestionRepository_Update(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE questions SET category = ?, difficulty = ?, question = ?, answer = ?, options = ? WHERE id = ?")).
		WithArgs("Tech", 4, "Q?", "A", `["a","b"]`, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), &Question{
		ID: 3, Category: "Tech", Difficulty: 4, Question: "Q?", Answer: "A", Options: Options{"a", "b"},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBQuestionRepository_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   bool
	}{
		{
			name: "deletes the row",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM questions WHERE id = ?")).
					WithArgs(int64(3)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM questions WHERE id = ?")).
					WithArgs(int64(3)).
					WillReturnError(fmt.Errorf("database is locked"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			tt.setupMock(mock)

			err := repo.Delete(context.Background(), 3)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBQuestionRepository_CountByCategory(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT category, COUNT(*) AS count FROM questions GROUP BY category ORDER BY category")).
		WillReturnRows(sqlmock.NewRows([]string{"category", "count"}).
			AddRow("History", 12).
			AddRow("Tech", 30))

	got, err := repo.CountByCategory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []CategoryCount{
		{Category: "History", Count: 12},
		{Category: "Tech", Count: 30},
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBQuestionRepository_MergeCategories(t *testing.T) {
	const mergeQuery = "UPDATE questions SET category = ? WHERE category = ?"
	merges := []CategoryMerge{
		{From: "ثقافة عامة", To: "معلومات عامة"},
		{From: "تكنولوجيا", To: "تقنية"},
	}

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      []MergeResult
		wantErr   bool
	}{
		{
			name: "all merges commit together",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(mergeQuery)).
					WithArgs("معلومات عامة", "ثقافة عامة").
					WillReturnResult(sqlmock.NewResult(0, 5))
				mock.ExpectExec(regexp.QuoteMeta(mergeQuery)).
					WithArgs("تقنية", "تكنولوجيا").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			},
			want: []MergeResult{
				{CategoryMerge: merges[0], Moved: 5},
				{CategoryMerge: merges[1], Moved: 0},
			},
		},
		{
			name: "second merge fails and nothing is committed",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(mergeQuery)).
					WithArgs("معلومات عامة", "ثقافة عامة").
					WillReturnResult(sqlmock.NewResult(0, 5))
				mock.ExpectExec(regexp.QuoteMeta(mergeQuery)).
					WithArgs("تقنية", "تكنولوجيا").
					WillReturnError(fmt.Errorf("database is locked"))
				mock.ExpectRollback()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			tt.setupMock(mock)

			got, err := repo.MergeCategories(context.Background(), merges)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
