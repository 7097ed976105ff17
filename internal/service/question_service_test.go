package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/lshigami/trivia/internal/apperrors"
	"github.com/lshigami/trivia/internal/dto"
	"github.com/lshigami/trivia/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func manyQuestions(n int) *fakeQuestionRepo {
	qs := make([]model.Question, 0, n)
	for i := 1; i <= n; i++ {
		qs = append(qs, model.Question{ID: uint(i), Question: fmt.Sprintf("Question %d", i), Answer: "A", Category: 1, Difficulty: 1})
	}
	return newFakeQuestionRepo(qs...)
}

func TestGetQuestionsPaginates(t *testing.T) {
	svc := NewQuestionService(manyQuestions(23), triviaCategories())
	ctx := context.Background()

	page1, err := svc.GetQuestions(ctx, 1)
	require.NoError(t, err)
	assert.True(t, page1.Success)
	assert.Len(t, page1.Questions, 10)
	assert.Equal(t, 23, page1.TotalQuestions)
	assert.Equal(t, uint(1), page1.Questions[0].ID)
	assert.Equal(t, map[uint]string{1: "Science", 2: "Art"}, page1.Categories)
	assert.Nil(t, page1.CurrentCategory)

	page3, err := svc.GetQuestions(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, page3.Questions, 3)
	assert.Equal(t, uint(21), page3.Questions[0].ID)
	assert.Equal(t, 23, page3.TotalQuestions)
}

func TestGetQuestionsEmptyPageIsNotFound(t *testing.T) {
	ctx := context.Background()

	_, err := NewQuestionService(manyQuestions(23), triviaCategories()).GetQuestions(ctx, 4)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = NewQuestionService(newFakeQuestionRepo(), triviaCategories()).GetQuestions(ctx, 1)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetQuestionsStorageFailureIsUnclassified(t *testing.T) {
	repo := triviaQuestions()
	repo.err = errors.New("connection refused")

	_, err := NewQuestionService(repo, triviaCategories()).GetQuestions(context.Background(), 1)
	require.Error(t, err)
	assert.False(t, apperrors.IsClassified(err))
}

func TestGetQuestion(t *testing.T) {
	svc := NewQuestionService(triviaQuestions(), triviaCategories())

	got, err := svc.GetQuestion(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, dto.QuestionResponse{ID: 11, Question: "What is the symbol for gold?", Answer: "Au", Category: 1, Difficulty: 2}, got.Question)

	_, err = svc.GetQuestion(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateQuestion(t *testing.T) {
	repo := triviaQuestions()
	svc := NewQuestionService(repo, triviaCategories())

	q, err := svc.CreateQuestion(context.Background(), dto.CreateQuestionRequest{
		Question: "  What is the capital of India? ", Answer: "New Delhi", Category: 2, Difficulty: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(13), q.ID)
	assert.Equal(t, "What is the capital of India?", q.Question)

	stored, err := repo.FindByID(context.Background(), q.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(2), stored.Category)
}

func TestCreateQuestionRejectsEmptyFields(t *testing.T) {
	valid := dto.CreateQuestionRequest{Question: "Q?", Answer: "A", Category: 1, Difficulty: 1}
	tests := []struct {
		name   string
		mutate func(r *dto.CreateQuestionRequest)
	}{
		{"empty question", func(r *dto.CreateQuestionRequest) { r.Question = "" }},
		{"blank answer", func(r *dto.CreateQuestionRequest) { r.Answer = "   " }},
		{"zero category", func(r *dto.CreateQuestionRequest) { r.Category = 0 }},
		{"negative category", func(r *dto.CreateQuestionRequest) { r.Category = -1 }},
		{"zero difficulty", func(r *dto.CreateQuestionRequest) { r.Difficulty = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := triviaQuestions()
			svc := NewQuestionService(repo, triviaCategories())
			req := valid
			tc.mutate(&req)

			_, err := svc.CreateQuestion(context.Background(), req)
			assert.ErrorIs(t, err, apperrors.ErrBadRequest)
			assert.Len(t, repo.questions, 3, "nothing may be persisted")
		})
	}
}

func TestCreateQuestionUnknownCategory(t *testing.T) {
	repo := triviaQuestions()
	svc := NewQuestionService(repo, triviaCategories())

	_, err := svc.CreateQuestion(context.Background(), dto.CreateQuestionRequest{Question: "Q?", Answer: "A", Category: 7, Difficulty: 1})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	assert.Len(t, repo.questions, 3)
}

func TestCreateQuestionPersistFailureIsUnprocessable(t *testing.T) {
	repo := triviaQuestions()
	repo.err = errors.New("disk full")

	_, err := NewQuestionService(repo, triviaCategories()).CreateQuestion(context.Background(),
		dto.CreateQuestionRequest{Question: "Q?", Answer: "A", Category: 1, Difficulty: 1})
	assert.ErrorIs(t, err, apperrors.ErrUnprocessable)
}

func TestDeleteQuestion(t *testing.T) {
	repo := triviaQuestions()
	svc := NewQuestionService(repo, triviaCategories())
	ctx := context.Background()

	require.NoError(t, svc.DeleteQuestion(ctx, 12))
	_, err := repo.FindByID(ctx, 12)
	assert.Error(t, err)

	err = svc.DeleteQuestion(ctx, 12)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteQuestionFailureIsUnprocessable(t *testing.T) {
	repo := triviaQuestions()
	repo.deleteErr = errors.New("constraint violation")

	err := NewQuestionService(repo, triviaCategories()).DeleteQuestion(context.Background(), 10)
	assert.ErrorIs(t, err, apperrors.ErrUnprocessable)
}

func TestSearchQuestions(t *testing.T) {
	svc := NewQuestionService(triviaQuestions(), triviaCategories())
	ctx := context.Background()

	one, err := svc.SearchQuestions(ctx, "GOLD")
	require.NoError(t, err)
	require.Len(t, one.Questions, 1)
	assert.Equal(t, 1, one.TotalQuestions)
	assert.Equal(t, uint(11), one.Questions[0].ID)
	assert.Nil(t, one.CurrentCategory)

	none, err := svc.SearchQuestions(ctx, "platypus")
	require.NoError(t, err)
	assert.NotNil(t, none.Questions)
	assert.Empty(t, none.Questions)
	assert.Equal(t, 0, none.TotalQuestions)

	all, err := svc.SearchQuestions(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 3, all.TotalQuestions)
}

func TestSearchQuestionsFailureIsUnprocessable(t *testing.T) {
	repo := triviaQuestions()
	repo.err = errors.New("timeout")

	_, err := NewQuestionService(repo, triviaCategories()).SearchQuestions(context.Background(), "x")
	assert.ErrorIs(t, err, apperrors.ErrUnprocessable)
}

func TestGetQuestionsByCategory(t *testing.T) {
	svc := NewQuestionService(triviaQuestions(), triviaCategories())
	ctx := context.Background()

	science, err := svc.GetQuestionsByCategory(ctx, 1)
	require.NoError(t, err)
	require.Len(t, science.Questions, 2)
	assert.Equal(t, 2, science.TotalQuestions)
	for _, q := range science.Questions {
		assert.Equal(t, uint(1), q.Category)
	}
	require.NotNil(t, science.CurrentCategory)
	assert.Equal(t, uint(1), *science.CurrentCategory)

	_, err = svc.GetQuestionsByCategory(ctx, 42)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestGetQuestionsByCategoryFailureIsUnprocessable(t *testing.T) {
	repo := triviaQuestions()
	repo.err = errors.New("timeout")

	_, err := NewQuestionService(repo, triviaCategories()).GetQuestionsByCategory(context.Background(), 1)
	assert.ErrorIs(t, err, apperrors.ErrUnprocessable)
}

func TestGetCategories(t *testing.T) {
	got, err := NewCategoryService(triviaCategories()).GetCategories(context.Background())
	require.NoError(t, err)
	assert.True(t, got.Success)
	assert.Equal(t, 2, got.TotalCategories)
	assert.Equal(t, "Art", got.Categories[2])

	_, err = NewCategoryService(&fakeCategoryRepo{err: errors.New("down")}).GetCategories(context.Background())
	assert.Error(t, err)
}
