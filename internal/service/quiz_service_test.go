package service

import (
	"context"
	"testing"

	"github.com/lshigami/trivia/internal/apperrors"
	"github.com/lshigami/trivia/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selector(id int) *dto.QuizCategory {
	v := dto.FlexInt(id)
	return &dto.QuizCategory{ID: &v}
}

func TestNextQuestionSkipsPreviousInCategory(t *testing.T) {
	svc := NewQuizService(triviaQuestions(), triviaCategories())

	got, err := svc.NextQuestion(context.Background(), dto.QuizRequest{
		PreviousQuestions: []uint{10},
		QuizCategory:      selector(1),
	})
	require.NoError(t, err)
	require.NotNil(t, got.Question)
	assert.Equal(t, uint(11), got.Question.ID)
}

func TestNextQuestionAllCategories(t *testing.T) {
	svc := NewQuizService(triviaQuestions(), triviaCategories())
	ctx := context.Background()

	first, err := svc.NextQuestion(ctx, dto.QuizRequest{QuizCategory: selector(AllCategories)})
	require.NoError(t, err)
	require.NotNil(t, first.Question)
	assert.Equal(t, uint(10), first.Question.ID)

	last, err := svc.NextQuestion(ctx, dto.QuizRequest{PreviousQuestions: []uint{10, 11}, QuizCategory: selector(AllCategories)})
	require.NoError(t, err)
	require.NotNil(t, last.Question)
	assert.Equal(t, uint(12), last.Question.ID)
}

func TestNextQuestionNeverReturnsPrevious(t *testing.T) {
	svc := NewQuizService(triviaQuestions(), triviaCategories())
	previous := []uint{}

	for i := 0; i < 4; i++ {
		got, err := svc.NextQuestion(context.Background(), dto.QuizRequest{PreviousQuestions: previous, QuizCategory: selector(0)})
		require.NoError(t, err)
		if got.Question == nil {
			break
		}
		assert.NotContains(t, previous, got.Question.ID)
		previous = append(previous, got.Question.ID)
	}
	assert.ElementsMatch(t, []uint{10, 11, 12}, previous)
}

func TestNextQuestionExhaustedReturnsNull(t *testing.T) {
	svc := NewQuizService(triviaQuestions(), triviaCategories())

	got, err := svc.NextQuestion(context.Background(), dto.QuizRequest{
		PreviousQuestions: []uint{10, 11},
		QuizCategory:      selector(1),
	})
	require.NoError(t, err)
	assert.True(t, got.Success)
	assert.Nil(t, got.Question)
}

func TestNextQuestionMalformedSelector(t *testing.T) {
	svc := NewQuizService(triviaQuestions(), triviaCategories())
	ctx := context.Background()

	_, err := svc.NextQuestion(ctx, dto.QuizRequest{})
	assert.ErrorIs(t, err, apperrors.ErrInternal)

	_, err = svc.NextQuestion(ctx, dto.QuizRequest{QuizCategory: &dto.QuizCategory{Type: "Science"}})
	assert.ErrorIs(t, err, apperrors.ErrInternal)
}

func TestNextQuestionUnknownCategory(t *testing.T) {
	svc := NewQuizService(triviaQuestions(), triviaCategories())

	_, err := svc.NextQuestion(context.Background(), dto.QuizRequest{QuizCategory: selector(9)})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	_, err = svc.NextQuestion(context.Background(), dto.QuizRequest{QuizCategory: selector(-1)})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}
