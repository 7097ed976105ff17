package service

import (
	"context"
	"fmt"

	"github.com/lshigami/trivia/internal/apperrors"
	"github.com/lshigami/trivia/internal/dto"
	"github.com/lshigami/trivia/internal/model"
	"github.com/lshigami/trivia/internal/repository"
	"github.com/rs/zerolog/log"
)

// AllCategories is the quiz selector that draws from every category.
const AllCategories = 0

type QuizService interface {
	NextQuestion(ctx context.Context, req dto.QuizRequest) (*dto.QuizResponse, error)
}

type quizService struct {
	questionRepo repository.QuestionRepository
	categoryRepo repository.CategoryRepository
}

func NewQuizService(questionRepo repository.QuestionRepository, categoryRepo repository.CategoryRepository) QuizService {
	return &quizService{questionRepo: questionRepo, categoryRepo: categoryRepo}
}

func (s *quizService) NextQuestion(ctx context.Context, req dto.QuizRequest) (*dto.QuizResponse, error) {
	if req.QuizCategory == nil || req.QuizCategory.ID == nil {
		return nil, fmt.Errorf("%w: quiz_category.id is required", apperrors.ErrInternal)
	}
	categoryID := req.QuizCategory.ID.Int()
	if categoryID < 0 {
		return nil, fmt.Errorf("%w: invalid category id %d", apperrors.ErrBadRequest, categoryID)
	}

	candidates, err := s.candidates(ctx, uint(categoryID))
	if err != nil {
		return nil, err
	}

	next := firstUnasked(candidates, req.PreviousQuestions)
	if next == nil {
		log.Debug().Int("categoryID", categoryID).Int("previous", len(req.PreviousQuestions)).Msg("Quiz pool exhausted")
		return &dto.QuizResponse{Success: true, Question: nil}, nil
	}

	resp, err := toQuestionResponse(next)
	if err != nil {
		return nil, err
	}
	return &dto.QuizResponse{Success: true, Question: &resp}, nil
}

func (s *quizService) candidates(ctx context.Context, categoryID uint) ([]model.Question, error) {
	if categoryID == AllCategories {
		questions, err := s.questionRepo.FindAll(ctx)
		if err != nil {
			log.Error().Err(err).Msg("Failed to get quiz candidates")
			return nil, fmt.Errorf("error fetching quiz questions: %w", err)
		}
		return questions, nil
	}

	exists, err := s.categoryRepo.Exists(ctx, categoryID)
	if err != nil {
		log.Error().Err(err).Uint("categoryID", categoryID).Msg("Failed to check category existence")
		return nil, fmt.Errorf("error fetching category %d: %w", categoryID, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: invalid category id %d", apperrors.ErrBadRequest, categoryID)
	}

	questions, err := s.questionRepo.FindByCategory(ctx, categoryID)
	if err != nil {
		log.Error().Err(err).Uint("categoryID", categoryID).Msg("Failed to get quiz candidates")
		return nil, fmt.Errorf("error fetching quiz questions for category %d: %w", categoryID, err)
	}
	return questions, nil
}

// firstUnasked returns the first candidate, in the given order, whose id is
// not in previous.
func firstUnasked(candidates []model.Question, previous []uint) *model.Question {
	seen := make(map[uint]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}
	for i := range candidates {
		if _, ok := seen[candidates[i].ID]; !ok {
			return &candidates[i]
		}
	}
	return nil
}
