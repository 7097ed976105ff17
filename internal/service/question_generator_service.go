package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/lshigami/trivia/internal/apperrors"
	"github.com/lshigami/trivia/internal/dto"
	"github.com/lshigami/trivia/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const defaultGeneratedDifficulty = 1

type QuestionGeneratorService interface {
	GenerateQuestion(ctx context.Context, categoryID uint, req dto.GenerateQuestionRequest) (*dto.GeneratedQuestionResponse, error)
}

type questionGeneratorService struct {
	drafter      QuestionDrafter
	categoryRepo repository.CategoryRepository
	questionSvc  QuestionService
}

func NewQuestionGeneratorService(drafter QuestionDrafter, categoryRepo repository.CategoryRepository, questionSvc QuestionService) QuestionGeneratorService {
	return &questionGeneratorService{drafter: drafter, categoryRepo: categoryRepo, questionSvc: questionSvc}
}

func (s *questionGeneratorService) GenerateQuestion(ctx context.Context, categoryID uint, req dto.GenerateQuestionRequest) (*dto.GeneratedQuestionResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: invalid category id %d", apperrors.ErrBadRequest, categoryID)
	}
	if err != nil {
		log.Error().Err(err).Uint("categoryID", categoryID).Msg("Failed to get category for generation")
		return nil, fmt.Errorf("error fetching category %d: %w", categoryID, err)
	}

	difficulty := req.Difficulty
	if difficulty == 0 {
		difficulty = defaultGeneratedDifficulty
	}

	draft, err := s.drafter.DraftQuestion(ctx, category.Type, difficulty)
	if err != nil {
		log.Error().Err(err).Str("category", category.Type).Msg("Question drafting failed")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnprocessable, err)
	}

	question, err := s.questionSvc.CreateQuestion(ctx, dto.CreateQuestionRequest{
		Question:   draft.Question,
		Answer:     draft.Answer,
		Category:   dto.FlexInt(category.ID),
		Difficulty: dto.FlexInt(difficulty),
	})
	if err != nil {
		return nil, err
	}

	resp, err := toQuestionResponse(question)
	if err != nil {
		return nil, err
	}
	return &dto.GeneratedQuestionResponse{Success: true, Created: question.ID, Question: resp}, nil
}
