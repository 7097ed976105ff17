package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lshigami/trivia/internal/apperrors"
	"github.com/lshigami/trivia/internal/dto"
	"github.com/lshigami/trivia/internal/model"
	"github.com/lshigami/trivia/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type QuestionService interface {
	GetQuestions(ctx context.Context, page int) (*dto.QuestionPageResponse, error)
	GetQuestion(ctx context.Context, id uint) (*dto.QuestionDetailResponse, error)
	CreateQuestion(ctx context.Context, req dto.CreateQuestionRequest) (*model.Question, error)
	DeleteQuestion(ctx context.Context, id uint) error
	SearchQuestions(ctx context.Context, term string) (*dto.QuestionListResponse, error)
	GetQuestionsByCategory(ctx context.Context, categoryID uint) (*dto.QuestionListResponse, error)
}

type questionService struct {
	repo         repository.QuestionRepository
	categoryRepo repository.CategoryRepository
}

func NewQuestionService(repo repository.QuestionRepository, categoryRepo repository.CategoryRepository) QuestionService {
	return &questionService{repo: repo, categoryRepo: categoryRepo}
}

func (s *questionService) GetQuestions(ctx context.Context, page int) (*dto.QuestionPageResponse, error) {
	questions, err := s.repo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get questions from repository")
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get categories from repository")
		return nil, fmt.Errorf("error fetching categories: %w", err)
	}

	current := paginate(questions, page, QuestionsPerPage)
	if len(current) == 0 {
		return nil, fmt.Errorf("%w: no questions on page %d", apperrors.ErrNotFound, page)
	}
	formatted, err := toQuestionResponses(current)
	if err != nil {
		return nil, err
	}

	return &dto.QuestionPageResponse{
		Success:         true,
		Questions:       formatted,
		TotalQuestions:  len(questions),
		Categories:      toCategoryMap(categories),
		CurrentCategory: nil,
	}, nil
}

func (s *questionService) GetQuestion(ctx context.Context, id uint) (*dto.QuestionDetailResponse, error) {
	question, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: question %d does not exist", apperrors.ErrNotFound, id)
	}
	if err != nil {
		log.Error().Err(err).Uint("questionID", id).Msg("Failed to get question from repository")
		return nil, fmt.Errorf("error fetching question %d: %w", id, err)
	}
	resp, err := toQuestionResponse(question)
	if err != nil {
		return nil, err
	}
	return &dto.QuestionDetailResponse{Success: true, Question: resp}, nil
}

func (s *questionService) CreateQuestion(ctx context.Context, req dto.CreateQuestionRequest) (*model.Question, error) {
	question := model.Question{
		Question:   strings.TrimSpace(req.Question),
		Answer:     strings.TrimSpace(req.Answer),
		Category:   uint(max(req.Category.Int(), 0)),
		Difficulty: req.Difficulty.Int(),
	}
	if question.Question == "" || question.Answer == "" || question.Category == 0 || question.Difficulty <= 0 {
		return nil, fmt.Errorf("%w: question, answer, category and difficulty are required", apperrors.ErrBadRequest)
	}

	exists, err := s.categoryRepo.Exists(ctx, question.Category)
	if err != nil {
		log.Error().Err(err).Uint("categoryID", question.Category).Msg("Failed to check category existence")
		return nil, fmt.Errorf("%w: could not verify category %d", apperrors.ErrUnprocessable, question.Category)
	}
	if !exists {
		log.Warn().Uint("categoryID", question.Category).Msg("Invalid category provided for question creation")
		return nil, fmt.Errorf("%w: invalid category id %d", apperrors.ErrBadRequest, question.Category)
	}

	if err := s.repo.Create(ctx, &question); err != nil {
		log.Error().Err(err).Msg("Failed to create question in service")
		return nil, fmt.Errorf("%w: could not create question", apperrors.ErrUnprocessable)
	}
	log.Info().Uint("questionID", question.ID).Uint("categoryID", question.Category).Msg("Question created")
	return &question, nil
}

func (s *questionService) DeleteQuestion(ctx context.Context, id uint) error {
	_, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: question %d does not exist", apperrors.ErrNotFound, id)
	}
	if err != nil {
		log.Error().Err(err).Uint("questionID", id).Msg("Failed to look up question for deletion")
		return fmt.Errorf("%w: could not delete question %d", apperrors.ErrUnprocessable, id)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Uint("questionID", id).Msg("Failed to delete question")
		return fmt.Errorf("%w: could not delete question %d", apperrors.ErrUnprocessable, id)
	}
	log.Info().Uint("questionID", id).Msg("Question deleted")
	return nil
}

func (s *questionService) SearchQuestions(ctx context.Context, term string) (*dto.QuestionListResponse, error) {
	questions, err := s.repo.Search(ctx, term)
	if err != nil {
		log.Error().Err(err).Str("term", term).Msg("Failed to search questions")
		return nil, fmt.Errorf("%w: could not search questions", apperrors.ErrUnprocessable)
	}
	formatted, err := toQuestionResponses(questions)
	if err != nil {
		return nil, err
	}
	return &dto.QuestionListResponse{
		Success:         true,
		Questions:       formatted,
		TotalQuestions:  len(questions),
		CurrentCategory: nil,
	}, nil
}

func (s *questionService) GetQuestionsByCategory(ctx context.Context, categoryID uint) (*dto.QuestionListResponse, error) {
	exists, err := s.categoryRepo.Exists(ctx, categoryID)
	if err != nil {
		log.Error().Err(err).Uint("categoryID", categoryID).Msg("Failed to check category existence")
		return nil, fmt.Errorf("error fetching category %d: %w", categoryID, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: invalid category id %d", apperrors.ErrBadRequest, categoryID)
	}

	questions, err := s.repo.FindByCategory(ctx, categoryID)
	if err != nil {
		log.Error().Err(err).Uint("categoryID", categoryID).Msg("Failed to get questions by category")
		return nil, fmt.Errorf("%w: could not fetch questions for category %d", apperrors.ErrUnprocessable, categoryID)
	}
	formatted, err := toQuestionResponses(questions)
	if err != nil {
		return nil, err
	}
	current := categoryID
	return &dto.QuestionListResponse{
		Success:         true,
		Questions:       formatted,
		TotalQuestions:  len(questions),
		CurrentCategory: &current,
	}, nil
}
