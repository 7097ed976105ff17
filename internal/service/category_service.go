package service

import (
	"context"
	"fmt"

	"github.com/lshigami/trivia/internal/dto"
	"github.com/lshigami/trivia/internal/repository"
	"github.com/rs/zerolog/log"
)

type CategoryService interface {
	GetCategories(ctx context.Context) (*dto.CategoryListResponse, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) GetCategories(ctx context.Context) (*dto.CategoryListResponse, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get categories from repository")
		return nil, fmt.Errorf("error fetching categories: %w", err)
	}
	return &dto.CategoryListResponse{
		Success:         true,
		Categories:      toCategoryMap(categories),
		TotalCategories: len(categories),
	}, nil
}
