package repository

import (
	"context"
	"strings"

	"github.com/lshigami/trivia/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(ctx context.Context, question *model.Question) error
	FindByID(ctx context.Context, id uint) (*model.Question, error)
	FindAll(ctx context.Context) ([]model.Question, error)
	FindByCategory(ctx context.Context, categoryID uint) ([]model.Question, error)
	Search(ctx context.Context, term string) ([]model.Question, error)
	Delete(ctx context.Context, id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

func (r *questionRepository) FindByID(ctx context.Context, id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.WithContext(ctx).First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindAll(ctx context.Context) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindByCategory(ctx context.Context, categoryID uint) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.WithContext(ctx).Where("category = ?", categoryID).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search matches term anywhere in the question text, ignoring case. % and _
// in term are matched literally.
// LOWER/LIKE instead of ILIKE so the query also runs on sqlite.
func (r *questionRepository) Search(ctx context.Context, term string) ([]model.Question, error) {
	var questions []model.Question
	pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
	if err := r.db.WithContext(ctx).Where(`LOWER(question) LIKE ? ESCAPE '\'`, pattern).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Question{}, id).Error
}
