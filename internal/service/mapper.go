package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/trivia/internal/dto"
	"github.com/lshigami/trivia/internal/model"
)

func toQuestionResponse(question *model.Question) (dto.QuestionResponse, error) {
	var resp dto.QuestionResponse
	if err := copier.Copy(&resp, question); err != nil {
		return dto.QuestionResponse{}, fmt.Errorf("error preparing question response: %w", err)
	}
	return resp, nil
}

// toQuestionResponses never returns nil so an empty result encodes as [].
func toQuestionResponses(questions []model.Question) ([]dto.QuestionResponse, error) {
	resp := make([]dto.QuestionResponse, 0, len(questions))
	if len(questions) == 0 {
		return resp, nil
	}
	if err := copier.Copy(&resp, &questions); err != nil {
		return nil, fmt.Errorf("error preparing questions response: %w", err)
	}
	return resp, nil
}

func toCategoryMap(categories []model.Category) map[uint]string {
	out := make(map[uint]string, len(categories))
	for _, c := range categories {
		out[c.ID] = c.Type
	}
	return out
}
