package dto

// CreateQuestionRequest is the body of POST /questions.
type CreateQuestionRequest struct {
	Question   string  `json:"question" binding:"required"`
	Answer     string  `json:"answer" binding:"required"`
	Category   FlexInt `json:"category" binding:"required,min=1"`
	Difficulty FlexInt `json:"difficulty" binding:"required,min=1"`
}

// SearchQuestionsRequest is the body of POST /questions/search. A missing or
// null searchTerm matches every question.
type SearchQuestionsRequest struct {
	SearchTerm *string `json:"searchTerm"`
}

// QuizCategory selects the pool a quiz draws from; ID 0 means every category.
type QuizCategory struct {
	Type string   `json:"type"`
	ID   *FlexInt `json:"id"`
}

// QuizRequest is the body of POST /quizzes.
type QuizRequest struct {
	PreviousQuestions []uint        `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

// GenerateQuestionRequest is the optional body of POST /categories/{id}/questions/generate.
type GenerateQuestionRequest struct {
	Difficulty int `json:"difficulty" binding:"omitempty,min=1,max=5"`
}
