package dto

// QuestionResponse is the formatted shape of a question in every response.
type QuestionResponse struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   uint   `json:"category"`
	Difficulty int    `json:"difficulty"`
}

type CategoryListResponse struct {
	Success         bool            `json:"success"`
	Categories      map[uint]string `json:"categories"`
	TotalCategories int             `json:"total_categories"`
}

// QuestionPageResponse is one page of GET /questions.
type QuestionPageResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	Categories      map[uint]string    `json:"categories"`
	CurrentCategory *uint              `json:"current_category"`
}

// QuestionListResponse is returned by search and by-category listing.
type QuestionListResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	CurrentCategory *uint              `json:"current_category"`
}

type QuestionDetailResponse struct {
	Success  bool             `json:"success"`
	Question QuestionResponse `json:"question"`
}

type QuestionCreatedResponse struct {
	Success bool `json:"success"`
	Created uint `json:"created"`
}

type QuestionDeletedResponse struct {
	Success bool `json:"success"`
	Deleted uint `json:"deleted"`
}

type GeneratedQuestionResponse struct {
	Success  bool             `json:"success"`
	Created  uint             `json:"created"`
	Question QuestionResponse `json:"question"`
}

// QuizResponse carries the next question, or null once the pool is exhausted.
type QuizResponse struct {
	Success  bool              `json:"success"`
	Question *QuestionResponse `json:"question"`
}

// ErrorResponse is the envelope for every non-2xx response.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}
