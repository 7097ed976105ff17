package controller

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/trivia/internal/apperrors"
	"github.com/lshigami/trivia/internal/dto"
	"github.com/lshigami/trivia/internal/service"
	"github.com/rs/zerolog/log"
)

type Controller struct {
	categorySvc  service.CategoryService
	questionSvc  service.QuestionService
	quizSvc      service.QuizService
	generatorSvc service.QuestionGeneratorService
}

func NewController(
	cSvc service.CategoryService,
	qSvc service.QuestionService,
	quizSvc service.QuizService,
	gSvc service.QuestionGeneratorService,
) *Controller {
	return &Controller{
		categorySvc:  cSvc,
		questionSvc:  qSvc,
		quizSvc:      quizSvc,
		generatorSvc: gSvc,
	}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	router.HandleMethodNotAllowed = true
	router.NoRoute(ctrl.NotFoundHandler)
	router.NoMethod(ctrl.MethodNotAllowedHandler)

	categories := router.Group("/categories")
	categories.GET("", ctrl.GetCategoriesHandler)
	categories.GET("/:id/questions", ctrl.GetQuestionsByCategoryHandler)
	categories.POST("/:id/questions/generate", ctrl.GenerateQuestionHandler)

	questions := router.Group("/questions")
	questions.GET("", ctrl.GetQuestionsHandler)
	questions.POST("", ctrl.CreateQuestionHandler)
	questions.POST("/search", ctrl.SearchQuestionsHandler)
	// Static segment so other verbs on /questions/search are not parsed as an id.
	questions.GET("/search", ctrl.MethodNotAllowedHandler)
	questions.DELETE("/search", ctrl.MethodNotAllowedHandler)
	questions.GET("/:id", ctrl.GetQuestionHandler)
	questions.DELETE("/:id", ctrl.DeleteQuestionHandler)

	router.POST("/quizzes", ctrl.NextQuizQuestionHandler)
}

// --- Category Handlers ---

// GetCategoriesHandler godoc
// @Summary List categories
// @Description Map of every category id to its type, plus the number of categories
// @Tags categories
// @Produce json
// @Success 200 {object} dto.CategoryListResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /categories [get]
func (ctrl *Controller) GetCategoriesHandler(c *gin.Context) {
	resp, err := ctrl.categorySvc.GetCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetQuestionsByCategoryHandler godoc
// @Summary List questions of a category
// @Description All questions of the category ordered by id
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} dto.QuestionListResponse
// @Failure 400 {object} dto.ErrorResponse "Unknown or malformed category id"
// @Failure 422 {object} dto.ErrorResponse "Questions could not be read"
// @Router /categories/{id}/questions [get]
func (ctrl *Controller) GetQuestionsByCategoryHandler(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	resp, err := ctrl.questionSvc.GetQuestionsByCategory(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GenerateQuestionHandler godoc
// @Summary Generate a question for a category
// @Description Drafts a question with Gemini and stores it in the category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param request body dto.GenerateQuestionRequest false "Difficulty from 1 to 5"
// @Success 200 {object} dto.GeneratedQuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Unknown category or invalid difficulty"
// @Failure 422 {object} dto.ErrorResponse "Generation unavailable or failed"
// @Router /categories/{id}/questions/generate [post]
func (ctrl *Controller) GenerateQuestionHandler(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.GenerateQuestionRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	resp, err := ctrl.generatorSvc.GenerateQuestion(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// --- Question Handlers ---

// GetQuestionsHandler godoc
// @Summary List questions, ten per page
// @Description Page of questions ordered by id, the total count and every category
// @Tags questions
// @Produce json
// @Param page query int false "Page number, defaults to 1"
// @Success 200 {object} dto.QuestionPageResponse
// @Failure 404 {object} dto.ErrorResponse "Page has no questions"
// @Router /questions [get]
func (ctrl *Controller) GetQuestionsHandler(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}
	resp, err := ctrl.questionSvc.GetQuestions(c.Request.Context(), page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetQuestionHandler godoc
// @Summary Get a question by ID
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionDetailResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{id} [get]
func (ctrl *Controller) GetQuestionHandler(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	resp, err := ctrl.questionSvc.GetQuestion(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateQuestionHandler godoc
// @Summary Create a question
// @Tags questions
// @Accept json
// @Produce json
// @Param question body dto.CreateQuestionRequest true "Question, answer, category and difficulty"
// @Success 200 {object} dto.QuestionCreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Missing or empty field, or unknown category"
// @Failure 422 {object} dto.ErrorResponse "Question could not be stored"
// @Router /questions [post]
func (ctrl *Controller) CreateQuestionHandler(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CreateQuestionRequest")
		respondError(c, badRequest(err))
		return
	}
	question, err := ctrl.questionSvc.CreateQuestion(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.QuestionCreatedResponse{Success: true, Created: question.ID})
}

// DeleteQuestionHandler godoc
// @Summary Delete a question
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionDeletedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 422 {object} dto.ErrorResponse "Question could not be deleted"
// @Router /questions/{id} [delete]
func (ctrl *Controller) DeleteQuestionHandler(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.questionSvc.DeleteQuestion(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.QuestionDeletedResponse{Success: true, Deleted: id})
}

// SearchQuestionsHandler godoc
// @Summary Search questions
// @Description Case-insensitive substring match on the question text
// @Tags questions
// @Accept json
// @Produce json
// @Param search body dto.SearchQuestionsRequest true "Search term"
// @Success 200 {object} dto.QuestionListResponse
// @Failure 400 {object} dto.ErrorResponse "Malformed body"
// @Failure 422 {object} dto.ErrorResponse "Search failed"
// @Router /questions/search [post]
func (ctrl *Controller) SearchQuestionsHandler(c *gin.Context) {
	var req dto.SearchQuestionsRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	term := ""
	if req.SearchTerm != nil {
		term = *req.SearchTerm
	}
	resp, err := ctrl.questionSvc.SearchQuestions(c.Request.Context(), term)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// --- Quiz Handlers ---

// NextQuizQuestionHandler godoc
// @Summary Next quiz question
// @Description First question of the selected category (0 = all) that is not in previous_questions, or null
// @Tags quizzes
// @Accept json
// @Produce json
// @Param quiz body dto.QuizRequest true "Previous question ids and category selector"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse "Malformed body or unknown category"
// @Failure 500 {object} dto.ErrorResponse "Missing category selector"
// @Router /quizzes [post]
func (ctrl *Controller) NextQuizQuestionHandler(c *gin.Context) {
	var req dto.QuizRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	resp, err := ctrl.quizSvc.NextQuestion(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// --- Fallback Handlers ---

func (ctrl *Controller) NotFoundHandler(c *gin.Context) {
	respondError(c, apperrors.ErrNotFound)
}

func (ctrl *Controller) MethodNotAllowedHandler(c *gin.Context) {
	respondError(c, apperrors.ErrMethodNotAllowed)
}

// --- helpers ---

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		respondError(c, badRequest(errors.New("invalid "+name+" format")))
		return 0, false
	}
	return uint(id), true
}

// bindOptionalJSON binds the request body into obj, treating an empty body as
// an empty object. It writes a 400 and returns false on malformed input.
func bindOptionalJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		log.Warn().Err(err).Str("path", c.FullPath()).Msg("Failed to bind request body")
		respondError(c, badRequest(err))
		return false
	}
	return true
}
