package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/quizhub-api/internal/handler/helper"
	"github.com/yourusername/quizhub-api/internal/middleware"
	"github.com/yourusername/quizhub-api/internal/service"
)

// QuestionHandler обрабатывает запросы, связанные с вопросами
type QuestionHandler struct {
	questionService *service.QuestionService
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// QuestionRequest представляет запрос на создание/обновление вопроса
type QuestionRequest struct {
	Text       string                `json:"text" binding:"required,max=500"`
	CategoryID uint                  `json:"category_id" binding:"required"`
	Options    []service.OptionInput `json:"options" binding:"required,min=2,dive"`
}

// CreateQuestion обрабатывает запрос на создание вопроса с вариантами
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helper.FailValidation(c, err.Error())
		return
	}

	question, err := h.questionService.CreateQuestion(req.Text, req.CategoryID, req.Options)
	if err != nil {
		helper.Fail(c, err)
		return
	}

	helper.OK(c, http.StatusCreated, "question created", question)
}

// GetQuestion возвращает вопрос с вариантами ответа
func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	id := middleware.UintParam(c, "questionID")

	question, err := h.questionService.GetQuestion(id)
	if err != nil {
		helper.Fail(c, err)
		return
	}

	helper.OK(c, http.StatusOK, "question", question)
}

// ListQuestions возвращает все вопросы
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	questions, err := h.questionService.ListQuestions()
	if err != nil {
		helper.Fail(c, err)
		return
	}

	helper.OK(c, http.StatusOK, "questions", questions)
}

// UpdateQuestion обрабатывает запрос на обновление вопроса.
// Весь набор вариантов заменяется целиком.
func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	id := middleware.UintParam(c, "questionID")

	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helper.FailValidation(c, err.Error())
		return
	}

	question, err := h.questionService.UpdateQuestion(id, req.Text, req.CategoryID, req.Options)
	if err != nil {
		helper.Fail(c, err)
		return
	}

	helper.OK(c, http.StatusOK, "question updated", question)
}

// DeleteQuestion обрабатывает запрос на удаление вопроса
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id := middleware.UintParam(c, "questionID")

	if err := h.questionService.DeleteQuestion(id); err != nil {
		helper.Fail(c, err)
		return
	}

	helper.OK(c, http.StatusOK, "question deleted", nil)
}
